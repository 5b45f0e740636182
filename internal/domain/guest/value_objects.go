package guest

import (
	"errors"
	"strings"
)

var (
	ErrMissingName         = errors.New("guest name is required")
	ErrInvalidDocument     = errors.New("invalid identity document")
	ErrInvalidDocumentKind = errors.New("invalid document kind")
)

type DocumentKind string

const (
	DocumentPassport   DocumentKind = "passport"
	DocumentNationalID DocumentKind = "national_id"
	DocumentDriverLic  DocumentKind = "driver_license"
)

func (k DocumentKind) IsValid() bool {
	switch k {
	case DocumentPassport, DocumentNationalID, DocumentDriverLic:
		return true
	default:
		return false
	}
}

// Document identifies a guest uniquely; the kind+number pair is unique in storage.
type Document struct {
	kind   DocumentKind
	number string
}

func NewDocument(kind string, number string) (Document, error) {
	k := DocumentKind(kind)
	if !k.IsValid() {
		return Document{}, ErrInvalidDocumentKind
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return Document{}, ErrInvalidDocument
	}
	return Document{kind: k, number: number}, nil
}

func (d Document) Kind() DocumentKind {
	return d.kind
}

func (d Document) Number() string {
	return d.number
}
