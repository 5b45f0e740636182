package notification

import (
	"encoding/json"
	"fmt"

	"hotelier/internal/pkg/errs"
)

// Render turns an outbox payload into an addressed mail. Unknown topics are a
// permanent failure; retrying cannot fix them.
func Render(topic string, payload []byte) (to, subject, body string, err error) {
	switch topic {
	case TopicReservationConfirmed:
		var p ReservationConfirmedPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return "", "", "", errs.Wrap(err, "invalid reservation payload")
		}
		subject = fmt.Sprintf("Reservation %s confirmed", p.ReservationCode)
		body = fmt.Sprintf(
			"Dear %s,\n\nYour reservation %s is confirmed.\nRoom %s, %s to %s.\nTotal: %s.\n\nWe look forward to welcoming you.",
			p.GuestName, p.ReservationCode, p.RoomNumber, p.CheckIn, p.CheckOut, formatAmount(p.TotalCents),
		)
		return p.To, subject, body, nil

	case TopicContractSubmitted:
		var p ContractPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return "", "", "", errs.Wrap(err, "invalid contract payload")
		}
		subject = "Service request received"
		body = fmt.Sprintf(
			"Dear %s,\n\nWe received your service request for %s.\nTotal: %s.\nWe will confirm it shortly.",
			p.GuestName, p.ServiceDate, formatAmount(p.TotalCents),
		)
		return p.To, subject, body, nil

	case TopicContractConfirmed:
		var p ContractPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return "", "", "", errs.Wrap(err, "invalid contract payload")
		}
		subject = "Service request confirmed"
		body = fmt.Sprintf(
			"Dear %s,\n\nYour service request for %s is confirmed.\nTotal: %s.",
			p.GuestName, p.ServiceDate, formatAmount(p.TotalCents),
		)
		return p.To, subject, body, nil

	case TopicMessageReplied:
		var p MessageRepliedPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return "", "", "", errs.Wrap(err, "invalid message payload")
		}
		subject = "Re: " + p.Subject
		body = fmt.Sprintf("%s\n\nYou wrote:\n> %s", p.Reply, p.Original)
		return p.To, subject, body, nil

	default:
		return "", "", "", errs.New("unknown notification topic: " + topic)
	}
}

func formatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
