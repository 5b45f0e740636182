package notification

// Job kinds and topics stored in the outbox. The topic selects the template;
// the kind selects the delivery channel.
const (
	KindEmail = "email"

	TopicReservationConfirmed = "reservation_confirmed"
	TopicContractSubmitted    = "contract_submitted"
	TopicContractConfirmed    = "contract_confirmed"
	TopicMessageReplied       = "message_replied"
)

type ReservationConfirmedPayload struct {
	To              string `json:"to"`
	GuestName       string `json:"guest_name"`
	ReservationCode string `json:"reservation_code"`
	RoomNumber      string `json:"room_number"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	TotalCents      int64  `json:"total_cents"`
}

type ContractPayload struct {
	To          string `json:"to"`
	GuestName   string `json:"guest_name"`
	ServiceDate string `json:"service_date"`
	TotalCents  int64  `json:"total_cents"`
}

type MessageRepliedPayload struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Original string `json:"original"`
	Reply    string `json:"reply"`
}
