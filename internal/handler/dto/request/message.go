package request

type CreateMessageRequest struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Body    string `json:"body" binding:"required"`
}

type ReplyRequest struct {
	Reply string `json:"reply" binding:"required"`
}
