package domain

import (
	"encoding/json"
	"time"
)

const (
	InquiryUnread = "unread"
	InquiryRead   = "read"
)

// InquiryReply only exists once an admin has answered.
type InquiryReply struct {
	Text string
	Date time.Time
}

// Inquiry is a contact message. Reply is nil until the inquiry is answered,
// so reply text and date can never be read before they exist.
type Inquiry struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	Date      time.Time
	Status    string
	UserEmail string
	Reply     *InquiryReply
}

func (i Inquiry) Replied() bool { return i.Reply != nil }

type inquiryJSON struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	Date      time.Time  `json:"date"`
	Status    string     `json:"status"`
	UserEmail string     `json:"userEmail"`
	Replied   bool       `json:"replied"`
	Reply     string     `json:"reply,omitempty"`
	ReplyDate *time.Time `json:"replyDate,omitempty"`
}

func (i Inquiry) MarshalJSON() ([]byte, error) {
	out := inquiryJSON{
		ID:        i.ID,
		Name:      i.Name,
		Email:     i.Email,
		Subject:   i.Subject,
		Message:   i.Message,
		Date:      i.Date,
		Status:    i.Status,
		UserEmail: i.UserEmail,
	}
	if i.Reply != nil {
		date := i.Reply.Date
		out.Replied = true
		out.Reply = i.Reply.Text
		out.ReplyDate = &date
	}
	return json.Marshal(out)
}

// UnmarshalJSON treats a record flagged replied without reply text as unreplied.
func (i *Inquiry) UnmarshalJSON(data []byte) error {
	var in inquiryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*i = Inquiry{
		ID:        in.ID,
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Date:      in.Date,
		Status:    in.Status,
		UserEmail: in.UserEmail,
	}
	if in.Replied && in.Reply != "" {
		reply := &InquiryReply{Text: in.Reply}
		if in.ReplyDate != nil {
			reply.Date = *in.ReplyDate
		}
		i.Reply = reply
	}
	return nil
}

// InquiryDraft is the contact form payload.
type InquiryDraft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
