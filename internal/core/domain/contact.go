package domain

import (
	"strings"
	"time"
)

// ContactInquiry is the payload submitted through the contact form. It lives
// only for the duration of one request; the archive copy is a side effect.
type ContactInquiry struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Complete reports whether the required fields are present.
func (i ContactInquiry) Complete() bool {
	return strings.TrimSpace(i.Name) != "" &&
		strings.TrimSpace(i.Email) != "" &&
		strings.TrimSpace(i.Message) != ""
}

// DispatchReceipt confirms that the delivery provider accepted a message.
type DispatchReceipt struct {
	ID         string    `json:"id"`
	AcceptedAt time.Time `json:"accepted_at"`
}

// EmailMessage is a rendered email document ready for the delivery provider.
type EmailMessage struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
}
