package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/manara-academy/platform-api/internal/core/domain"
	"github.com/manara-academy/platform-api/internal/core/ports"
)

// ContactService validates an inbound inquiry, archives it, renders the
// notification email, and forwards it to the delivery provider.
type ContactService struct {
	mailer    ports.Mailer
	inquiries ports.InquiryRepository
	from      string
	to        string
	log       zerolog.Logger
}

func NewContactService(mailer ports.Mailer, inquiries ports.InquiryRepository, from, to string, log zerolog.Logger) *ContactService {
	return &ContactService{mailer: mailer, inquiries: inquiries, from: from, to: to, log: log}
}

// Submit relays the inquiry. Incomplete inquiries are rejected with
// domain.ErrMissingRequiredFields before any delivery attempt; provider and
// render failures collapse into domain.ErrDeliveryFailed with the cause
// logged for operators.
func (s *ContactService) Submit(ctx context.Context, inquiry domain.ContactInquiry) (*domain.DispatchReceipt, error) {
	if !inquiry.Complete() {
		return nil, domain.ErrMissingRequiredFields
	}

	// Archive first so an inquiry survives a delivery outage. Archive
	// failure is logged but does not block the notification.
	if err := s.inquiries.Save(ctx, inquiry); err != nil {
		s.log.Warn().Err(err).Str("email", inquiry.Email).Msg("inquiry archive failed")
	}

	receipt, err := s.mailer.Send(ctx, RenderInquiryEmail(inquiry, s.from, s.to))
	if err != nil {
		s.log.Error().Err(err).Str("email", inquiry.Email).Msg("inquiry delivery failed")
		return nil, domain.ErrDeliveryFailed
	}

	s.log.Info().Str("dispatch_id", receipt.ID).Str("type", inquiry.Type).Msg("inquiry forwarded")
	return receipt, nil
}

// RenderInquiryEmail builds the notification email document. The subject
// carries the inquiry type and sender name so the inbox is scannable.
func RenderInquiryEmail(inquiry domain.ContactInquiry, from, to string) domain.EmailMessage {
	kind := strings.TrimSpace(inquiry.Type)
	if kind == "" {
		kind = "general"
	}

	lines := []string{
		"New inquiry received via the contact form.",
		"",
		"Name:  " + inquiry.Name,
		"Email: " + inquiry.Email,
	}
	if strings.TrimSpace(inquiry.Phone) != "" {
		lines = append(lines, "Phone: "+inquiry.Phone)
	}
	lines = append(lines,
		"Type:  "+kind,
		"",
		"Message:",
		inquiry.Message,
	)

	return domain.EmailMessage{
		From:    from,
		To:      to,
		ReplyTo: inquiry.Email,
		Subject: fmt.Sprintf("New %s inquiry from %s", kind, inquiry.Name),
		Text:    strings.Join(lines, "\n"),
	}
}
