package ports

import (
	"context"

	"github.com/manara-academy/platform-api/internal/core/domain"
)

// ContactService validates and relays contact inquiries.
type ContactService interface {
	Submit(ctx context.Context, inquiry domain.ContactInquiry) (*domain.DispatchReceipt, error)
}

// ContentService serves localized marketing content.
type ContentService interface {
	Landing(ctx context.Context, lang string) (*domain.LandingContent, error)
}
