package ports

import (
	"context"

	"github.com/manara-academy/platform-api/internal/core/domain"
)

// ContentRepository reads localized landing page content.
type ContentRepository interface {
	LandingByLang(ctx context.Context, lang string) (*domain.LandingContent, error)
}

// InquiryRepository archives accepted contact inquiries for operator review.
type InquiryRepository interface {
	Save(ctx context.Context, inquiry domain.ContactInquiry) error
}
