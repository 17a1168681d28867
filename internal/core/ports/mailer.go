package ports

import (
	"context"

	"github.com/manara-academy/platform-api/internal/core/domain"
)

// Mailer forwards a rendered email document to the delivery provider and
// returns the provider's dispatch receipt.
type Mailer interface {
	Send(ctx context.Context, msg domain.EmailMessage) (*domain.DispatchReceipt, error)
}
