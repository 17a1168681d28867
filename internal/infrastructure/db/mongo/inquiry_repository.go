package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/manara-academy/platform-api/internal/core/domain"
)

const inquiryCollection = "contact_inquiries"

// InquiryRepository archives accepted contact inquiries so operators can
// review submissions independent of email delivery.
type InquiryRepository struct {
	coll *mongo.Collection
}

func NewInquiryRepository(db *mongo.Database) *InquiryRepository {
	return &InquiryRepository{coll: db.Collection(inquiryCollection)}
}

type inquiryDoc struct {
	ID         string    `bson:"_id"`
	Name       string    `bson:"name"`
	Email      string    `bson:"email"`
	Phone      string    `bson:"phone,omitempty"`
	Type       string    `bson:"type,omitempty"`
	Message    string    `bson:"message"`
	ReceivedAt time.Time `bson:"received_at"`
}

func (r *InquiryRepository) Save(ctx context.Context, inquiry domain.ContactInquiry) error {
	doc := inquiryDoc{
		ID:         uuid.NewString(),
		Name:       inquiry.Name,
		Email:      inquiry.Email,
		Phone:      inquiry.Phone,
		Type:       inquiry.Type,
		Message:    inquiry.Message,
		ReceivedAt: time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}
