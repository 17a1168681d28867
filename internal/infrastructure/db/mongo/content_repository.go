package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/manara-academy/platform-api/internal/core/domain"
)

const contentCollection = "landing_content"

// ContentRepository reads localized landing page documents. One document per
// language, keyed by the lang field.
type ContentRepository struct {
	coll *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{coll: db.Collection(contentCollection)}
}

func (r *ContentRepository) LandingByLang(ctx context.Context, lang string) (*domain.LandingContent, error) {
	var content domain.LandingContent
	if err := r.coll.FindOne(ctx, bson.M{"lang": lang}).Decode(&content); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContentNotFound
		}
		return nil, fmt.Errorf("find landing content: %w", err)
	}
	return &content, nil
}
