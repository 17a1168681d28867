package service

import (
	"context"

	"github.com/manara-academy/platform-api/internal/core/domain"
	"github.com/manara-academy/platform-api/internal/core/ports"
)

// ContentService serves the localized landing page. Arabic is the default
// language per the platform's primary audience.
type ContentService struct {
	repo ports.ContentRepository
}

func NewContentService(repo ports.ContentRepository) *ContentService {
	return &ContentService{repo: repo}
}

func (s *ContentService) Landing(ctx context.Context, lang string) (*domain.LandingContent, error) {
	if lang == "" {
		lang = domain.LangArabic
	}

	content, err := s.repo.LandingByLang(ctx, lang)
	if err != nil {
		return nil, err
	}

	if content.Dir == "" {
		content.Dir = "ltr"
		if content.Lang == domain.LangArabic {
			content.Dir = "rtl"
		}
	}
	return content, nil
}
