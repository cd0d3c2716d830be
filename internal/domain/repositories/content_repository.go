package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/bgnclinic/blog-automation/internal/domain/entities"
)

// GeneratedContentRepository persists assembled content packages
type GeneratedContentRepository interface {
	Create(ctx context.Context, content *entities.GeneratedContent) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.GeneratedContent, error)
	GetByFactID(ctx context.Context, factID uuid.UUID) (*entities.GeneratedContent, error)
	List(ctx context.Context, limit, offset int) ([]*entities.GeneratedContent, error)
	Update(ctx context.Context, content *entities.GeneratedContent) error
}
