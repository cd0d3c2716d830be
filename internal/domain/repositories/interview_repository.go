package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/bgnclinic/blog-automation/internal/domain/entities"
)

// InterviewFactRepository persists interview analysis results
type InterviewFactRepository interface {
	Create(ctx context.Context, fact *entities.InterviewFact) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.InterviewFact, error)
	GetBySourceHash(ctx context.Context, hash string) (*entities.InterviewFact, error)
	List(ctx context.Context, limit, offset int) ([]*entities.InterviewFact, error)
	ListByDepartment(ctx context.Context, department string, limit, offset int) ([]*entities.InterviewFact, error)
	Update(ctx context.Context, fact *entities.InterviewFact) error
}
