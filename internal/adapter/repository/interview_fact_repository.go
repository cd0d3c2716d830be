package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bgnclinic/blog-automation/internal/domain/entities"
)

// InterviewFactRepository handles interview fact data operations
type InterviewFactRepository struct {
	db *gorm.DB
}

// NewInterviewFactRepository creates a new interview fact repository
func NewInterviewFactRepository(db *gorm.DB) *InterviewFactRepository {
	return &InterviewFactRepository{db: db}
}

// Create persists a new interview fact
func (r *InterviewFactRepository) Create(ctx context.Context, fact *entities.InterviewFact) error {
	if fact == nil {
		return errors.New("fact cannot be nil")
	}
	return r.db.WithContext(ctx).Create(fact).Error
}

// GetByID retrieves a fact by ID
func (r *InterviewFactRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.InterviewFact, error) {
	var fact entities.InterviewFact
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&fact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fact, nil
}

// GetBySourceHash retrieves the most recent fact for a source text hash
func (r *InterviewFactRepository) GetBySourceHash(ctx context.Context, hash string) (*entities.InterviewFact, error) {
	var fact entities.InterviewFact
	if err := r.db.WithContext(ctx).
		Where("source_hash = ?", hash).
		Order("created_at DESC").
		First(&fact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fact, nil
}

// List retrieves facts ordered by recency
func (r *InterviewFactRepository) List(ctx context.Context, limit, offset int) ([]*entities.InterviewFact, error) {
	var facts []*entities.InterviewFact
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&facts).Error; err != nil {
		return nil, err
	}
	return facts, nil
}

// ListByDepartment retrieves facts whose employee profile matches a department
func (r *InterviewFactRepository) ListByDepartment(ctx context.Context, department string, limit, offset int) ([]*entities.InterviewFact, error) {
	var facts []*entities.InterviewFact
	if err := r.db.WithContext(ctx).
		Where(datatypes.JSONQuery("employee").Equals(department, "department")).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&facts).Error; err != nil {
		return nil, err
	}
	return facts, nil
}

// Update updates a fact
func (r *InterviewFactRepository) Update(ctx context.Context, fact *entities.InterviewFact) error {
	if fact == nil {
		return errors.New("fact cannot be nil")
	}
	return r.db.WithContext(ctx).
		Model(&entities.InterviewFact{}).
		Where("id = ?", fact.ID).
		Save(fact).Error
}
