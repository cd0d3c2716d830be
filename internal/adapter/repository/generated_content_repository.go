package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bgnclinic/blog-automation/internal/domain/entities"
)

// GeneratedContentRepository handles content package data operations
type GeneratedContentRepository struct {
	db *gorm.DB
}

// NewGeneratedContentRepository creates a new content repository
func NewGeneratedContentRepository(db *gorm.DB) *GeneratedContentRepository {
	return &GeneratedContentRepository{db: db}
}

// Create persists a new content package
func (r *GeneratedContentRepository) Create(ctx context.Context, content *entities.GeneratedContent) error {
	if content == nil {
		return errors.New("content cannot be nil")
	}
	return r.db.WithContext(ctx).Create(content).Error
}

// GetByID retrieves a content package by ID
func (r *GeneratedContentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.GeneratedContent, error) {
	var content entities.GeneratedContent
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

// GetByFactID retrieves the most recent content package for a fact
func (r *GeneratedContentRepository) GetByFactID(ctx context.Context, factID uuid.UUID) (*entities.GeneratedContent, error) {
	var content entities.GeneratedContent
	if err := r.db.WithContext(ctx).
		Where("fact_id = ?", factID).
		Order("created_at DESC").
		First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

// List retrieves content packages ordered by recency
func (r *GeneratedContentRepository) List(ctx context.Context, limit, offset int) ([]*entities.GeneratedContent, error) {
	var contents []*entities.GeneratedContent
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// Update updates a content package
func (r *GeneratedContentRepository) Update(ctx context.Context, content *entities.GeneratedContent) error {
	if content == nil {
		return errors.New("content cannot be nil")
	}
	return r.db.WithContext(ctx).
		Model(&entities.GeneratedContent{}).
		Where("id = ?", content.ID).
		Save(content).Error
}
