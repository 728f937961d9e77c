package services

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/dto"
)

// CategorySvcFacade defines CRUD operations for display categories.
type CategorySvcFacade interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// GetCategoryByID retrieves a category by its identifier.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories in creation order.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// UpdateCategory renames an existing category.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, categoryID string) error
}
