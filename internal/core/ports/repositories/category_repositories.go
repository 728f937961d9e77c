package repositories

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// FindCategoryByID retrieves a category by its identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories in creation order.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// UpdateCategory overwrites an existing category's name.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category; transactions referencing it are
	// detached, not deleted.
	DeleteCategory(ctx context.Context, categoryID string) error
}
