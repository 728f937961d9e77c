package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrack/fintrack_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// NewPgxCategoryRepository creates a new repository for category data.
func NewPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepository
var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		Name:       m.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
		INSERT INTO categories (category_id, name, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.CreatedAt,
		category.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save category %s: %w", category.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
		SELECT category_id, name, created_at, last_updated_at
		FROM categories
		WHERE category_id = $1;
	`
	var modelCat models.Category
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(
		&modelCat.CategoryID,
		&modelCat.Name,
		&modelCat.CreatedAt,
		&modelCat.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}

	domainCat := toDomainCategory(modelCat)
	return &domainCat, nil
}

// ListCategories retrieves all categories in creation order.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT category_id, name, created_at, last_updated_at
		FROM categories
		ORDER BY created_at, category_id;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var modelCat models.Category
		if err := rows.Scan(
			&modelCat.CategoryID,
			&modelCat.Name,
			&modelCat.CreatedAt,
			&modelCat.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, toDomainCategory(modelCat))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}

	return categories, nil
}

// UpdateCategory overwrites an existing category's name.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
		UPDATE categories
		SET name = $2, last_updated_at = $3
		WHERE category_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update category %s: %w", category.CategoryID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// DeleteCategory removes a category. Transactions referencing it keep their
// rows; the FK is declared ON DELETE SET NULL so they are detached.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	query := `DELETE FROM categories WHERE category_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, categoryID)
	if err != nil {
		return fmt.Errorf("failed to execute delete category %s: %w", categoryID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
