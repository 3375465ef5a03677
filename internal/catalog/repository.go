package catalog

import (
	"context"
	"database/sql"
	"fmt"

	catalogdb "grocery-optimizer/internal/catalog/db"
)

// Repository is a database-backed source of raw catalog rows. The catalog
// collaborator owns the table contents; the optimizer only reads them.
type Repository struct {
	queries *catalogdb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: catalogdb.New(d),
		db:      d,
	}
}

// ListRows returns every positively priced product row, ordered by name.
func (r *Repository) ListRows(ctx context.Context) ([]Row, error) {
	dbProducts, err := r.queries.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	rows := make([]Row, 0, len(dbProducts))
	for _, p := range dbProducts {
		rows = append(rows, Row{
			Name:        p.Name,
			Price:       p.Price,
			WeightGrams: p.WeightGrams,
			Category:    p.Category,
			Icon:        p.Icon,
			Protein100g: p.Protein100g,
			Carbs100g:   p.Carbs100g,
			Fat100g:     p.Fat100g,
			Kcal100g:    p.Kcal100g,
		})
	}
	return rows, nil
}

// Insert adds a product row and returns its database id. Used by seeding
// utilities and tests; the optimizer itself never writes the catalog.
func (r *Repository) Insert(ctx context.Context, row Row) (int64, error) {
	id, err := r.queries.InsertProduct(ctx, catalogdb.InsertProductParams{
		Name:        row.Name,
		Price:       row.Price,
		WeightGrams: row.WeightGrams,
		Category:    row.Category,
		Icon:        row.Icon,
		Protein100g: row.Protein100g,
		Carbs100g:   row.Carbs100g,
		Fat100g:     row.Fat100g,
		Kcal100g:    row.Kcal100g,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}
	return id, nil
}

// Count returns the number of stored products.
func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.queries.CountProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return int(count), nil
}
