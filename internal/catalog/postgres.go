package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/modaiq/stylerec/pkg/models"
)

// Querier is the slice of pgx used by the Postgres catalog source.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

const productQuery = `
	SELECT id, title, color, category, price, image_href, embedding
	FROM products
	ORDER BY position`

// LoadPostgres reads the full products table into an immutable catalog.
// The table's position column fixes catalog order; after the load the
// connection is no longer needed.
func LoadPostgres(ctx context.Context, db Querier, logger *logrus.Logger) (*Catalog, error) {
	rows, err := db.Query(ctx, productQuery)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Color, &p.Category,
			&p.Price, &p.ImageHref, &p.Embedding); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}

	cat, err := New(products)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"products":  cat.Len(),
		"dimension": cat.Dimension(),
	}).Info("Catalog loaded from Postgres")

	return cat, nil
}
