package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"
	"gonum.org/v1/gonum/floats"

	"github.com/modaiq/stylerec/pkg/models"
)

// ErrEmptyCatalog is fatal at construction: the engine refuses to serve
// without products.
var ErrEmptyCatalog = errors.New("catalog contains no products")

// Catalog is the immutable, dense, index-addressable product collection.
// It is loaded once at startup and safe for unsynchronized concurrent
// reads; the id -> position mapping is stable for the process lifetime.
type Catalog struct {
	products []models.Product
	byID     map[string]int
	dim      int
}

// New builds a catalog from an ordered product list. Embeddings are
// L2-normalized in place so downstream distance and cosine terms operate
// on unit vectors.
func New(products []models.Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	dim := len(products[0].Embedding)
	if dim == 0 {
		return nil, fmt.Errorf("product %q: empty embedding", products[0].ID)
	}

	byID := make(map[string]int, len(products))
	for i := range products {
		p := &products[i]
		if len(p.Embedding) != dim {
			return nil, fmt.Errorf("product %q: embedding dimension %d, want %d",
				p.ID, len(p.Embedding), dim)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if norm := floats.Norm(p.Embedding, 2); norm > 0 {
			floats.Scale(1/norm, p.Embedding)
		}
		byID[p.ID] = i
	}

	return &Catalog{products: products, byID: byID, dim: dim}, nil
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Dimension is the embedding length shared by every product.
func (c *Catalog) Dimension() int {
	return c.dim
}

// At returns the product at the given catalog position.
func (c *Catalog) At(i int) *models.Product {
	return &c.products[i]
}

// ByID looks a product up by id.
func (c *Catalog) ByID(id string) (*models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.products[i], true
}

// Has reports whether the id exists in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// fileSchema guards the catalog metadata file before decoding. Color,
// category, price and image_href are optional; id, title and a non-empty
// numeric embedding are not.
const fileSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "title", "embedding"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"title": {"type": "string"},
			"color": {"type": "string"},
			"category": {"type": "string"},
			"price": {"type": "number"},
			"image_href": {"type": "string"},
			"embedding": {
				"type": "array",
				"items": {"type": "number"},
				"minItems": 1
			}
		}
	}
}`

// LoadFile reads and validates a JSON catalog file.
func LoadFile(path string, logger *logrus.Logger) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(fileSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validate catalog file: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("catalog file %s: %s", path, result.Errors()[0])
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}

	cat, err := New(products)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"path":      path,
		"products":  cat.Len(),
		"dimension": cat.Dimension(),
	}).Info("Catalog loaded")

	return cat, nil
}
