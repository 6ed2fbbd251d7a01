package services

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/modaiq/stylerec/internal/catalog"
	"github.com/modaiq/stylerec/pkg/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func testCatalog(t *testing.T, products ...models.Product) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(products)
	require.NoError(t, err)
	return cat
}

func product(id string, embedding ...float64) models.Product {
	return models.Product{ID: id, Title: "Item " + id, Embedding: embedding}
}
