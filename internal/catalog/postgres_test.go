package catalog

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPostgres(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{
		"id", "title", "color", "category", "price", "image_href", "embedding",
	}).
		AddRow("p1", "Red dress", "red", "dress", 49.99, "https://example.com/p1.jpg", []float64{1, 0}).
		AddRow("p2", "Blue jacket", "blue", "jacket", 89.5, "https://example.com/p2.jpg", []float64{0, 1})

	mock.ExpectQuery("SELECT id, title, color, category, price, image_href, embedding").
		WillReturnRows(rows)

	cat, err := LoadPostgres(context.Background(), mock, testLogger())
	require.NoError(t, err)

	assert.Equal(t, 2, cat.Len())
	assert.Equal(t, "p1", cat.At(0).ID)
	assert.Equal(t, "p2", cat.At(1).ID)

	p, ok := cat.ByID("p2")
	require.True(t, ok)
	assert.Equal(t, "jacket", p.Category)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadPostgres_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, title, color, category, price, image_href, embedding").
		WillReturnError(errors.New("connection refused"))

	_, err = LoadPostgres(context.Background(), mock, testLogger())
	assert.Error(t, err)
}

func TestLoadPostgres_EmptyTable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{
		"id", "title", "color", "category", "price", "image_href", "embedding",
	})

	mock.ExpectQuery("SELECT id, title, color, category, price, image_href, embedding").
		WillReturnRows(rows)

	_, err = LoadPostgres(context.Background(), mock, testLogger())
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}
