package models

// Product is one catalog entry: metadata plus a fixed-length visual
// embedding. Products are created once at catalog load and never mutated
// afterwards.
type Product struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Color     string    `json:"color"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	ImageHref string    `json:"image_href"`
	Embedding []float64 `json:"embedding,omitempty"`
}
