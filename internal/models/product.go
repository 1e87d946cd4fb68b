package models

// Product represents a catalog product. Description and Image are optional
// columns; pointer fields keep absent values as JSON null.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Image       *string `json:"image"`
}
