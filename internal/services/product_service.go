package services

import (
	"context"

	"github.com/isandov/storefront-be/internal/database"
	"github.com/isandov/storefront-be/internal/models"
)

// ProductServiceProvider defines the interface for product services.
type ProductServiceProvider interface {
	CreateProduct(ctx context.Context, title string, description *string, price float64, image *string) (models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// ProductService persists and lists catalog products.
type ProductService struct {
	db database.Querier
}

// NewProductService creates a new ProductService.
func NewProductService(db database.Querier) *ProductService {
	return &ProductService{db: db}
}

var _ ProductServiceProvider = (*ProductService)(nil)

// CreateProduct inserts one product row and returns the stored record.
// Nil description or image persist as NULL.
func (s *ProductService) CreateProduct(ctx context.Context, title string, description *string, price float64, image *string) (models.Product, error) {
	const query = `INSERT INTO products (title, description, price, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, price, image`

	var p models.Product
	row := s.db.QueryRow(ctx, query, title, description, price, image)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Image); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// ListProducts returns every stored product, most recently created first.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	const query = `SELECT id, title, description, price, image
		FROM products
		ORDER BY id DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Image); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
