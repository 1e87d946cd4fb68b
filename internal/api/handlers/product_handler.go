package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/isandov/storefront-be/internal/services"
)

// ProductHandler handles HTTP requests for catalog products.
type ProductHandler struct {
	service services.ProductServiceProvider
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service services.ProductServiceProvider) *ProductHandler {
	return &ProductHandler{service: service}
}

// CreateProductPayload defines the structure for product creation requests.
// Price is a pointer so an absent field is distinguishable from zero.
type CreateProductPayload struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
}

// Create handles POST /api/products. Description and image are optional and
// pass through as-given. A zero price is rejected like a missing one,
// matching the original truthiness check on this endpoint.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload CreateProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Title == "" || payload.Price == nil || *payload.Price == 0 {
		writeValidationError(w, "Title and price are required")
		return
	}

	product, err := h.service.CreateProduct(r.Context(), payload.Title, payload.Description, *payload.Price, payload.Image)
	if err != nil {
		log.Error().Err(err).Str("title", payload.Title).Msg("Failed to save product")
		writeStoreError(w, "Could not save product", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Product saved successfully",
		"data":    product,
	})
}

// List handles GET /api/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch products")
		writeStoreError(w, "Could not fetch products", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"count":    len(products),
		"products": products,
	})
}
