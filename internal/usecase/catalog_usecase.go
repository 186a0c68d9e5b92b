package usecase

import (
	"context"

	"shopfront/internal/domain/entity"
)

// UpsertProductInput carries an operator catalog edit.
type UpsertProductInput struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	LocalName   string `json:"localName"`
	Price       int    `json:"price" validate:"min=0"`
	Category    string `json:"category" validate:"required"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// CatalogUsecase exposes the browsable catalog and its operator-managed edits.
type CatalogUsecase interface {
	// ListProducts returns the current catalog, optionally filtered by category.
	ListProducts(ctx context.Context, category string) ([]entity.Product, error)

	// ListCategories returns the browsable categories.
	ListCategories(ctx context.Context) ([]entity.Category, error)

	// UpsertProduct adds or updates a product. Operator only. Edits never
	// alter the captured lines of already-placed orders.
	UpsertProduct(ctx context.Context, actor Actor, input *UpsertProductInput) (*entity.Product, error)
}
