// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"shopfront/internal/domain/entity"
	"shopfront/internal/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// CatalogRepository defines the interface for catalog operations. The catalog
// starts from the built-in default list; operator edits are persisted as an
// override set that replaces the defaults on load.
type CatalogRepository interface {
	// ListProducts returns the current catalog.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// FindProductByID retrieves a single product.
	// Returns ErrProductNotFound if no such product exists.
	FindProductByID(ctx context.Context, id string) (*entity.Product, error)

	// SaveProduct inserts or replaces a product and persists the catalog override set.
	SaveProduct(ctx context.Context, product entity.Product) error

	// ListCategories returns the browsable categories.
	ListCategories(ctx context.Context) ([]entity.Category, error)
}
