package impl

import (
	"context"

	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/repository"
	"shopfront/internal/errors"
	"shopfront/internal/usecase"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService(catalogRepo repository.CatalogRepository) usecase.CatalogUsecase {
	return &catalogService{catalogRepo: catalogRepo}
}

// ListProducts returns the catalog, optionally filtered by category.
func (s *catalogService) ListProducts(ctx context.Context, category string) ([]entity.Product, error) {
	products, err := s.catalogRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	if category == "" || category == "All" {
		return products, nil
	}

	filtered := make([]entity.Product, 0, len(products))
	for _, product := range products {
		if product.Category == category {
			filtered = append(filtered, product)
		}
	}

	return filtered, nil
}

// ListCategories returns the browsable categories.
func (s *catalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// UpsertProduct adds or updates a catalog product. Operator only.
func (s *catalogService) UpsertProduct(ctx context.Context, actor usecase.Actor, input *usecase.UpsertProductInput) (*entity.Product, error) {
	if actor.Role != entity.RoleOperator {
		return nil, domainerrors.ErrForbidden
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	product := entity.Product{
		ID:          input.ID,
		Name:        input.Name,
		LocalName:   input.LocalName,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
		Description: input.Description,
	}

	if err := s.catalogRepo.SaveProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to save product")
	}

	return &product, nil
}
