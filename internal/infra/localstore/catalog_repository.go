package localstore

import (
	"context"
	"sync"

	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/repository"
	"shopfront/internal/errors"
)

const catalogKey = "catalog"

// defaultProducts is the built-in catalog, used until the operator edits a
// product, at which point the persisted override set replaces it on load.
var defaultProducts = []entity.Product{
	{
		ID:          "1",
		Name:        "Blue Gel Pen",
		LocalName:   "नीला जेल पेन",
		Price:       10,
		Category:    "Pens",
		Image:       "https://picsum.photos/seed/pen/300/300",
		Description: "Smooth writing gel pen",
	},
	{
		ID:          "2",
		Name:        "A4 Register (120 pgs)",
		LocalName:   "A4 रजिस्टर",
		Price:       60,
		Category:    "Registers",
		Image:       "https://picsum.photos/seed/notebook/300/300",
		Description: "High quality A4 register",
	},
	{
		ID:          "3",
		Name:        "Geometry Box",
		LocalName:   "ज्यामिति बॉक्स",
		Price:       150,
		Category:    "School Items",
		Image:       "https://picsum.photos/seed/geometry/300/300",
		Description: "Complete math set",
	},
}

var defaultCategories = []entity.Category{
	{ID: "Pens", Label: "Pens", LocalLabel: "पेन", Icon: "🖋️"},
	{ID: "Registers", Label: "Registers", LocalLabel: "रजिस्टर", Icon: "📔"},
	{ID: "School Items", Label: "School", LocalLabel: "स्कूल", Icon: "🎒"},
	{ID: "Services", Label: "Services", LocalLabel: "सेवाएं", Icon: "🖨️"},
}

type catalogRepository struct {
	store *Store
	mu    sync.Mutex
}

// NewCatalogRepository creates a repository over the catalog override set.
func NewCatalogRepository(store *Store) repository.CatalogRepository {
	return &catalogRepository{store: store}
}

// ListProducts returns the persisted override set if present, otherwise the
// built-in defaults.
func (r *catalogRepository) ListProducts(ctx context.Context) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// FindProductByID retrieves a single product.
func (r *catalogRepository) FindProductByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, product := range products {
		if product.ID == id {
			return &product, nil
		}
	}

	return nil, errors.WithStack(repository.ErrProductNotFound)
}

// SaveProduct inserts or replaces a product and persists the whole catalog as
// the override set.
func (r *catalogRepository) SaveProduct(ctx context.Context, product entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			replaced = true

			break
		}
	}
	if !replaced {
		products = append(products, product)
	}

	return r.store.Put(catalogKey, products)
}

// ListCategories returns the browsable categories.
func (r *catalogRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return defaultCategories, nil
}

func (r *catalogRepository) load() ([]entity.Product, error) {
	var products []entity.Product
	found, err := r.store.Get(catalogKey, &products)
	if err != nil {
		return nil, err
	}
	if !found {
		return append([]entity.Product(nil), defaultProducts...), nil
	}

	return products, nil
}
