package service

import (
	"context"
	"fmt"

	"github.com/abgdnv/crudapi/internal/store"
	"github.com/abgdnv/crudapi/internal/store/db"
	"github.com/shopspring/decimal"
)

func init() {
	// Prices are JSON numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// ProductService defines the methods for managing products.
type ProductService interface {
	// FindAll returns all products in storage order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// Create adds a new product and returns it with its assigned ID.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update replaces the details of the product with the given ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id int64, product ProductCreateDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error

	// DeleteAll removes every product and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}

// ProductCreateDto is the request body for creating or replacing a product.
// Price is a pointer so that an absent or null price fails validation while zero passes.
type ProductCreateDto struct {
	Name  string           `json:"name"  validate:"required"`
	Price *decimal.Decimal `json:"price" validate:"required"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Products implements ProductService.
type Products struct {
	repository store.ProductStore
}

// NewProductService creates a new instance of ProductService with the provided repository.
func NewProductService(repo store.ProductStore) *Products {
	return &Products{repository: repo}
}

// FindAll retrieves all products.
func (s *Products) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))
	for i, item := range products {
		productDTOs[i] = *toProductDto(&item)
	}
	return productDTOs, nil
}

// Create creates a new product and returns it as a ProductDto.
func (s *Products) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	p, err := s.repository.Create(ctx, product.Name, priceOf(product))
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return toProductDto(p), nil
}

// Update replaces the product's details. The returned DTO echoes the given ID
// and values; the row is not read back.
func (s *Products) Update(ctx context.Context, id int64, product ProductCreateDto) (*ProductDto, error) {
	price := priceOf(product)
	if err := s.repository.Update(ctx, id, product.Name, price); err != nil {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", id, err)
	}
	return &ProductDto{ID: id, Name: product.Name, Price: price}, nil
}

// DeleteByID deletes a product by its ID.
func (s *Products) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product with ID %d: %w", id, err)
	}
	return nil
}

// DeleteAll deletes every product.
func (s *Products) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.repository.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete all products: %w", err)
	}
	return n, nil
}

// priceOf dereferences the validated price.
func priceOf(product ProductCreateDto) decimal.Decimal {
	if product.Price == nil {
		return decimal.Zero
	}
	return *product.Price
}

func toProductDto(product *db.Product) *ProductDto {
	return &ProductDto{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
	}
}
