// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopstack/storefront-backend/internal/kvstore"
	"github.com/shopstack/storefront-backend/internal/models"
	"github.com/shopstack/storefront-backend/internal/repository"
	"github.com/shopstack/storefront-backend/internal/utils"
)

type CatalogService struct {
	products   *repository.ProductRepository
	categories *repository.CategoryRepository
}

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	ImageURL    string  `json:"imageUrl"`
}

// UpdateProductRequest carries partial updates; nil fields are left
// untouched.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Category    *string  `json:"category,omitempty"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

func NewCatalogService(products *repository.ProductRepository, categories *repository.CategoryRepository) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
	}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.ListAll(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.products.Find(ctx, id)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		ID:          utils.NewEntityID(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Rating:      req.Rating,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, req *UpdateProductRequest) (*models.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}

	now := time.Now().UTC()
	product.UpdatedAt = &now

	if err := s.products.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// DeleteProduct removes the product record. Carts and orders referencing
// it are untouched: cart views drop the line, order snapshots are
// insulated by design.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// SetProductImage stamps the uploaded image URL on the product.
func (s *CatalogService) SetProductImage(ctx context.Context, id, imageURL string) (*models.Product, error) {
	return s.UpdateProduct(ctx, id, &UpdateProductRequest{ImageURL: &imageURL})
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.ListAll(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		ID:          utils.NewEntityID(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.categories.Save(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}
