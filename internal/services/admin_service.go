// internal/services/admin_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/shopstack/storefront-backend/internal/models"
	"github.com/shopstack/storefront-backend/internal/repository"
)

type AdminService struct {
	users    *repository.UserRepository
	orders   *repository.OrderRepository
	products *repository.ProductRepository
	catalog  *CatalogService
}

type AdminStats struct {
	TotalUsers    int     `json:"totalUsers"`
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalProducts int     `json:"totalProducts"`
}

func NewAdminService(users *repository.UserRepository, orders *repository.OrderRepository, products *repository.ProductRepository, catalog *CatalogService) *AdminService {
	return &AdminService{
		users:    users,
		orders:   orders,
		products: products,
		catalog:  catalog,
	}
}

// ComputeStats prefix-scans every collection. Revenue counts only orders
// whose payment completed. O(n) per collection; reporting path only.
func (s *AdminService) ComputeStats(ctx context.Context) (*AdminStats, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan orders: %w", err)
	}
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}

	var revenue float64
	for _, order := range orders {
		if order.PaymentStatus == models.PaymentStatusCompleted {
			revenue += order.Total
		}
	}

	return &AdminStats{
		TotalUsers:    len(users),
		TotalOrders:   len(orders),
		TotalRevenue:  revenue,
		TotalProducts: len(products),
	}, nil
}

// Seed loads the demo catalog. Refuses when any product already exists so
// repeated calls stay idempotent.
func (s *AdminService) Seed(ctx context.Context) error {
	existing, err := s.products.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to scan products: %w", err)
	}
	if len(existing) > 0 {
		return ErrAlreadySeeded
	}

	categories := []CreateCategoryRequest{
		{Name: "Electronics", Description: "Electronic devices and accessories"},
		{Name: "Clothing", Description: "Fashion and apparel"},
		{Name: "Home & Garden", Description: "Home improvement and gardening"},
		{Name: "Sports", Description: "Sports equipment and accessories"},
	}

	categoryIDs := make([]string, 0, len(categories))
	for i := range categories {
		category, err := s.catalog.CreateCategory(ctx, &categories[i])
		if err != nil {
			return fmt.Errorf("failed to seed category: %w", err)
		}
		categoryIDs = append(categoryIDs, category.ID)
	}

	products := []CreateProductRequest{
		{Name: "Wireless Headphones", Description: "Premium noise-canceling headphones", Price: 299.99, Category: categoryIDs[0], Rating: 4.5, Stock: 50},
		{Name: "Smartphone", Description: "Latest model smartphone", Price: 899.99, Category: categoryIDs[0], Rating: 4.8, Stock: 30},
		{Name: "Laptop", Description: "High-performance laptop", Price: 1299.99, Category: categoryIDs[0], Rating: 4.7, Stock: 20},
		{Name: "T-Shirt", Description: "Cotton casual t-shirt", Price: 29.99, Category: categoryIDs[1], Rating: 4.2, Stock: 100},
		{Name: "Jeans", Description: "Classic blue jeans", Price: 79.99, Category: categoryIDs[1], Rating: 4.4, Stock: 75},
		{Name: "Running Shoes", Description: "Comfortable running shoes", Price: 129.99, Category: categoryIDs[3], Rating: 4.6, Stock: 60},
		{Name: "Yoga Mat", Description: "Non-slip yoga mat", Price: 39.99, Category: categoryIDs[3], Rating: 4.3, Stock: 80},
		{Name: "Garden Tools Set", Description: "Complete gardening toolkit", Price: 89.99, Category: categoryIDs[2], Rating: 4.5, Stock: 40},
	}

	for i := range products {
		if _, err := s.catalog.CreateProduct(ctx, &products[i]); err != nil {
			return fmt.Errorf("failed to seed product: %w", err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"categories": len(categories),
		"products":   len(products),
	}).Info("Demo catalog seeded")

	return nil
}
