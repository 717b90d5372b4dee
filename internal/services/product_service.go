package services

import (
	"log"
	"math"
	"strconv"
	"strings"

	"butik/internal/models"
	"butik/internal/repositories"
)

// EventPublisher publishes catalog events to the message broker.
// A nil publisher disables event publishing.
type EventPublisher interface {
	PublishProductCreated(event map[string]interface{}) error
	PublishUserRegistered(event map[string]interface{}) error
}

// CreateProductInput carries the raw form values for product creation.
// Numeric and enum fields arrive as strings and are validated here.
type CreateProductInput struct {
	Name         string
	Description  string
	Price        string
	Category     string
	Gender       string
	IsHot        bool
	SizeClothes  string
	SizeShoesMin string
	SizeShoesMax string
	ImageURL     string
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil when
// no message broker is wired.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateProduct validates the raw input and persists a new product.
// Validation fails fast: the first failing step returns a *ValidationError
// and nothing is written. The checks run in a fixed order so the user always
// sees the earliest problem first.
func (s *ProductService) CreateProduct(input CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)
	priceRaw := strings.TrimSpace(input.Price)

	if name == "" || description == "" || priceRaw == "" {
		return nil, &ValidationError{Field: "name", Message: "name, description and price are required"}
	}

	// ParseFloat accepts "NaN" and "Inf" without error; neither is a price.
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return nil, &ValidationError{Field: "price", Message: "price must be a non-negative number"}
	}

	category, ok := models.ParseCategory(input.Category)
	if !ok {
		return nil, &ValidationError{Field: "category", Message: "unknown category"}
	}

	gender, ok := models.ParseGender(input.Gender)
	if !ok {
		return nil, &ValidationError{Field: "gender", Message: "unknown gender"}
	}

	// Size policy: shoes carry a "min-max" range, everything else a clothing
	// size. The other field is forced to null either way.
	var sizeClothes, sizeShoes *string
	if category == models.CategoryShoes {
		min := strings.TrimSpace(input.SizeShoesMin)
		max := strings.TrimSpace(input.SizeShoesMax)
		if min == "" || max == "" {
			return nil, &ValidationError{Field: "size_shoes", Message: "shoe products require both a minimum and a maximum size"}
		}
		sizeRange := min + "-" + max
		sizeShoes = &sizeRange
	} else {
		size := strings.TrimSpace(input.SizeClothes)
		if size == "" {
			return nil, &ValidationError{Field: "size_clothes", Message: "a clothing size is required for this category"}
		}
		sizeClothes = &size
	}

	if input.ImageURL == "" {
		return nil, &ValidationError{Field: "image_file", Message: "a product image is required"}
	}

	product := &models.Product{
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    input.ImageURL,
		IsHot:       input.IsHot,
		Category:    category,
		Gender:      gender,
		SizeClothes: sizeClothes,
		SizeShoes:   sizeShoes,
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	// The event is advisory; a broker failure must not fail the request.
	if s.publisher != nil {
		event := map[string]interface{}{
			"product_id": product.ID,
			"name":       product.Name,
			"category":   string(product.Category),
			"gender":     string(product.Gender),
			"price":      product.Price,
			"is_hot":     product.IsHot,
		}
		if err := s.publisher.PublishProductCreated(event); err != nil {
			log.Printf("Failed to publish product created event for %s: %v", product.ID, err)
		}
	}

	return product, nil
}

// ListByGenderAndCategory retrieves products for a gender, newest first,
// optionally narrowed to a single category.
func (s *ProductService) ListByGenderAndCategory(gender models.Gender, category *models.Category) ([]models.Product, error) {
	return s.repo.ListByGender(gender, category)
}

// ListHot retrieves products flagged for homepage featuring, newest first,
// capped at limit.
func (s *ProductService) ListHot(limit int) ([]models.Product, error) {
	return s.repo.ListHot(limit)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}
