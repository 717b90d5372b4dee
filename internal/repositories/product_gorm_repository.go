package repositories

import (
	"errors"
	"fmt"

	"butik/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create inserts a new product row.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// ListByGender retrieves products for a gender, newest first, optionally
// narrowed to a single category.
func (r *GORMProductRepository) ListByGender(gender models.Gender, category *models.Category) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Where("gender = ?", gender)
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products for gender %s: %w", gender, err)
	}
	return products, nil
}

// ListHot retrieves products flagged for homepage featuring, newest first,
// capped at limit.
func (r *GORMProductRepository) ListHot(limit int) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("is_hot = ?", true).Order("created_at DESC").Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list hot products: %w", err)
	}
	return products, nil
}
