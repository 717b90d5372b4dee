package repositories

import (
	"butik/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	ListByGender(gender models.Gender, category *models.Category) ([]models.Product, error)
	ListHot(limit int) ([]models.Product, error)
}
