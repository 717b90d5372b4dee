package services_test

import (
	"fmt"
	"testing"

	"butik/internal/models"
	"butik/internal/repositories"
	"butik/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) ListByGender(gender models.Gender, category *models.Category) ([]models.Product, error) {
	args := m.Called(gender, category)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) ListHot(limit int) ([]models.Product, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Product), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishProductCreated(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishUserRegistered(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

func validShirtInput() services.CreateProductInput {
	return services.CreateProductInput{
		Name:        "Tee",
		Description: "Cotton",
		Price:       "19.99",
		Category:    "shirt",
		Gender:      "men",
		SizeClothes: "M",
		ImageURL:    "/static/uploads/valid.png",
	}
}

func TestProductService_CreateProduct_ClothingSize(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	var created *models.Product
	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.Product)
	}).Return(nil).Once()

	product, err := service.CreateProduct(validShirtInput())
	assert.NoError(t, err)
	assert.NotNil(t, product)
	mockRepo.AssertExpectations(t)

	assert.Equal(t, "Tee", created.Name)
	assert.Equal(t, "Cotton", created.Description)
	assert.Equal(t, 19.99, created.Price)
	assert.Equal(t, models.CategoryShirt, created.Category)
	assert.Equal(t, models.GenderMen, created.Gender)
	assert.False(t, created.IsHot)
	if assert.NotNil(t, created.SizeClothes) {
		assert.Equal(t, "M", *created.SizeClothes)
	}
	assert.Nil(t, created.SizeShoes)
}

func TestProductService_CreateProduct_ShoeSizeRange(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	var created *models.Product
	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.Product)
	}).Return(nil).Once()

	input := validShirtInput()
	input.Category = "shoes"
	input.SizeClothes = "M" // Must be discarded for shoe products
	input.SizeShoesMin = "40"
	input.SizeShoesMax = "44"
	input.ImageURL = "/static/uploads/valid.jpg"

	_, err := service.CreateProduct(input)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	if assert.NotNil(t, created.SizeShoes) {
		assert.Equal(t, "40-44", *created.SizeShoes)
	}
	assert.Nil(t, created.SizeClothes)
}

func TestProductService_CreateProduct_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*services.CreateProductInput)
		field  string
	}{
		{"missing name", func(in *services.CreateProductInput) { in.Name = "  " }, "name"},
		{"missing description", func(in *services.CreateProductInput) { in.Description = "" }, "name"},
		{"missing price", func(in *services.CreateProductInput) { in.Price = "" }, "name"},
		{"unparseable price", func(in *services.CreateProductInput) { in.Price = "abc" }, "price"},
		{"negative price", func(in *services.CreateProductInput) { in.Price = "-5" }, "price"},
		{"NaN price", func(in *services.CreateProductInput) { in.Price = "NaN" }, "price"},
		{"lowercase nan price", func(in *services.CreateProductInput) { in.Price = "nan" }, "price"},
		{"positive infinite price", func(in *services.CreateProductInput) { in.Price = "+Inf" }, "price"},
		{"negative infinite price", func(in *services.CreateProductInput) { in.Price = "-Inf" }, "price"},
		{"unknown category", func(in *services.CreateProductInput) { in.Category = "jacket" }, "category"},
		{"unknown gender", func(in *services.CreateProductInput) { in.Gender = "unisex" }, "gender"},
		{"missing clothing size", func(in *services.CreateProductInput) { in.SizeClothes = " " }, "size_clothes"},
		{"shoes missing min", func(in *services.CreateProductInput) {
			in.Category = "shoes"
			in.SizeShoesMax = "44"
		}, "size_shoes"},
		{"shoes missing max", func(in *services.CreateProductInput) {
			in.Category = "shoes"
			in.SizeShoesMin = "40"
		}, "size_shoes"},
		{"missing image", func(in *services.CreateProductInput) { in.ImageURL = "" }, "image_file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := services.NewProductService(mockRepo, nil)

			input := validShirtInput()
			tt.mutate(&input)

			product, err := service.CreateProduct(input)
			assert.Nil(t, product)
			assert.Error(t, err)

			ve, ok := services.AsValidationError(err)
			if assert.True(t, ok, "expected a validation error, got %v", err) {
				assert.Equal(t, tt.field, ve.Field)
			}

			// Nothing may reach the persistence layer on a validation failure.
			mockRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestProductService_CreateProduct_RepositoryError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(fmt.Errorf("failed to create product")).Once()

	product, err := service.CreateProduct(validShirtInput())
	assert.Nil(t, product)
	assert.Error(t, err)
	_, ok := services.AsValidationError(err)
	assert.False(t, ok)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_PublishesEvent(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()
	mockPublisher.On("PublishProductCreated", mock.AnythingOfType("map[string]interface {}")).Return(nil).Once()

	_, err := service.CreateProduct(validShirtInput())
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_CreateProduct_PublishFailureDoesNotFail(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()
	mockPublisher.On("PublishProductCreated", mock.AnythingOfType("map[string]interface {}")).Return(fmt.Errorf("broker down")).Once()

	product, err := service.CreateProduct(validShirtInput())
	assert.NoError(t, err)
	assert.NotNil(t, product)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_ListByGenderAndCategory(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expected := []models.Product{
		{ID: "1", Name: "Sneaker", Category: models.CategoryShoes, Gender: models.GenderMen},
	}
	category := models.CategoryShoes
	mockRepo.On("ListByGender", models.GenderMen, &category).Return(expected, nil).Once()

	products, err := service.ListByGenderAndCategory(models.GenderMen, &category)
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListHot(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expected := []models.Product{{ID: "1", Name: "Hot Tee", IsHot: true}}
	mockRepo.On("ListHot", 12).Return(expected, nil).Once()

	products, err := service.ListHot(12)
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("GetByID", "missing").Return(nil, fmt.Errorf("product with ID missing: %w", repositories.ErrNotFound)).Once()

	product, err := service.GetProductByID("missing")
	assert.Nil(t, product)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
