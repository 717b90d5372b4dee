package handlers

import (
	"log"

	"butik/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// ProductHandler handles the product-creation form and its multipart submit.
type ProductHandler struct {
	productService *services.ProductService
	uploadService  *services.UploadService
	store          *session.Store
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService, uploadService *services.UploadService, store *session.Store) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		uploadService:  uploadService,
		store:          store,
	}
}

// RegisterRoutes registers the product-creation routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/add-product", h.HandleAddProductPage)
	router.Post("/add-product", h.HandleAddProduct)
}

// HandleAddProductPage renders the product-creation form.
func (h *ProductHandler) HandleAddProductPage(c *fiber.Ctx) error {
	return render(c, h.store, "add_product", nil)
}

// HandleAddProduct stores the uploaded image and runs the creation pipeline.
// Every failure path flashes a specific message and redirects back to the
// form; nothing is persisted unless all validation passes.
func (h *ProductHandler) HandleAddProduct(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image_file")
	if err != nil {
		return flashRedirect(c, h.store, "danger", "Please upload a product image", "/add-product")
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file %s: %v", fileHeader.Filename, err)
		return flashRedirect(c, h.store, "danger", "Could not read the uploaded image", "/add-product")
	}
	defer file.Close()

	imageURL, err := h.uploadService.Store(file, fileHeader.Filename)
	if err != nil {
		if ve, ok := services.AsValidationError(err); ok {
			return flashRedirect(c, h.store, "danger", ve.Message, "/add-product")
		}
		log.Printf("Error storing uploaded file %s: %v", fileHeader.Filename, err)
		return flashRedirect(c, h.store, "danger", "Could not save the uploaded image", "/add-product")
	}

	input := services.CreateProductInput{
		Name:         c.FormValue("name"),
		Description:  c.FormValue("description"),
		Price:        c.FormValue("price"),
		Category:     c.FormValue("category"),
		Gender:       c.FormValue("gender"),
		IsHot:        c.FormValue("is_hot") != "",
		SizeClothes:  c.FormValue("size_clothes"),
		SizeShoesMin: c.FormValue("size_shoes_min"),
		SizeShoesMax: c.FormValue("size_shoes_max"),
		ImageURL:     imageURL,
	}

	if _, err := h.productService.CreateProduct(input); err != nil {
		if ve, ok := services.AsValidationError(err); ok {
			return flashRedirect(c, h.store, "danger", ve.Message, "/add-product")
		}
		log.Printf("Error creating product: %v", err)
		return flashRedirect(c, h.store, "danger", "Could not add the product, please try again", "/add-product")
	}

	return flashRedirect(c, h.store, "success", "Product added successfully!", "/add-product")
}
