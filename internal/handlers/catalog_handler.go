package handlers

import (
	"errors"
	"log"

	"butik/internal/models"
	"butik/internal/repositories"
	"butik/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// hotProductLimit caps the homepage featured listing.
const hotProductLimit = 12

// CatalogHandler handles the read-only storefront pages: homepage, gender
// listings and product detail.
type CatalogHandler struct {
	productService *services.ProductService
	store          *session.Store
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(productService *services.ProductService, store *session.Store) *CatalogHandler {
	return &CatalogHandler{
		productService: productService,
		store:          store,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleHome)
	router.Get("/men", h.listingHandler(models.GenderMen))
	router.Get("/women", h.listingHandler(models.GenderWomen))
	router.Get("/kids", h.listingHandler(models.GenderKids))
	router.Get("/products/:id", h.HandleProductDetail)
}

// HandleHome renders the homepage with up to 12 hot products.
func (h *CatalogHandler) HandleHome(c *fiber.Ctx) error {
	products, err := h.productService.ListHot(hotProductLimit)
	if err != nil {
		log.Printf("Error listing hot products: %v", err)
		return render(c, h.store, "index", fiber.Map{
			"Flash": &Flash{Category: "danger", Message: "Could not load featured products"},
		})
	}
	return render(c, h.store, "index", fiber.Map{
		"HotProducts": products,
	})
}

// listingHandler returns the handler for one gender's listing page. An
// unrecognized category query value degrades to an unfiltered listing.
func (h *CatalogHandler) listingHandler(gender models.Gender) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var category *models.Category
		if raw := c.Query("category"); raw != "" {
			if parsed, ok := models.ParseCategory(raw); ok {
				category = &parsed
			}
		}

		products, err := h.productService.ListByGenderAndCategory(gender, category)
		if err != nil {
			log.Printf("Error listing products for %s: %v", gender, err)
			return flashRedirect(c, h.store, "danger", "Could not load products", "/")
		}

		selected := ""
		if category != nil {
			selected = string(*category)
		}
		return render(c, h.store, "products", fiber.Map{
			"Products":    products,
			"Gender":      gender,
			"GenderLabel": models.GenderLabels[gender],
			"Category":    selected,
		})
	}
}

// HandleProductDetail renders one product's detail page. A missing product
// redirects to the homepage with a flash message.
func (h *CatalogHandler) HandleProductDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.productService.GetProductByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return flashRedirect(c, h.store, "danger", "Product not found", "/")
		}
		log.Printf("Error getting product %s: %v", id, err)
		return flashRedirect(c, h.store, "danger", "Could not load product", "/")
	}
	return render(c, h.store, "product", fiber.Map{
		"Product": product,
	})
}
