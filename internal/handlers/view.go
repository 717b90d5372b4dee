package handlers

import (
	"log"

	"butik/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Flash is a one-shot message shown on the next rendered page.
// Category follows the usual alert levels: "success", "danger", "info".
type Flash struct {
	Category string
	Message  string
}

func setFlash(sess *session.Session, category, message string) {
	sess.Set("flash_category", category)
	sess.Set("flash_message", message)
}

func popFlash(sess *session.Session) *Flash {
	message, ok := sess.Get("flash_message").(string)
	if !ok {
		return nil
	}
	category, _ := sess.Get("flash_category").(string)
	sess.Delete("flash_message")
	sess.Delete("flash_category")
	return &Flash{Category: category, Message: message}
}

// flashRedirect stores a flash message in the session and redirects.
func flashRedirect(c *fiber.Ctx, store *session.Store, category, message, location string) error {
	sess, err := store.Get(c)
	if err != nil {
		log.Printf("Failed to load session for flash: %v", err)
	} else {
		setFlash(sess, category, message)
		if err := sess.Save(); err != nil {
			log.Printf("Failed to save session for flash: %v", err)
		}
	}
	return c.Redirect(location, fiber.StatusSeeOther)
}

// render merges the page data with the context every view receives: the
// current user's display state, any pending flash message and the enum
// display labels.
func render(c *fiber.Ctx, store *session.Store, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if username, ok := c.Locals("username").(string); ok {
		data["Username"] = username
	}
	if isAdmin, ok := c.Locals("is_admin").(bool); ok {
		data["IsAdmin"] = isAdmin
	}
	data["CategoryLabels"] = models.CategoryLabels
	data["GenderLabels"] = models.GenderLabels

	// A flash passed by the handler wins; a pending session flash is then
	// left in place for the next render instead of being consumed.
	if _, ok := data["Flash"]; !ok {
		sess, err := store.Get(c)
		if err != nil {
			log.Printf("Failed to load session for render: %v", err)
		} else if flash := popFlash(sess); flash != nil {
			data["Flash"] = flash
			if err := sess.Save(); err != nil {
				log.Printf("Failed to save session after flash pop: %v", err)
			}
		}
	}

	return c.Render(name, data)
}
