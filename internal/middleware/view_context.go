package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// ViewContext loads the cookie session and exposes the current user's display
// state to the rest of the request. Every rendered page reads these locals
// instead of reaching into the session itself.
func ViewContext(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			log.Printf("Failed to load session: %v", err)
			return c.Next()
		}

		if username, ok := sess.Get("username").(string); ok {
			c.Locals("username", username)
		}
		if isAdmin, ok := sess.Get("is_admin").(bool); ok {
			c.Locals("is_admin", isAdmin)
		}

		return c.Next()
	}
}
