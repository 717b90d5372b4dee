package handlers

import (
	"errors"
	"log"
	"strings"

	"butik/internal/repositories"
	"butik/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// AuthHandler handles the cookie-session web flow: login, register, logout.
type AuthHandler struct {
	authService *services.AuthService
	store       *session.Store
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, store *session.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
	}
}

// RegisterRoutes registers the web authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/login", h.HandleLoginPage)
	router.Post("/login", h.HandleLogin)
	router.Get("/register", h.HandleRegisterPage)
	router.Post("/register", h.HandleRegister)
	router.Get("/logout", h.HandleLogout)
}

// HandleLoginPage renders the login form.
func (h *AuthHandler) HandleLoginPage(c *fiber.Ctx) error {
	return render(c, h.store, "login", nil)
}

// HandleLogin authenticates the submitted credentials and establishes the
// session on success. Failures flash one generic message regardless of cause.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	user, err := h.authService.Authenticate(email, password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			log.Printf("Error during login for %s: %v", email, err)
		}
		return flashRedirect(c, h.store, "danger", "Invalid email or password", "/login")
	}

	sess, err := h.store.Get(c)
	if err != nil {
		log.Printf("Failed to load session on login: %v", err)
		return flashRedirect(c, h.store, "danger", "Could not log you in, please try again", "/login")
	}
	sess.Set("user_id", user.ID)
	sess.Set("username", user.Username)
	sess.Set("is_admin", user.IsAdmin)
	setFlash(sess, "success", "Logged in successfully")
	if err := sess.Save(); err != nil {
		log.Printf("Failed to save session on login: %v", err)
		return flashRedirect(c, h.store, "danger", "Could not log you in, please try again", "/login")
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleRegisterPage renders the registration form.
func (h *AuthHandler) HandleRegisterPage(c *fiber.Ctx) error {
	return render(c, h.store, "register", nil)
}

// HandleRegister creates a new account from the registration form.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.FormValue("username"))
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	passwordConfirm := c.FormValue("password_confirm")

	if username == "" || email == "" || password == "" {
		return flashRedirect(c, h.store, "danger", "Username, email and password are required", "/register")
	}
	if password != passwordConfirm {
		return flashRedirect(c, h.store, "danger", "Passwords do not match", "/register")
	}

	if _, err := h.authService.Register(username, email, password); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return flashRedirect(c, h.store, "danger", "Email address is already registered", "/register")
		}
		log.Printf("Error registering user %s: %v", email, err)
		return flashRedirect(c, h.store, "danger", "Could not create your account, please try again", "/register")
	}

	return flashRedirect(c, h.store, "success", "Registered successfully! Please log in", "/login")
}

// HandleLogout clears the session unconditionally.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		log.Printf("Failed to load session on logout: %v", err)
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	if err := sess.Destroy(); err != nil {
		log.Printf("Failed to destroy session on logout: %v", err)
	}
	return flashRedirect(c, h.store, "info", "You have been logged out", "/")
}
