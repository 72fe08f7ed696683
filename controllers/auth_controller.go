package controller

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"quickfix/config"
	"quickfix/middleware"
	"quickfix/utils"
)

var (
	adminHashOnce sync.Once
	adminHash     []byte
)

// adminPasswordHash lazily hashes the configured admin password so login
// always compares through bcrypt, never against the plaintext directly.
func adminPasswordHash() []byte {
	adminHashOnce.Do(func() {
		adminHash, _ = bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), bcrypt.DefaultCost)
	})
	return adminHash
}

// Login authenticates the admin user and sets the session cookie used by the
// CRM dashboard.
func Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if req.Username == "" || req.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Username and password required", nil)
	}

	if req.Username != config.AppConfig.AdminUsername ||
		bcrypt.CompareHashAndPassword(adminPasswordHash(), []byte(req.Password)) != nil {
		utils.LogEvent("login_failed", map[string]interface{}{
			"username": req.Username,
			"ip":       c.IP(),
		})
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials", nil)
	}

	token, err := utils.GenerateSessionToken(req.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create session", err)
	}

	cookie := new(fiber.Cookie)
	cookie.Name = middleware.SessionCookie
	cookie.Value = token
	cookie.Expires = time.Now().Add(utils.SessionTTL)
	cookie.HTTPOnly = true
	cookie.Secure = config.AppConfig.Environment == "production"
	cookie.SameSite = "Lax"
	c.Cookie(cookie)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
	})
}

// Verify reports whether the caller holds a valid admin session. The
// dashboard polls this on load before rendering anything sensitive.
func Verify(c *fiber.Ctx) error {
	token := c.Cookies(middleware.SessionCookie)
	if token == "" {
		return c.JSON(fiber.Map{"authenticated": false})
	}

	claims, err := utils.ParseSessionToken(token)
	if err != nil {
		return c.JSON(fiber.Map{"authenticated": false})
	}

	return c.JSON(fiber.Map{
		"authenticated": true,
		"username":      claims.Username,
		"role":          claims.Role,
	})
}

// Logout clears the admin session cookie.
func Logout(c *fiber.Ctx) error {
	c.ClearCookie(middleware.SessionCookie)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out",
	})
}
