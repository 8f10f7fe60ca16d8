package middlewares

import (
	"net/url"
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/umtportal/lostfound/pkg/objects"
	"github.com/umtportal/lostfound/pkg/utils"
)

func SendError(c *fiber.Ctx, status int, message string) error {
	lastURI := c.OriginalURL()
	// Only store last visited URI if it's not a static asset
	if !isAssetURI(lastURI) {
		c = flash.WithData(c, fiber.Map{"last_visited_uri": lastURI})
	}
	contentType := c.Get("Content-Type")
	if contentType == fiber.MIMEApplicationJSON || contentType == fiber.MIMEApplicationJSONCharsetUTF8 {
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   message,
			"status":  status,
		})
	}
	return c.Status(status).Redirect(utils.LoginURI + "?error=" + url.QueryEscape(message))
}

// Helper to check if URI is an asset
func isAssetURI(uri string) bool {
	ext := strings.ToLower(path.Ext(uri))
	return ext != ""
}

// Verify gates protected pages on the access token issued by the auth
// service. The token is never decoded locally; /auth/me is the authority.
func Verify(c *fiber.Ctx) error {
	tokenStr := ""
	sessionName := objects.Config.GetString("portal.session_name")
	if sessionName == "" {
		sessionName = utils.DefaultSessionName
	}
	cookie := c.Cookies(sessionName)
	if cookie != "" {
		tokenStr = cookie
	} else {
		auth := c.Get("Authorization")
		if len(auth) > 7 && auth[:7] == "Bearer " {
			tokenStr = auth[7:]
		} else {
			tokenStr = auth
		}
	}
	if tokenStr == "" {
		return SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	profile, err := objects.API.Me(c.Context(), tokenStr)
	if err != nil {
		return SendError(c, fiber.StatusUnauthorized, "invalid session")
	}

	c.Locals("profile", profile)
	c.Locals("user_id", profile.ID)
	c.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Set("Pragma", "no-cache")
	c.Set("Expires", "0")
	return c.Next()
}
