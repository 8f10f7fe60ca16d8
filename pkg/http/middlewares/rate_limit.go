package middlewares

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/umtportal/lostfound/pkg/objects"
	"github.com/umtportal/lostfound/pkg/utils"
)

// RateLimit middleware for protecting endpoints from excessive requests
func RateLimit(c *fiber.Ctx) error {
	return RateLimitWithMax(30)(c)
}

// RateLimitWithMax creates a rate limiting middleware with custom max requests per minute
func RateLimitWithMax(maxRequests int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientIP := utils.GetClientIP(c)
		endpointID := fmt.Sprintf("%s:%s", clientIP, c.Path())

		if objects.Security.IsRateLimited(endpointID, maxRequests) {
			utils.LogAuditEvent(c, objects.Audit, utils.AuditActionRateLimited, "", false,
				utils.StringPtr(fmt.Sprintf("Rate limit exceeded for endpoint %s", c.Path())))
			if c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) == fiber.MIMEApplicationJSON {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error":       "Too many requests",
					"message":     "Please wait before making another request",
					"retry_after": "60",
				})
			}
			return c.Redirect(c.Path() + "?error=" + url.QueryEscape("Too many requests. Please wait before trying again."))
		}

		objects.Security.RecordRequest(endpointID)
		return c.Next()
	}
}
