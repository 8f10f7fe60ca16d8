package utils

import (
	"fmt"
	"log"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oarkflow/xid/wuid"

	"github.com/umtportal/lostfound/pkg/contracts"
	"github.com/umtportal/lostfound/pkg/models"
)

const (
	AuditActionRegisterAttempt = "register_attempt"
	AuditActionRegisterSuccess = "register_success"
	AuditActionRegisterFailed  = "register_failed"
	AuditActionLoginForwarded  = "login_forwarded"
	AuditActionRateLimited     = "rate_limited"
)

func IsEmail(value string) bool {
	re := regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	return re.MatchString(value)
}

func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if len(email) == 0 {
		return fmt.Errorf("email cannot be empty")
	}
	if len(email) > 254 {
		return fmt.Errorf("email too long")
	}
	re := regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	if !re.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

func SanitizeInput(input string) string {
	// Remove potentially dangerous characters and normalize
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "<", "&lt;")
	input = strings.ReplaceAll(input, ">", "&gt;")
	input = strings.ReplaceAll(input, "\"", "&quot;")
	input = strings.ReplaceAll(input, "'", "&#39;")
	return input
}

func GetClientIP(c *fiber.Ctx) string {
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := c.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	host, _, err := net.SplitHostPort(c.Context().RemoteAddr().String())
	if err != nil {
		return c.IP()
	}
	return host
}

func StringPtr(s string) *string {
	return &s
}

// LogAuditEvent records the event in the audit store when one is
// configured; storage failures only log, they never fail the request.
func LogAuditEvent(c *fiber.Ctx, store contracts.AuditStore, action, email string, success bool, detail *string) {
	if store == nil {
		return
	}
	event := models.AuditEvent{
		EventID:   wuid.New().String(),
		Action:    action,
		Email:     email,
		ClientIP:  GetClientIP(c),
		Success:   success,
		CreatedAt: time.Now(),
	}
	if detail != nil {
		event.Detail = *detail
	}
	if err := store.RecordEvent(event); err != nil {
		log.Printf("audit event not recorded: %v", err)
	}
}
