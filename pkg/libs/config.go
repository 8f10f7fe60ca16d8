package libs

import (
	"log"
	"time"

	"github.com/oarkflow/squealx"
	"github.com/oarkflow/squealx/drivers/sqlite"

	"github.com/umtportal/lostfound/pkg/objects"
)

type Config struct {
	DB                 *squealx.DB
	APIBaseURL         string
	APITimeout         time.Duration
	SessionName        string
	RateLimitRequests  int
	RateLimitWindow    time.Duration
	EnableAuditLogging bool
}

func LoadConfig() *Config {
	apiBaseURL := objects.Config.GetString("portal.api_base_url", "http://localhost:8000/api")
	apiTimeout := objects.Config.GetDuration("portal.api_timeout", "15s")
	sessionName := objects.Config.GetString("portal.session_name", "access_token")
	rateLimitRequests := objects.Config.GetInt("portal.rate_limit_requests", 30)
	rateLimitWindow := objects.Config.GetDuration("portal.rate_limit_window", "1m")
	enableAuditLogging := objects.Config.GetBool("portal.enable_audit_logging", true)

	databaseURL := objects.Config.GetString("portal.database_url", "portal.db")
	db, err := sqlite.Open(databaseURL, "sqlite")
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	return &Config{
		DB:                 db,
		APIBaseURL:         apiBaseURL,
		APITimeout:         apiTimeout,
		SessionName:        sessionName,
		RateLimitRequests:  rateLimitRequests,
		RateLimitWindow:    rateLimitWindow,
		EnableAuditLogging: enableAuditLogging,
	}
}
