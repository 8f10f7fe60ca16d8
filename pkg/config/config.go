package config

import (
	"github.com/umtportal/lostfound/pkg/objects"
)

type Config struct{}

func (a *Config) Prefix() string {
	return "portal"
}

func (a *Config) Load() {
	objects.Config.Add("app.name", "Lost & Found Portal")
	objects.Config.Add("app.version", "1.0.0")
	objects.Config.Add("app.env", "development")
	objects.Config.Add("app.https", false)
	objects.Config.Add(a.Prefix(), map[string]any{
		"api_base_url": objects.Config.Env("PORTAL_API_BASE_URL", "http://localhost:8000/api"),
		"api_timeout":  objects.Config.Env("PORTAL_API_TIMEOUT", "15s"),

		"session_name": objects.Config.Env("PORTAL_SESSION_NAME", "access_token"),
		"database_url": objects.Config.Env("PORTAL_DATABASE_URL", "portal.db"),

		"rate_limit_requests": objects.Config.Env("PORTAL_RATE_LIMIT_REQUESTS", 30),
		"rate_limit_window":   objects.Config.Env("PORTAL_RATE_LIMIT_WINDOW", "1m"),

		"enable_audit_logging": objects.Config.Env("PORTAL_ENABLE_AUDIT_LOGGING", true),
	})
}
