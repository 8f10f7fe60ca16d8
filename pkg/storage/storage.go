package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/oarkflow/squealx"

	"github.com/umtportal/lostfound/pkg/models"
)

// DatabaseType represents the type of database
type DatabaseType string

const (
	MySQL      DatabaseType = "mysql"
	PostgreSQL DatabaseType = "postgres"
	SQLite     DatabaseType = "sqlite"
)

// AuditStorage persists registration audit events with database type
// awareness.
type AuditStorage struct {
	db     *squealx.DB
	dbType DatabaseType
}

func NewAuditStorage(db *squealx.DB) (*AuditStorage, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	storage := &AuditStorage{
		db:     db,
		dbType: DatabaseType(db.DriverName()),
	}
	if err := storage.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create database schema: %w", err)
	}
	return storage, nil
}

func (a *AuditStorage) createTables() error {
	var query string
	switch a.dbType {
	case MySQL:
		query = `CREATE TABLE IF NOT EXISTS audit_events (
			event_id VARCHAR(64) PRIMARY KEY,
			action VARCHAR(64) NOT NULL,
			email VARCHAR(255) NOT NULL DEFAULT '',
			client_ip VARCHAR(64) NOT NULL DEFAULT '',
			success TINYINT(1) NOT NULL DEFAULT 0,
			detail TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`
	case PostgreSQL:
		query = `CREATE TABLE IF NOT EXISTS audit_events (
			event_id VARCHAR(64) PRIMARY KEY,
			action VARCHAR(64) NOT NULL,
			email VARCHAR(255) NOT NULL DEFAULT '',
			client_ip VARCHAR(64) NOT NULL DEFAULT '',
			success BOOLEAN NOT NULL DEFAULT FALSE,
			detail TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`
	case SQLite:
		query = `CREATE TABLE IF NOT EXISTS audit_events (
			event_id TEXT PRIMARY KEY,
			action TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			client_ip TEXT NOT NULL DEFAULT '',
			success INTEGER NOT NULL DEFAULT 0,
			detail TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`
	default:
		return fmt.Errorf("unsupported database type: %s", a.dbType)
	}
	if _, err := a.db.Exec(query); err != nil {
		return fmt.Errorf("failed to execute schema query: %w", err)
	}
	return nil
}

func (a *AuditStorage) RecordEvent(event models.AuditEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	query := `INSERT INTO audit_events (event_id, action, email, client_ip, success, detail, created_at)
		VALUES (:event_id, :action, :email, :client_ip, :success, :detail, :created_at)`
	params := map[string]any{
		"event_id":   event.EventID,
		"action":     event.Action,
		"email":      event.Email,
		"client_ip":  event.ClientIP,
		"success":    a.convertBoolForDB(event.Success),
		"detail":     event.Detail,
		"created_at": event.CreatedAt,
	}
	_, err := a.db.NamedExec(query, params)
	return err
}

func (a *AuditStorage) RecentEvents(limit int) ([]models.AuditEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT event_id, action, email, client_ip, success, detail, created_at
		FROM audit_events ORDER BY created_at DESC LIMIT :limit`
	params := map[string]any{"limit": limit}

	var rows []struct {
		EventID   string    `db:"event_id"`
		Action    string    `db:"action"`
		Email     string    `db:"email"`
		ClientIP  string    `db:"client_ip"`
		Success   any       `db:"success"`
		Detail    string    `db:"detail"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := a.db.NamedSelect(&rows, query, params); err != nil {
		return nil, err
	}

	events := make([]models.AuditEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, models.AuditEvent{
			EventID:   row.EventID,
			Action:    row.Action,
			Email:     row.Email,
			ClientIP:  row.ClientIP,
			Success:   a.convertBoolFromDB(row.Success),
			Detail:    row.Detail,
			CreatedAt: row.CreatedAt,
		})
	}
	return events, nil
}

// convertBoolForDB converts boolean values to database-specific format
func (a *AuditStorage) convertBoolForDB(value bool) any {
	switch a.dbType {
	case PostgreSQL:
		return value
	default:
		if value {
			return 1
		}
		return 0
	}
}

// convertBoolFromDB converts database boolean values to Go boolean
func (a *AuditStorage) convertBoolFromDB(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case int32:
		return v != 0
	case int:
		return v != 0
	case string:
		return v == "1" || strings.ToLower(v) == "true"
	case []byte:
		str := string(v)
		return str == "1" || strings.ToLower(str) == "true"
	default:
		return false
	}
}
