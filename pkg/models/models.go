package models

import (
	"strings"
	"time"
)

// RegistrationStep identifies which of the two sub-forms is active.
type RegistrationStep int

const (
	StepProfile     RegistrationStep = 1
	StepCredentials RegistrationStep = 2
)

// RegistrationDraft is the in-progress, unsubmitted form state. It is
// created on GET /register and round-trips between steps through hidden
// form fields; a fresh GET discards it.
type RegistrationDraft struct {
	FirstName       string           `json:"firstName" form:"firstName"`
	LastName        string           `json:"lastName" form:"lastName"`
	Email           string           `json:"email" form:"email"`
	Password        string           `json:"password" form:"password"`
	ConfirmPassword string           `json:"confirmPassword" form:"confirmPassword"`
	AgreeTerms      bool             `json:"agreeTerms" form:"agreeTerms"`
	IsAdmin         bool             `json:"isAdmin" form:"isAdmin"`
	Step            RegistrationStep `json:"step" form:"step"`

	// Render-only toggles. They switch the input type between password and
	// text and never touch the stored values.
	ShowPassword bool `json:"showPassword" form:"showPassword"`
	ShowConfirm  bool `json:"showConfirm" form:"showConfirm"`
}

// Step1Valid reports whether the profile step may advance.
func (d *RegistrationDraft) Step1Valid() bool {
	return strings.TrimSpace(d.FirstName) != "" &&
		strings.TrimSpace(d.LastName) != "" &&
		strings.TrimSpace(d.Email) != ""
}

// Step2Valid reports whether the credentials step may submit.
func (d *RegistrationDraft) Step2Valid() bool {
	return d.Password != "" &&
		d.ConfirmPassword != "" &&
		d.Password == d.ConfirmPassword &&
		d.AgreeTerms
}

// Advance moves the draft to the credentials step. It refuses to move while
// the profile step is incomplete.
func (d *RegistrationDraft) Advance() bool {
	if d.Step != StepProfile || !d.Step1Valid() {
		return false
	}
	d.Step = StepCredentials
	return true
}

// Back returns the draft to the profile step, keeping every field value.
func (d *RegistrationDraft) Back() {
	d.Step = StepProfile
}

// FullName joins the name fields the way the auth API expects them.
func (d *RegistrationDraft) FullName() string {
	return strings.TrimSpace(d.FirstName) + " " + strings.TrimSpace(d.LastName)
}

// RegisterPayload is the wire shape of the registration call.
type RegisterPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	IsAdmin  bool   `json:"is_admin"`
}

// RegisterResult mirrors the auth service's success body. Only Message is
// used by the portal; the rest feeds the audit trail.
type RegisterResult struct {
	Success              bool   `json:"success"`
	Message              string `json:"message"`
	UserID               string `json:"user_id"`
	Email                string `json:"email"`
	IsAdmin              bool   `json:"is_admin"`
	RequiresConfirmation bool   `json:"requires_confirmation"`
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	AccessToken string      `json:"access_token"`
	User        UserProfile `json:"user"`
}

// UserProfile is the profile shape returned by /auth/me and /auth/login.
type UserProfile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	UserType      string `json:"user_type"`
	AccountStatus string `json:"account_status"`
	IsAdmin       bool   `json:"is_admin"`
}

type ErrorPageData struct {
	Title       string
	StatusCode  int
	Message     string
	Description string
	Technical   string
	RetryURL    string
	ErrorID     string
}

// AuditEvent records one registration-related action and its outcome.
type AuditEvent struct {
	EventID   string    `db:"event_id"`
	Action    string    `db:"action"`
	Email     string    `db:"email"`
	ClientIP  string    `db:"client_ip"`
	Success   bool      `db:"success"`
	Detail    string    `db:"detail"`
	CreatedAt time.Time `db:"created_at"`
}
