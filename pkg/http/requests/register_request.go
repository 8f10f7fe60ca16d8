package requests

import (
	"strings"

	"github.com/umtportal/lostfound/pkg/models"
)

// RegisterStepRequest is the form posted by both register steps. Step and
// the profile fields ride along as hidden inputs on the credentials view so
// the draft survives the round trip.
type RegisterStepRequest struct {
	Step            int    `json:"step" form:"step"`
	Action          string `json:"action" form:"action"` // "", "back", "toggle-password", "toggle-confirm"
	FirstName       string `json:"firstName" form:"firstName"`
	LastName        string `json:"lastName" form:"lastName"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
	AgreeTerms      bool   `json:"agreeTerms" form:"agreeTerms"`
	AccountType     string `json:"accountType" form:"accountType"` // "student" or "admin"
	ShowPassword    bool   `json:"showPassword" form:"showPassword"`
	ShowConfirm     bool   `json:"showConfirm" form:"showConfirm"`
}

// ToDraft rebuilds the registration draft from the posted form.
func (r *RegisterStepRequest) ToDraft() models.RegistrationDraft {
	step := models.RegistrationStep(r.Step)
	if step != models.StepCredentials {
		step = models.StepProfile
	}
	return models.RegistrationDraft{
		FirstName:       strings.TrimSpace(r.FirstName),
		LastName:        strings.TrimSpace(r.LastName),
		Email:           strings.TrimSpace(r.Email),
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		AgreeTerms:      r.AgreeTerms,
		IsAdmin:         strings.EqualFold(r.AccountType, "admin"),
		Step:            step,
		ShowPassword:    r.ShowPassword,
		ShowConfirm:     r.ShowConfirm,
	}
}
