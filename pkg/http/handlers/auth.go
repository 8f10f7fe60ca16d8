package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/umtportal/lostfound/pkg/authapi"
	"github.com/umtportal/lostfound/pkg/http/requests"
	"github.com/umtportal/lostfound/pkg/http/responses"
	"github.com/umtportal/lostfound/pkg/models"
	"github.com/umtportal/lostfound/pkg/objects"
	"github.com/umtportal/lostfound/pkg/utils"
)

const genericLoginMessage = "Login failed. Please check your credentials and try again."

func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

func LandingPage(c *fiber.Ctx) error {
	return responses.Render(c, utils.LandingTemplate, fiber.Map{
		"Title": "UMT Lost & Found Portal",
	})
}

// RegisterPage starts a fresh draft on the profile step. A new GET is the
// only thing that resets a draft.
func RegisterPage(c *fiber.Ctx) error {
	draft := models.RegistrationDraft{Step: models.StepProfile}
	return renderRegisterStep(c, draft, "")
}

// PostRegister is the single submit action, overloaded by the draft's
// current step: the profile step advances locally, the credentials step
// performs the one network call.
func PostRegister(c *fiber.Ctx) error {
	var req requests.RegisterStepRequest
	if err := c.BodyParser(&req); err != nil {
		return renderErrorPage(c, http.StatusBadRequest, "Invalid Form Data",
			"The form data you submitted could not be processed.",
			"Please check that all required fields are filled correctly and try again.",
			fmt.Sprintf("ParseForm error: %v", err), utils.RegisterURI)
	}
	draft := req.ToDraft()

	switch req.Action {
	case "back":
		draft.Back()
		return renderRegisterStep(c, draft, "")
	case "toggle-password":
		draft.ShowPassword = !draft.ShowPassword
		return renderRegisterStep(c, draft, "")
	case "toggle-confirm":
		draft.ShowConfirm = !draft.ShowConfirm
		return renderRegisterStep(c, draft, "")
	}

	if draft.Step == models.StepProfile {
		// No network call on this step; an incomplete draft just re-renders
		// with the action disabled.
		draft.Advance()
		return renderRegisterStep(c, draft, "")
	}

	return submitRegistration(c, draft)
}

func submitRegistration(c *fiber.Ctx, draft models.RegistrationDraft) error {
	if !draft.Step2Valid() {
		return renderRegisterStep(c, draft, "")
	}

	clientIP := utils.GetClientIP(c)
	submitID := fmt.Sprintf("%s:%s", clientIP, strings.ToLower(draft.Email))
	if !objects.Security.BeginSubmit(submitID) {
		return renderRegisterStep(c, draft, "A registration attempt is already in progress. Please wait.")
	}
	// Released on every outcome so the form always comes back interactive.
	defer objects.Security.EndSubmit(submitID)

	utils.LogAuditEvent(c, objects.Audit, utils.AuditActionRegisterAttempt, draft.Email, true, nil)

	payload := models.RegisterPayload{
		Email:    draft.Email,
		Password: draft.Password,
		FullName: draft.FullName(),
		IsAdmin:  draft.IsAdmin,
	}
	result, err := objects.API.Register(c.Context(), payload)
	if err != nil {
		errMsg := authapi.ErrorMessage(err)
		utils.LogAuditEvent(c, objects.Audit, utils.AuditActionRegisterFailed, draft.Email, false, utils.StringPtr(errMsg))
		return renderRegisterStep(c, draft, errMsg)
	}

	utils.LogAuditEvent(c, objects.Audit, utils.AuditActionRegisterSuccess, draft.Email, true, utils.StringPtr(result.UserID))

	message := result.Message
	if message == "" {
		message = "Registration successful! Please log in with your credentials."
	}
	c = flash.WithData(c, fiber.Map{
		"message": message,
		"email":   draft.Email,
	})
	return c.Redirect(utils.LoginURI, fiber.StatusSeeOther)
}

// renderRegisterStep is the two-variant view selector: one template per
// step, chosen from the draft alone.
func renderRegisterStep(c *fiber.Ctx, draft models.RegistrationDraft, errMsg string) error {
	template := utils.RegisterProfileTemplate
	if draft.Step == models.StepCredentials {
		template = utils.RegisterCredentialsTemplate
	}
	return responses.Render(c, template, fiber.Map{
		"Title":      "Create Account",
		"Draft":      draft,
		"Step1Valid": draft.Step1Valid(),
		"Step2Valid": draft.Step2Valid(),
		"Error":      errMsg,
	})
}

// LoginPage shows the login form. After a successful registration the flash
// data carries the success message and the email to pre-fill.
func LoginPage(c *fiber.Ctx) error {
	data := flash.Get(c)
	message, _ := data["message"].(string)
	email, _ := data["email"].(string)
	return responses.Render(c, utils.LoginTemplate, fiber.Map{
		"Title":   "Login",
		"Message": message,
		"Email":   email,
	})
}

// PostLogin forwards credentials to the auth service and stores the bearer
// token it returns. Session semantics beyond that belong to the service.
func PostLogin(c *fiber.Ctx) error {
	var req requests.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return renderErrorPage(c, http.StatusBadRequest, "Invalid Form Data",
			"The login form data could not be processed.",
			"Please check your input and try again.",
			fmt.Sprintf("ParseForm error: %v", err), utils.LoginURI)
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return responses.Render(c, utils.LoginTemplate, fiber.Map{
			"Title": "Login",
			"Email": email,
			"Error": "Email and password are required.",
		})
	}

	result, err := objects.API.Login(c.Context(), models.LoginPayload{
		Email:    email,
		Password: req.Password,
	})
	if err != nil {
		return responses.Render(c, utils.LoginTemplate, fiber.Map{
			"Title": "Login",
			"Email": email,
			"Error": authapi.ErrorMessageOr(err, genericLoginMessage),
		})
	}

	utils.LogAuditEvent(c, objects.Audit, utils.AuditActionLoginForwarded, email, true, nil)

	sessionName := objects.Config.GetString("portal.session_name", utils.DefaultSessionName)
	c.Cookie(&fiber.Cookie{
		Name:     sessionName,
		Value:    result.AccessToken,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Strict",
	})
	return c.Redirect(utils.DashboardURI, fiber.StatusSeeOther)
}

func Logout(c *fiber.Ctx) error {
	sessionName := objects.Config.GetString("portal.session_name", utils.DefaultSessionName)
	c.Cookie(&fiber.Cookie{
		Name:     sessionName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Unix(0, 0),
	})
	return c.Redirect(utils.LoginURI, fiber.StatusSeeOther)
}

// DashboardPage renders the profile stashed by the session middleware.
func DashboardPage(c *fiber.Ctx) error {
	profile, _ := c.Locals("profile").(models.UserProfile)
	return responses.Render(c, utils.DashboardTemplate, fiber.Map{
		"Title":   "Dashboard",
		"Profile": profile,
	})
}

func renderErrorPage(c *fiber.Ctx, statusCode int, title, message, description, technical, retryURL string) error {
	errorID := fmt.Sprintf("ERR-%d-%d", time.Now().Unix(), statusCode)
	data := models.ErrorPageData{
		Title:       title,
		StatusCode:  statusCode,
		Message:     message,
		Description: description,
		Technical:   technical,
		RetryURL:    retryURL,
		ErrorID:     errorID,
	}
	return responses.Render(c, utils.ErrorTemplate, data)
}
