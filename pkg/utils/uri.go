package utils

var (
	LandingURI   = "/"
	HealthURI    = "/health"
	RegisterURI  = "/register"
	LoginURI     = "/login"
	LogoutURI    = "/logout"
	DashboardURI = "/app"
)

var (
	LandingTemplate             = "portal/index"
	RegisterProfileTemplate     = "portal/register-profile"
	RegisterCredentialsTemplate = "portal/register-credentials"
	LoginTemplate               = "portal/login"
	DashboardTemplate           = "portal/dashboard"
	ErrorTemplate               = "portal/error"
)

func GetURIs() map[string]string {
	return map[string]string{
		"Landing":   LandingURI,
		"Health":    HealthURI,
		"Register":  RegisterURI,
		"Login":     LoginURI,
		"Logout":    LogoutURI,
		"Dashboard": DashboardURI,
	}
}

var DefaultSessionName = "access_token"
