package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/umtportal/lostfound/pkg/http/handlers"
	"github.com/umtportal/lostfound/pkg/http/middlewares"
	"github.com/umtportal/lostfound/pkg/utils"
)

func Setup(prefix string, router fiber.Router) {
	route := router.Group(prefix, middlewares.RateLimit)
	route.Get(utils.HealthURI, handlers.HealthCheck)
	route.Get(utils.LandingURI, handlers.LandingPage)
	route.Get(utils.RegisterURI, handlers.RegisterPage)
	route.Post(utils.RegisterURI, handlers.PostRegister)
	route.Get(utils.LoginURI, handlers.LoginPage)
	route.Post(utils.LoginURI, handlers.PostLogin)
	route.Post(utils.LogoutURI, handlers.Logout)
}

func ProtectedRoutes(route fiber.Router) {
	route.Get(utils.DashboardURI, handlers.DashboardPage)
}
