package objects

import (
	"github.com/gofiber/fiber/v2"

	"github.com/umtportal/lostfound/pkg/contracts"
)

var (
	API        contracts.AuthService
	Security   contracts.SecurityManager
	Audit      contracts.AuditStore
	Config     contracts.Config
	ViewEngine fiber.Views
	Layout     string
)
