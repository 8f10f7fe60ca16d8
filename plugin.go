package lostfound

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/oarkflow/squealx"

	"github.com/umtportal/lostfound/pkg/authapi"
	"github.com/umtportal/lostfound/pkg/contracts"
	"github.com/umtportal/lostfound/pkg/http/middlewares"
	"github.com/umtportal/lostfound/pkg/http/routes"
	"github.com/umtportal/lostfound/pkg/libs"
	"github.com/umtportal/lostfound/pkg/objects"
	"github.com/umtportal/lostfound/pkg/storage"
	"github.com/umtportal/lostfound/pkg/utils"
)

//go:embed portal
var Assets embed.FS

type Plugin struct {
	App    *fiber.App
	Prefix string
	Assets embed.FS
	DB     *squealx.DB
	API    contracts.AuthService
}

type Option func(*Plugin)

func WithPrefix(prefix string) Option {
	return func(p *Plugin) { p.Prefix = prefix }
}

func WithApp(app *fiber.App) Option {
	return func(p *Plugin) { p.App = app }
}

func WithDB(db *squealx.DB) Option {
	return func(p *Plugin) { p.DB = db }
}

// WithAuthAPI overrides the default client for the remote auth service.
func WithAuthAPI(api contracts.AuthService) Option {
	return func(p *Plugin) { p.API = api }
}

func (p *Plugin) Register() {
	cfg := libs.LoadConfig()
	var db *squealx.DB
	if p.DB != nil {
		db = p.DB
	} else {
		db = cfg.DB
	}

	if cfg.EnableAuditLogging {
		audit, err := storage.NewAuditStorage(db)
		if err != nil {
			log.Fatalf("failed to initialize audit storage: %v", err)
		}
		objects.Audit = audit
	}

	objects.Security = libs.NewSecurityManager()
	if p.API != nil {
		objects.API = p.API
	} else {
		objects.API = authapi.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	}

	if p.App != nil {
		routes.Setup(p.Prefix, p.App)
		routes.ProtectedRoutes(p.App.Group(p.Prefix, middlewares.Verify))
	}
}

func (p *Plugin) Init() {
}

func (p *Plugin) Name() string {
	return "LostFoundPortal"
}

func (p *Plugin) Close() error {
	return nil
}

func NewPluginWithOptions(opts ...Option) *Plugin {
	engine := html.NewFileSystem(http.FS(Assets), ".html")
	engine.AddFuncMap(map[string]any{
		"unescape": func(s string) template.HTML {
			return template.HTML(s)
		},
		"uris": func() map[string]string {
			return utils.GetURIs()
		},
	})
	objects.ViewEngine = engine

	plugin := &Plugin{
		Prefix: "/",
		Assets: Assets,
	}
	for _, opt := range opts {
		opt(plugin)
	}
	return plugin
}
