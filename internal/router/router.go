package router

import (
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"tasktracker/internal/config"
	"tasktracker/internal/handler"
	"tasktracker/internal/middleware"
	"tasktracker/internal/model"
	"tasktracker/internal/validation"
)

// Deps groups what the routes need beyond configuration.
type Deps struct {
	Logger      *zap.Logger
	Verifier    middleware.TokenVerifier
	Revocations middleware.RevocationChecker
	Limiter     *middleware.RateLimiter
	Validator   *validation.Validator

	UserHandler *handler.UserHandler
	AuthHandler *handler.AuthHandler
	TaskHandler *handler.TaskHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, d Deps) {
	e.HTTPErrorHandler = handler.NewErrorHandler(d.Logger)
	e.Validator = d.Validator
	e.IPExtractor = ipExtractor(cfg.TrustedProxies)

	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.CORSAllowedOrigins,
		AllowHeaders:  []string{echo.HeaderContentType, middleware.TokenHeader},
		ExposeHeaders: []string{middleware.TokenHeader},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	limited := d.Limiter.Middleware()

	// Public routes
	api.POST("/users", d.UserHandler.Register, limited, middleware.ValidateBody[model.RegisterInput]())
	api.POST("/login", d.AuthHandler.Login, limited, middleware.ValidateBody[model.LoginInput]())

	// Secured routes (require a token in x-auth-token)
	secured := api.Group("", middleware.Auth(d.Verifier, d.Revocations))

	secured.GET("/users/me", d.UserHandler.Me)
	secured.POST("/logout", d.AuthHandler.Logout)

	validTask := middleware.ValidateBody[model.TaskInput]()
	secured.GET("/tasks", d.TaskHandler.List)
	secured.GET("/tasks/:id", d.TaskHandler.Get)
	secured.POST("/tasks", d.TaskHandler.Create, validTask)
	secured.PUT("/tasks/:id", d.TaskHandler.Update, validTask)
	secured.DELETE("/tasks/:id", d.TaskHandler.Delete)
}

// ipExtractor uses the socket address unless trusted proxies are configured,
// in which case X-Forwarded-For is honoured only when the hops are in those
// ranges.
func ipExtractor(trusted []string) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trusted {
		if _, ipNet, err := net.ParseCIDR(cidr); err == nil {
			opts = append(opts, echo.TrustIPRange(ipNet))
		}
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}
