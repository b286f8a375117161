package api

import (
	"net"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pjecz/hercules-api-key/internal/api/docs"
	"github.com/pjecz/hercules-api-key/internal/api/handler"
	"github.com/pjecz/hercules-api-key/internal/api/middleware"
	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
	"github.com/pjecz/hercules-api-key/internal/infrastructure/http/handlers"
	"github.com/pjecz/hercules-api-key/pkg/logger"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Auth      ports.AuthService
	Throttle  middleware.Throttle // optional
	Judicial  ports.JudicialService
	Site      ports.SiteService
	Directory ports.DirectoryService
	Access    ports.AccessRecorder

	Mongo *mongo.Database
	Redis *redis.Client // optional

	Origins  []string
	StateKey string

	// TrustedProxies are the reverse proxies allowed to report the client
	// address through X-Forwarded-For. Empty trusts only the socket peer.
	TrustedProxies []*net.IPNet

	Log      zerolog.Logger

	// Registry receives the HTTP metrics. Nil selects the default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.IPExtractor = ipExtractor(deps.TrustedProxies)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.Origins,
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{"*"},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "hercules",
		Registerer: registerer,
	}))

	// --- Public routes ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/", handler.NewRootHandler(deps.StateKey).Welcome)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/docs/*", echoSwagger.WrapHandler)

	// --- Authenticated routes ---
	authenticated := []echo.MiddlewareFunc{middleware.Auth(deps.Auth, deps.Throttle, deps.Log)}
	if deps.Access != nil {
		authenticated = append(authenticated, middleware.AccessLog(deps.Access))
	}

	judicial := handler.NewJudicialHandler(deps.Judicial)
	directory := handler.NewDirectoryHandler(deps.Directory)
	site := handler.NewSiteHandler(deps.Site)

	v5 := e.Group("/api/v5", authenticated...)
	v5.GET("/autoridades", judicial.ListAuthorities, middleware.CanView(domain.ModuleAutoridades))
	v5.GET("/autoridades/:clave", judicial.GetAuthority, middleware.CanView(domain.ModuleAutoridades))
	v5.GET("/distritos", judicial.ListDistricts, middleware.CanView(domain.ModuleDistritos))
	v5.GET("/distritos/:clave", judicial.GetDistrict, middleware.CanView(domain.ModuleDistritos))
	v5.GET("/edictos", judicial.ListNotices, middleware.CanView(domain.ModuleEdictos))
	v5.GET("/edictos/:id", judicial.GetNotice, middleware.CanView(domain.ModuleEdictos))
	v5.GET("/listas_de_acuerdos", judicial.ListAgreementLists, middleware.CanView(domain.ModuleListasDeAcuerdos))
	v5.GET("/listas_de_acuerdos/:id", judicial.GetAgreementList, middleware.CanView(domain.ModuleListasDeAcuerdos))
	v5.GET("/materias", judicial.ListMatters, middleware.CanView(domain.ModuleMaterias))
	v5.GET("/materias/:clave", judicial.GetMatter, middleware.CanView(domain.ModuleMaterias))
	v5.GET("/materias_tipos_juicios", judicial.ListTrialTypes, middleware.CanView(domain.ModuleMateriasTiposJuicios))
	v5.GET("/municipios", judicial.ListMunicipalities, middleware.CanView(domain.ModuleMunicipios))
	v5.GET("/municipios/:id", judicial.GetMunicipality, middleware.CanView(domain.ModuleMunicipios))
	v5.GET("/sentencias", judicial.ListRulings, middleware.CanView(domain.ModuleSentencias))
	v5.GET("/sentencias/:id", judicial.GetRuling, middleware.CanView(domain.ModuleSentencias))
	v5.GET("/modulos", directory.ListModules, middleware.CanView(domain.ModuleModulos))
	v5.GET("/roles", directory.ListRoles, middleware.CanView(domain.ModuleRoles))
	v5.GET("/permisos", directory.ListPermissions, middleware.CanView(domain.ModulePermisos))
	v5.GET("/usuarios", directory.ListUsers, middleware.CanView(domain.ModuleUsuarios))
	v5.GET("/usuarios/:email", directory.GetUser, middleware.CanView(domain.ModuleUsuarios))
	v5.GET("/usuarios_roles", directory.ListRoleAssignments, middleware.CanView(domain.ModuleUsuariosRoles))
	v5.GET("/mis_permisos", directory.MyPermissions)

	v4 := e.Group("/v4", authenticated...)
	v4.GET("/web_ramas", site.ListBranches, middleware.CanView(domain.ModuleWebRamas))
	v4.GET("/web_ramas/:clave", site.GetBranch, middleware.CanView(domain.ModuleWebRamas))
	v4.GET("/web_paginas", site.ListPages, middleware.CanView(domain.ModuleWebPaginas))
	v4.GET("/web_paginas/:clave", site.GetPage, middleware.CanView(domain.ModuleWebPaginas))

	return e
}

// ipExtractor decides where c.RealIP comes from. The failed-authentication
// throttle is keyed on it, so client headers are only honored when they were
// appended by a configured proxy.
func ipExtractor(proxies []*net.IPNet) echo.IPExtractor {
	if len(proxies) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, r := range proxies {
		opts = append(opts, echo.TrustIPRange(r))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	log = logger.Component(log, "http")
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
