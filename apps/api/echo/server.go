package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/course"
	"github.com/trezcool/lmsadmin/core/enrollment"
	"github.com/trezcool/lmsadmin/core/lms"
	"github.com/trezcool/lmsadmin/core/organization"
	"github.com/trezcool/lmsadmin/core/role"
	"github.com/trezcool/lmsadmin/core/user"
)

type (
	ServerDeps struct {
		Conf       *core.Config
		Logger     core.Logger
		AccessLog  *zerolog.Logger // nil disables request logs
		DB         core.Pinger
		Validate   *validator.Validate
		Translator ut.Translator

		OrganizationSvc *organization.Service
		LMSSvc          *lms.Service
		UserSvc         *user.Service
		CourseSvc       *course.Service
		RoleSvc         *role.Service
		EnrollmentSvc   *enrollment.Service
	}

	Server struct {
		deps     ServerDeps
		app      *echo.Echo
		rpc      *rpcRouter
		errors   chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) (*Server, error) {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		rpc:      newRPCRouter(deps.Logger),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)

	if err := s.setup(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) setup() error {
	conf := s.deps.Conf

	s.app.HideBanner = true
	s.app.Server.ReadTimeout = conf.Server.ReadTimeout
	s.app.Server.WriteTimeout = conf.Server.WriteTimeout

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	if s.deps.AccessLog != nil {
		s.app.Use(requestLogMiddleware(*s.deps.AccessLog))
	}
	s.app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: conf.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.SignalShutdown)
	s.app.Debug = conf.Debug

	s.app.GET("/", home)
	s.app.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	rpcMiddleware := []echo.MiddlewareFunc{metricsMiddleware(s.rpc)}
	if conf.Server.RateLimit != "" {
		rate, err := limiter.NewRateFromFormatted(conf.Server.RateLimit)
		if err != nil {
			return errors.Wrapf(err, "parsing rate limit %q", conf.Server.RateLimit)
		}
		rpcMiddleware = append(rpcMiddleware, rateLimitMiddleware(limiter.New(memory.NewStore(), rate)))
	}

	registerHealthAPI(s.rpc, s.deps.DB, s.deps.Logger)
	registerOrganizationAPI(s.rpc, s.deps.OrganizationSvc, s.deps.LMSSvc, s.deps.Validate)
	registerUserAPI(s.rpc, s.deps.UserSvc, s.deps.RoleSvc, s.deps.Validate)
	registerCourseAPI(s.rpc, s.deps.CourseSvc, s.deps.Validate)
	registerEnrollmentAPI(s.rpc, s.deps.EnrollmentSvc, s.deps.Validate)

	s.rpc.mount(s.app.Group("/rpc", rpcMiddleware...))
	return nil
}

// Start blocks until the server stops; failures other than a clean shutdown are sent to Errors.
func (s *Server) Start() {
	s.deps.Logger.Info("API listening on " + s.deps.Conf.Server.Address())
	if err := s.app.Start(s.deps.Conf.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.errors <- err
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

// SignalShutdown asks the owner of the Server to shut it down gracefully.
func (s *Server) SignalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default:
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to LMS Admin API!")
}
