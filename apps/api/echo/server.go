package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/assignment"
	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/user"
	appfs "github.com/trezcool/shule/fs"
)

type (
	ServerDeps struct {
		Conf       *core.Config
		Logger     core.Logger
		UserSvc    user.ServiceInterface
		ClassSvc   class.ServiceInterface
		AttSvc     attendance.ServiceInterface
		AsgSvc     assignment.ServiceInterface
		GradeSvc   grade.ServiceInterface
		Validate   *validator.Validate
		Translator ut.Translator
	}

	Server struct {
		deps       ServerDeps
		app        *echo.Echo
		errCh      chan error
		shutdownCh chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:       deps,
		app:        echo.New(),
		errCh:      make(chan error, 1),
		shutdownCh: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.CORS())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	api := s.app.Group("/api")

	registerAuthAPI(api, conf)
	registerUserAPI(api, s.deps.UserSvc, s.deps.Validate)
	registerClassAPI(api, conf, s.deps.ClassSvc, s.deps.Validate)
	registerAttendanceAPI(api, s.deps.AttSvc, s.deps.Validate)
	registerAssignmentAPI(api, s.deps.AsgSvc, s.deps.Validate)
	registerGradeAPI(api, s.deps.GradeSvc, s.deps.Validate)

	// static single-page client
	s.app.GET("/*", echo.WrapHandler(http.FileServer(http.FS(appfs.Web()))))
}

func (s *Server) Start() {
	s.errCh <- s.app.Start(s.deps.Conf.Server.Address())
}

// Errors reports a failed listener start.
func (s *Server) Errors() <-chan error {
	return s.errCh
}

// ShutdownSignal receives SIGINT/SIGTERM.
func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdownCh
}

func (s *Server) signalShutdown() {
	s.shutdownCh <- syscall.SIGTERM
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
