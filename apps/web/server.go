package webui

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/nvillanueva/registra/core"
	"github.com/nvillanueva/registra/core/course"
	"github.com/nvillanueva/registra/core/enrollment"
	"github.com/nvillanueva/registra/core/evaluation"
	"github.com/nvillanueva/registra/core/report"
	"github.com/nvillanueva/registra/core/student"
)

const flashTTL = 5 * time.Second

type (
	ServerDeps struct {
		Conf          *core.Config
		Logger        core.Logger
		StudentSvc    *student.Service
		CourseSvc     *course.Service
		EnrollmentSvc *enrollment.Service
		EvaluationSvc *evaluation.Service
		ReportSvc     *report.Service
	}

	Server interface {
		http.Handler
		Start()
		Shutdown(context.Context) error
		Close() error
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
	}

	server struct {
		deps  ServerDeps
		app   *echo.Echo
		flash *FlashStore
		errCh chan error
		sigCh chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps ServerDeps) Server {
	s := &server{
		deps:  deps,
		app:   echo.New(),
		flash: NewFlashStore(flashTTL),
		errCh: make(chan error, 1),
		sigCh: make(chan os.Signal, 1),
	}
	signal.Notify(s.sigCh, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.IsTest()) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.Renderer = newRenderer()
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.signalShutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	registerStudentWeb(s.app, s.deps.StudentSvc, s.flash)
	registerCourseWeb(s.app, s.deps.CourseSvc, s.flash)
	registerEnrollmentWeb(s.app, s.deps.EnrollmentSvc, s.deps.StudentSvc, s.deps.CourseSvc, s.flash)
	registerEvaluationWeb(s.app, s.deps.EvaluationSvc, s.flash)
	registerReportWeb(s.app, s.deps.ReportSvc, s.deps.StudentSvc, s.flash)
}

func (s *server) Start() {
	s.errCh <- s.app.Start(s.deps.Conf.Server.Addr)
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) Errors() <-chan error {
	return s.errCh
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.sigCh
}

// signalShutdown triggers a graceful stop when an integrity error is caught.
func (s *server) signalShutdown() {
	s.sigCh <- syscall.SIGTERM
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.Redirect(http.StatusFound, "/alumnos")
}
