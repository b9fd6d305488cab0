package main

import (
	"context"
	"fmt"
	"log"
	"os"

	webui "github.com/nvillanueva/registra/apps/web"
	"github.com/nvillanueva/registra/core"
	"github.com/nvillanueva/registra/core/course"
	"github.com/nvillanueva/registra/core/enrollment"
	"github.com/nvillanueva/registra/core/evaluation"
	"github.com/nvillanueva/registra/core/report"
	"github.com/nvillanueva/registra/core/student"
	"github.com/nvillanueva/registra/gateway/rest"
	logsvc "github.com/nvillanueva/registra/services/logger"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "WEB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up the records API gateway
	client, err := rest.NewClient(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up records API client: %v", err), err)
	}

	studentSvc := student.NewService(rest.NewStudentRepository(client))
	courseSvc := course.NewService(rest.NewCourseRepository(client))
	enrollmentSvc := enrollment.NewService(rest.NewEnrollmentRepository(client))
	evaluationSvc := evaluation.NewService(rest.NewEvaluationRepository(client))
	reportSvc := report.NewService(rest.NewReportRepository(client))

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	// =========================================================================
	// Start Web Service

	server := webui.NewServer(
		webui.ServerDeps{
			Conf:          conf,
			Logger:        logger,
			StudentSvc:    studentSvc,
			CourseSvc:     courseSvc,
			EnrollmentSvc: enrollmentSvc,
			EvaluationSvc: evaluationSvc,
			ReportSvc:     reportSvc,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
