package main

import (
	"context"
	"expvar"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/jmoiron/sqlx"

	echoapi "github.com/trezcool/lmsadmin/apps/api/echo"
	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/course"
	"github.com/trezcool/lmsadmin/core/enrollment"
	"github.com/trezcool/lmsadmin/core/lms"
	"github.com/trezcool/lmsadmin/core/organization"
	"github.com/trezcool/lmsadmin/core/role"
	"github.com/trezcool/lmsadmin/core/user"
	logsvc "github.com/trezcool/lmsadmin/services/logger"
	"github.com/trezcool/lmsadmin/storage/database"
	sqlxrepos "github.com/trezcool/lmsadmin/storage/database/sqlx"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(logsvc.NewZerolog(conf, "api"), conf)
	logger.Enable(!conf.Debug)

	dbLogger := logsvc.NewRollbarLogger(logsvc.NewZerolog(conf, "db"), conf)
	dbLogger.Enable(!conf.Debug)

	accessLog := logsvc.NewZerolog(conf, "http")

	// set up DB
	db, err := setUpDB(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			dbLogger.Fatal("Failed to close", err)
		}
	}()

	// set up services
	orgRepo := sqlxrepos.NewOrganizationRepository(db)
	lmsRepo := sqlxrepos.NewLMSRepository(db)
	usrRepo := sqlxrepos.NewUserRepository(db)
	courseRepo := sqlxrepos.NewCourseRepository(db)

	orgSvc := organization.NewService(orgRepo)
	lmsSvc := lms.NewService(lmsRepo, orgRepo)
	usrSvc := user.NewService(usrRepo, orgRepo, conf.Password.HashCost)
	courseSvc := course.NewService(courseRepo, lmsRepo, usrRepo)
	roleSvc := role.NewService(sqlxrepos.NewRoleRepository(db), usrRepo, orgRepo, lmsRepo)
	enrollmentSvc := enrollment.NewService(sqlxrepos.NewEnrollmentRepository(db), usrRepo, courseRepo)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build), map[string]interface{}{"env": conf.Env})
	defer logger.Info("Application stopped")

	validate, translator := newValidator()

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server, err := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:            conf,
			Logger:          logger,
			AccessLog:       &accessLog,
			DB:              db,
			Validate:        validate,
			Translator:      translator,
			OrganizationSvc: orgSvc,
			LMSSvc:          lmsSvc,
			UserSvc:         usrSvc,
			CourseSvc:       courseSvc,
			RoleSvc:         roleSvc,
			EnrollmentSvc:   enrollmentSvc,
		},
	)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up server: %v", err), err)
	}

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Error(fmt.Sprintf("could not force stop server: %v", err), err)
				os.Exit(1)
			}
		}
	}
}

func setUpDB(conf *core.Config) (*sqlx.DB, error) {
	ctx := context.Background()

	if err := database.CreateIfNotExist(ctx, conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err = database.Migrate(ctx, db.DB); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
