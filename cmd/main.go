package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/TauHsu/course-booking/config"
	"github.com/TauHsu/course-booking/database"
	"github.com/TauHsu/course-booking/internal/handlers"
	"github.com/TauHsu/course-booking/internal/logger"
	"github.com/TauHsu/course-booking/internal/router"
	"github.com/TauHsu/course-booking/internal/stores"
	"github.com/TauHsu/course-booking/internal/token"
	"github.com/TauHsu/course-booking/internal/user"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl := logger.New(cfg.Environment)
	defer zl.Sync()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectDB(ctx, cfg.DB, zl)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, sqlDB.Close())
	}()

	if err := database.ProcessMigrations(ctx, db, zl); err != nil {
		return err
	}

	userStore := &stores.GormUserStore{DB: db}
	coachStore := &stores.GormCoachStore{DB: db}
	skillStore := &stores.GormSkillStore{DB: db}
	courseStore := &stores.GormCourseStore{DB: db}
	packageStore := &stores.GormCreditPackageStore{DB: db}
	purchaseStore := &stores.GormCreditPurchaseStore{DB: db}
	bookingStore := &stores.GormBookingStore{DB: db}

	hasher := user.BcryptHasher{}
	tokenService := &token.JWTService{Secret: cfg.JWT.Secret}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.New(router.Handlers{
		Auth: handlers.NewAuthHandler(
			userStore,
			purchaseStore,
			bookingStore,
			hasher,
			tokenService,
			cfg.JWT.ExpiresIn,
			zl,
		),
		Coach:         handlers.NewCoachHandler(coachStore, zl),
		Course:        handlers.NewCourseHandler(courseStore, bookingStore, zl),
		Skill:         handlers.NewSkillHandler(skillStore, zl),
		CreditPackage: handlers.NewCreditPackageHandler(packageStore, purchaseStore, zl),
		Admin:         handlers.NewAdminHandler(coachStore, courseStore, skillStore, zl),
	}, tokenService, userStore, zl)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zl.Info("http server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-serveErr
}
