package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/Amarie1212/ppmnurulhakim/internal/api/http"
	"github.com/Amarie1212/ppmnurulhakim/internal/config"
	"github.com/Amarie1212/ppmnurulhakim/internal/jobs"
	"github.com/Amarie1212/ppmnurulhakim/internal/logger"
	"github.com/Amarie1212/ppmnurulhakim/internal/repository/postgres"
	"github.com/Amarie1212/ppmnurulhakim/internal/scheduler"
	"github.com/Amarie1212/ppmnurulhakim/internal/security"
	"github.com/Amarie1212/ppmnurulhakim/internal/service"
	"github.com/Amarie1212/ppmnurulhakim/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting admission portal backend...", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokens := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	blobs, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	logger.Info("Using local document storage", "upload_dir", cfg.Storage.UploadDir)

	emailSvc := service.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)

	authSvc := service.NewAuthService(store.AccountRepository, store.StaffRepository, store.SettingRepository, tokens, emailSvc)
	accountSvc := service.NewAccountService(store.AccountRepository, emailSvc)
	biodataSvc := service.NewBiodataService(store.BiodataRepository, store.AccountRepository, blobs, emailSvc)
	paymentSvc := service.NewPaymentService(store.PaymentRepository, store.BiodataRepository, blobs, emailSvc)
	reportSvc := service.NewReportService(store.ReportRepository, store.PaymentRepository)
	staffSvc := service.NewStaffService(store.StaffRepository)
	applicantSvc := service.NewApplicantService(store.AccountRepository, store.BiodataRepository, store.PaymentRepository, store.AdminRepository, blobs)
	settingSvc := service.NewSettingService(store.SettingRepository)

	router := httpapi.NewRouter(httpapi.RouterDeps{
		Tokens:        tokens,
		AuthSvc:       authSvc,
		AccountSvc:    accountSvc,
		BiodataSvc:    biodataSvc,
		PaymentSvc:    paymentSvc,
		ReportSvc:     reportSvc,
		StaffSvc:      staffSvc,
		ApplicantSvc:  applicantSvc,
		SettingSvc:    settingSvc,
		Store:         blobs,
		MaxFileSizeMB: cfg.Storage.MaxFileSizeMB,
	})

	jobRunner := jobs.NewJobRunner(store.StaffRepository, store.AdminRepository, blobs, emailSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
