package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/accelor-hrms/hrms-backend-go/internal/config"
	appHTTP "github.com/accelor-hrms/hrms-backend-go/internal/handler/http"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/jwt"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/logger"
	"github.com/accelor-hrms/hrms-backend-go/internal/repository/postgresql"
	accessService "github.com/accelor-hrms/hrms-backend-go/internal/service/access"
	attendanceService "github.com/accelor-hrms/hrms-backend-go/internal/service/attendance"
	reportService "github.com/accelor-hrms/hrms-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.SlogLevel(), "hrms-backend", cfg.App.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	odRepo := postgresql.NewODRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	scopeResolver := accessService.NewScopeResolver(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, scopeResolver)
	fetcher := reportService.NewFetcher(
		attendanceRepo,
		leaveRepo,
		odRepo,
		employeeRepo,
		cfg.Report.ExpandLeaveRanges,
	)
	reportSvc := reportService.NewReportService(scopeResolver, fetcher, cfg.Report.ExpandLeaveRanges)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, reportSvc)

	router := appHTTP.NewRouter(cfg, log, JWTService, attendanceHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	slog.Info("Server stopped")
}
