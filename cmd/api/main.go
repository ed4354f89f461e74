package main

import (
	"context"
	"emrappt/cmd/internal/config"
	"emrappt/cmd/internal/domain/entity"
	"emrappt/cmd/internal/domain/memory"
	"emrappt/cmd/internal/domain/sqlite"
	"emrappt/cmd/internal/domain/sqlite/repository"
	"emrappt/cmd/internal/routes"
	"emrappt/cmd/internal/service"
	"emrappt/cmd/internal/utils/validators"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "emr-api",
		Short: "EMR appointment scheduling API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(appointmentsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runServer(cfg)
		},
	}
}

func appointmentsCmd() *cobra.Command {
	var filter service.AppointmentFilter
	var period string

	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "Print the appointments matching the given filters as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log.SetLevel(cfg.Level())

			apptService, err := buildService(cfg)
			if err != nil {
				return err
			}

			filter.Period = service.Period(period)
			appts, apierr := apptService.GetAppointments(&filter)
			if apierr != nil {
				return apierr
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(appts)
		},
	}

	cmd.Flags().StringVar(&filter.Date, "date", "", "only appointments on this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filter.Status, "status", "", "only appointments with this status")
	cmd.Flags().StringVar(&filter.DoctorName, "doctor", "", "only appointments with this doctor")
	cmd.Flags().StringVar(&period, "period", "", "today, upcoming, past or all")
	return cmd
}

func runServer(cfg *config.Config) error {
	log.SetLevel(cfg.Level())

	e, err := newServer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("starting on :%s (store: %s)", cfg.Port, cfg.StoreDriver)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newServer(cfg *config.Config) (*echo.Echo, error) {
	apptService, err := buildService(cfg)
	if err != nil {
		return nil, err
	}

	// Getting routes
	apptRoutes := routes.NewAppointmentDefault(apptService)
	dashRoutes := routes.NewDashboardDefault(apptService)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.Level())

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Infof("%s %s %d %s request_id=%s", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	// Appointments
	e.GET("/api/appointments", apptRoutes.GetAppointments)
	e.POST("/api/appointments", apptRoutes.CreateAppointment)
	e.PUT("/api/appointments/:id", apptRoutes.UpdateAppointment)
	e.DELETE("/api/appointments/:id", apptRoutes.DeleteAppointment)

	// Dashboard
	e.GET("/api/doctors", dashRoutes.GetDoctors)
	e.GET("/api/stats", dashRoutes.GetStats)
	e.GET("/api/health", routes.Health)

	return e, nil
}

func buildService(cfg *config.Config) (*service.DefaultAppointmentService, error) {
	validate := validator.New()
	validators.Register(validate)

	apptRepo, err := newAppointmentRepository(cfg)
	if err != nil {
		return nil, err
	}
	return service.NewAppointmentService(apptRepo, validate), nil
}

func newAppointmentRepository(cfg *config.Config) (service.AppointmentRepository, error) {
	var seed []*entity.Appointment
	if cfg.SeedFixtures {
		seed = entity.Fixtures()
	}

	if cfg.StoreDriver != config.StoreSQLite {
		return memory.NewAppointmentStore(seed), nil
	}

	db, err := sqlite.Init(cfg.SQLiteDSN, seed)
	if err != nil {
		return nil, fmt.Errorf("initialize sqlite: %w", err)
	}
	apptRepo, err := repository.NewAppointmentRepository(db)
	if err != nil {
		return nil, err
	}
	return apptRepo, nil
}
