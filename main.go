package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rtharindu/echannaling-admin/config"
	"github.com/rtharindu/echannaling-admin/controllers"
	"github.com/rtharindu/echannaling-admin/cron"
	"github.com/rtharindu/echannaling-admin/db"
	"github.com/rtharindu/echannaling-admin/events"
	"github.com/rtharindu/echannaling-admin/models"
	"github.com/rtharindu/echannaling-admin/redis"
	"github.com/rtharindu/echannaling-admin/routes"
	"github.com/rtharindu/echannaling-admin/services"
	"github.com/rtharindu/echannaling-admin/utils"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "echannelling-admin",
		Short:         "eChannelling admin API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(serveCmd(), migrateCmd(), seedAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			client, err := db.Connect(cfg, logger)
			if err != nil {
				return err
			}
			defer client.Close()

			if err := db.Migrate(client.DB); err != nil {
				return err
			}
			logger.Info().Msg("migrations applied")
			return nil
		},
	}
}

func seedAdminCmd() *cobra.Command {
	var email, password, name string
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create an ADMIN user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			client, err := db.Connect(cfg, logger)
			if err != nil {
				return err
			}
			defer client.Close()
			publisher := newPublisher(cfg, logger)
			defer publisher.Close()

			in := models.CreateUserInput{Email: email, Password: password, Role: models.RoleAdmin}
			if name != "" {
				in.Name = &name
			}
			user, err := services.NewUserService(client.DB, logger).WithPublisher(publisher).Create(context.Background(), in)
			if errors.Is(err, services.ErrDuplicate) {
				return fmt.Errorf("a user with email %s already exists", email)
			}
			if err != nil {
				return err
			}
			logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("admin user created")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func bootstrap() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, config.NewLogger(cfg.Env), nil
}

// newPublisher returns a Redis publisher when REDIS_ADDR is set and reachable,
// otherwise one that drops events.
func newPublisher(cfg *config.Config, logger zerolog.Logger) events.Publisher {
	if cfg.RedisAddr == "" {
		return events.NopPublisher{}
	}
	rdb, err := redis.NewClient(context.Background(), cfg.RedisAddr)
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, events will be dropped")
		return events.NopPublisher{}
	}
	logger.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis")
	return events.NewRedisPublisher(rdb, logger)
}

func runServer() error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}

	client, err := db.Connect(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close database")
		}
	}()

	publisher := newPublisher(cfg, logger)
	defer publisher.Close()

	var mailer controllers.WelcomeMailer
	if cfg.MailEnabled() {
		mailer = utils.NewMailer(cfg)
	}
	var uploader controllers.ImageUploader
	if cfg.UploadsEnabled() {
		u, err := utils.NewCloudinaryUploader(cfg)
		if err != nil {
			logger.Warn().Err(err).Msg("image uploads disabled")
		} else {
			uploader = u
		}
	}

	users := services.NewUserService(client.DB, logger).WithPublisher(publisher)
	agents := controllers.NewAgentController(services.NewAgentService(client.DB, logger), mailer, publisher, logger)
	app := routes.NewApp(logger, cfg.AllowedOrigins())
	routes.Setup(app, routes.Deps{
		JWTSecret:    cfg.JWTSecret,
		Users:        users,
		Log:          logger,
		Auth:         controllers.NewAuthController(users, cfg.JWTSecret, cfg.JWTTTL, logger),
		Health:       controllers.NewHealthController(client),
		Agents:       agents,
		Doctors:      controllers.NewDoctorController(services.NewDoctorService(client.DB, logger), uploader, publisher, logger),
		Hospitals:    controllers.NewHospitalController(services.NewHospitalService(client.DB, logger), uploader, publisher, logger),
		Customers:    controllers.NewCustomerController(publisher, logger),
		Appointments: controllers.NewAppointmentController(publisher, logger),
	})

	scheduler := cron.NewScheduler(logger)
	if err := scheduler.AddDBHealthCheck(cfg.DBHealthSchedule, client); err != nil {
		return err
	}
	scheduler.Start()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		serverErr <- app.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server stopped: %w", err)
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}
	scheduler.Stop(ctx)
	agents.WaitForMail(ctx)
	logger.Info().Msg("server stopped")
	return nil
}
