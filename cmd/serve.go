package cmd

import (
	"database/sql"
	"fmt"
	"net"

	"github.com/vibast-solutions/ms-go-user/app/controller"
	"github.com/vibast-solutions/ms-go-user/app/country"
	"github.com/vibast-solutions/ms-go-user/app/middleware"
	"github.com/vibast-solutions/ms-go-user/app/repository"
	"github.com/vibast-solutions/ms-go-user/app/service"
	"github.com/vibast-solutions/ms-go-user/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the HTTP (Echo) server for the user account service.`,
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	countries, err := country.NewValidator()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load country dataset")
	}

	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("Failed to ping database")
	}

	userRepo := repository.NewUserRepository(db)
	codec := service.NewTokenCodec(cfg)
	userService := service.NewUserService(userRepo, countries, codec, cfg)

	startHTTPServer(cfg, userService, codec, countries)
}

func configureLogging(cfg *config.Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logrus.SetLevel(level)

	switch cfg.LogFormat {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{})
	default:
		return fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	return nil
}

func startHTTPServer(cfg *config.Config, userService *service.UserService, codec *service.TokenCodec, countries *country.Validator) {
	e := echo.New()
	defer e.Close()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	userController := controller.NewUserController(userService)
	countryController := controller.NewCountryController(countries)
	authMiddleware := middleware.NewAuthMiddleware(codec)

	e.POST("/users", userController.Register)
	e.POST("/users/login", userController.Login)
	e.POST("/users/forgotPassword", userController.ForgotPassword)
	e.GET("/countries", countryController.GetAll)

	protected := e.Group("")
	protected.Use(authMiddleware.RequireAuth)
	protected.POST("/users/updatePassword", userController.UpdatePassword)
	protected.POST("/users/updateProfile", userController.UpdateProfile)
	protected.POST("/users/updateDevice", userController.UpdateDevice)
	protected.GET("/me", userController.Me)

	httpAddr := net.JoinHostPort("", cfg.HTTPPort)
	logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
	if err := e.Start(httpAddr); err != nil {
		logrus.WithError(err).Fatal("Failed to start HTTP server")
	}
}
