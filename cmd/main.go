package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	"clinicrecords/internal/handlers"
	"clinicrecords/internal/logger"
	"clinicrecords/internal/middlewares"
	"clinicrecords/internal/models"
	"clinicrecords/internal/repositories"
	"clinicrecords/internal/services"
	"clinicrecords/internal/sessions"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		kafkaAddr, kafkaTopic,
		logLevel, sessionTTLMinutes,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		kafkaAddr, kafkaTopic,
		logLevel, sessionTTLMinutes,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Kafka, logging, and session configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	kafkaAddr, kafkaTopic string,
	logLevel string, sessionTTLMinutes int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "4500")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "clinic")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Kafka config; empty broker address disables audit event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_AUDIT_TOPIC", "clinic-audit")

	// Session config
	if sessionTTLMinutes, err = strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "60")); err != nil {
		return
	}

	return
}

// schema is applied at startup; every statement is idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	username VARCHAR(50) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(10) NOT NULL CHECK (role IN ('admin', 'staff')),
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS patients (
	patient_id BIGSERIAL PRIMARY KEY,
	name VARCHAR(50) NOT NULL,
	contact VARCHAR(50) NOT NULL
);

CREATE TABLE IF NOT EXISTS doctors (
	doctor_id BIGSERIAL PRIMARY KEY,
	name VARCHAR(50) NOT NULL,
	speciality VARCHAR(50) NOT NULL
);

CREATE TABLE IF NOT EXISTS appointments (
	appointment_id BIGSERIAL PRIMARY KEY,
	visit_date DATE NOT NULL,
	visit_time TIME NOT NULL,
	doctor_id BIGINT NOT NULL REFERENCES doctors (doctor_id),
	patient_id BIGINT NOT NULL REFERENCES patients (patient_id)
);

CREATE TABLE IF NOT EXISTS audit_log (
	record_id BIGSERIAL PRIMARY KEY,
	user_id UUID,
	action VARCHAR(10) NOT NULL,
	table_name VARCHAR(50) NOT NULL,
	subject_id BIGINT NOT NULL DEFAULT 0,
	detail TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`

// run initializes the logger, database, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	kafkaAddr, kafkaTopic string,
	logLevel string, sessionTTLMinutes int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("schema bootstrap failed: %w", err)
	}

	// Kafka writer for audit events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing audit events to Kafka at %s, topic %s", kafkaAddr, kafkaTopic)
	}

	// Session store
	store := sessions.New(time.Duration(sessionTTLMinutes) * time.Minute)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	patientReadRepo := repositories.NewPatientReadRepository(db)
	patientWriteRepo := repositories.NewPatientWriteRepository(db)
	doctorReadRepo := repositories.NewDoctorReadRepository(db)
	doctorWriteRepo := repositories.NewDoctorWriteRepository(db)
	apptReadRepo := repositories.NewAppointmentReadRepository(db)
	apptWriteRepo := repositories.NewAppointmentWriteRepository(db)
	auditReadRepo := repositories.NewAuditReadRepository(db)
	auditWriteRepo := repositories.NewAuditWriteRepository(db)

	// Initialize services
	auditService := services.NewAuditService(auditWriteRepo, auditReadRepo, kafkaWriter)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, store, auditService)
	patientService := services.NewPatientService(patientReadRepo, patientWriteRepo, auditService)
	doctorService := services.NewDoctorService(doctorReadRepo, doctorWriteRepo, auditService)
	apptService := services.NewAppointmentService(apptReadRepo, apptWriteRepo, auditService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/login", handlers.NewLoginPageHandler())
	r.Post("/login", handlers.NewLoginHandler(authService))
	r.Get("/signup", handlers.NewSignupPageHandler())
	r.Post("/signup", handlers.NewSignupHandler(authService))

	// Session-protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireSession(store))

		r.Get("/", handlers.NewHomeHandler())
		r.Get("/logout", handlers.NewLogoutHandler(authService))

		r.Get("/menu1", handlers.NewPatientListHandler(patientService))
		r.Post("/menu1/insert", handlers.NewPatientInsertHandler(patientService))
		r.Post("/menu1/update", handlers.NewPatientUpdateHandler(patientService))
		r.Post("/menu1/delete", handlers.NewPatientDeleteHandler(patientService))

		r.Get("/menu2", handlers.NewDoctorListHandler(doctorService))
		r.Post("/menu2/insert", handlers.NewDoctorInsertHandler(doctorService))
		r.Post("/menu2/update", handlers.NewDoctorUpdateHandler(doctorService))
		r.Post("/menu2/delete", handlers.NewDoctorDeleteHandler(doctorService))

		r.Get("/menu3", handlers.NewAppointmentListHandler(apptService))
		r.Post("/menu3/insert", handlers.NewAppointmentInsertHandler(apptService))
		r.Post("/menu3/update", handlers.NewAppointmentUpdateHandler(apptService))
		r.Post("/menu3/delete", handlers.NewAppointmentDeleteHandler(apptService))

		// Admin-only routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireRole(models.RoleAdmin))
			r.Get("/audit", handlers.NewAuditListHandler(auditService))
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
