package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fulfillment/cmd"
	apihttp "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := postgres.Migrate(configs.DSN()); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	publisher, closePublisher := newPublisher(configs, logger)
	defer closePublisher()

	app, err := cmd.NewCompositionRoot(ctx, configs, gormDB, publisher, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// .env is optional; variables set in the environment win.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT", "8080"),
		DBHost:                 goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:                 goDotEnvVariable("DB_PORT", "5432"),
		DBUser:                 goDotEnvVariable("DB_USER", ""),
		DBPassword:             goDotEnvVariable("DB_PASSWORD", ""),
		DBName:                 goDotEnvVariable("DB_NAME", ""),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE", "disable"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		ExportDir:              goDotEnvVariable("EXPORT_DIR", "exports"),
		CleanupSchedule:        goDotEnvVariable("CLEANUP_SCHEDULE", ""),
		ChartsSchedule:         goDotEnvVariable("CHARTS_SCHEDULE", ""),
	}
	return config
}

func goDotEnvVariable(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// newPublisher connects to Kafka when a host is configured and drops events
// otherwise.
func newPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	if configs.KafkaHost == "" {
		logger.Warn("KAFKA_HOST is not set, order events are not published")
		return kafka.NopPublisher{}, func() {}
	}

	producer, err := kafka.NewSyncProducer(strings.Split(configs.KafkaHost, ","))
	if err != nil {
		log.Fatalf("Failed to connect to Kafka: %v", err)
	}
	publisher, err := kafka.NewPublisher(producer, configs.KafkaOrderChangedTopic, logger)
	if err != nil {
		log.Fatalf("Failed to create event publisher: %v", err)
	}

	return publisher, func() {
		if closeErr := publisher.Close(); closeErr != nil {
			logger.Error("Failed to close event publisher", "error", closeErr)
		}
	}
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := apihttp.NewRouter(app.CreateServer())
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Error("Failed to shut down web server", "error", shutdownErr)
		}
	}()

	logger.Info("Web server started", "port", port)
	if err = e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
