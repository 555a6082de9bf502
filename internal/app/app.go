package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ratesmanager/internal/adapters/httpclient"
	"ratesmanager/internal/adapters/postgres"
	"ratesmanager/internal/adapters/queue"
	"ratesmanager/internal/api"
	"ratesmanager/internal/config"
	"ratesmanager/internal/platform/db"
	httpserver "ratesmanager/internal/platform/http"
	"ratesmanager/internal/rate"
	"ratesmanager/internal/rate/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts the HTTP server and the rate
// added listener.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Queue publisher and consumer
	brokers := appCfg.Queue.BrokerList()
	if len(brokers) == 0 {
		return fmt.Errorf("queue brokers are required")
	}
	publisher := queue.NewPublisher(brokers, appCfg.Queue.Topic)
	defer func() {
		if closeErr := publisher.Close(); closeErr != nil {
			logrus.Errorf("Publisher close error: %v", closeErr)
		}
	}()

	consumer := queue.NewConsumer(brokers, appCfg.Queue.Topic, appCfg.Queue.GroupID)
	listener := rate.NewListener(consumer, appCfg.Queue.ConsumerAck)
	listenerDone := make(chan struct{})
	go func() {
		defer close(listenerDone)
		listener.Run(ctx)
	}()
	// A broken queue connection degrades only the listener; requests keep
	// being served. Ensure the reader is closed and the loop drained before
	// the process exits.
	defer func() {
		if closeErr := consumer.Close(); closeErr != nil {
			logrus.Errorf("Consumer close error: %v", closeErr)
		}
		<-listenerDone
	}()

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External quote client
	if appCfg.QuoteAPI.APIKey == "" {
		return fmt.Errorf("quote api key is required")
	}
	quoteClient := httpclient.NewQuoteClient(
		baseHTTPClient,
		strings.TrimSuffix(appCfg.QuoteAPI.BaseURL, "/"),
		appCfg.QuoteAPI.APIKey,
	)

	// Repository, service, handlers
	rateRepo := postgres.NewRateRepository(pool)
	rateValidator := rate.NewValidator()
	rateService := rate.NewService(rateRepo, quoteClient, publisher, rateValidator)
	rateHandler := handler.NewRateHandler(rateValidator, rateService)
	router := api.NewRouter(rateHandler)

	logrus.Info("Starting http server")
	// Block until the context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
