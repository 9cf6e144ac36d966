package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"goldconv/internal/adapters/cache"
	"goldconv/internal/adapters/httpclient"
	"goldconv/internal/api"
	"goldconv/internal/config"
	"goldconv/internal/domain"
	httpserver "goldconv/internal/platform/http"
	"goldconv/internal/quote"
	"goldconv/internal/quote/handler"

	"github.com/sirupsen/logrus"
)

// Setup loads the configuration and configures the logger from it.
func Setup(cfgPath string) (*config.AppConfig, error) {
	appCfg, err := config.Init(cfgPath)
	if err != nil {
		return nil, err
	}
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	return appCfg, nil
}

// NewFetcher builds the quote fetcher with its gold price and forex clients.
func NewFetcher(appCfg *config.AppConfig) (*quote.Fetcher, error) {
	if appCfg.GoldAPI.AccessToken == "" {
		return nil, errors.New("gold api access token is required")
	}
	if appCfg.ForexAPI.APIKey == "" {
		return nil, errors.New("forex api key is required")
	}
	if appCfg.GoldAPI.BaseURL == "" || appCfg.ForexAPI.BaseURL == "" {
		return nil, errors.New("gold api and forex api base urls are required")
	}

	// Base HTTP client (configurable timeout)
	httpTimeout := appCfg.HTTPClientTimeout()
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	goldClient := httpclient.NewGoldAPIClient(
		baseHTTPClient,
		strings.TrimSuffix(appCfg.GoldAPI.BaseURL, "/"),
		appCfg.GoldAPI.AccessToken,
	)
	forexClient := httpclient.NewFastForexClient(
		baseHTTPClient,
		strings.TrimSuffix(appCfg.ForexAPI.BaseURL, "/"),
		appCfg.ForexAPI.APIKey,
	)
	return quote.NewFetcher(goldClient, forexClient, appCfg.Conversion.AZNRate, appCfg.FetchTimeout()), nil
}

// Run wires the application components, starts HTTP server and the stats reporter
func Run(cfgPath string) error {
	appCfg, err := Setup(cfgPath)
	if err != nil {
		return err
	}
	logrus.Info("✅ Config initialization successful")

	defaultCurrency := strings.ToUpper(appCfg.Conversion.DefaultCurrency)
	validator := quote.NewValidator(domain.SupportedCurrencies, domain.SupportedKarats)
	if err = validator.ValidateCurrency(defaultCurrency); err != nil {
		return fmt.Errorf("invalid default currency %q: %w", defaultCurrency, err)
	}

	fetcher, err := NewFetcher(appCfg)
	if err != nil {
		logrus.WithError(err).Error("Invalid upstream api configuration")
		return err
	}

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions, err := cache.NewSessionStore(appCfg.Sessions.MaxItems, appCfg.SessionTTL())
	if err != nil {
		logrus.WithError(err).Error("Failed to create session store")
		return err
	}
	defer sessions.Close()
	logrus.Info("✅ Session store ready")

	service := quote.NewService(ctx, fetcher, sessions, defaultCurrency)

	scheduler := quote.NewScheduler(sessions, appCfg.SessionReportInterval())
	// Ensure the reporter stops before the session store closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	quoteHandler := handler.NewQuoteHandler(validator, service)
	router := api.NewRouter(quoteHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop the reporter and in-flight fetches
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
