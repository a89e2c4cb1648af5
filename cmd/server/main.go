package main

import (
	"context"
	"flag"
	"lolpoker-server/internal/broker"
	"lolpoker-server/internal/config"
	"lolpoker-server/internal/mux"
	"lolpoker-server/internal/rng"
	"lolpoker-server/pkg/catalog"
	"lolpoker-server/pkg/room"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10
const shutdownTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	// fail fast
	c, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		logrus.WithError(err).WithField("path", cfg.CatalogPath).Fatal("could not load the catalog")
	}

	if err := c.Validate(); err != nil {
		logrus.WithError(err).Warn("catalog has problems, run catalog-check for details")
	}

	publisher, err := broker.Connect(cfg.NATS.URL, cfg.NATS.Token, cfg.NATS.SubjectPrefix)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to the broker")
	}

	pitBoss, err := room.NewPitBoss(logrus.StandardLogger(), c, cfg.Game, cfg.Tables, rng.Crypto{}, publisher)
	if err != nil {
		logrus.WithError(err).Fatal("could not create tables")
	}

	pitBoss.StartShift()

	co := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(co.Handler(mux.NewMux(Version, pitBoss, cfg.RateLimit))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		logrus.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logrus.WithError(err).Error("could not shut down cleanly")
		}
	}()

	logrus.WithField("addr", srv.Addr).WithField("tables", cfg.Tables).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.WithError(err).Fatal("server stopped")
	}

	pitBoss.EndShift()
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
