package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/admi20/pet-project-fitness-tracker/internal/config"
	"github.com/admi20/pet-project-fitness-tracker/internal/logging"
	"github.com/admi20/pet-project-fitness-tracker/internal/observability"
	"github.com/admi20/pet-project-fitness-tracker/internal/packages"
	"github.com/admi20/pet-project-fitness-tracker/internal/publish"
	"github.com/admi20/pet-project-fitness-tracker/internal/tracker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	packagesFile := flag.String("packages", cfg.PackagesFile, "path to a TOML file with [[package]] entries; empty runs the built-in sample")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level [trace | debug | info | warn | error]")
	flag.Parse()

	cfg.PackagesFile = *packagesFile
	cfg.LogLevel = *logLevel

	if err := run(cfg, os.Stdout); err != nil {
		log.Errorf("tracker failed: %v", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, out io.Writer) error {
	logCloser := logging.Setup(logging.SetupParams{
		LogFileName: cfg.LogFile,
		LogToStderr: cfg.LogToStderr,
		LogLevel:    cfg.LogLevel,
		FormatJSON:  cfg.LogJSON,
	})
	defer logCloser.Close()

	pkgs, err := packages.LoadOrDefault(cfg.PackagesFile)
	if err != nil {
		return err
	}
	if cfg.PackagesFile == "" {
		log.Debugln("no packages file given, using built-in sample")
	}

	var publisher publish.Publisher = publish.NoopPublisher{}
	if cfg.PublishingEnabled() {
		log.Infof("publishing summaries to %s (brokers=%v)", cfg.SummaryTopic, cfg.KafkaBrokers)
		publisher = publish.NewKafkaPublisher(cfg.KafkaBrokers, cfg.SummaryTopic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warnf("close publisher: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if cfg.PublishingEnabled() {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.PublishTimeout)
		defer cancel()
	}

	service := tracker.NewService(publisher, tracker.WithLogger(log.StandardLogger()))
	results, processErr := service.Process(ctx, pkgs)

	for _, res := range results {
		if _, err := fmt.Fprintln(out, res.Summary); err != nil {
			return err
		}
	}

	if cfg.MetricsFile != "" {
		if err := observability.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Errorf("write metrics textfile: %v", err)
		}
	}

	return processErr
}
