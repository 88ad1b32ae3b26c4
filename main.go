package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/sentinel-ops/sentinel/internal/artifact"
	"github.com/sentinel-ops/sentinel/internal/config"
	"github.com/sentinel-ops/sentinel/internal/cursor"
	"github.com/sentinel-ops/sentinel/internal/gateway"
	"github.com/sentinel-ops/sentinel/internal/notary"
	"github.com/sentinel-ops/sentinel/internal/promregistry"
	"github.com/sentinel-ops/sentinel/internal/scan"
	"github.com/sentinel-ops/sentinel/internal/seal"
)

type Options struct {
	ConfigPath  string
	MetricsAddr string
	VerifyPath  string
	Verbose     bool
}

func main() {
	var opts Options
	flag.StringVar(&opts.ConfigPath, "config", "config.yml", "Path to the notary config file")
	flag.StringVar(&opts.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this addr while the run is in flight (disabled when empty)")
	flag.StringVar(&opts.VerifyPath, "verify", "", "Verify the fingerprint of an existing certificate file and exit")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	flag.Parse()

	logger := logrus.New()
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if opts.VerifyPath != "" {
		runVerify(logger, opts.VerifyPath)
		return
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		logger.WithField("config", opts.ConfigPath).WithError(err).Fatal("Failed to load config")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if opts.MetricsAddr != "" {
		go serveMetrics(ctx, logger, opts.MetricsAddr)
	}

	httpClient := &http.Client{Timeout: time.Second * 30}
	gw, err := gateway.Connect(ctx, logger, httpClient, cfg.Endpoints, cfg.UserAgent())
	if err != nil {
		logger.WithError(err).Fatal("All gateway endpoints are unreachable")
	}

	logger.WithFields(logrus.Fields{
		"endpoint": gw.Endpoint(),
		"watched":  len(cfg.Watch),
		"step":     cfg.Step,
	}).Info("Notary starting")

	var publisher notary.Publisher
	if cfg.Publish.Enabled {
		publisher = artifact.NewIPFSPublisher(logger, cfg.Publish.Command, cfg.Publish.StorageRoot)
	}

	n := notary.New(
		logger,
		cursor.NewStore(cfg.Paths.Cursor, cfg.Genesis),
		gw,
		scan.New(logger, gw, scan.Config{
			Addresses: cfg.Watch,
			Step:      cfg.Step,
			Throttle:  cfg.Throttle.Std(),
			Jitter:    cfg.Jitter.Std(),
		}),
		seal.NewSealer(seal.Identity{
			Tag:          cfg.Identity.Tag,
			Organization: cfg.Identity.Organization,
			Contact:      cfg.Identity.Contact,
		}),
		artifact.NewStore(logger, cfg.Paths.Snapshots, cfg.Paths.CertPrefix),
		publisher,
	)

	err = n.Run(ctx)
	if err != nil {
		// prior runs' certificates are intact and the cursor was not
		// advanced; the next run re-covers the aborted range
		logger.WithError(err).Error("Notary run aborted")
	}
}

func runVerify(logger *logrus.Logger, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.WithField("path", path).WithError(err).Fatal("Failed to read certificate file")
	}

	fingerprint, ok, err := seal.Verify(data)
	if err != nil {
		logger.WithField("path", path).WithError(err).Fatal("Failed to verify certificate")
	}
	if !ok {
		logger.WithFields(logrus.Fields{
			"path":       path,
			"recomputed": fingerprint,
		}).Fatal("Certificate fingerprint mismatch, payload has been altered")
	}

	logger.WithFields(logrus.Fields{
		"path":        path,
		"fingerprint": fingerprint,
	}).Info("Certificate fingerprint verified")
}

func serveMetrics(ctx context.Context, logger *logrus.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(promregistry.Registry(), promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		logger.WithField("addr", addr).Info("Serving metrics...")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("Metrics server failed with error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.WithError(err).Error("Failed to shutdown metrics server gracefully")
	}
}
