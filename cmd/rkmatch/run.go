package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/rkmatch"
	"github.com/hupe1980/rkmatch/blobstore/minio"
	"github.com/hupe1980/rkmatch/blobstore/s3"
	"github.com/hupe1980/rkmatch/document"
	"github.com/hupe1980/rkmatch/internal/config"
	"github.com/hupe1980/rkmatch/internal/resource"
	"github.com/hupe1980/rkmatch/metrics"
)

func addFlags(cmd *cobra.Command) {
	config.AddFlags(cmd.Flags())
}

func run(ctx context.Context, cmd *cobra.Command, args []string) (err error) {
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr(), cfg)

	var mc rkmatch.MetricsCollector = rkmatch.NoopMetricsCollector{}
	if cfg.MetricsFile != "" {
		prom := metrics.NewPrometheusCollector()
		mc = prom
		defer func() {
			if werr := prom.WriteTextfile(cfg.MetricsFile); werr != nil && err == nil {
				err = fmt.Errorf("write metrics: %w", werr)
			}
		}()
	}

	opts := append(cfg.MatcherOptions(),
		rkmatch.WithLogger(logger),
		rkmatch.WithMetricsCollector(mc),
	)
	if cfg.Trace {
		opts = append(opts, rkmatch.WithTraceWriter(stdout))
	}
	m, err := rkmatch.New(opts...)
	if err != nil {
		return err
	}

	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:   cfg.MemoryLimit,
		MaxLoadWorkers:     cfg.LoadConcurrency,
		IOLimitBytesPerSec: cfg.IOLimit,
	})
	loader := document.NewLoader(loaderOptions(cfg, rc, logger, mc)...)

	docs, err := loader.LoadAll(ctx, args)
	if err != nil {
		return err
	}
	defer document.ReleaseAll(docs)

	query, targets := docs[0], docs[1:]
	for _, target := range targets {
		res, err := m.Match(ctx, query.Data, target.Data)
		if err != nil {
			return fmt.Errorf("%s: %w", target.Name, err)
		}
		logger.InfoContext(ctx, "matched",
			"target", target.Name,
			"matched", res.Matched,
			"distinct", res.Distinct.GetCardinality(),
		)
		if err := report(stdout, target.Name, res, len(targets) > 1); err != nil {
			return err
		}
	}

	logger.DebugContext(ctx, "resources", "peak_bytes", rc.Stats().MemoryPeak)
	return nil
}

func loaderOptions(cfg *config.Config, rc *resource.Controller, logger *rkmatch.Logger, mc rkmatch.MetricsCollector) []document.Option {
	opts := []document.Option{
		document.WithController(rc),
		document.WithLogger(logger),
		document.WithMetricsCollector(mc),
	}

	var s3Opts []s3.Option
	if cfg.S3.Region != "" {
		s3Opts = append(s3Opts, s3.WithRegion(cfg.S3.Region))
	}
	if cfg.S3.Endpoint != "" {
		s3Opts = append(s3Opts, s3.WithEndpoint(cfg.S3.Endpoint))
	}
	opts = append(opts, document.WithS3Options(s3Opts...))

	if cfg.Minio.Endpoint != "" {
		opts = append(opts, document.WithMinio(minio.Config{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Secure:    cfg.Minio.Secure,
		}))
	}
	return opts
}

func newLogger(w io.Writer, cfg *config.Config) *rkmatch.Logger {
	if cfg.LogFormat == "json" {
		return rkmatch.NewJSONLoggerTo(w, cfg.LogLevel)
	}
	return rkmatch.NewTextLoggerTo(w, cfg.LogLevel)
}

func report(w io.Writer, name string, res *rkmatch.Result, prefixed bool) error {
	var err error
	if prefixed {
		_, err = fmt.Fprintf(w, "%s: %s\n", name, res)
	} else {
		_, err = fmt.Fprintln(w, res)
	}
	return err
}
