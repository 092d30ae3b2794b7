package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/geckos3/geckos3/internal/fsstore"
	"github.com/geckos3/geckos3/internal/server"
	"github.com/geckos3/geckos3/internal/sigv4"
)

func runServe(v *viper.Viper) error {
	logger := newLogger()

	dataDir := v.GetString("data-dir")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		logger.Error("failed to create data directory", "error", err)
		return err
	}

	store := fsstore.New(dataDir, v.GetString("region"))
	if v.GetBool("fsync") {
		store.SetFsync(true)
		logger.Info("fsync enabled: per-object durability mode (slower writes)")
	}

	// Every request is SigV4-authenticated; the framework has no
	// unauthenticated mode (spec section 8: no Authorization header or
	// presigned query params always fails with AccessDenied).
	accessKey, secretKey := v.GetString("access-key"), v.GetString("secret-key")
	if accessKey == "geckoadmin" || secretKey == "geckoadmin" {
		logger.Warn("using default credentials; set GECKOS3_ACCESS_KEY and GECKOS3_SECRET_KEY for production use")
	}
	verifier := sigv4.NewVerifier(sigv4.SingleKey(accessKey, secretKey))
	pipeline := server.New(store, verifier, v.GetString("service-domain"), logger)

	corsConfig := server.CORSConfig{
		AllowedOrigins: v.GetStringSlice("cors-allowed-origins"),
		AllowedMethods: v.GetStringSlice("cors-allowed-methods"),
		AllowedHeaders: v.GetStringSlice("cors-allowed-headers"),
	}

	var handler http.Handler = pipeline
	handler = server.CORSMiddleware(corsConfig, handler)
	handler = server.LoggingMiddleware(logger, handler)
	handler = server.MaxClientsMiddleware(1024)(handler)

	h2s := &http2.Server{}
	httpServer := &http.Server{
		Addr:              v.GetString("listen"),
		Handler:           h2c.NewHandler(handler, h2s),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       6 * time.Hour,
		WriteTimeout:      6 * time.Hour,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("starting geckos3",
			"version", version, "listen", v.GetString("listen"), "data_dir", dataDir)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if interval := v.GetDuration("multipart-gc-interval"); interval > 0 {
		maxAge := v.GetDuration("multipart-gc-max-age")
		group.Go(func() error {
			return runMultipartGC(gctx, dataDir, interval, maxAge)
		})
	}

	group.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server exited with error", "error", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}

// multipartStagingDirName mirrors fsstore's unexported staging directory
// name; kept in sync by hand since the GC sweep is a cmd-level concern
// that should not import fsstore internals.
const multipartStagingDirName = ".geckos3-multipart"

// runMultipartGC periodically removes multipart upload staging
// directories older than maxAge, replacing the teacher's bare
// time.Ticker goroutine with the supervised errgroup idiom used
// elsewhere in the retrieval pack for background work.
func runMultipartGC(ctx context.Context, dataDir string, interval, maxAge time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			cleanAbandonedUploads(dataDir, maxAge)
		}
	}
}

func cleanAbandonedUploads(dataDir string, maxAge time.Duration) {
	buckets, err := os.ReadDir(dataDir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-maxAge)
	for _, b := range buckets {
		if !b.IsDir() {
			continue
		}
		mpDir := filepath.Join(dataDir, b.Name(), multipartStagingDirName)
		uploads, err := os.ReadDir(mpDir)
		if err != nil {
			continue
		}
		for _, u := range uploads {
			info, err := u.Info()
			if err != nil {
				continue
			}
			if info.ModTime().Before(cutoff) {
				os.RemoveAll(filepath.Join(mpDir, u.Name()))
			}
		}
	}
}
