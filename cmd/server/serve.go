package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-gin-event-booking/config"
	"go-gin-event-booking/internal/auth"
	"go-gin-event-booking/internal/cache"
	"go-gin-event-booking/internal/handler"
	"go-gin-event-booking/internal/middleware"
	"go-gin-event-booking/internal/worker"
	"go-gin-event-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	emailRetryDelay   = 5 * time.Second
	geoipFetchTimeout = 2 * time.Minute
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	log := logger.WithComponent("server")

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	geoip := newGeoIPCache(cfg.GeoIP)
	defer geoip.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Without Redis nobody else drains the queue, so the API process sends the mail itself.
	if a.inProcessQueue {
		emailWorker := worker.NewEmailWorker(a.notifications, a.emailQueue, emailRetryDelay)
		if err := emailWorker.Start(ctx); err != nil {
			return err
		}
		log.Info("email worker running in-process")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      newRouter(a, geoip),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g.Go(func() error {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newRouter(a *app, geoip cache.GeoIPLocator) *gin.Engine {
	if a.cfg.Server.Mode != "" {
		gin.SetMode(a.cfg.Server.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.AccessLog(), middleware.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := a.pool.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.RequireAuth(auth.NewJWTVerifier(a.cfg.Auth))

	handler.NewNearbyHandler(a.nearby).RegisterRoutes(r)
	handler.NewEventHandler(a.events).RegisterRoutes(r, requireAuth)
	handler.NewCategoryHandler(a.categories).RegisterRoutes(r)
	handler.NewOrganizerHandler(a.organizers, a.events).RegisterRoutes(r, requireAuth)
	handler.NewBookingHandler(a.bookings).RegisterRoutes(r, requireAuth)
	handler.NewPaymentHandler(a.payments).RegisterRoutes(r, requireAuth)
	handler.NewNotificationHandler(a.notifications).RegisterRoutes(r, requireAuth)
	handler.NewGeoHandler(geoip).RegisterRoutes(r)

	return r
}

// newGeoIPCache loads the dataset lazily on the first lookup. Without a URL every lookup reports no location.
func newGeoIPCache(cfg config.GeoIPConfig) *cache.GeoIPCache {
	var fetch cache.DatasetFetcher
	if cfg.DatabaseURL != "" {
		fetch = cache.HTTPDatasetFetcher(&http.Client{Timeout: geoipFetchTimeout}, cfg.DatabaseURL)
	}
	return cache.NewGeoIPCache(clockwork.NewRealClock(), cfg.TTL, fetch, cache.OpenMaxMindDataset)
}
