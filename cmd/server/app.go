package main

import (
	"fmt"

	"go-gin-event-booking/config"
	"go-gin-event-booking/internal/cache"
	"go-gin-event-booking/internal/database"
	"go-gin-event-booking/internal/email"
	"go-gin-event-booking/internal/payment"
	"go-gin-event-booking/internal/queue"
	"go-gin-event-booking/internal/repository"
	"go-gin-event-booking/internal/service"
	"go-gin-event-booking/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const inProcessQueueSize = 256

// app holds the shared infrastructure and services of every command.
type app struct {
	cfg  *config.Config
	pool *pgxpool.Pool
	rdb  *redis.Client

	// inProcessQueue is set when Redis is unreachable and email jobs stay in this process.
	inProcessQueue bool
	emailQueue     queue.EmailQueue

	nearby        service.NearbyService
	events        service.EventService
	categories    service.CategoryService
	organizers    service.OrganizerService
	bookings      service.BookingService
	payments      service.PaymentService
	notifications service.NotificationService
}

func newApp(cfg *config.Config) (*app, error) {
	log := logger.WithComponent("app")
	logger.SetLevel(cfg.LogLevel)

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	a := &app{cfg: cfg, pool: pool}

	var guard cache.WebhookEventGuard
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, using in-process email queue without webhook guard", zap.Error(err))
		a.inProcessQueue = true
		a.emailQueue = queue.NewEmailQueue(inProcessQueueSize)
	} else {
		a.rdb = rdb
		guard = cache.NewRedisWebhookEventGuard(rdb, cache.DefaultWebhookClaimTTL, cache.DefaultWebhookRetention)
		a.emailQueue, err = queue.NewRedisStreamEmailQueue(rdb, cfg.Worker.ConsumerID, &queue.RedisStreamEmailQueueConfig{
			ClaimMinIdleTime: cfg.Worker.ClaimMinIdleTime,
			MaxRetryCount:    cfg.Worker.MaxRetryCount,
		})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("initialize email queue: %w", err)
		}
	}

	txManager := database.NewTxManager(pool)
	eventRepo := repository.NewEventRepository(pool)
	ticketTypeRepo := repository.NewTicketTypeRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	organizerRepo := repository.NewOrganizerRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	webhookRepo := repository.NewWebhookEventRepository(pool)

	if cfg.Payment.SecretKey == "" {
		log.Warn("payment secret key not set, checkout sessions will fail")
	}
	if cfg.Worker.PendingExpiry <= payment.ClampSessionTTL(cfg.Payment.SessionTTL) {
		log.Warn("pending expiry is not longer than the checkout session ttl; open checkout pages keep their bookings alive",
			zap.Duration("pending_expiry", cfg.Worker.PendingExpiry),
			zap.Duration("session_ttl", cfg.Payment.SessionTTL))
	}
	if !cfg.Email.Enabled() {
		log.Info("smtp not configured, confirmation mail is only logged")
	}

	clock := clockwork.NewRealClock()
	gateway := payment.NewStripeGateway(cfg.Payment)
	sender := email.NewSender(cfg.Email)

	a.nearby = service.NewNearbyService(eventRepo)
	a.events = service.NewEventService(eventRepo, ticketTypeRepo, organizerRepo)
	a.categories = service.NewCategoryService(categoryRepo)
	a.organizers = service.NewOrganizerService(organizerRepo)
	a.bookings = service.NewBookingService(txManager, bookingRepo, eventRepo, ticketTypeRepo, clock)
	a.payments = service.NewPaymentService(txManager, bookingRepo, ticketTypeRepo, webhookRepo, guard, gateway, a.emailQueue, clock, cfg.Payment.SessionTTL)
	a.notifications = service.NewNotificationService(bookingRepo, eventRepo, ticketTypeRepo, sender)

	return a, nil
}

func (a *app) Close() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	a.pool.Close()
}
