package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/keepsafe/internal/api/dto"
	notifhandler "github.com/aliskhannn/keepsafe/internal/api/handlers/notification"
	premiumhandler "github.com/aliskhannn/keepsafe/internal/api/handlers/premium"
	producthandler "github.com/aliskhannn/keepsafe/internal/api/handlers/product"
	settingshandler "github.com/aliskhannn/keepsafe/internal/api/handlers/settings"
	shoppinghandler "github.com/aliskhannn/keepsafe/internal/api/handlers/shopping"
	"github.com/aliskhannn/keepsafe/internal/api/router"
	"github.com/aliskhannn/keepsafe/internal/api/server"
	"github.com/aliskhannn/keepsafe/internal/config"
	"github.com/aliskhannn/keepsafe/internal/delivery"
	"github.com/aliskhannn/keepsafe/internal/metrics"
	"github.com/aliskhannn/keepsafe/internal/migrate"
	"github.com/aliskhannn/keepsafe/internal/model"
	notifmsg "github.com/aliskhannn/keepsafe/internal/rabbitmq/handlers/notification"
	"github.com/aliskhannn/keepsafe/internal/rabbitmq/queue"
	deliveryrepo "github.com/aliskhannn/keepsafe/internal/repository/delivery"
	productrepo "github.com/aliskhannn/keepsafe/internal/repository/product"
	settingsrepo "github.com/aliskhannn/keepsafe/internal/repository/settings"
	shoppingrepo "github.com/aliskhannn/keepsafe/internal/repository/shopping"
	"github.com/aliskhannn/keepsafe/internal/scheduler"
	notifsvc "github.com/aliskhannn/keepsafe/internal/service/notification"
	premiumsvc "github.com/aliskhannn/keepsafe/internal/service/premium"
	productsvc "github.com/aliskhannn/keepsafe/internal/service/product"
	settingssvc "github.com/aliskhannn/keepsafe/internal/service/settings"
	shoppingsvc "github.com/aliskhannn/keepsafe/internal/service/shopping"
	"github.com/aliskhannn/keepsafe/internal/worker"
	"github.com/aliskhannn/keepsafe/pkg/email"
	"github.com/aliskhannn/keepsafe/pkg/telegram"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, the scheduler and the delivery workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context(), cfg)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply pending migrations before starting")
}

func serve(ctx context.Context, cfg *config.Config) error {
	loc, err := cfg.Scheduler.Location()
	if err != nil {
		return err
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return err
	}
	defer closeDB(db)

	if migrateOnStart {
		if err := migrate.Up(ctx, db.Master); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	rdb, err := openRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close redis")
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	dispatchMetrics := metrics.NewDispatch(reg)

	center := delivery.NewCenter(rdb.Client, cfg.Redis.Namespace)

	sched, err := scheduler.New(scheduler.Params{
		Center:      center,
		Metrics:     metrics.NewScheduler(reg),
		UrgentDelay: cfg.Scheduler.UrgentDelay,
		CallTimeout: cfg.Scheduler.OpTimeout,
	})
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	defer sched.Close()

	channels, err := deliveryChannels(cfg)
	if err != nil {
		return err
	}

	settingsRepo := settingsrepo.NewRepository(db)

	settingsService := settingssvc.NewService(settingsRepo)
	premiumService := premiumsvc.NewService(settingsRepo, rdb, cfg.Retry, model.Limits{
		MaxProducts:      cfg.Premium.FreeProductLimit,
		MaxShoppingItems: cfg.Premium.FreeShoppingLimit,
	})
	productService := productsvc.NewService(productrepo.NewRepository(db, loc), sched, premiumService, settingsService)
	shoppingService := shoppingsvc.NewService(shoppingrepo.NewRepository(db), premiumService)
	notifService := notifsvc.NewService(deliveryrepo.NewRepository(db), center, sched, channels)

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		return fmt.Errorf("connect to rabbitmq: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
		}
	}()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() {
		if err := ch.Close(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
		}
	}()

	q, err := queue.NewNotificationQueue(ch, queue.Topology{
		Exchange:   cfg.RabbitMQ.Exchange,
		Queue:      cfg.RabbitMQ.Queue,
		RetryQueue: cfg.RabbitMQ.RetryQueue,
		DLQ:        cfg.RabbitMQ.DLQ,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		RetryTTL:   cfg.RabbitMQ.RetryTTL,
	})
	if err != nil {
		return fmt.Errorf("create notification queue: %w", err)
	}

	val := dto.NewValidator()

	r := router.New(router.Handlers{
		Product:      producthandler.NewHandler(productService, val, loc),
		Shopping:     shoppinghandler.NewHandler(shoppingService, val),
		Notification: notifhandler.NewHandler(notifService, productService, val),
		Premium:      premiumhandler.NewHandler(premiumService, val),
		Settings:     settingshandler.NewHandler(settingsService, val),
		Metrics:      promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})
	s := server.New(cfg.Server.HTTPPort, r)

	if n, err := productService.Resync(ctx); err != nil {
		zlog.Logger.Error().Err(err).Msg("startup resync failed")
	} else {
		zlog.Logger.Info().Int("products", n).Msg("notifications resynced")
	}

	if err := sched.LogDiagnostics().Wait(ctx); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to log diagnostics")
	}

	dispatcher := worker.NewDispatcher(center, q, dispatchMetrics, cfg.Workers.PollInterval, cfg.Workers.BatchSize)
	notifier := worker.NewNotifier(q, notifmsg.NewHandler(notifService, dispatchMetrics), settingsService, notifService)
	resync := worker.NewResync(productService, cfg.Scheduler.ResyncInterval)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		dispatcher.Run(gctx, cfg.Retry)
		return nil
	})
	g.Go(func() error {
		notifier.Run(gctx, cfg.Retry, cfg.Workers.Count)
		return nil
	})
	g.Go(func() error {
		resync.Run(gctx)
		return nil
	})
	g.Go(func() error {
		zlog.Logger.Info().Str("addr", s.Addr).Msg("http server started")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		zlog.Logger.Info().Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		zlog.Logger.Info().Msg("shutting down server")
		if err := s.Shutdown(shutdownCtx); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
		}

		if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
			zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
		}

		return nil
	})

	return g.Wait()
}

// deliveryChannels builds the configured channels. Unknown names are
// rejected by config validation.
func deliveryChannels(cfg *config.Config) (map[string]notifsvc.Channel, error) {
	channels := make(map[string]notifsvc.Channel, len(cfg.Delivery.Channels))

	for _, name := range cfg.Delivery.Channels {
		switch name {
		case "telegram":
			channels[name] = notifsvc.Channel{
				Notifier: telegram.NewClient(cfg.Telegram.Token),
				To:       cfg.Telegram.ChatID,
			}
		case "email":
			port, err := strconv.Atoi(cfg.Email.SMTPPort)
			if err != nil {
				return nil, fmt.Errorf("parse email smtp port: %w", err)
			}

			channels[name] = notifsvc.Channel{
				Notifier: email.NewClient(cfg.Email.SMTPHost, port, cfg.Email.Username, cfg.Email.Password, cfg.Email.From),
				To:       cfg.Email.To,
			}
		default:
			return nil, fmt.Errorf("unknown delivery channel %q", name)
		}
	}

	return channels, nil
}
