package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	httpapp "github.com/shopworks/storefront/fulfillment_service/internal/app/http"
	"github.com/shopworks/storefront/fulfillment_service/internal/config"
	"github.com/shopworks/storefront/fulfillment_service/internal/consumers"
	discountConsumer "github.com/shopworks/storefront/fulfillment_service/internal/consumers/discount"
	guestledgerConsumer "github.com/shopworks/storefront/fulfillment_service/internal/consumers/guestledger"
	inventoryConsumer "github.com/shopworks/storefront/fulfillment_service/internal/consumers/inventory"
	loyaltyConsumer "github.com/shopworks/storefront/fulfillment_service/internal/consumers/loyalty"
	notificationConsumer "github.com/shopworks/storefront/fulfillment_service/internal/consumers/notification"
	orderidConsumer "github.com/shopworks/storefront/fulfillment_service/internal/consumers/orderid"
	fulfillmentHTTP "github.com/shopworks/storefront/fulfillment_service/internal/delivery/http"
	authRecoverHTTP "github.com/shopworks/storefront/fulfillment_service/internal/delivery/http/auth/recover"
	authRegisterHTTP "github.com/shopworks/storefront/fulfillment_service/internal/delivery/http/auth/register"
	guestHTTP "github.com/shopworks/storefront/fulfillment_service/internal/delivery/http/guest"
	orderCreateHTTP "github.com/shopworks/storefront/fulfillment_service/internal/delivery/http/order/create"
	"github.com/shopworks/storefront/fulfillment_service/internal/guestsession"
	"github.com/shopworks/storefront/fulfillment_service/internal/idempotency"
	"github.com/shopworks/storefront/fulfillment_service/internal/repository"
	recoverService "github.com/shopworks/storefront/fulfillment_service/internal/services/auth/recover"
	registerService "github.com/shopworks/storefront/fulfillment_service/internal/services/auth/register"
	placeService "github.com/shopworks/storefront/fulfillment_service/internal/services/order/place"
	"github.com/shopworks/storefront/fulfillment_service/pkg/brokers/rabbitmq"
	"github.com/shopworks/storefront/fulfillment_service/pkg/databases/postgres"
	redisdb "github.com/shopworks/storefront/fulfillment_service/pkg/databases/redis"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
	"github.com/shopworks/storefront/fulfillment_service/pkg/mailer"
)

type App struct {
	log logger.Logger

	HTTPServer *httpapp.App

	rabbit *rabbitmq.Client
	db     *postgres.PgDB
	rdb    *redisdb.RedisDB

	runner *consumers.Runner
	specs  []consumers.Spec
}

func NewApp(ctx context.Context, log logger.Logger, cfg *config.Config) (*App, error) {
	const op = "app.NewApp"

	db, err := postgres.NewPostgresDB(ctx, log, postgresDSN(&cfg.Postgres))
	if err != nil {
		return nil, fmt.Errorf("%s: connect to postgres: %w", op, err)
	}

	rdb, err := redisdb.NewRedisDB(ctx, log, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, fmt.Errorf("%s: connect to redis: %w", op, err)
	}

	rabbit := rabbitmq.NewClient(log, cfg.Rabbit.URL, cfg.Rabbit.ReconnectDelay)
	if err = rabbit.Connect(ctx); err != nil {
		return nil, fmt.Errorf("%s: connect to rabbitmq: %w", op, err)
	}

	publisher := rabbitmq.NewPublisher(log, rabbit)

	repo := repository.NewRepository(log, db.GetDB())
	sessions := guestsession.NewStore(log, rdb.GetClient(), guestsession.DefaultTTL)
	dedup := idempotency.NewRedisStore(rdb.GetClient(), idempotency.DefaultTTL)
	mail := mailer.NewSMTPMailer(log, cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.Username, cfg.SMTP.Password)

	placeSvc := placeService.New(log, repo.Orders, publisher)
	registerSvc := registerService.New(log, repo.Users, publisher)
	recoverSvc := recoverService.New(log, repo.Users, repo.Users, publisher)

	handler := fulfillmentHTTP.NewHandler(
		log,
		orderCreateHTTP.NewHandler(log, placeSvc),
		authRegisterHTTP.NewHandler(log, registerSvc),
		authRecoverHTTP.NewHandler(log, recoverSvc),
		guestHTTP.NewHandler(log, sessions),
	)

	runner := consumers.NewRunner(log, rabbit, dedup, cfg.Consumer.MaxAttempts, cfg.Consumer.RetryBackoff)

	specs := []consumers.Spec{
		inventoryConsumer.New(log, repo.Inventory).Spec(),
		discountConsumer.New(log, repo.Discount).Spec(),
		notificationConsumer.New(log, mail).Spec(),
		guestledgerConsumer.New(log, sessions).Spec(),
		orderidConsumer.New(log, repo.Orders).Spec(),
	}
	specs = append(specs, loyaltyConsumer.New(log, repo.Loyalty, sessions).Specs()...)

	return &App{
		log:        log,
		HTTPServer: httpapp.NewApp(log, handler.InitRoutes(), cfg.HTTP.Port),
		rabbit:     rabbit,
		db:         db,
		rdb:        rdb,
		runner:     runner,
		specs:      specs,
	}, nil
}

// RunConsumers blocks until ctx is canceled, keeping all consumer
// subscriptions alive.
func (a *App) RunConsumers(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, spec := range a.specs {
		spec := spec

		g.Go(func() error {
			return a.runner.Start(ctx, spec)
		})
	}

	a.log.Info("consumers started", logger.Int("count", len(a.specs)))

	return g.Wait()
}

func (a *App) Stop(ctx context.Context) error {
	const op = "app.Stop"

	if err := a.HTTPServer.Stop(ctx); err != nil {
		return fmt.Errorf("%s: stop http server: %w", op, err)
	}

	if err := a.rabbit.Shutdown(); err != nil {
		a.log.Error(op, logger.String("rabbitmq shutdown", err.Error()))
	}

	if err := a.db.Close(); err != nil {
		return fmt.Errorf("%s: close postgres: %w", op, err)
	}

	if err := a.rdb.Close(); err != nil {
		return fmt.Errorf("%s: close redis: %w", op, err)
	}

	return nil
}

func postgresDSN(psqlCfg *config.PostgresConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		psqlCfg.Host, psqlCfg.Port, psqlCfg.User, psqlCfg.DbName, psqlCfg.Pwd, psqlCfg.SslMode)
}
