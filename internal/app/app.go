package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alimikegami/shopping-cart-service/config"
	"github.com/alimikegami/shopping-cart-service/internal/controller"
	circuitbreaker "github.com/alimikegami/shopping-cart-service/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/shopping-cart-service/internal/infrastructure/mailer"
	"github.com/alimikegami/shopping-cart-service/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/shopping-cart-service/internal/infrastructure/scheduler"
	"github.com/alimikegami/shopping-cart-service/internal/infrastructure/tracing"
	"github.com/alimikegami/shopping-cart-service/internal/middleware"
	"github.com/alimikegami/shopping-cart-service/internal/repository"
	"github.com/alimikegami/shopping-cart-service/internal/service"
	"github.com/alimikegami/shopping-cart-service/pkg/response"
	"github.com/alimikegami/shopping-cart-service/pkg/validator"
	"github.com/go-co-op/gocron/v2"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "shopping-cart-service"

type App struct {
	DB     *sqlx.DB
	Config *config.Config
	Server *echo.Echo

	metrics        *echo.Echo
	tracerProvider *sdktrace.TracerProvider
	scheduler      gocron.Scheduler
	closers        []func() error
}

// Setup validates the configuration and builds the servers, the event
// publisher and the purge job. It must complete before Start or StopServer.
func (app *App) Setup() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if app.Config.Environment == "development" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = logger

	if err := app.Config.Validate(); err != nil {
		return err
	}

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost, serviceName)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}
	app.tracerProvider = traceProvider

	publisher, err := app.createPublisher()
	if err != nil {
		return err
	}

	svc := app.createServices(publisher, app.createMailer())

	app.Server = app.createServer(traceProvider.Tracer(serviceName), svc)
	app.Server.Use(echoprometheus.NewMiddleware(""))

	app.metrics = echo.New()
	app.metrics.HideBanner = true
	app.metrics.GET("/metrics", echoprometheus.NewHandler())

	app.scheduler, err = scheduler.StartDurationJob(app.Config.PurgeInterval, svc.customer.PurgeDeletedCustomers)
	if err != nil {
		return fmt.Errorf("start purge job: %w", err)
	}

	return nil
}

// Start serves until StopServer is called.
func (app *App) Start() error {
	if app.Server == nil || app.metrics == nil {
		return errors.New("app: Setup has not completed")
	}

	go func() {
		if err := app.metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Str("component", "Start").Msg("metrics server stopped")
		}
	}()

	log.Info().Str("component", "Start").Str("port", app.Config.ServicePort).Msg("starting server")

	err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

type services struct {
	customer service.CustomerService
	auth     service.AuthService
	product  service.ProductService
	cart     service.CartService
}

func (app *App) createServices(publisher service.EventPublisher, mail service.Mailer) services {
	customerRepo := repository.CreateCustomerRepository(app.DB)
	productRepo := repository.CreateProductRepository(app.DB)
	cartRepo := repository.CreateCartRepository(app.DB)

	return services{
		customer: service.CreateCustomerService(customerRepo, *app.Config, publisher, mail),
		auth:     service.CreateAuthService(customerRepo, *app.Config),
		product:  service.CreateProductService(productRepo, publisher),
		cart:     service.CreateCartService(cartRepo, customerRepo, productRepo),
	}
}

func (app *App) createServer(tracer trace.Tracer, svc services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.NewCustomValidator()

	e.Use(middleware.Tracing(tracer))
	e.Use(middleware.Logger)
	e.Use(echomiddleware.Recover())

	g := e.Group("/api/v1")

	isLoggedIn := middleware.IsLoggedIn(app.Config.JWTConfig.JWTSecret, svc.customer)
	controller.CreateCustomerController(g, svc.customer, isLoggedIn)
	controller.CreateAuthController(g, svc.auth)
	controller.CreateProductController(g, svc.product, isLoggedIn)
	controller.CreateCartController(g, svc.cart, isLoggedIn)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	return e
}

func (app *App) createPublisher() (service.EventPublisher, error) {
	if app.Config.KafkaConfig.BrokerAddress == "" {
		log.Warn().Str("component", "createPublisher").Msg("BROKER_ADDRESS not set, events are dropped")
		return kafka.NoopPublisher{}, nil
	}

	conn, err := kafka.CreateKafkaProducer(app.Config)
	if err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}
	app.closers = append(app.closers, conn.Close)

	return kafka.CreatePublisher(conn, circuitbreaker.CreateCircuitBreaker("kafka-producer")), nil
}

func (app *App) createMailer() service.Mailer {
	if app.Config.SMTPConfig.Host == "" {
		log.Warn().Str("component", "createMailer").Msg("SMTP_HOST not set, welcome mails are skipped")
		return mailer.NoopMailer{}
	}

	return mailer.CreateSMTPMailer(app.Config.SMTPConfig)
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errList []error

	if app.scheduler != nil {
		errList = append(errList, app.scheduler.Shutdown())
	}

	if app.Server != nil {
		errList = append(errList, app.Server.Shutdown(ctx))
	}

	if app.metrics != nil {
		errList = append(errList, app.metrics.Shutdown(ctx))
	}

	for _, closeFn := range app.closers {
		errList = append(errList, closeFn())
	}

	if app.tracerProvider != nil {
		errList = append(errList, app.tracerProvider.Shutdown(ctx))
	}

	return errors.Join(errList...)
}
