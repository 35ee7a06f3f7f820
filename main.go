package main

import (
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/planetnakshatra/api/config"
	"github.com/planetnakshatra/api/internal/calendar"
	"github.com/planetnakshatra/api/internal/handler"
	"github.com/planetnakshatra/api/internal/mailer"
	"github.com/planetnakshatra/api/internal/middleware"
	"github.com/planetnakshatra/api/internal/notifier"
	"github.com/planetnakshatra/api/internal/repository"
	"github.com/planetnakshatra/api/internal/service"
	"github.com/planetnakshatra/api/internal/validation"
	"github.com/planetnakshatra/api/pkg/database"
	"github.com/planetnakshatra/api/pkg/rabbitmq"
)

func main() {
	seed := flag.Bool("seed", false, "seed the service catalog and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	if *seed {
		if err := database.SeedServices(db); err != nil {
			log.Fatalf("failed to seed services: %v", err)
		}
		log.Println("service catalog seeded")
		return
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("invalid timezone %q: %v", cfg.Timezone, err)
	}

	cal := calendar.NewGoogleClient(calendar.GoogleConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RefreshToken: cfg.GoogleRefreshToken,
		CalendarID:   cfg.GoogleCalendarID,
		Timezone:     cfg.Timezone,
	})

	sender := mailer.NewSender(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		FromName: cfg.SMTPFromName,
	})

	notify := setupNotifier(cfg, sender)

	// Repositories
	serviceRepo := repository.NewServiceRepository(db)
	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	contactRepo := repository.NewContactRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	// Services
	bookingSvc := service.NewBookingService(bookingRepo, serviceRepo, userRepo, cal, notify, loc)
	catalogSvc := service.NewCatalogService(serviceRepo)
	contactSvc := service.NewContactService(contactRepo, userRepo)

	validate := validation.New()

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORS())

	e.GET("/health", handler.NewHealthHandler(db).Check)

	api := e.Group("/api")
	handler.NewServiceHandler(catalogSvc, validate).RegisterRoutes(api.Group("/services"))
	handler.NewBookingHandler(bookingSvc, validate).RegisterRoutes(api.Group("/bookings"))
	handler.NewContactHandler(contactSvc, validate).RegisterRoutes(api.Group("/contact"))
	handler.NewBlogHandler(blogRepo).RegisterRoutes(api.Group("/blogs"))

	log.Printf("Planet Nakshatra API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

// setupNotifier wires booking notifications through RabbitMQ when a broker is
// configured, with an in-process consumer draining the queue into email.
// Without a broker the emails are sent directly on a goroutine.
func setupNotifier(cfg *config.Config, sender mailer.Sender) notifier.Notifier {
	if cfg.RabbitURL == "" {
		log.Println("RABBITMQ_URL not set, sending notifications directly")
		return notifier.NewDirectNotifier(sender, cfg.AdminEmail)
	}

	pub, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("failed to connect RabbitMQ publisher, falling back to direct notifications: %v", err)
		return notifier.NewDirectNotifier(sender, cfg.AdminEmail)
	}

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	msgs, err := consumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}
	notifier.NewEmailConsumer(sender, cfg.AdminEmail).Start(msgs)

	return notifier.NewQueueNotifier(pub)
}
