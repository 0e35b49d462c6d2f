package main

import (
	"fmt"
	"log"

	"dushanbe-eats/configs"
	"dushanbe-eats/entity"
	"dushanbe-eats/pkg/events"
	"dushanbe-eats/pkg/notify"
	"dushanbe-eats/pkg/payment"
	"dushanbe-eats/repository"
	"dushanbe-eats/routes"
	"dushanbe-eats/services"
	"dushanbe-eats/ws"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedDemo(); err != nil {
		log.Fatalf("seed demo data failed: %v", err)
	}

	// binding rule for order status values
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
			_, ok := entity.ParseStatus(fl.Field().String())
			return ok
		})
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	favRepo := repository.NewFavoriteRepository(db)
	payRepo := repository.NewPaymentRepository(db)

	// Order event sinks: the ws feed always, AMQP and Telegram when configured
	feed := ws.NewOrderFeed(userRepo)
	go feed.Run()

	fanout := services.NewEventFanout(feed)
	if cfg.AMQPUrl != "" {
		pub, err := events.NewPublisher(cfg.AMQPUrl)
		if err != nil {
			log.Printf("amqp disabled: %v", err)
		} else {
			defer pub.Close()
			fanout.AddSink(&services.AMQPSink{Publisher: pub})
		}
	}
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		tn, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("telegram disabled: %v", err)
		} else {
			fanout.AddSink(&services.TelegramSink{Notifier: tn})
		}
	}

	// Services
	locks := services.NewUserLocks()
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(db, restRepo, menuRepo, userRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, restRepo, locks)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, restRepo, userRepo, locks, fanout)
	paySvc := services.NewPaymentService(orderRepo, payRepo,
		payment.NewHTTPClient(cfg.PaymentAPIURL, cfg.PaymentAPIKey))
	favSvc := services.NewFavoriteService(favRepo, restRepo)

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, &routes.Deps{
		DB:        db,
		Cfg:       cfg,
		OrderFeed: feed,
		Users:     userRepo,
		Auth:      authSvc,
		Catalog:   catalogSvc,
		Cart:      cartSvc,
		Orders:    orderSvc,
		Payments:  paySvc,
		Favorites: favSvc,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
