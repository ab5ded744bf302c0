package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "solarshare-backend/internal/adapter/http"
	"solarshare-backend/internal/adapter/middleware"
	"solarshare-backend/internal/adapter/repository/mysql"
	"solarshare-backend/internal/config"
	"solarshare-backend/internal/infrastructure/cache"
	"solarshare-backend/internal/infrastructure/db"
	"solarshare-backend/internal/notification"
	"solarshare-backend/internal/usecase/auth"
	"solarshare-backend/internal/usecase/billing"
	"solarshare-backend/internal/usecase/funding"
	"solarshare-backend/internal/usecase/settlement"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	// notification side channel
	var notifier notification.Notifier = notification.Nop{}
	queue := notification.NewQueue(rdb, cfg.PushQueueKey)
	if cfg.PushEndpoint != "" {
		notifier = queue
		worker := notification.NewWorker(queue, notification.NewHTTPSender(cfg.PushEndpoint, cfg.PushServerKey))
		go worker.Run(context.Background())
	}

	// repositories + unit of work
	users := mysql.NewUserRepository(gdb)
	properties := mysql.NewPropertyRepository(gdb)
	investments := mysql.NewInvestmentRepository(gdb)
	energyLogs := mysql.NewEnergyLogRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	// usecases
	authUC := auth.NewUsecase(users, cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	fundingUC := funding.NewUsecase(users, properties, investments, uow, notifier)
	views := funding.NewViews(fundingUC, energyLogs, payments)
	billingUC := billing.NewUsecase(users, energyLogs, uow, notifier)
	settlementUC := settlement.NewUsecase(payments, uow)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	httpadp.RegisterRoutes(e,
		authUC,
		httpadp.NewAuthHandler(authUC),
		httpadp.NewPropertyHandler(fundingUC, views, billingUC),
		httpadp.NewInvestmentHandler(fundingUC, views),
		httpadp.NewPaymentHandler(settlementUC),
		idemp,
	)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
