package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/ecommerce-service/internal/app"
	"github.com/SergeyBogomolovv/ecommerce-service/internal/config"
	"github.com/SergeyBogomolovv/ecommerce-service/internal/handler"
	"github.com/SergeyBogomolovv/ecommerce-service/internal/mongodb"
	"github.com/SergeyBogomolovv/ecommerce-service/internal/repo"
	"github.com/SergeyBogomolovv/ecommerce-service/internal/service"

	_ "github.com/SergeyBogomolovv/ecommerce-service/docs"
	"github.com/joho/godotenv"
)

// @title           E-commerce Service API
// @version         1.0
// @description     Документация HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := mongodb.New(ctx, conf.Mongo)
	panicIfErr("failed to connect to mongo", err)
	defer db.Client().Disconnect(context.Background())
	logger.Info("mongodb connected")

	productRepo := repo.NewProductRepo(db)
	orderRepo := repo.NewOrderRepo(db)

	publisher := handler.NewKafkaPublisher(logger, conf.Kafka)

	productService := service.NewProductService(logger, productRepo)
	orderService := service.NewOrderService(logger, orderRepo, productRepo, publisher)

	httpHandler := handler.NewHTTPHandler(logger, productService, orderService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetClosers(publisher)

	app.Start(ctx)
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
