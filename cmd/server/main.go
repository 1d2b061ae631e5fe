package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/ovenlight/bakery-api/internal/config"
	"github.com/ovenlight/bakery-api/internal/database"
	"github.com/ovenlight/bakery-api/internal/handler"
	"github.com/ovenlight/bakery-api/internal/repository"
	"github.com/ovenlight/bakery-api/internal/router"
)

func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := database.SeedAdmin(db, cfg.AdminUsername, cfg.AdminPassword, cfg.BcryptCost); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	customers := repository.NewCustomerRepo(db)
	admins := repository.NewAdminRepo(db)
	orders := repository.NewOrderRepo(db)

	auth := handler.NewAuthHandler(cfg, customers, admins)
	customer := handler.NewCustomerHandler(customers, orders)
	admin := handler.NewAdminHandler(orders, customers)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, auth, customer, admin)

	addr := ":" + cfg.Port
	go func() {
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	// Block until SIGINT/SIGTERM, then drain in-flight requests before the
	// deferred db.Close runs.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
