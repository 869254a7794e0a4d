package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/eventstay/booking/internal/adapter/handler"
	"github.com/eventstay/booking/internal/adapter/repository/postgres"
	"github.com/eventstay/booking/internal/core/services"
	"github.com/eventstay/booking/internal/platform/database"
	"github.com/eventstay/booking/internal/platform/monitoring"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using OS environment.")
	}

	dbConfig := database.Config{
		Host:     envOr("DB_HOST", "localhost"),
		Port:     envOr("DB_PORT", "5432"),
		User:     envOr("DB_USER", "postgres"),
		Password: envOr("DB_PASSWORD", ""),
		DBName:   envOr("DB_NAME", "eventstay"),
	}

	db, err := database.Connect(context.Background(), dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to db after retries: %v", err)
	}
	defer db.Close()

	redisAddr := fmt.Sprintf("%s:%s", envOr("REDIS_HOST", "localhost"), envOr("REDIS_PORT", "6379"))
	log.Printf("Connecting to Redis at %s...", redisAddr)

	redisClient := redis.NewClient(&redis.Options{
		Addr: redisAddr,
		DB:   0,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Redis connected successfully!")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	enrollmentRepo := postgres.NewEnrollmentRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	hotelRepo := postgres.NewHotelRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)

	entitlementService := services.NewEntitlementService(enrollmentRepo, ticketRepo)
	bookingService := services.NewBookingService(entitlementService, bookingRepo, hotelRepo, redisClient)
	hotelService := services.NewHotelService(entitlementService, hotelRepo, bookingRepo, redisClient)

	bookingHandler := handler.NewBookingHandler(bookingService)
	hotelHandler := handler.NewHotelHandler(hotelService)

	auth := handler.Auth(jwtSecret)

	mux := http.NewServeMux()

	mux.Handle("GET /booking", auth(http.HandlerFunc(bookingHandler.GetBooking)))
	mux.Handle("POST /booking", auth(http.HandlerFunc(bookingHandler.CreateBooking)))
	mux.Handle("PUT /booking/{bookingId}", auth(http.HandlerFunc(bookingHandler.UpdateBooking)))

	mux.Handle("GET /hotels", auth(http.HandlerFunc(hotelHandler.GetHotels)))
	mux.Handle("GET /hotels/{hotelId}", auth(http.HandlerFunc(hotelHandler.GetHotelRooms)))

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	stopMonitor := make(chan struct{})
	go monitoring.NewMonitor(30 * time.Second).Run(stopMonitor)

	server := &http.Server{
		Addr:         ":" + envOr("PORT", "8080"),
		Handler:      handler.RequestLogger(monitoring.HTTPMetrics(mux)),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")
	close(stopMonitor)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
