package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hostal-backend/config"
	"hostal-backend/controllers"
	"hostal-backend/routes"
	"hostal-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	roomService := services.NewRoomService(db, config.RoomDeletePolicy())
	reservationService := services.NewReservationService(db)
	planningService := services.NewPlanningService(db)
	housekeepingService := services.NewHousekeepingService(db)
	occupancyService := services.NewOccupancyService(db, reservationService)
	importService := services.NewImportService(db)
	staffService := services.NewStaffService(db)

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService, reservationService)
	reservationController := controllers.NewReservationController(reservationService, occupancyService)
	planningController := controllers.NewPlanningController(planningService)
	housekeepingController := controllers.NewHousekeepingController(housekeepingService)
	dashboardController := controllers.NewDashboardController(occupancyService)
	importController := controllers.NewImportController(importService)
	staffController := controllers.NewStaffController(staffService)

	router := routes.SetupRouter(
		roomController,
		reservationController,
		planningController,
		housekeepingController,
		dashboardController,
		importController,
		staffController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
