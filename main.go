package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hostel-backend/config"
	"hostel-backend/controllers"
	"hostel-backend/routes"
	"hostel-backend/services"
)

func main() {
	// Resolve configuration (.env optional; JWT_SECRET required)
	config.LoadConfig()

	// Connect database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	roomService := services.NewRoomService(db)
	allocationService := services.NewAllocationService(db)
	requestService := services.NewRoomRequestService(db)
	hostelService := services.NewHostelService(db)
	studentService := services.NewStudentService(db)

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService)
	allocationController := controllers.NewAllocationController(allocationService)
	requestController := controllers.NewRoomRequestController(requestService)
	hostelController := controllers.NewHostelController(hostelService)
	studentController := controllers.NewStudentController(studentService)

	// Build router
	router := routes.SetupRouter(
		roomController,
		allocationController,
		requestController,
		hostelController,
		studentController,
	)

	addr := ":" + config.AppConfig.Port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
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
