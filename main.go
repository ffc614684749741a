package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"reservation-backend/config"
	"reservation-backend/controllers"
	"reservation-backend/routes"
	"reservation-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logrus.Fatal("JWT_SECRET environment variable is not set")
	}

	if err := config.ConnectDatabase(); err != nil {
		logrus.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	logrus.Info("database connection established, migrations applied")

	// Services. The connection is opened once here and handed to each
	// component; nothing keeps process-wide statement state.
	billingService := services.NewBillingService(db)
	reservationService := services.NewReservationService(db, billingService)
	inventoryService := services.NewInventoryService(db)
	hotelService := services.NewHotelService(db)
	roomService := services.NewRoomService(db)
	staffService := services.NewStaffService(db)
	customerService := services.NewCustomerService(db)
	recordService := services.NewServiceRecordService(db)
	typeService := services.NewServiceTypeService(db)
	authService := services.NewAuthService(db, []byte(jwtSecret))

	// Controllers
	authController := controllers.NewAuthController(authService)
	hotelController := controllers.NewHotelController(hotelService)
	roomController := controllers.NewRoomController(roomService, inventoryService)
	staffController := controllers.NewStaffController(staffService)
	customerController := controllers.NewCustomerController(customerService)
	stayController := controllers.NewStayController(reservationService)
	serviceController := controllers.NewServiceController(recordService, typeService)
	billingController := controllers.NewBillingController(billingService)

	router := routes.SetupRouter(
		authController,
		hotelController,
		roomController,
		staffController,
		customerController,
		stayController,
		serviceController,
		billingController,
		[]byte(jwtSecret),
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
		logrus.Infof("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Warn("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("server forced to shutdown: %v", err)
	}

	logrus.Info("server stopped gracefully")
}
