package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"reservation-backend/controllers"
	"reservation-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	hc *controllers.HotelController,
	rc *controllers.RoomController,
	sc *controllers.StaffController,
	cc *controllers.CustomerController,
	stc *controllers.StayController,
	svc *controllers.ServiceController,
	bc *controllers.BillingController,
	jwtSecret []byte,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/api/auth/login", ac.Login)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth(jwtSecret))
	{
		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.GetHotels)
			hotels.POST("", hc.CreateHotel)
			hotels.PUT("/:id/manager", hc.ChangeManager)
			hotels.DELETE("/:id", hc.DeleteHotel)

			hotels.GET("/:id/rooms", rc.GetRooms)
			hotels.GET("/:id/rooms/:roomNumber/availability", rc.GetAvailability)
			hotels.PUT("/:id/rooms/:roomNumber/rate", rc.UpdateNightlyRate)
		}

		api.POST("/rooms", rc.CreateRoom)

		staff := api.Group("/staff")
		{
			staff.GET("", sc.GetStaff)
			staff.POST("", sc.CreateStaff)
			staff.PUT("/:id", sc.UpdateStaff)
			staff.DELETE("/:id", sc.DeleteStaff)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", cc.GetCustomers)
			customers.POST("", cc.CreateCustomer)
			customers.DELETE("/:id", cc.DeleteCustomer)
		}

		stays := api.Group("/stays")
		{
			stays.GET("/open", stc.GetOpenStays)
			stays.POST("/check-in", stc.CheckIn)
			stays.POST("/check-out", stc.CheckOut)
			stays.GET("/:id/receipt", bc.GetReceipt)
		}

		servicesGroup := api.Group("/services")
		{
			servicesGroup.GET("/eligible-staff", svc.GetEligibleStaff)
			servicesGroup.POST("", svc.EnterService)
			servicesGroup.PUT("/:id/staff", svc.UpdateServiceStaff)
			servicesGroup.GET("/types", svc.GetServiceTypes)
			servicesGroup.PUT("/types/:name/cost", svc.UpdateServiceCost)
		}

		api.POST("/billing/backfill", bc.Backfill)
	}

	return r
}
