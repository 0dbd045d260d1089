package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hostal-backend/controllers"
	"hostal-backend/middleware"
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
	rc *controllers.RoomController,
	resc *controllers.ReservationController,
	pc *controllers.PlanningController,
	hc *controllers.HousekeepingController,
	dc *controllers.DashboardController,
	ic *controllers.ImportController,
	sc *controllers.StaffController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

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

	api := r.Group("/api")
	{
		rooms := api.Group("/habitaciones")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.GET("/:id/detalles", rc.GetRoomDetails)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		reservations := api.Group("/reservas")
		{
			reservations.GET("", resc.GetReservations)
			reservations.POST("", resc.CreateReservation)

			// Fixed paths before /:id so they never collide.
			reservations.GET("/movimientos", resc.GetMovements)
			reservations.POST("/import", ic.ImportReservations)
			reservations.GET("/import/logs", ic.GetImportLogs)

			reservations.GET("/:id", resc.GetReservation)
			reservations.PUT("/:id", resc.UpdateReservation)
			reservations.DELETE("/:id", resc.DeleteReservation)
		}

		api.GET("/planning", pc.GetPlanning)
		api.GET("/limpieza", hc.GetHousekeeping)
		api.GET("/estadisticas", dc.GetStatistics)
		api.GET("/dashboard", dc.GetDashboard)

		staff := api.Group("/encargados")
		{
			staff.GET("", sc.GetStaff)
			staff.POST("", sc.CreateStaff)
			staff.DELETE("/:id", sc.DeleteStaff)
		}
	}

	return r
}
