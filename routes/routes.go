package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hostel-backend/config"
	"hostel-backend/controllers"
	"hostel-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := ""
	if config.AppConfig != nil {
		raw = strings.TrimSpace(config.AppConfig.CORSOrigins)
	}
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

// SetupRouter wires controller instances onto the route tree.
func SetupRouter(
	rc *controllers.RoomController,
	ac *controllers.AllocationController,
	rrc *controllers.RoomRequestController,
	hc *controllers.HostelController,
	sc *controllers.StudentController,
) *gin.Engine {
	r := gin.Default()
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
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
			auth.POST("/student/login", controllers.StudentLogin)
			auth.POST("/forgot", controllers.ForgotPassword)
		}

		admins := api.Group("/admins", middleware.AuthRequired(), middleware.AdminRequired())
		{
			admins.GET("", controllers.GetAdmins)
			admins.POST("", controllers.CreateAdmin)
			admins.DELETE("/:id", controllers.DeleteAdmin)
		}

		room := api.Group("/room")
		{
			room.GET("", rc.ListRooms)

			adminOnly := middleware.AdminRequired()
			authed := middleware.AuthRequired()

			room.POST("", authed, adminOnly, rc.CreateRoom)

			// workflow routes must be registered before /:id
			room.POST("/assign", authed, adminOnly, ac.AssignStudent)
			room.POST("/unassign", authed, adminOnly, ac.UnassignStudent)
			room.POST("/allocate", authed, adminOnly, ac.Allocate)

			room.GET("/requests", authed, adminOnly, rrc.ListRequests)
			room.POST("/requests", authed, middleware.StudentRequired(), rrc.CreateRequest)
			room.POST("/requests/:id", authed, adminOnly, rrc.DecideRequest)

			room.GET("/my-requests", authed, middleware.StudentRequired(), rrc.MyRequests)
			room.GET("/student-requests/:studentId", authed, adminOnly, rrc.StudentRequests)

			room.GET("/:id", rc.GetRoom)
			room.PUT("/:id", authed, adminOnly, rc.UpdateRoom)
			room.PATCH("/:id", authed, adminOnly, rc.UpdateRoom)
			room.DELETE("/:id", authed, adminOnly, rc.DeleteRoom)
			room.POST("/:id/reconcile", authed, adminOnly, ac.Reconcile)
		}

		hostel := api.Group("/hostel")
		{
			hostel.GET("", hc.ListHostels)
			hostel.GET("/:id", hc.GetHostel)

			protected := hostel.Group("", middleware.AuthRequired(), middleware.AdminRequired())
			protected.POST("", hc.CreateHostel)
			protected.PUT("/:id", hc.UpdateHostel)
			protected.DELETE("/:id", hc.DeleteHostel)
		}

		student := api.Group("/student", middleware.AuthRequired(), middleware.AdminRequired())
		{
			student.GET("", sc.ListStudents)
			student.GET("/:id", sc.GetStudent)
			student.POST("", sc.CreateStudent)
			student.PUT("/:id", sc.UpdateStudent)
			student.DELETE("/:id", sc.DeleteStudent)
		}

		complaint := api.Group("/complaint")
		{
			complaint.POST("", middleware.AuthRequired(), middleware.StudentRequired(), controllers.CreateComplaint)
			complaint.GET("/mine", middleware.AuthRequired(), middleware.StudentRequired(), controllers.MyComplaints)

			adminSide := complaint.Group("", middleware.AuthRequired(), middleware.AdminRequired())
			adminSide.GET("", controllers.ListComplaints)
			adminSide.POST("/:id/resolve", controllers.ResolveComplaint)
		}

		blog := api.Group("/blog")
		{
			blog.GET("", controllers.ListPosts)
			blog.GET("/:slug", controllers.GetPost)

			protected := blog.Group("", middleware.AuthRequired(), middleware.AdminRequired())
			protected.POST("", controllers.CreatePost)
			protected.PUT("/:id", controllers.UpdatePost)
			protected.DELETE("/:id", controllers.DeletePost)
		}

		donation := api.Group("/donation")
		{
			donation.POST("", controllers.CreateDonation)

			protected := donation.Group("", middleware.AuthRequired(), middleware.AdminRequired())
			protected.GET("", controllers.ListDonations)
			protected.DELETE("/:id", controllers.DeleteDonation)
		}

		paymentMethod := api.Group("/payment-method")
		{
			paymentMethod.GET("", controllers.ListPaymentMethods)

			protected := paymentMethod.Group("", middleware.AuthRequired(), middleware.AdminRequired())
			protected.POST("", controllers.CreatePaymentMethod)
			protected.PUT("/:id", controllers.UpdatePaymentMethod)
			protected.DELETE("/:id", controllers.DeletePaymentMethod)
		}

		content := api.Group("/content")
		{
			content.GET("/hero", controllers.GetHeroContent)
			content.GET("/sliders", controllers.ListSlides)

			protected := content.Group("", middleware.AuthRequired(), middleware.AdminRequired())
			protected.PUT("/hero", controllers.UpdateHeroContent)
			protected.POST("/sliders", controllers.CreateSlide)
			protected.PUT("/sliders/:id", controllers.UpdateSlide)
			protected.DELETE("/sliders/:id", controllers.DeleteSlide)
		}

		contact := api.Group("/contact")
		{
			contact.POST("", controllers.CreateContactMessage)

			protected := contact.Group("", middleware.AuthRequired(), middleware.AdminRequired())
			protected.GET("", controllers.ListContactMessages)
			protected.POST("/:id/respond", controllers.RespondContactMessage)
			protected.DELETE("/:id", controllers.DeleteContactMessage)
		}

		gallery := api.Group("/gallery")
		{
			gallery.GET("", controllers.ListGalleryItems)

			protected := gallery.Group("", middleware.AuthRequired(), middleware.AdminRequired())
			protected.POST("", controllers.CreateGalleryItem)
			protected.PUT("/:id", controllers.UpdateGalleryItem)
			protected.DELETE("/:id", controllers.DeleteGalleryItem)
		}
	}

	return r
}
