package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/razeAb/resturant-system-sub001/internal/auth"
	"github.com/razeAb/resturant-system-sub001/internal/cart"
	"github.com/razeAb/resturant-system-sub001/internal/db"
	"github.com/razeAb/resturant-system-sub001/internal/middleware"
	"github.com/razeAb/resturant-system-sub001/internal/order"
	"github.com/razeAb/resturant-system-sub001/internal/product"
	"github.com/razeAb/resturant-system-sub001/internal/session"
	"github.com/razeAb/resturant-system-sub001/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"BUSINESS_PHONE",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── SESSIONS + CARTS ─────────────────────────
	sessions := session.NewRegistry()
	carts := cart.NewStore()

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService, sessions, carts)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", middleware.AuthMiddleware(sessions), authHandler.Logout)
	}

	// ───────────────────────── CATALOG ─────────────────────────
	productRepo := product.NewPostgresRepository(pgDB)
	productService := product.NewService(productRepo, r2Client)
	productHandler := product.NewHandler(productService)
	adminProductHandler := product.NewAdminHandler(productService)

	r.GET("/menu", productHandler.Menu)
	r.GET("/menu/:id", productHandler.Get)

	// ───────────────────────── CART ─────────────────────────
	cartHandler := cart.NewHandler(carts, authService)

	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.OptionalAuth(sessions))
	{
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.DELETE("/items/:lineId", cartHandler.RemoveItem)
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/coupon", cartHandler.ApplyCoupon)
	}

	// ───────────────────────── ORDERS ─────────────────────────
	orderRepo := order.NewPostgresRepository(pgDB)
	orderService := order.NewService(orderRepo, carts, authService)
	orderHandler := order.NewHandler(orderService)
	adminOrderHandler := order.NewAdminHandler(orderService)

	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.OptionalAuth(sessions))
	{
		orderGroup.POST("", orderHandler.Checkout)
		orderGroup.POST("/whatsapp", orderHandler.WhatsAppCheckout)
	}
	r.GET("/orders/mine", middleware.AuthMiddleware(sessions), orderHandler.ListMine)

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(sessions),
		middleware.RequireRole(auth.RoleStaff, auth.RoleAdmin),
	)
	{
		// Orders dashboard
		admin.GET("/orders", adminOrderHandler.List)
		admin.PATCH("/orders/:id/status", adminOrderHandler.UpdateStatus)

		// Catalog management
		admin.GET("/products", adminProductHandler.List)
		admin.POST("/products", adminProductHandler.Create)
		admin.PUT("/products/:id", adminProductHandler.Update)
		admin.DELETE("/products/:id", adminProductHandler.Delete)
		admin.PATCH("/products/:id/availability", adminProductHandler.SetAvailability)
		admin.POST("/products/:id/image", adminProductHandler.UploadImage)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
