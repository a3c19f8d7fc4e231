package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/olvera93/FoodApp/configs"
	"github.com/olvera93/FoodApp/controllers"
	"github.com/olvera93/FoodApp/entity"
	"github.com/olvera93/FoodApp/gateway"
	"github.com/olvera93/FoodApp/mailer"
	"github.com/olvera93/FoodApp/middlewares"
	"github.com/olvera93/FoodApp/repository"
	"github.com/olvera93/FoodApp/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": 200, "message": "ok"}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// External collaborators
	stripeGW := gateway.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeTimeout)
	smtp := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)

	// Services
	notifier := services.NewNotificationService(notificationRepo, smtp)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	menuSvc := services.NewMenuService(menuRepo, categoryRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo, notifier, cfg.PaymentLinkBase)
	paymentSvc := services.NewPaymentService(db, paymentRepo, orderRepo, userRepo, stripeGW, notifier, cfg.Currency)
	reviewSvc := services.NewReviewService(reviewRepo, orderRepo, menuRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	admin := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Users
	users := r.Group("/users")
	{
		users.GET("/me", auth, userCtrl.Me)
		users.PATCH("/me", auth, userCtrl.UpdateMe)
		users.GET("", admin, userCtrl.List)
	}

	// Catalog (public reads, admin writes)
	r.GET("/categories", categoryCtrl.List)
	r.GET("/categories/:id", categoryCtrl.Detail)
	r.POST("/categories", admin, categoryCtrl.Create)
	r.PUT("/categories/:id", admin, categoryCtrl.Update)
	r.DELETE("/categories/:id", admin, categoryCtrl.Delete)

	r.GET("/menus", menuCtrl.List)
	r.GET("/menus/:id", menuCtrl.Detail)
	r.GET("/menus/:id/reviews", reviewCtrl.ListByMenu)
	r.POST("/menus", admin, menuCtrl.Create)
	r.PUT("/menus/:id", admin, menuCtrl.Update)
	r.DELETE("/menus/:id", admin, menuCtrl.Delete)

	// Cart (always scoped to the authenticated caller)
	cart := r.Group("/cart", auth)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/increment", cartCtrl.Increment)
		cart.PATCH("/items/decrement", cartCtrl.Decrement)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders
	orders := r.Group("/orders", auth)
	{
		orders.POST("/checkout", orderCtrl.Checkout)
		orders.GET("/me", orderCtrl.ListMine)
		orders.GET("/:id", orderCtrl.Detail)
	}
	r.GET("/orders", admin, orderCtrl.List)
	r.PATCH("/orders/:id/status", admin, orderCtrl.UpdateStatus)

	// Payments
	r.POST("/payments/initialize", auth, paymentCtrl.Initialize)
	r.PUT("/payments/update", admin, paymentCtrl.Update)
	r.GET("/payments", admin, paymentCtrl.List)
	r.GET("/payments/:id", admin, paymentCtrl.Detail)

	// Reviews
	r.POST("/reviews", auth, reviewCtrl.Create)
}
