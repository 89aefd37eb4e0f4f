package routes

import (
	"github.com/campo22/food-delivery-app/configs"
	"github.com/campo22/food-delivery-app/controllers"
	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/middlewares"
	"github.com/campo22/food-delivery-app/repository"
	"github.com/campo22/food-delivery-app/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	ingRepo := repository.NewIngredientRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, cartRepo)
	cartSvc := services.NewCartService(db, cartRepo, foodRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, restRepo, userRepo)
	restSvc := services.NewRestaurantService(db, restRepo)
	foodSvc := services.NewFoodService(db, foodRepo, restRepo, catRepo)
	catSvc := services.NewCategoryService(db, catRepo, restRepo)
	ingSvc := services.NewIngredientService(db, ingRepo, restRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cfg)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	foodCtrl := controllers.NewFoodController(foodSvc)
	catCtrl := controllers.NewCategoryController(catSvc)
	ingCtrl := controllers.NewIngredientController(ingSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg), authCtrl.Me)

	// Public browse
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/foods", foodCtrl.ListByRestaurant)
	r.GET("/restaurants/:id/categories", catCtrl.ListByRestaurant)
	r.GET("/foods/search", foodCtrl.Search)
	r.GET("/foods/:id", foodCtrl.Detail)

	// Customer (any authenticated user)
	u := r.Group("/", middlewares.AuthMiddleware(cfg))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items", cartCtrl.UpdateQuantity)
		u.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/orders", orderCtrl.Checkout)
		u.GET("/orders", orderCtrl.ListMine)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.PUT("/orders/:id/cancel", orderCtrl.Cancel)

		u.PUT("/restaurants/:id/favorite", restCtrl.AddFavorite)
		u.GET("/profile/favorites", restCtrl.ListFavorites)
	}

	// Partner (owner/admin)
	p := r.Group("/partner", middlewares.AuthMiddleware(cfg, entity.RoleOwner, entity.RoleAdmin))
	{
		p.POST("/restaurants", restCtrl.Create)
		p.GET("/restaurants/mine", restCtrl.Mine)
		p.PUT("/restaurants/:id", restCtrl.Update)
		p.PUT("/restaurants/:id/status", restCtrl.ToggleOpen)
		p.DELETE("/restaurants/:id", restCtrl.Delete)
		p.GET("/restaurants/:id/orders", orderCtrl.ListForRestaurant)
		p.GET("/restaurants/:id/ingredients", ingCtrl.ListByRestaurant)
		p.GET("/restaurants/:id/ingredient-categories", ingCtrl.ListCategories)

		p.POST("/categories", catCtrl.Create)

		p.POST("/foods", foodCtrl.Create)
		p.PUT("/foods/:id/availability", foodCtrl.ToggleAvailability)
		p.DELETE("/foods/:id", foodCtrl.Delete)

		p.POST("/ingredient-categories", ingCtrl.CreateCategory)
		p.POST("/ingredients", ingCtrl.CreateItem)
		p.PUT("/ingredients/:id/stock", ingCtrl.ToggleStock)

		p.PUT("/orders/:id/status", orderCtrl.UpdateStatus)
	}
}
