package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"finance-server/auth"
	"finance-server/cache"
	"finance-server/confs"
	"finance-server/db"
	"finance-server/handlers"
	httpHandler "finance-server/handlers/http"
	"finance-server/repositories"
	"finance-server/services"
	"finance-server/usecases"
	"finance-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app       *gin.Engine
	cfg       *confs.Config
	db        db.Database
	scheduler *services.ReminderScheduler
}

func NewServer(cfg *confs.Config, database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		cfg: cfg,
		db:  database,
	}
}

// Start wires routes and serves until ctx is cancelled, then shuts the
// scheduler and listener down cleanly.
func (s *Server) Start(ctx context.Context) error {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	expenseRepo := repositories.NewExpensePgRepository(s.db)
	incomeRepo := repositories.NewIncomePgRepository(s.db)
	budgetRepo := repositories.NewBudgetPgRepository(s.db)
	reminderRepo := repositories.NewReminderPgRepository(s.db)

	// Token issuer and use cases
	tokens := auth.NewTokenIssuer(s.cfg.JWTSecret, s.cfg.TokenTTL)
	authUseCase := usecases.NewAuthUseCase(userRepo, tokens)
	expenseUseCase := usecases.NewExpenseUseCase(expenseRepo)
	incomeUseCase := usecases.NewIncomeUseCase(incomeRepo)
	budgetUseCase := usecases.NewBudgetUseCase(budgetRepo)
	reminderUseCase := usecases.NewReminderUseCase(reminderRepo)

	// Notification plumbing
	store := cache.NewNotificationStore()
	hub := ws.NewManager()
	s.scheduler = services.NewReminderScheduler(reminderRepo, store, hub)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	expenseHandler := httpHandler.NewExpenseHandler(expenseUseCase)
	incomeHandler := httpHandler.NewIncomeHandler(incomeUseCase)
	budgetHandler := httpHandler.NewBudgetHandler(budgetUseCase)
	reminderHandler := httpHandler.NewReminderHandler(reminderUseCase)
	notificationHandler := handlers.NewNotificationHandler(store)
	wsHandler := handlers.NewWSHandler(hub, userRepo, tokens)

	protect := httpHandler.AuthMiddleware(userRepo, tokens)

	// Setup API routes
	api := s.app.Group("/api")
	{
		// Auth routes; signup and signin bypass the middleware
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/signin", authHandler.Signin)
			authGroup.GET("/profile", protect, authHandler.GetProfile)
			authGroup.PUT("/profile", protect, authHandler.UpdateProfile)
			authGroup.PUT("/password", protect, authHandler.UpdatePassword)
		}

		expense := api.Group("/expense", protect)
		{
			expense.GET("", expenseHandler.List)
			expense.POST("", expenseHandler.Create)
			expense.GET("/date/:date", expenseHandler.ListByDate)
			expense.GET("/range/:start/:end", expenseHandler.ListByRange)
			expense.DELETE("/:id", expenseHandler.Delete)
		}

		income := api.Group("/income", protect)
		{
			income.GET("", incomeHandler.List)
			income.POST("", incomeHandler.Create)
			income.GET("/date/:date", incomeHandler.ListByDate)
			income.GET("/range/:start/:end", incomeHandler.ListByRange)
			income.DELETE("/:id", incomeHandler.Delete)
		}

		budget := api.Group("/budget", protect)
		{
			budget.GET("", budgetHandler.List)
			budget.POST("", budgetHandler.Create)
			budget.GET("/:id", budgetHandler.Get)
			budget.PUT("/:id", budgetHandler.Update)
			budget.DELETE("/:id", budgetHandler.Delete)
			budget.PATCH("/:id/status", budgetHandler.UpdateStatus)
			budget.PATCH("/:id/item/:itemId", budgetHandler.UpdateItem)
		}

		reminder := api.Group("/reminder", protect)
		{
			reminder.GET("", reminderHandler.List)
			reminder.POST("", reminderHandler.Create)
			reminder.GET("/:id", reminderHandler.Get)
			reminder.PUT("/:id", reminderHandler.Update)
			reminder.DELETE("/:id", reminderHandler.Delete)
			reminder.PATCH("/:id/complete", reminderHandler.SetCompleted)
		}

		notification := api.Group("/notification", protect)
		{
			notification.GET("", notificationHandler.List)
			notification.GET("/stats", notificationHandler.Stats)
			notification.DELETE("/:id", notificationHandler.Dismiss)
		}
	}

	s.app.GET("/ws", wsHandler.HandleNotificationWS)

	s.scheduler.Start()
	defer s.scheduler.Stop()

	srv := &http.Server{
		Addr:    "0.0.0.0:" + s.cfg.Port,
		Handler: s.app,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server running on port %s", s.cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Println("Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
