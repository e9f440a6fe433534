package routes

import (
	coreport "github.com/multinvest/platform/internal/domain/port/core"
	"github.com/multinvest/platform/internal/infrastructure/adapter/api/handler"
	"github.com/multinvest/platform/internal/infrastructure/adapter/api/middleware"
	"github.com/multinvest/platform/internal/infrastructure/adapter/auth"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(
	router *gin.Engine,
	sessions *auth.SessionManager,
	authHandler *handler.AuthHandler,
	pageHandler *handler.PageHandler,
	investmentHandler *handler.InvestmentHandler,
	withdrawalHandler *handler.WithdrawalHandler,
	adminHandler *handler.AdminHandler,
	logger coreport.Logger,
) {
	// Public pages
	router.GET("/", pageHandler.Index)
	router.GET("/contact", pageHandler.Contact)
	router.GET("/signup", authHandler.SignupPage)
	router.POST("/signup", authHandler.Signup)
	router.GET("/login", authHandler.LoginPage)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	// Authenticated pages and actions
	userRoutes := router.Group("/", middleware.RequireUser(sessions, logger))
	{
		userRoutes.GET("/dashboard", pageHandler.Dashboard)
		userRoutes.GET("/opportunities", pageHandler.Opportunities)
		userRoutes.POST("/invest", investmentHandler.Invest)
		userRoutes.POST("/withdraw", withdrawalHandler.Withdraw)
	}

	// Administrator pages and actions
	adminRoutes := router.Group("/admin", middleware.RequireAdmin(sessions, logger))
	{
		adminRoutes.GET("", adminHandler.Overview)
		adminRoutes.GET("/approve_investment/:id", adminHandler.ApproveInvestment)
		adminRoutes.GET("/approve_withdrawal/:id", adminHandler.ApproveWithdrawal)
		adminRoutes.GET("/delete_user/:id", adminHandler.DeleteUser)
	}
}

// SetupMiddlewares configures global middlewares
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
