package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"silwer/config"
	"silwer/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refreshTokens)
			auth.POST("/logout", h.logout)
		}

		api.GET("/availability", h.getAvailableTimes)

		bookings := api.Group("/bookings")
		{
			bookings.POST("/", h.createBooking)
			bookings.GET("/complete/:token", h.getBookingByToken)
			bookings.POST("/complete/:token", h.completeBooking)
		}

		api.GET("/packages", h.getPackages)
		api.GET("/addons", h.getAddons)
		api.GET("/portfolio", h.getPortfolio)

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("/", h.getTestimonials)
			testimonials.POST("/", h.createTestimonial)
		}

		api.GET("/faqs", h.getFAQs)
		api.POST("/contact", h.createContactMessage)
		api.GET("/questionnaires/:sessionType", h.getQuestionnaireBySessionType)
		api.GET("/contract", h.getContractTemplate)
		api.GET("/payment-settings", h.getPublicPaymentSettings)

		admin := api.Group("/admin")
		admin.Use(h.authMiddleware())
		{
			adminBookings := admin.Group("/bookings")
			{
				adminBookings.GET("/", h.getBookings)
				adminBookings.GET("/:id", h.getBookingByID)
				adminBookings.PUT("/:id", h.updateBooking)
				adminBookings.DELETE("/:id", h.deleteBooking)
				adminBookings.POST("/:id/cancel", h.cancelBooking)
				adminBookings.POST("/manual", h.createManualBooking)
			}

			calendar := admin.Group("/calendar")
			{
				calendar.GET("/view", h.getCalendarView)
				calendar.GET("/calendars", h.getCalendars)
				calendar.POST("/refresh", h.refreshCalendarCache)
			}

			slots := admin.Group("/slots")
			{
				slots.GET("/blocked", h.getBlockedSlots)
				slots.POST("/blocked", h.createBlockedSlot)
				slots.DELETE("/blocked/:id", h.deleteBlockedSlot)

				slots.GET("/custom", h.getCustomSlots)
				slots.POST("/custom", h.createCustomSlot)
				slots.DELETE("/custom/:id", h.deleteCustomSlot)
			}

			settings := admin.Group("/settings")
			{
				settings.GET("/booking", h.getBookingSettings)
				settings.PUT("/booking", h.updateBookingSettings)
				settings.GET("/calendar", h.getCalendarSettings)
				settings.PUT("/calendar", h.updateCalendarSettings)
				settings.GET("/payment", h.getPaymentSettings)
				settings.PUT("/payment", h.updatePaymentSettings)
			}

			packages := admin.Group("/packages")
			{
				packages.GET("/", h.getAllPackages)
				packages.POST("/", h.createPackage)
				packages.PUT("/:id", h.updatePackage)
				packages.DELETE("/:id", h.deletePackage)
			}

			addons := admin.Group("/addons")
			{
				addons.GET("/", h.getAllAddons)
				addons.POST("/", h.createAddon)
				addons.PUT("/:id", h.updateAddon)
				addons.DELETE("/:id", h.deleteAddon)
			}

			portfolio := admin.Group("/portfolio")
			{
				portfolio.POST("/", h.createPortfolioItem)
				portfolio.POST("/upload", h.uploadPortfolioItem)
				portfolio.PUT("/:id", h.updatePortfolioItem)
				portfolio.DELETE("/:id", h.deletePortfolioItem)
			}

			adminTestimonials := admin.Group("/testimonials")
			{
				adminTestimonials.GET("/", h.getAllTestimonials)
				adminTestimonials.PUT("/:id/approve", h.approveTestimonial)
				adminTestimonials.DELETE("/:id", h.deleteTestimonial)
			}

			faqs := admin.Group("/faqs")
			{
				faqs.GET("/", h.getAllFAQs)
				faqs.POST("/", h.createFAQ)
				faqs.PUT("/:id", h.updateFAQ)
				faqs.DELETE("/:id", h.deleteFAQ)
			}

			questionnaires := admin.Group("/questionnaires")
			{
				questionnaires.GET("/", h.getQuestionnaires)
				questionnaires.GET("/:id", h.getQuestionnaireByID)
				questionnaires.POST("/", h.createQuestionnaire)
				questionnaires.PUT("/:id", h.updateQuestionnaire)
				questionnaires.DELETE("/:id", h.deleteQuestionnaire)
			}

			admin.PUT("/contract", h.updateContractTemplate)

			messages := admin.Group("/messages")
			{
				messages.GET("/", h.getContactMessages)
				messages.PUT("/:id/read", h.markContactMessageRead)
				messages.DELETE("/:id", h.deleteContactMessage)
			}
		}
	}
}
