package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"silwer/internal/domain"
)

// @Summary Настройки бронирования
// @Tags Настройки
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} domain.BookingSettings "Текущие настройки"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /admin/settings/booking [get]
func (h *Handler) getBookingSettings(c *gin.Context) {
	settings, err := h.services.Settings.GetBookingSettings(c.Request.Context())
	if err != nil {
		h.logger.Error("ошибка получения настроек бронирования", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, settings)
}

// @Summary Обновить настройки бронирования
// @Tags Настройки
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.UpdateBookingSettingsDTO true "Изменяемые поля"
// @Success 200 {object} domain.BookingSettings "Обновленные настройки"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Router /admin/settings/booking [put]
func (h *Handler) updateBookingSettings(c *gin.Context) {
	var dto domain.UpdateBookingSettingsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные настроек")
		return
	}

	settings, err := h.services.Settings.UpdateBookingSettings(c.Request.Context(), dto)
	if err != nil {
		h.logger.Error("ошибка обновления настроек бронирования", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, settings)
}

// @Summary Настройки календаря
// @Tags Настройки
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} domain.CalendarSettings "Текущие настройки"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /admin/settings/calendar [get]
func (h *Handler) getCalendarSettings(c *gin.Context) {
	settings, err := h.services.Settings.GetCalendarSettings(c.Request.Context())
	if err != nil {
		h.logger.Error("ошибка получения настроек календаря", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	// пароль не возвращается наружу
	masked := *settings
	if masked.CalDAVPassword != "" {
		masked.CalDAVPassword = "********"
	}

	successResponse(c, http.StatusOK, masked)
}

// @Summary Обновить настройки календаря
// @Description Сохраняет учетные данные CalDAV и прогревает кэш событий
// @Tags Настройки
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.UpdateCalendarSettingsDTO true "Изменяемые поля"
// @Success 200 {object} domain.CalendarSettings "Обновленные настройки"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Router /admin/settings/calendar [put]
func (h *Handler) updateCalendarSettings(c *gin.Context) {
	var dto domain.UpdateCalendarSettingsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные настроек")
		return
	}

	settings, err := h.services.Settings.UpdateCalendarSettings(c.Request.Context(), dto)
	if err != nil {
		h.logger.Error("ошибка обновления настроек календаря", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	masked := *settings
	if masked.CalDAVPassword != "" {
		masked.CalDAVPassword = "********"
	}

	successResponse(c, http.StatusOK, masked)
}

// @Summary Настройки оплаты
// @Tags Настройки
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} domain.PaymentSettings "Текущие настройки"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /admin/settings/payment [get]
func (h *Handler) getPaymentSettings(c *gin.Context) {
	settings, err := h.services.Settings.GetPaymentSettings(c.Request.Context())
	if err != nil {
		h.logger.Error("ошибка получения настроек оплаты", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, settings)
}

// @Summary Обновить настройки оплаты
// @Tags Настройки
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.UpdatePaymentSettingsDTO true "Изменяемые поля"
// @Success 200 {object} domain.PaymentSettings "Обновленные настройки"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Router /admin/settings/payment [put]
func (h *Handler) updatePaymentSettings(c *gin.Context) {
	var dto domain.UpdatePaymentSettingsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные настроек")
		return
	}

	settings, err := h.services.Settings.UpdatePaymentSettings(c.Request.Context(), dto)
	if err != nil {
		h.logger.Error("ошибка обновления настроек оплаты", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, settings)
}

// @Summary Публичные реквизиты оплаты
// @Tags Настройки
// @Produce json
// @Success 200 {object} domain.PaymentSettingsPublic "Реквизиты для клиента"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /payment-settings [get]
func (h *Handler) getPublicPaymentSettings(c *gin.Context) {
	settings, err := h.services.Settings.GetPaymentSettings(c.Request.Context())
	if err != nil {
		h.logger.Error("ошибка получения настроек оплаты", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, settings.PublicView())
}
