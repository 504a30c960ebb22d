package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"silwer/internal/domain"
)

// @Summary Получить доступное время на дату
// @Description Возвращает свободные слоты с учетом расписания, броней, блокировок и внешнего календаря
// @Tags Доступность
// @Accept json
// @Produce json
// @Param date query string true "Дата в формате YYYY-MM-DD"
// @Param session_type query string false "Тип съемки"
// @Success 200 {object} domain.AvailableTimesResult "Доступное время"
// @Failure 400 {object} errorResponseBody "Не указана дата"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /availability [get]
func (h *Handler) getAvailableTimes(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		badRequestResponse(c, "параметр date обязателен")
		return
	}

	sessionType := c.Query("session_type")

	result, err := h.services.Availability.AvailableTimes(c.Request.Context(), date, sessionType)
	if err != nil {
		h.logger.Error("ошибка расчета доступности", zap.String("date", date), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, result)
}

// @Summary Календарь администратора за период
// @Description Единый оверлей: брони, блокировки, личные события и открытые слоты
// @Tags Доступность
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param start query string true "Начало периода YYYY-MM-DD"
// @Param end query string true "Конец периода YYYY-MM-DD"
// @Success 200 {object} domain.CalendarViewResult "События календаря"
// @Failure 400 {object} errorResponseBody "Некорректный период"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /admin/calendar/view [get]
func (h *Handler) getCalendarView(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		badRequestResponse(c, "параметры start и end обязательны")
		return
	}

	result, err := h.services.Availability.CalendarView(c.Request.Context(), start, end)
	if err != nil {
		h.logger.Error("ошибка построения календаря",
			zap.String("start", start),
			zap.String("end", end),
			zap.Error(err),
		)
		badRequestResponse(c, "некорректный период")
		return
	}

	successResponse(c, http.StatusOK, result)
}

// @Summary Список календарей провайдера
// @Tags Календарь
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} domain.CalendarInfo "Календари учетной записи"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /admin/calendar/calendars [get]
func (h *Handler) getCalendars(c *gin.Context) {
	calendars, err := h.services.Calendar.ListCalendars(c.Request.Context())
	if err != nil {
		h.logger.Error("ошибка получения списка календарей", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if calendars == nil {
		calendars = []domain.CalendarInfo{}
	}

	successResponse(c, http.StatusOK, calendars)
}

// @Summary Принудительно обновить кэш календаря
// @Tags Календарь
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} messageResponseType "Кэш обновлен"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /admin/calendar/refresh [post]
func (h *Handler) refreshCalendarCache(c *gin.Context) {
	if err := h.services.Calendar.Refresh(c.Request.Context()); err != nil {
		h.logger.Error("ошибка обновления кэша календаря", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	messageResponse(c, http.StatusOK, "кэш календаря обновлен")
}
