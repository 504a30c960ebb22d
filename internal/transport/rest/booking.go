package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"silwer/internal/domain"
)

// @Summary Создать бронь
// @Description Создает бронь, если выбранный слот доступен
// @Tags Брони
// @Accept json
// @Produce json
// @Param input body domain.CreateBookingDTO true "Данные брони"
// @Success 201 {object} domain.Booking "Созданная бронь"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Failure 409 {object} errorResponseBody "Слот недоступен"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /bookings [post]
func (h *Handler) createBooking(c *gin.Context) {
	var dto domain.CreateBookingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные брони")
		return
	}

	booking, err := h.services.Booking.Create(c.Request.Context(), dto)
	if err != nil {
		h.logger.Warn("ошибка создания брони", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, booking)
}

// @Summary Список броней
// @Tags Брони
// @Security ApiKeyAuth
// @Produce json
// @Param status query string false "Фильтр по статусу"
// @Param date_from query string false "Начало периода YYYY-MM-DD"
// @Param date_to query string false "Конец периода YYYY-MM-DD"
// @Param session_type query string false "Тип съемки"
// @Param limit query int false "Лимит записей (по умолчанию 50)"
// @Param offset query int false "Смещение"
// @Success 200 {object} paginatedResponse "Список броней"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /admin/bookings [get]
func (h *Handler) getBookings(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	filter := domain.BookingFilter{
		Limit:  limit,
		Offset: offset,
	}

	if status := c.Query("status"); status != "" {
		bookingStatus := domain.BookingStatus(status)
		filter.Status = &bookingStatus
	}
	if dateFrom := c.Query("date_from"); dateFrom != "" {
		filter.DateFrom = &dateFrom
	}
	if dateTo := c.Query("date_to"); dateTo != "" {
		filter.DateTo = &dateTo
	}
	if sessionType := c.Query("session_type"); sessionType != "" {
		filter.SessionType = &sessionType
	}

	bookings, total, err := h.services.Booking.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка получения списка броней", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	page := offset/limit + 1
	paginatedSuccessResponse(c, bookings, total, page, limit)
}

// @Summary Получить бронь по ID
// @Tags Брони
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID брони"
// @Success 200 {object} domain.Booking "Данные брони"
// @Failure 404 {object} errorResponseBody "Бронь не найдена"
// @Router /admin/bookings/{id} [get]
func (h *Handler) getBookingByID(c *gin.Context) {
	booking, err := h.services.Booking.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, booking)
}

// @Summary Обновить бронь
// @Tags Брони
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID брони"
// @Param input body domain.UpdateBookingDTO true "Изменяемые поля"
// @Success 200 {object} domain.Booking "Обновленная бронь"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Failure 404 {object} errorResponseBody "Бронь не найдена"
// @Failure 409 {object} errorResponseBody "Новый слот недоступен"
// @Router /admin/bookings/{id} [put]
func (h *Handler) updateBooking(c *gin.Context) {
	var dto domain.UpdateBookingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные брони")
		return
	}

	booking, err := h.services.Booking.Update(c.Request.Context(), c.Param("id"), dto)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, booking)
}

// @Summary Отменить бронь
// @Tags Брони
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID брони"
// @Success 200 {object} messageResponseType "Бронь отменена"
// @Failure 404 {object} errorResponseBody "Бронь не найдена"
// @Router /admin/bookings/{id}/cancel [post]
func (h *Handler) cancelBooking(c *gin.Context) {
	if err := h.services.Booking.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "бронь отменена")
}

// @Summary Удалить бронь
// @Tags Брони
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID брони"
// @Success 200 {object} messageResponseType "Бронь удалена"
// @Failure 404 {object} errorResponseBody "Бронь не найдена"
// @Router /admin/bookings/{id} [delete]
func (h *Handler) deleteBooking(c *gin.Context) {
	id := c.Param("id")

	if err := h.services.Booking.Delete(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	if adminID, err := getAdminID(c); err == nil {
		h.logger.Info("бронь удалена администратором",
			zap.String("booking_id", id),
			zap.Int64("admin_id", adminID),
		)
	}

	messageResponse(c, http.StatusOK, "бронь удалена")
}

type manualBookingResponse struct {
	Booking *domain.Booking `json:"booking"`
	Token   string          `json:"token"`
}

// @Summary Создать ручную бронь
// @Description Администратор резервирует слот; клиент завершает бронь по одноразовой ссылке
// @Tags Брони
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.ManualBookingDTO true "Данные ручной брони"
// @Success 201 {object} manualBookingResponse "Бронь и токен завершения"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Failure 409 {object} errorResponseBody "Слот недоступен"
// @Router /admin/bookings/manual [post]
func (h *Handler) createManualBooking(c *gin.Context) {
	var dto domain.ManualBookingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные брони")
		return
	}

	booking, token, err := h.services.Booking.CreateManual(c.Request.Context(), dto)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, manualBookingResponse{Booking: booking, Token: token})
}

// @Summary Получить бронь по токену завершения
// @Tags Брони
// @Produce json
// @Param token path string true "Токен завершения"
// @Success 200 {object} domain.Booking "Данные брони"
// @Failure 410 {object} errorResponseBody "Токен недействителен"
// @Router /bookings/complete/{token} [get]
func (h *Handler) getBookingByToken(c *gin.Context) {
	booking, err := h.services.Booking.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, booking)
}

// @Summary Завершить ручную бронь
// @Tags Брони
// @Accept json
// @Produce json
// @Param token path string true "Токен завершения"
// @Param input body domain.CompleteBookingDTO true "Выбор клиента"
// @Success 200 {object} domain.Booking "Завершенная бронь"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Failure 410 {object} errorResponseBody "Токен недействителен"
// @Router /bookings/complete/{token} [post]
func (h *Handler) completeBooking(c *gin.Context) {
	var dto domain.CompleteBookingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные")
		return
	}

	booking, err := h.services.Booking.CompleteByToken(c.Request.Context(), c.Param("token"), dto)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, booking)
}
