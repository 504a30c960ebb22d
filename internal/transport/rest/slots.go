package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"silwer/internal/domain"
)

func rangeParams(c *gin.Context) (string, string, bool) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		badRequestResponse(c, "параметры start и end обязательны")
		return "", "", false
	}
	return start, end, true
}

// @Summary Список заблокированных слотов за период
// @Tags Слоты
// @Security ApiKeyAuth
// @Produce json
// @Param start query string true "Начало периода YYYY-MM-DD"
// @Param end query string true "Конец периода YYYY-MM-DD"
// @Success 200 {array} domain.BlockedSlot "Заблокированные слоты"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /admin/slots/blocked [get]
func (h *Handler) getBlockedSlots(c *gin.Context) {
	start, end, ok := rangeParams(c)
	if !ok {
		return
	}

	slots, err := h.services.Slot.ListBlocked(c.Request.Context(), start, end)
	if err != nil {
		h.logger.Error("ошибка получения блокировок", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if slots == nil {
		slots = []domain.BlockedSlot{}
	}

	successResponse(c, http.StatusOK, slots)
}

// @Summary Заблокировать слот
// @Tags Слоты
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateBlockedSlotDTO true "Дата, время и причина"
// @Success 201 {object} domain.BlockedSlot "Созданная блокировка"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Router /admin/slots/blocked [post]
func (h *Handler) createBlockedSlot(c *gin.Context) {
	var dto domain.CreateBlockedSlotDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные слота")
		return
	}

	slot, err := h.services.Slot.CreateBlocked(c.Request.Context(), dto)
	if err != nil {
		h.logger.Warn("ошибка блокировки слота", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, slot)
}

// @Summary Снять блокировку слота
// @Tags Слоты
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID блокировки"
// @Success 200 {object} messageResponseType "Блокировка снята"
// @Failure 404 {object} errorResponseBody "Блокировка не найдена"
// @Router /admin/slots/blocked/{id} [delete]
func (h *Handler) deleteBlockedSlot(c *gin.Context) {
	if err := h.services.Slot.DeleteBlocked(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "блокировка снята")
}

// @Summary Список разовых слотов за период
// @Tags Слоты
// @Security ApiKeyAuth
// @Produce json
// @Param start query string true "Начало периода YYYY-MM-DD"
// @Param end query string true "Конец периода YYYY-MM-DD"
// @Success 200 {array} domain.CustomSlot "Разовые слоты"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /admin/slots/custom [get]
func (h *Handler) getCustomSlots(c *gin.Context) {
	start, end, ok := rangeParams(c)
	if !ok {
		return
	}

	slots, err := h.services.Slot.ListCustom(c.Request.Context(), start, end)
	if err != nil {
		h.logger.Error("ошибка получения разовых слотов", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if slots == nil {
		slots = []domain.CustomSlot{}
	}

	successResponse(c, http.StatusOK, slots)
}

// @Summary Добавить разовый слот
// @Description Повторная пара (дата, время) отклоняется конфликтом
// @Tags Слоты
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateCustomSlotDTO true "Дата, время и тип съемки"
// @Success 201 {object} domain.CustomSlot "Созданный слот"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Failure 409 {object} errorResponseBody "Слот уже существует"
// @Router /admin/slots/custom [post]
func (h *Handler) createCustomSlot(c *gin.Context) {
	var dto domain.CreateCustomSlotDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные слота")
		return
	}

	slot, err := h.services.Slot.CreateCustom(c.Request.Context(), dto)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, slot)
}

// @Summary Удалить разовый слот
// @Tags Слоты
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID слота"
// @Success 200 {object} messageResponseType "Слот удален"
// @Failure 404 {object} errorResponseBody "Слот не найден"
// @Router /admin/slots/custom/{id} [delete]
func (h *Handler) deleteCustomSlot(c *gin.Context) {
	if err := h.services.Slot.DeleteCustom(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "слот удален")
}
