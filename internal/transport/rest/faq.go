package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"silwer/internal/domain"
)

// @Summary Активные вопросы и ответы
// @Tags FAQ
// @Produce json
// @Param category query string false "Категория"
// @Success 200 {array} domain.FAQ "Вопросы и ответы"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /faqs [get]
func (h *Handler) getFAQs(c *gin.Context) {
	var category *string
	if v := c.Query("category"); v != "" {
		category = &v
	}

	faqs, err := h.services.FAQ.List(c.Request.Context(), category, true)
	if err != nil {
		h.logger.Error("ошибка получения FAQ", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if faqs == nil {
		faqs = []domain.FAQ{}
	}

	successResponse(c, http.StatusOK, faqs)
}

// @Summary Все вопросы и ответы
// @Tags FAQ
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} domain.FAQ "Все вопросы и ответы"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /admin/faqs [get]
func (h *Handler) getAllFAQs(c *gin.Context) {
	faqs, err := h.services.FAQ.List(c.Request.Context(), nil, false)
	if err != nil {
		h.logger.Error("ошибка получения FAQ", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if faqs == nil {
		faqs = []domain.FAQ{}
	}

	successResponse(c, http.StatusOK, faqs)
}

// @Summary Создать вопрос
// @Tags FAQ
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateFAQDTO true "Данные вопроса"
// @Success 201 {object} domain.FAQ "Созданный вопрос"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Router /admin/faqs [post]
func (h *Handler) createFAQ(c *gin.Context) {
	var dto domain.CreateFAQDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные вопроса")
		return
	}

	faq, err := h.services.FAQ.Create(c.Request.Context(), dto)
	if err != nil {
		h.logger.Error("ошибка создания вопроса", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, faq)
}

// @Summary Обновить вопрос
// @Tags FAQ
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID вопроса"
// @Param input body domain.UpdateFAQDTO true "Изменяемые поля"
// @Success 200 {object} domain.FAQ "Обновленный вопрос"
// @Failure 404 {object} errorResponseBody "Вопрос не найден"
// @Router /admin/faqs/{id} [put]
func (h *Handler) updateFAQ(c *gin.Context) {
	var dto domain.UpdateFAQDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные вопроса")
		return
	}

	faq, err := h.services.FAQ.Update(c.Request.Context(), c.Param("id"), dto)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, faq)
}

// @Summary Удалить вопрос
// @Tags FAQ
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID вопроса"
// @Success 200 {object} messageResponseType "Вопрос удален"
// @Failure 404 {object} errorResponseBody "Вопрос не найден"
// @Router /admin/faqs/{id} [delete]
func (h *Handler) deleteFAQ(c *gin.Context) {
	if err := h.services.FAQ.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "вопрос удален")
}
