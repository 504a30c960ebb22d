package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"silwer/internal/domain"
)

// @Summary Отправить сообщение студии
// @Tags Обратная связь
// @Accept json
// @Produce json
// @Param input body domain.CreateContactMessageDTO true "Сообщение"
// @Success 201 {object} domain.ContactMessage "Принятое сообщение"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Router /contact [post]
func (h *Handler) createContactMessage(c *gin.Context) {
	var dto domain.CreateContactMessageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные сообщения")
		return
	}

	message, err := h.services.Contact.Create(c.Request.Context(), dto)
	if err != nil {
		h.logger.Error("ошибка сохранения сообщения", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, message)
}

// @Summary Входящие сообщения
// @Tags Обратная связь
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} domain.ContactMessage "Сообщения"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /admin/messages [get]
func (h *Handler) getContactMessages(c *gin.Context) {
	messages, err := h.services.Contact.List(c.Request.Context())
	if err != nil {
		h.logger.Error("ошибка получения сообщений", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if messages == nil {
		messages = []domain.ContactMessage{}
	}

	successResponse(c, http.StatusOK, messages)
}

// @Summary Отметить сообщение прочитанным
// @Tags Обратная связь
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID сообщения"
// @Success 200 {object} messageResponseType "Сообщение прочитано"
// @Failure 404 {object} errorResponseBody "Сообщение не найдено"
// @Router /admin/messages/{id}/read [put]
func (h *Handler) markContactMessageRead(c *gin.Context) {
	if err := h.services.Contact.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "сообщение прочитано")
}

// @Summary Удалить сообщение
// @Tags Обратная связь
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID сообщения"
// @Success 200 {object} messageResponseType "Сообщение удалено"
// @Failure 404 {object} errorResponseBody "Сообщение не найдено"
// @Router /admin/messages/{id} [delete]
func (h *Handler) deleteContactMessage(c *gin.Context) {
	if err := h.services.Contact.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "сообщение удалено")
}
