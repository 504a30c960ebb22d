package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"silwer/internal/domain"
)

// @Summary Шаблон договора
// @Tags Договор
// @Produce json
// @Success 200 {object} domain.ContractTemplate "Текущий шаблон"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /contract [get]
func (h *Handler) getContractTemplate(c *gin.Context) {
	template, err := h.services.Contract.Get(c.Request.Context())
	if err != nil {
		h.logger.Error("ошибка получения шаблона договора", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, template)
}

// @Summary Обновить шаблон договора
// @Tags Договор
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.UpdateContractTemplateDTO true "Изменяемые поля"
// @Success 200 {object} domain.ContractTemplate "Обновленный шаблон"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Router /admin/contract [put]
func (h *Handler) updateContractTemplate(c *gin.Context) {
	var dto domain.UpdateContractTemplateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные шаблона")
		return
	}

	template, err := h.services.Contract.Update(c.Request.Context(), dto)
	if err != nil {
		h.logger.Error("ошибка обновления шаблона договора", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, template)
}
