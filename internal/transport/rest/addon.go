package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"silwer/internal/domain"
)

// @Summary Список активных дополнительных услуг
// @Tags Услуги
// @Produce json
// @Param session_type query string false "Тип съемки"
// @Success 200 {array} domain.Addon "Услуги"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /addons [get]
func (h *Handler) getAddons(c *gin.Context) {
	addons, err := h.services.Addon.List(c.Request.Context(), true, c.Query("session_type"))
	if err != nil {
		h.logger.Error("ошибка получения услуг", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if addons == nil {
		addons = []domain.Addon{}
	}

	successResponse(c, http.StatusOK, addons)
}

// @Summary Все дополнительные услуги
// @Tags Услуги
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} domain.Addon "Все услуги"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /admin/addons [get]
func (h *Handler) getAllAddons(c *gin.Context) {
	addons, err := h.services.Addon.List(c.Request.Context(), false, "")
	if err != nil {
		h.logger.Error("ошибка получения услуг", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if addons == nil {
		addons = []domain.Addon{}
	}

	successResponse(c, http.StatusOK, addons)
}

// @Summary Создать дополнительную услугу
// @Tags Услуги
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateAddonDTO true "Данные услуги"
// @Success 201 {object} domain.Addon "Созданная услуга"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Router /admin/addons [post]
func (h *Handler) createAddon(c *gin.Context) {
	var dto domain.CreateAddonDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные услуги")
		return
	}

	addon, err := h.services.Addon.Create(c.Request.Context(), dto)
	if err != nil {
		h.logger.Error("ошибка создания услуги", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, addon)
}

// @Summary Обновить дополнительную услугу
// @Tags Услуги
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID услуги"
// @Param input body domain.UpdateAddonDTO true "Изменяемые поля"
// @Success 200 {object} domain.Addon "Обновленная услуга"
// @Failure 404 {object} errorResponseBody "Услуга не найдена"
// @Router /admin/addons/{id} [put]
func (h *Handler) updateAddon(c *gin.Context) {
	var dto domain.UpdateAddonDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные услуги")
		return
	}

	addon, err := h.services.Addon.Update(c.Request.Context(), c.Param("id"), dto)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, addon)
}

// @Summary Удалить дополнительную услугу
// @Tags Услуги
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID услуги"
// @Success 200 {object} messageResponseType "Услуга удалена"
// @Failure 404 {object} errorResponseBody "Услуга не найдена"
// @Router /admin/addons/{id} [delete]
func (h *Handler) deleteAddon(c *gin.Context) {
	if err := h.services.Addon.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "услуга удалена")
}
