package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"silwer/internal/domain"
)

// @Summary Список активных пакетов
// @Tags Пакеты
// @Produce json
// @Param session_type query string false "Тип съемки"
// @Success 200 {array} domain.Package "Активные пакеты"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /packages [get]
func (h *Handler) getPackages(c *gin.Context) {
	filter := domain.PackageFilter{ActiveOnly: true}
	if sessionType := c.Query("session_type"); sessionType != "" {
		filter.SessionType = &sessionType
	}

	packages, err := h.services.Package.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка получения пакетов", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if packages == nil {
		packages = []domain.Package{}
	}

	successResponse(c, http.StatusOK, packages)
}

// @Summary Все пакеты, включая неактивные
// @Tags Пакеты
// @Security ApiKeyAuth
// @Produce json
// @Param session_type query string false "Тип съемки"
// @Success 200 {array} domain.Package "Все пакеты"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /admin/packages [get]
func (h *Handler) getAllPackages(c *gin.Context) {
	filter := domain.PackageFilter{}
	if sessionType := c.Query("session_type"); sessionType != "" {
		filter.SessionType = &sessionType
	}

	packages, err := h.services.Package.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка получения пакетов", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if packages == nil {
		packages = []domain.Package{}
	}

	successResponse(c, http.StatusOK, packages)
}

// @Summary Создать пакет
// @Tags Пакеты
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.CreatePackageDTO true "Данные пакета"
// @Success 201 {object} domain.Package "Созданный пакет"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Router /admin/packages [post]
func (h *Handler) createPackage(c *gin.Context) {
	var dto domain.CreatePackageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные пакета")
		return
	}

	pkg, err := h.services.Package.Create(c.Request.Context(), dto)
	if err != nil {
		h.logger.Error("ошибка создания пакета", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, pkg)
}

// @Summary Обновить пакет
// @Tags Пакеты
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID пакета"
// @Param input body domain.UpdatePackageDTO true "Изменяемые поля"
// @Success 200 {object} domain.Package "Обновленный пакет"
// @Failure 404 {object} errorResponseBody "Пакет не найден"
// @Router /admin/packages/{id} [put]
func (h *Handler) updatePackage(c *gin.Context) {
	var dto domain.UpdatePackageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные пакета")
		return
	}

	pkg, err := h.services.Package.Update(c.Request.Context(), c.Param("id"), dto)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, pkg)
}

// @Summary Удалить пакет
// @Tags Пакеты
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID пакета"
// @Success 200 {object} messageResponseType "Пакет удален"
// @Failure 404 {object} errorResponseBody "Пакет не найден"
// @Router /admin/packages/{id} [delete]
func (h *Handler) deletePackage(c *gin.Context) {
	if err := h.services.Package.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "пакет удален")
}
