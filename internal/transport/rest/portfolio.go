package rest

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"silwer/internal/domain"
)

const maxUploadSize = 15 << 20

// @Summary Портфолио
// @Tags Портфолио
// @Produce json
// @Param category query string false "Категория"
// @Param featured query boolean false "Только избранные"
// @Success 200 {array} domain.PortfolioItem "Работы"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /portfolio [get]
func (h *Handler) getPortfolio(c *gin.Context) {
	filter := domain.PortfolioFilter{}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	filter.FeaturedOnly = c.Query("featured") == "true"

	items, err := h.services.Portfolio.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка получения портфолио", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if items == nil {
		items = []domain.PortfolioItem{}
	}

	successResponse(c, http.StatusOK, items)
}

// @Summary Добавить работу по URL
// @Tags Портфолио
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.CreatePortfolioItemDTO true "Данные работы"
// @Success 201 {object} domain.PortfolioItem "Созданная работа"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Router /admin/portfolio [post]
func (h *Handler) createPortfolioItem(c *gin.Context) {
	var dto domain.CreatePortfolioItemDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные работы")
		return
	}

	item, err := h.services.Portfolio.Create(c.Request.Context(), dto)
	if err != nil {
		h.logger.Error("ошибка создания работы", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, item)
}

// @Summary Загрузить работу с изображением
// @Tags Портфолио
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Файл изображения"
// @Param category formData string true "Категория"
// @Param title formData string false "Название"
// @Param description formData string false "Описание"
// @Param featured formData boolean false "Избранная"
// @Param order formData int false "Порядок сортировки"
// @Success 201 {object} domain.PortfolioItem "Созданная работа"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Router /admin/portfolio/upload [post]
func (h *Handler) uploadPortfolioItem(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		badRequestResponse(c, "файл изображения обязателен")
		return
	}
	if fileHeader.Size > maxUploadSize {
		badRequestResponse(c, "файл слишком большой")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		badRequestResponse(c, "не удалось прочитать файл")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		badRequestResponse(c, "не удалось прочитать файл")
		return
	}

	order, _ := strconv.Atoi(c.PostForm("order"))
	dto := domain.CreatePortfolioItemDTO{
		Title:       c.PostForm("title"),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		Featured:    c.PostForm("featured") == "true",
		Order:       order,
	}
	if dto.Category == "" {
		badRequestResponse(c, "категория обязательна")
		return
	}

	item, err := h.services.Portfolio.Upload(c.Request.Context(), dto, data, fileHeader.Filename)
	if err != nil {
		h.logger.Error("ошибка загрузки работы", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, item)
}

// @Summary Обновить работу
// @Tags Портфолио
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID работы"
// @Param input body domain.UpdatePortfolioItemDTO true "Изменяемые поля"
// @Success 200 {object} domain.PortfolioItem "Обновленная работа"
// @Failure 404 {object} errorResponseBody "Работа не найдена"
// @Router /admin/portfolio/{id} [put]
func (h *Handler) updatePortfolioItem(c *gin.Context) {
	var dto domain.UpdatePortfolioItemDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные работы")
		return
	}

	item, err := h.services.Portfolio.Update(c.Request.Context(), c.Param("id"), dto)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, item)
}

// @Summary Удалить работу
// @Tags Портфолио
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID работы"
// @Success 200 {object} messageResponseType "Работа удалена"
// @Failure 404 {object} errorResponseBody "Работа не найдена"
// @Router /admin/portfolio/{id} [delete]
func (h *Handler) deletePortfolioItem(c *gin.Context) {
	if err := h.services.Portfolio.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "работа удалена")
}
