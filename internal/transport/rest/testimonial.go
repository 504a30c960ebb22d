package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"silwer/internal/domain"
)

// @Summary Одобренные отзывы
// @Tags Отзывы
// @Produce json
// @Success 200 {array} domain.Testimonial "Отзывы"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /testimonials [get]
func (h *Handler) getTestimonials(c *gin.Context) {
	testimonials, err := h.services.Testimonial.List(c.Request.Context(), true)
	if err != nil {
		h.logger.Error("ошибка получения отзывов", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if testimonials == nil {
		testimonials = []domain.Testimonial{}
	}

	successResponse(c, http.StatusOK, testimonials)
}

// @Summary Оставить отзыв
// @Description Отзыв публикуется после одобрения администратором
// @Tags Отзывы
// @Accept json
// @Produce json
// @Param input body domain.CreateTestimonialDTO true "Данные отзыва"
// @Success 201 {object} domain.Testimonial "Созданный отзыв"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Router /testimonials [post]
func (h *Handler) createTestimonial(c *gin.Context) {
	var dto domain.CreateTestimonialDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные отзыва")
		return
	}

	testimonial, err := h.services.Testimonial.Create(c.Request.Context(), dto)
	if err != nil {
		h.logger.Error("ошибка создания отзыва", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, testimonial)
}

// @Summary Все отзывы
// @Tags Отзывы
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} domain.Testimonial "Все отзывы"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /admin/testimonials [get]
func (h *Handler) getAllTestimonials(c *gin.Context) {
	testimonials, err := h.services.Testimonial.List(c.Request.Context(), false)
	if err != nil {
		h.logger.Error("ошибка получения отзывов", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if testimonials == nil {
		testimonials = []domain.Testimonial{}
	}

	successResponse(c, http.StatusOK, testimonials)
}

type approveTestimonialRequest struct {
	Approved bool `json:"approved"`
}

// @Summary Одобрить или скрыть отзыв
// @Tags Отзывы
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID отзыва"
// @Param input body approveTestimonialRequest true "Статус одобрения"
// @Success 200 {object} messageResponseType "Статус обновлен"
// @Failure 404 {object} errorResponseBody "Отзыв не найден"
// @Router /admin/testimonials/{id}/approve [put]
func (h *Handler) approveTestimonial(c *gin.Context) {
	var req approveTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "некорректные данные")
		return
	}

	if err := h.services.Testimonial.Approve(c.Request.Context(), c.Param("id"), req.Approved); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "статус отзыва обновлен")
}

// @Summary Удалить отзыв
// @Tags Отзывы
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID отзыва"
// @Success 200 {object} messageResponseType "Отзыв удален"
// @Failure 404 {object} errorResponseBody "Отзыв не найден"
// @Router /admin/testimonials/{id} [delete]
func (h *Handler) deleteTestimonial(c *gin.Context) {
	if err := h.services.Testimonial.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "отзыв удален")
}
