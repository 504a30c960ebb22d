package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"silwer/internal/domain"
)

// @Summary Анкета для типа съемки
// @Description Возвращает активную анкету, которую клиент заполняет перед съемкой
// @Tags Анкеты
// @Produce json
// @Param sessionType path string true "Тип съемки"
// @Success 200 {object} domain.Questionnaire "Анкета"
// @Failure 404 {object} errorResponseBody "Анкета не найдена"
// @Router /questionnaires/{sessionType} [get]
func (h *Handler) getQuestionnaireBySessionType(c *gin.Context) {
	questionnaire, err := h.services.Questionnaire.GetActiveBySessionType(c.Request.Context(), c.Param("sessionType"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, questionnaire)
}

// @Summary Все анкеты
// @Tags Анкеты
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} domain.Questionnaire "Анкеты"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /admin/questionnaires [get]
func (h *Handler) getQuestionnaires(c *gin.Context) {
	questionnaires, err := h.services.Questionnaire.List(c.Request.Context())
	if err != nil {
		h.logger.Error("ошибка получения анкет", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if questionnaires == nil {
		questionnaires = []domain.Questionnaire{}
	}

	successResponse(c, http.StatusOK, questionnaires)
}

// @Summary Анкета по ID
// @Tags Анкеты
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID анкеты"
// @Success 200 {object} domain.Questionnaire "Анкета"
// @Failure 404 {object} errorResponseBody "Анкета не найдена"
// @Router /admin/questionnaires/{id} [get]
func (h *Handler) getQuestionnaireByID(c *gin.Context) {
	questionnaire, err := h.services.Questionnaire.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, questionnaire)
}

// @Summary Создать анкету
// @Tags Анкеты
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateQuestionnaireDTO true "Данные анкеты"
// @Success 201 {object} domain.Questionnaire "Созданная анкета"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Router /admin/questionnaires [post]
func (h *Handler) createQuestionnaire(c *gin.Context) {
	var dto domain.CreateQuestionnaireDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные анкеты")
		return
	}

	questionnaire, err := h.services.Questionnaire.Create(c.Request.Context(), dto)
	if err != nil {
		h.logger.Error("ошибка создания анкеты", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, questionnaire)
}

// @Summary Обновить анкету
// @Tags Анкеты
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID анкеты"
// @Param input body domain.UpdateQuestionnaireDTO true "Изменяемые поля"
// @Success 200 {object} domain.Questionnaire "Обновленная анкета"
// @Failure 404 {object} errorResponseBody "Анкета не найдена"
// @Router /admin/questionnaires/{id} [put]
func (h *Handler) updateQuestionnaire(c *gin.Context) {
	var dto domain.UpdateQuestionnaireDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные данные анкеты")
		return
	}

	questionnaire, err := h.services.Questionnaire.Update(c.Request.Context(), c.Param("id"), dto)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, questionnaire)
}

// @Summary Удалить анкету
// @Tags Анкеты
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID анкеты"
// @Success 200 {object} messageResponseType "Анкета удалена"
// @Failure 404 {object} errorResponseBody "Анкета не найдена"
// @Router /admin/questionnaires/{id} [delete]
func (h *Handler) deleteQuestionnaire(c *gin.Context) {
	if err := h.services.Questionnaire.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "анкета удалена")
}
