package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"silwer/internal/domain"
)

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// @Summary Вход администратора
// @Tags Авторизация
// @Accept json
// @Produce json
// @Param input body domain.LoginRequest true "Учетные данные"
// @Success 200 {object} domain.Tokens "Пара токенов"
// @Failure 401 {object} errorResponseBody "Неверные учетные данные"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var dto domain.LoginRequest
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "некорректные учетные данные")
		return
	}

	tokens, err := h.services.Auth.Login(c.Request.Context(), dto, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		h.logger.Warn("неудачная попытка входа", zap.String("email", dto.Email), zap.String("ip", c.ClientIP()))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, tokens)
}

// @Summary Обновление пары токенов
// @Tags Авторизация
// @Accept json
// @Produce json
// @Param input body refreshRequest true "Refresh-токен"
// @Success 200 {object} domain.Tokens "Новая пара токенов"
// @Failure 401 {object} errorResponseBody "Недействительный токен"
// @Router /auth/refresh [post]
func (h *Handler) refreshTokens(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "refresh-токен обязателен")
		return
	}

	tokens, err := h.services.Auth.Refresh(c.Request.Context(), req.RefreshToken, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, tokens)
}

// @Summary Выход
// @Tags Авторизация
// @Accept json
// @Produce json
// @Param input body refreshRequest true "Refresh-токен"
// @Success 200 {object} messageResponseType "Сессия завершена"
// @Failure 400 {object} errorResponseBody "Некорректные данные"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "refresh-токен обязателен")
		return
	}

	if err := h.services.Auth.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "сессия завершена")
}
