package handlers

import (
	"bank-marketing-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	inferenceSvc *services.InferenceService
}

func New(inferenceSvc *services.InferenceService) *Handler {
	return &Handler{inferenceSvc: inferenceSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/predict", h.Predict)
	r.GET("/health", h.Health)
}
