package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"bank-marketing-service/internal/adapters/primary/http/dto"
	"bank-marketing-service/internal/core/domain"
)

func (h *Handler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.inferenceSvc.Predict(req.ToRawRequest(), c.GetString("request_id"))
	if err != nil {
		log.WithError(err).Warn("predict failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictionResponse(result))
}

func (h *Handler) Health(c *gin.Context) {
	state := h.inferenceSvc.Health()

	status := http.StatusServiceUnavailable
	if state == domain.StateReady {
		status = http.StatusOK
	}
	c.JSON(status, dto.HealthResponse{Status: string(state)})
}
