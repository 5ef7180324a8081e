package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/brado/internal/document"
	"github.com/prefeitura-rio/brado/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// HealthCheck godoc
// @Summary Verificar saúde do serviço
// @Description Verifica se os validadores de documentos estão operacionais
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Serviço saudável"
// @Failure 503 {object} HealthResponse "Serviço indisponível"
// @Router /health [get]
func (h *DocumentHandlers) HealthCheck(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "HealthCheck")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "health_check"),
		attribute.String("service", "health"),
	)

	services := make(map[string]string, len(document.Types))
	status := "healthy"
	for _, t := range document.Types {
		// A freshly generated document must always pass its own validator
		if document.Validate(t, document.Generate(t), false, false) {
			services[t.String()] = "healthy"
		} else {
			services[t.String()] = "unhealthy"
			status = "unhealthy"
		}
	}

	_, responseSpan := utils.TraceResponseSerialization(ctx, status)
	defer responseSpan.End()

	health := HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Services:  services,
	}
	if status != "healthy" {
		h.logger.Error("health check failed")
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	c.JSON(http.StatusOK, health)
}
