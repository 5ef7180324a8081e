package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/brado/internal/document"
	"github.com/prefeitura-rio/brado/internal/logging"
	"github.com/prefeitura-rio/brado/internal/models"
	"github.com/prefeitura-rio/brado/internal/observability"
	"github.com/prefeitura-rio/brado/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var errEmptyFormatRequest = errors.New("at least one of cpf or cnpj is required")

// DocumentHandlers handles CPF and CNPJ HTTP requests
type DocumentHandlers struct {
	logger *logging.SafeLogger
}

// NewDocumentHandlers creates a new document handlers instance
func NewDocumentHandlers(logger *logging.SafeLogger) *DocumentHandlers {
	return &DocumentHandlers{logger: logger}
}

// ValidateCPF godoc
// @Summary Validar CPF
// @Description Verifica os dígitos verificadores de um CPF. Com masked=true o CPF deve estar no formato ddd.ddd.ddd-dd, caso contrário deve conter exatamente 11 dígitos. CPFs com todos os dígitos iguais são rejeitados, a menos que ignore_repeated=true.
// @Tags cpf
// @Produce json
// @Param document path string true "CPF a ser validado"
// @Param masked query bool false "CPF com pontuação (padrão: false)"
// @Param ignore_repeated query bool false "Aceitar CPFs com todos os dígitos iguais (padrão: false)"
// @Success 200 {object} models.ValidationResponse "Resultado da validação"
// @Failure 400 {object} ErrorResponse "Parâmetros inválidos"
// @Router /cpf/{document} [get]
func (h *DocumentHandlers) ValidateCPF(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidateCPF")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "validate_cpf"),
		attribute.String("service", "cpf"),
	)

	ctx, paramSpan := utils.TraceInputParsing(ctx, "query_parameters")
	masked, err := queryBool(c, "masked")
	if err != nil {
		h.badQuery(c, paramSpan, "masked", err)
		return
	}
	ignoreRepeated, err := queryBool(c, "ignore_repeated")
	if err != nil {
		h.badQuery(c, paramSpan, "ignore_repeated", err)
		return
	}
	paramSpan.End()

	response := h.validate(ctx, document.TypeCPF, c.Param("document"), masked, ignoreRepeated)

	_, responseSpan := utils.TraceResponseSerialization(ctx, response.Reason)
	c.JSON(http.StatusOK, response)
	responseSpan.End()
}

// ValidateCNPJ godoc
// @Summary Validar CNPJ
// @Description Verifica os dígitos verificadores de um CNPJ. Com masked=true o CNPJ deve estar no formato dd.ddd.ddd/dddd-dd, com a barra codificada como %2F, caso contrário deve conter exatamente 14 dígitos. CNPJs com todos os dígitos iguais são sempre rejeitados.
// @Tags cnpj
// @Produce json
// @Param document path string true "CNPJ a ser validado"
// @Param masked query bool false "CNPJ com pontuação (padrão: false)"
// @Success 200 {object} models.ValidationResponse "Resultado da validação"
// @Failure 400 {object} ErrorResponse "Parâmetros inválidos"
// @Router /cnpj/{document} [get]
func (h *DocumentHandlers) ValidateCNPJ(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidateCNPJ")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "validate_cnpj"),
		attribute.String("service", "cnpj"),
	)

	ctx, paramSpan := utils.TraceInputParsing(ctx, "query_parameters")
	masked, err := queryBool(c, "masked")
	if err != nil {
		h.badQuery(c, paramSpan, "masked", err)
		return
	}
	paramSpan.End()

	response := h.validate(ctx, document.TypeCNPJ, c.Param("document"), masked, false)

	_, responseSpan := utils.TraceResponseSerialization(ctx, response.Reason)
	c.JSON(http.StatusOK, response)
	responseSpan.End()
}

// Validate godoc
// @Summary Validar documento
// @Description Valida um CPF ou CNPJ enviado no corpo da requisição. ignore_repeated só se aplica a CPFs.
// @Tags documents
// @Accept json
// @Produce json
// @Param data body models.ValidationRequest true "Documento a ser validado"
// @Success 200 {object} models.ValidationResponse "Resultado da validação"
// @Failure 400 {object} ErrorResponse "Corpo da requisição inválido"
// @Router /validate [post]
func (h *DocumentHandlers) Validate(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "Validate")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "validate_document"),
		attribute.String("service", "documents"),
	)

	ctx, inputSpan := utils.TraceInputParsing(ctx, "validation_request")
	var req models.ValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RecordErrorInSpan(inputSpan, err, map[string]interface{}{
			"input.type": "validation_request",
		})
		inputSpan.End()
		h.logger.Warn("invalid validation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	inputSpan.End()

	response, err := h.validateRequest(ctx, req)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{
			"document.type": req.Type,
		})
		h.logger.Warn("unsupported document type", zap.String("type", req.Type))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	_, responseSpan := utils.TraceResponseSerialization(ctx, response.Reason)
	c.JSON(http.StatusOK, response)
	responseSpan.End()
}

// Format godoc
// @Summary Formatar documentos
// @Description Retorna as formas sem pontuação e com pontuação de um CPF e/ou CNPJ válidos. Documentos inválidos são rejeitados.
// @Tags documents
// @Accept json
// @Produce json
// @Param data body models.FormatRequest true "Documentos a serem formatados"
// @Success 200 {object} models.FormatResponse "Documentos formatados"
// @Failure 400 {object} ErrorResponse "Documento inválido ou ausente"
// @Router /format [post]
func (h *DocumentHandlers) Format(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "Format")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "format_documents"),
		attribute.String("service", "documents"),
	)

	ctx, inputSpan := utils.TraceInputParsing(ctx, "format_request")
	var req models.FormatRequest
	err := c.ShouldBindJSON(&req)
	if err == nil && req.CPF == "" && req.CNPJ == "" {
		err = errEmptyFormatRequest
	}
	if err != nil {
		utils.RecordErrorInSpan(inputSpan, err, map[string]interface{}{
			"input.type": "format_request",
		})
		inputSpan.End()
		h.logger.Warn("invalid format request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	inputSpan.End()

	var response models.FormatResponse
	if req.CPF != "" {
		if response.CPF, err = models.NewFormattedDocument(document.TypeCPF, req.CPF); err != nil {
			h.formatFailed(c, span, err)
			return
		}
	}
	if req.CNPJ != "" {
		if response.CNPJ, err = models.NewFormattedDocument(document.TypeCNPJ, req.CNPJ); err != nil {
			h.formatFailed(c, span, err)
			return
		}
	}

	_, responseSpan := utils.TraceResponseSerialization(ctx, "success")
	c.JSON(http.StatusOK, response)
	responseSpan.End()
}

// GenerateDocument godoc
// @Summary Gerar documento
// @Description Gera um CPF ou CNPJ aleatório com dígitos verificadores válidos, para uso em testes
// @Tags documents
// @Produce json
// @Param type path string true "Tipo do documento" Enums(cpf, cnpj)
// @Param masked query bool false "Gerar com pontuação (padrão: false)"
// @Success 200 {object} models.GenerateResponse "Documento gerado"
// @Failure 400 {object} ErrorResponse "Tipo de documento inválido"
// @Router /generate/{type} [get]
func (h *DocumentHandlers) GenerateDocument(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GenerateDocument")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "generate_document"),
		attribute.String("service", "documents"),
	)

	ctx, paramSpan := utils.TraceInputParsing(ctx, "path_parameters")
	t, err := document.ParseType(c.Param("type"))
	if err != nil {
		utils.RecordErrorInSpan(paramSpan, err, map[string]interface{}{
			"document.type": c.Param("type"),
		})
		paramSpan.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	masked, err := queryBool(c, "masked")
	if err != nil {
		h.badQuery(c, paramSpan, "masked", err)
		return
	}
	paramSpan.End()

	doc := document.Generate(t)
	if masked {
		doc = document.GenerateMasked(t)
	}
	observability.DocumentGenerations.WithLabelValues(t.String(), strconv.FormatBool(masked)).Inc()
	utils.AddSpanAttribute(span, "document.type", t.String())

	_, responseSpan := utils.TraceResponseSerialization(ctx, "success")
	c.JSON(http.StatusOK, models.GenerateResponse{
		Type:     t.String(),
		Document: doc,
		Masked:   masked,
	})
	responseSpan.End()
}

// validateRequest resolves the declared type and validates the document.
// ignore_repeated only applies to CPFs.
func (h *DocumentHandlers) validateRequest(ctx context.Context, req models.ValidationRequest) (models.ValidationResponse, error) {
	t, err := document.ParseType(req.Type)
	if err != nil {
		return models.ValidationResponse{}, err
	}
	ignoreRepeated := req.IgnoreRepeated && t == document.TypeCPF
	return h.validate(ctx, t, req.Document, req.Masked, ignoreRepeated), nil
}

// validate runs the check digit verification and records its outcome
func (h *DocumentHandlers) validate(ctx context.Context, t document.Type, doc string, masked, ignoreRepeated bool) models.ValidationResponse {
	start := time.Now()
	_, span, cleanup := utils.TraceDocumentValidation(ctx, t.String(), masked, ignoreRepeated)
	defer cleanup()

	err := document.Check(t, doc, masked, ignoreRepeated)
	reason := models.ReasonFromError(err)

	utils.AddSpanAttribute(span, "validation.result", reason)
	observability.DocumentValidations.WithLabelValues(t.String(), reason).Inc()

	h.logger.Debug("document validated",
		zap.String("type", t.String()),
		zap.String("document", observability.MaskDocument(t, doc)),
		zap.Bool("masked", masked),
		zap.String("result", reason),
		zap.Duration("duration", time.Since(start)))

	return models.ValidationResponse{
		Type:     t.String(),
		Document: doc,
		Valid:    err == nil,
		Reason:   reason,
	}
}

// badQuery rejects a malformed query parameter and ends the parsing span
func (h *DocumentHandlers) badQuery(c *gin.Context, span trace.Span, key string, err error) {
	utils.RecordErrorInSpan(span, err, map[string]interface{}{
		"query.param": key,
	})
	span.End()
	h.logger.Warn("invalid query parameter", zap.String("param", key), zap.Error(err))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + key + " parameter: must be true or false"})
}

func (h *DocumentHandlers) formatFailed(c *gin.Context, span trace.Span, err error) {
	utils.RecordErrorInSpan(span, err, map[string]interface{}{
		"operation": "format_documents",
	})
	h.logger.Warn("failed to format document", zap.Error(err))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}
