package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"managerdocs/internal/ai"
	"managerdocs/internal/app"
	"managerdocs/internal/model"
	"managerdocs/internal/transport/http/response"
)

type GenerateHandler struct {
	generation *app.GenerationService
}

func NewGenerateHandler(generation *app.GenerationService) *GenerateHandler {
	return &GenerateHandler{generation: generation}
}

type StagedArtifactRequest struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title" binding:"required,max=256"`
	Type         string    `json:"type" binding:"required,max=32"`
	ArtifactDate time.Time `json:"artifact_date" binding:"required"`
}

type GenerateSummaryRequest struct {
	SessionID       uint                    `json:"session_id" binding:"required,gt=0"`
	Notes           string                  `json:"notes"`
	StagedArtifacts []StagedArtifactRequest `json:"staged_artifacts"`
}

func (h *GenerateHandler) SessionSummary(c *gin.Context) {
	var req GenerateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	staged := make([]model.Artifact, 0, len(req.StagedArtifacts))
	for _, a := range req.StagedArtifacts {
		staged = append(staged, model.Artifact{
			ID:           a.ID,
			Title:        a.Title,
			Type:         model.ArtifactType(a.Type),
			ArtifactDate: a.ArtifactDate,
		})
	}

	result, err := h.generation.GenerateSessionSummary(c.Request.Context(), app.SessionSummaryInput{
		SessionID:       req.SessionID,
		Notes:           req.Notes,
		StagedArtifacts: staged,
	})
	if err != nil {
		writeGenerationError(c, err)
		return
	}
	response.OK(c, result)
}

type GeneratePersonDocumentRequest struct {
	PersonID     uint   `json:"person_id" binding:"required,gt=0"`
	Kind         string `json:"kind" binding:"required,max=32"`
	Notes        string `json:"notes"`
	Period       string `json:"period" binding:"max=64"`
	TargetRating string `json:"target_rating" binding:"max=64"`
	TargetLevel  string `json:"target_level" binding:"max=32"`
}

func (h *GenerateHandler) PersonDocument(c *gin.Context) {
	var req GeneratePersonDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	doc, err := h.generation.GeneratePersonDocument(c.Request.Context(), app.PersonDocumentInput{
		PersonID:     req.PersonID,
		Kind:         model.DocumentKind(req.Kind),
		Notes:        req.Notes,
		Period:       req.Period,
		TargetRating: req.TargetRating,
		TargetLevel:  req.TargetLevel,
	})
	if err != nil {
		writeGenerationError(c, err)
		return
	}
	response.OK(c, doc)
}

type GenerateProgramReportRequest struct {
	ProgramID uint   `json:"program_id" binding:"required,gt=0"`
	Kind      string `json:"kind" binding:"required,max=32"`
	Notes     string `json:"notes"`
}

func (h *GenerateHandler) ProgramReport(c *gin.Context) {
	var req GenerateProgramReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	result, err := h.generation.GenerateProgramReport(c.Request.Context(), app.ProgramReportInput{
		ProgramID: req.ProgramID,
		Kind:      model.DocumentKind(req.Kind),
		Notes:     req.Notes,
	})
	if err != nil {
		writeGenerationError(c, err)
		return
	}
	response.OK(c, result)
}

// writeGenerationError maps the generation failure taxonomy onto HTTP status
// and envelope codes. Every failure surfaces as one human-readable message.
func writeGenerationError(c *gin.Context, err error) {
	var transportErr *ai.TransportError
	var protocolErr *ai.ProtocolError

	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrSessionNotFound),
		errors.Is(err, app.ErrPersonNotFound),
		errors.Is(err, app.ErrProgramNotFound),
		errors.Is(err, app.ErrTargetGone):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case errors.Is(err, app.ErrGenerationInFlight):
		response.Error(c, http.StatusConflict, response.CodeConflict, err.Error())
	case errors.Is(err, ai.ErrNoAPIKey):
		response.Error(c, http.StatusBadRequest, response.CodeLLMConfig, err.Error())
	case errors.As(err, &transportErr):
		response.Error(c, http.StatusBadGateway, response.CodeLLMTransport, transportErr.Error())
	case errors.As(err, &protocolErr):
		response.Error(c, http.StatusBadGateway, response.CodeLLMProtocol, protocolErr.Error())
	case errors.Is(err, app.ErrDocumentEnqueue):
		response.Error(c, http.StatusServiceUnavailable, response.CodeEnqueueFailed, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "generation failed")
	}
}
