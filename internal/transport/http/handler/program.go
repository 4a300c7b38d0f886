package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"managerdocs/internal/app"
	"managerdocs/internal/model"
	"managerdocs/internal/transport/http/response"
)

type ProgramHandler struct {
	programs *app.ProgramService
}

func NewProgramHandler(programs *app.ProgramService) *ProgramHandler {
	return &ProgramHandler{programs: programs}
}

type ProgramRequest struct {
	Name         string     `json:"name" binding:"required,max=128"`
	Objective    string     `json:"objective"`
	Status       string     `json:"status" binding:"max=32"`
	Owner        string     `json:"owner" binding:"max=128"`
	TargetDate   *time.Time `json:"target_date"`
	Stakeholders string     `json:"stakeholders"`
	Notes        string     `json:"notes"`
}

func (h *ProgramHandler) Create(c *gin.Context) {
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	program, err := h.programs.CreateProgram(app.ProgramInput{
		Name:         req.Name,
		Objective:    req.Objective,
		Status:       model.ProgramStatus(req.Status),
		Owner:        req.Owner,
		TargetDate:   req.TargetDate,
		Stakeholders: req.Stakeholders,
		Notes:        req.Notes,
	})
	if err != nil {
		writeServiceError(c, err, "create program failed")
		return
	}
	response.OK(c, program)
}

func (h *ProgramHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	program, err := h.programs.UpdateProgram(id, app.ProgramInput{
		Name:         req.Name,
		Objective:    req.Objective,
		Status:       model.ProgramStatus(req.Status),
		Owner:        req.Owner,
		TargetDate:   req.TargetDate,
		Stakeholders: req.Stakeholders,
		Notes:        req.Notes,
	})
	if err != nil {
		writeServiceError(c, err, "update program failed")
		return
	}
	response.OK(c, program)
}

func (h *ProgramHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	overview, err := h.programs.GetProgram(id)
	if err != nil {
		writeServiceError(c, err, "get program failed")
		return
	}
	response.OK(c, overview)
}

func (h *ProgramHandler) List(c *gin.Context) {
	programs, err := h.programs.ListPrograms()
	if err != nil {
		writeServiceError(c, err, "list programs failed")
		return
	}
	response.OK(c, programs)
}

func (h *ProgramHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.programs.DeleteProgram(id); err != nil {
		writeServiceError(c, err, "delete program failed")
		return
	}
	response.OK(c, gin.H{"deleted_program_id": id})
}

type RiskRequest struct {
	Title      string `json:"title" binding:"required,max=256"`
	Details    string `json:"details"`
	Severity   string `json:"severity" binding:"required,max=16"`
	Mitigation string `json:"mitigation"`
	Owner      string `json:"owner" binding:"max=128"`
}

func (h *ProgramHandler) AddRisk(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req RiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	risk, err := h.programs.AddRisk(app.RiskInput{
		ProgramID:  id,
		Title:      req.Title,
		Details:    req.Details,
		Severity:   model.RiskSeverity(req.Severity),
		Mitigation: req.Mitigation,
		Owner:      req.Owner,
	})
	if err != nil {
		writeServiceError(c, err, "add risk failed")
		return
	}
	response.OK(c, risk)
}

func (h *ProgramHandler) UpdateRisk(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req RiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	risk, err := h.programs.UpdateRisk(id, app.RiskInput{
		Title:      req.Title,
		Details:    req.Details,
		Severity:   model.RiskSeverity(req.Severity),
		Mitigation: req.Mitigation,
		Owner:      req.Owner,
	})
	if err != nil {
		writeServiceError(c, err, "update risk failed")
		return
	}
	response.OK(c, risk)
}

func (h *ProgramHandler) ListRisks(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	risks, err := h.programs.ListRisks(id)
	if err != nil {
		writeServiceError(c, err, "list risks failed")
		return
	}
	response.OK(c, risks)
}

func (h *ProgramHandler) DeleteRisk(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.programs.DeleteRisk(id); err != nil {
		writeServiceError(c, err, "delete risk failed")
		return
	}
	response.OK(c, gin.H{"deleted_risk_id": id})
}

type ProgramUpdateRequest struct {
	Summary string `json:"summary" binding:"required"`
}

func (h *ProgramHandler) CreateUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ProgramUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	update, err := h.programs.CreateUpdate(id, req.Summary)
	if err != nil {
		writeServiceError(c, err, "create program update failed")
		return
	}
	response.OK(c, update)
}

func (h *ProgramHandler) ListUpdates(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	updates, err := h.programs.ListUpdates(id)
	if err != nil {
		writeServiceError(c, err, "list program updates failed")
		return
	}
	response.OK(c, updates)
}

func (h *ProgramHandler) DeleteUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.programs.DeleteUpdate(id); err != nil {
		writeServiceError(c, err, "delete program update failed")
		return
	}
	response.OK(c, gin.H{"deleted_update_id": id})
}
