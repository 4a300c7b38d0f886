package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"managerdocs/internal/app"
	"managerdocs/internal/markdown"
	"managerdocs/internal/model"
	"managerdocs/internal/transport/http/response"
)

type SessionHandler struct {
	directory *app.DirectoryService
}

func NewSessionHandler(directory *app.DirectoryService) *SessionHandler {
	return &SessionHandler{directory: directory}
}

type CreateSessionRequest struct {
	PersonID uint      `json:"person_id" binding:"required,gt=0"`
	Date     time.Time `json:"date" binding:"required"`
	RawNotes string    `json:"raw_notes"`
}

func (h *SessionHandler) Create(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	session, err := h.directory.CreateSession(app.SessionInput{
		PersonID: req.PersonID,
		Date:     req.Date,
		RawNotes: req.RawNotes,
	})
	if err != nil {
		writeServiceError(c, err, "create session failed")
		return
	}
	response.OK(c, session)
}

type UpdateSessionRequest struct {
	RawNotes string `json:"raw_notes"`
}

func (h *SessionHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	session, err := h.directory.UpdateSessionNotes(id, req.RawNotes)
	if err != nil {
		writeServiceError(c, err, "update session failed")
		return
	}
	response.OK(c, session)
}

func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	session, err := h.directory.GetSession(id)
	if err != nil {
		writeServiceError(c, err, "get session failed")
		return
	}
	response.OK(c, session)
}

// GetBlocks returns the session's generated summary as parsed blocks for
// structured redisplay.
func (h *SessionHandler) GetBlocks(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	session, err := h.directory.GetSession(id)
	if err != nil {
		writeServiceError(c, err, "get session failed")
		return
	}
	blocks := markdown.Parse(session.GeneratedSummary)
	response.OK(c, gin.H{
		"session_id": session.ID,
		"blocks":     blocks,
		"rendered":   markdown.Render(blocks),
	})
}

func (h *SessionHandler) ListByPerson(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	sessions, err := h.directory.ListSessions(id)
	if err != nil {
		writeServiceError(c, err, "list sessions failed")
		return
	}
	response.OK(c, sessions)
}

func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.directory.DeleteSession(id); err != nil {
		writeServiceError(c, err, "delete session failed")
		return
	}
	response.OK(c, gin.H{"deleted_session_id": id})
}

type ActionItemRequest struct {
	Title   string     `json:"title" binding:"required,max=256"`
	Owner   string     `json:"owner" binding:"max=128"`
	DueDate *time.Time `json:"due_date"`
}

func (h *SessionHandler) AddActionItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ActionItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	item, err := h.directory.AddActionItem(app.ActionItemInput{
		SessionID: id,
		Title:     req.Title,
		Owner:     req.Owner,
		DueDate:   req.DueDate,
	})
	if err != nil {
		writeServiceError(c, err, "add action item failed")
		return
	}
	response.OK(c, item)
}

func (h *SessionHandler) ListActionItems(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	items, err := h.directory.ListActionItems(id)
	if err != nil {
		writeServiceError(c, err, "list action items failed")
		return
	}
	response.OK(c, items)
}

type CompleteActionItemRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

func (h *SessionHandler) SetActionItemCompleted(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req CompleteActionItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Completed == nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	item, err := h.directory.SetActionItemCompleted(id, *req.Completed)
	if err != nil {
		writeServiceError(c, err, "update action item failed")
		return
	}
	response.OK(c, item)
}

func (h *SessionHandler) DeleteActionItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.directory.DeleteActionItem(id); err != nil {
		writeServiceError(c, err, "delete action item failed")
		return
	}
	response.OK(c, gin.H{"deleted_action_item_id": id})
}

type ArtifactRequest struct {
	Title        string    `json:"title" binding:"required,max=256"`
	Type         string    `json:"type" binding:"required,max=32"`
	URL          string    `json:"url" binding:"max=512"`
	Notes        string    `json:"notes"`
	ArtifactDate time.Time `json:"artifact_date" binding:"required"`
}

func (h *SessionHandler) AddArtifact(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	artifact, err := h.directory.AddArtifact(app.ArtifactInput{
		SessionID:    id,
		Title:        req.Title,
		Type:         model.ArtifactType(req.Type),
		URL:          req.URL,
		Notes:        req.Notes,
		ArtifactDate: req.ArtifactDate,
	})
	if err != nil {
		writeServiceError(c, err, "add artifact failed")
		return
	}
	response.OK(c, artifact)
}

func (h *SessionHandler) ListArtifacts(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	artifacts, err := h.directory.ListArtifacts(id)
	if err != nil {
		writeServiceError(c, err, "list artifacts failed")
		return
	}
	response.OK(c, artifacts)
}

func (h *SessionHandler) DeleteArtifact(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.directory.DeleteArtifact(id); err != nil {
		writeServiceError(c, err, "delete artifact failed")
		return
	}
	response.OK(c, gin.H{"deleted_artifact_id": id})
}

// ImportActionItems pulls checkbox blocks back out of a session's generated
// summary and creates action items from them.
func (h *SessionHandler) ImportActionItems(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	items, err := h.directory.ImportActionItems(id)
	if err != nil {
		writeServiceError(c, err, "import action items failed")
		return
	}
	response.OK(c, items)
}
