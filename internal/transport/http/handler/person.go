package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"managerdocs/internal/app"
	"managerdocs/internal/transport/http/response"
)

type PersonHandler struct {
	directory *app.DirectoryService
}

func NewPersonHandler(directory *app.DirectoryService) *PersonHandler {
	return &PersonHandler{directory: directory}
}

type PersonRequest struct {
	Name      string     `json:"name" binding:"required,max=128"`
	Role      string     `json:"role" binding:"max=128"`
	Level     string     `json:"level" binding:"max=32"`
	Team      string     `json:"team" binding:"max=128"`
	StartDate *time.Time `json:"start_date"`
	Notes     string     `json:"notes"`
}

func (h *PersonHandler) Create(c *gin.Context) {
	var req PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	person, err := h.directory.CreatePerson(app.PersonInput{
		Name:      req.Name,
		Role:      req.Role,
		Level:     req.Level,
		Team:      req.Team,
		StartDate: req.StartDate,
		Notes:     req.Notes,
	})
	if err != nil {
		writeServiceError(c, err, "create person failed")
		return
	}
	response.OK(c, person)
}

func (h *PersonHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	person, err := h.directory.UpdatePerson(id, app.PersonInput{
		Name:      req.Name,
		Role:      req.Role,
		Level:     req.Level,
		Team:      req.Team,
		StartDate: req.StartDate,
		Notes:     req.Notes,
	})
	if err != nil {
		writeServiceError(c, err, "update person failed")
		return
	}
	response.OK(c, person)
}

func (h *PersonHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	person, err := h.directory.GetPerson(id)
	if err != nil {
		writeServiceError(c, err, "get person failed")
		return
	}
	response.OK(c, person)
}

func (h *PersonHandler) List(c *gin.Context) {
	people, err := h.directory.ListPeople()
	if err != nil {
		writeServiceError(c, err, "list people failed")
		return
	}
	response.OK(c, people)
}

func (h *PersonHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.directory.DeletePerson(id); err != nil {
		writeServiceError(c, err, "delete person failed")
		return
	}
	response.OK(c, gin.H{"deleted_person_id": id})
}

func (h *PersonHandler) ListDocuments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	docs, err := h.directory.ListDocumentsByPerson(id)
	if err != nil {
		writeServiceError(c, err, "list person documents failed")
		return
	}
	response.OK(c, docs)
}

func (h *PersonHandler) ListOpenActionItems(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	items, err := h.directory.ListOpenActionItems(id)
	if err != nil {
		writeServiceError(c, err, "list open action items failed")
		return
	}
	response.OK(c, items)
}

// pathID parses the :id path parameter, writing the error response itself on
// failure.
func pathID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id64 == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid id")
		return 0, false
	}
	return uint(id64), true
}

// writeServiceError maps service sentinels onto HTTP status and envelope
// codes.
func writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrPersonNotFound),
		errors.Is(err, app.ErrProgramNotFound),
		errors.Is(err, app.ErrSessionNotFound),
		errors.Is(err, app.ErrActionItemNotFound),
		errors.Is(err, app.ErrArtifactNotFound),
		errors.Is(err, app.ErrRiskNotFound),
		errors.Is(err, app.ErrDocumentNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, fallback)
	}
}
