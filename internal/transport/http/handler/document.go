package handler

import (
	"github.com/gin-gonic/gin"

	"managerdocs/internal/app"
	"managerdocs/internal/markdown"
	"managerdocs/internal/transport/http/response"
)

type DocumentHandler struct {
	directory *app.DirectoryService
}

func NewDocumentHandler(directory *app.DirectoryService) *DocumentHandler {
	return &DocumentHandler{directory: directory}
}

func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.directory.ListDocuments()
	if err != nil {
		writeServiceError(c, err, "list documents failed")
		return
	}
	response.OK(c, docs)
}

func (h *DocumentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	doc, err := h.directory.GetDocument(id)
	if err != nil {
		writeServiceError(c, err, "get document failed")
		return
	}
	response.OK(c, doc)
}

// GetBlocks returns a document's content as parsed blocks plus the rendered
// projection with stable per-kind spacing.
func (h *DocumentHandler) GetBlocks(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	doc, err := h.directory.GetDocument(id)
	if err != nil {
		writeServiceError(c, err, "get document failed")
		return
	}
	blocks := markdown.Parse(doc.Content)
	response.OK(c, gin.H{
		"document_id": doc.ID,
		"blocks":      blocks,
		"rendered":    markdown.Render(blocks),
	})
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.directory.DeleteDocument(id); err != nil {
		writeServiceError(c, err, "delete document failed")
		return
	}
	response.OK(c, gin.H{"deleted_document_id": id})
}
