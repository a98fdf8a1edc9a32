package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	services "github.com/tieubaoca/eduinsights-be/service"
	"github.com/tieubaoca/eduinsights-be/types"
)

type UploadHandler struct {
	fileService *services.FileService
}

func NewUploadHandler(fileService *services.FileService) *UploadHandler {
	return &UploadHandler{
		fileService: fileService,
	}
}

// UploadDocumentHandler accepts one multipart PDF, extracts it, and
// responds with the new session ID plus document statistics.
func (h *UploadHandler) UploadDocumentHandler(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid file",
		})
		return
	}
	defer file.Close()

	const maxSize = 10 << 20
	if header.Size > maxSize {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "File too large",
		})
		return
	}

	req := types.UploadRequest{
		Title: c.Request.FormValue("title"),
		Role:  types.UserRole(c.Request.FormValue("role")),
	}
	if req.Role != "" && !types.ValidUserRole(req.Role) {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid role",
		})
		return
	}

	session, err := h.fileService.UploadFile(req, header)
	if err != nil {
		var extractionErr *types.ExtractionError
		if errors.As(err, &extractionErr) {
			c.JSON(http.StatusUnprocessableEntity, types.DataResponse{
				Status:  false,
				Message: "Could not extract text from the PDF. Please try a different file.",
			})
			return
		}
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	doc := session.Document
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.UploadResponse{
			SessionID: session.ID,
			Document: types.DocumentStats{
				OriginalName: header.Filename,
				FileName:     doc.FileName,
				FileSize:     doc.FileSize,
				Pages:        doc.Pages,
				WordCount:    doc.WordCount,
				CharCount:    doc.CharCount,
				ChunkCount:   len(doc.Chunks),
			},
		},
	})
}
