package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	services "github.com/tieubaoca/eduinsights-be/service"
	"github.com/tieubaoca/eduinsights-be/types"
)

type DocumentHandler struct {
	uploadDir string
	sessions  *services.SessionService
}

func NewDocumentHandler(uploadDir string, sessions *services.SessionService) *DocumentHandler {
	return &DocumentHandler{
		uploadDir: uploadDir,
		sessions:  sessions,
	}
}

// HandleStats returns the statistics of the session document.
func (h *DocumentHandler) HandleStats(c *gin.Context) {
	session, err := h.sessions.Get(c.Query("session_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	doc := session.Document
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.DocumentStats{
			FileName:   doc.FileName,
			FileSize:   doc.FileSize,
			Pages:      doc.Pages,
			WordCount:  doc.WordCount,
			CharCount:  doc.CharCount,
			ChunkCount: len(doc.Chunks),
		},
	})
}

// ServeDocument streams a stored upload back to the browser. The file
// query names the upload without its timestamp suffix.
func (h *DocumentHandler) ServeDocument(c *gin.Context) {
	requestedName := c.Query("file")
	if requestedName == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "File parameter is required",
		})
		return
	}

	if filepath.Ext(requestedName) != ".pdf" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Only PDF files are allowed",
		})
		return
	}

	actualFile, err := h.findFileWithTimestamp(requestedName)
	if err != nil {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: "File not found",
		})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s", requestedName))
	c.File(filepath.Join(h.uploadDir, actualFile))
}

func (h *DocumentHandler) findFileWithTimestamp(requestedName string) (string, error) {
	files, err := os.ReadDir(h.uploadDir)
	if err != nil {
		return "", err
	}

	baseName := strings.TrimSuffix(requestedName, ".pdf")
	for _, file := range files {
		name := file.Name()
		if !strings.HasSuffix(name, ".pdf") {
			continue
		}

		nameWithoutExt := strings.TrimSuffix(name, ".pdf")
		if nameWithoutExt == baseName {
			return name, nil
		}
		// Find last underscore position
		lastUnderscoreIdx := strings.LastIndex(nameWithoutExt, "_")
		if lastUnderscoreIdx == -1 {
			continue
		}

		// Get potential timestamp part
		timestampPart := nameWithoutExt[lastUnderscoreIdx+1:]
		fileBaseName := nameWithoutExt[:lastUnderscoreIdx]

		// Validate if it's a timestamp (Unix timestamp is typically 10 or 13 digits)
		if len(timestampPart) == 10 || len(timestampPart) == 13 {
			if _, err := strconv.ParseInt(timestampPart, 10, 64); err == nil {
				if fileBaseName == baseName {
					return name, nil
				}
			}
		}
	}

	return "", fmt.Errorf("file not found: %s", requestedName)
}
