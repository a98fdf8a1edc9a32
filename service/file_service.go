package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tieubaoca/eduinsights-be/types"
)

// FileService accepts an uploaded PDF, stores it under the upload
// directory, extracts its text, and opens a session for the resulting
// document.
type FileService struct {
	uploadDir  string
	pdfService *PDFService
	sessions   *SessionService
}

func NewFileService(
	uploadDir string,
	pdfService *PDFService,
	sessions *SessionService,
) *FileService {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		panic(err)
	}
	return &FileService{
		uploadDir:  uploadDir,
		pdfService: pdfService,
		sessions:   sessions,
	}
}

// UploadFile stores the file and returns the new session holding the
// extracted document.
func (s *FileService) UploadFile(req types.UploadRequest, file *multipart.FileHeader) (*types.Session, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = strings.TrimSuffix(file.Filename, ext)
	}

	// New file name format: originalname_timestamp.pdf
	originalName := strings.TrimSuffix(title, ext)
	timestamp := time.Now().Unix()
	filename := SanitizeFileName(fmt.Sprintf("%s_%d%s", originalName, timestamp, ext))

	dst := filepath.Join(s.uploadDir, filename)
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return nil, err
	}

	doc, err := s.pdfService.ExtractDocument(data)
	if err != nil {
		os.Remove(dst)
		return nil, err
	}
	doc.FileName = filename
	doc.FileSize = file.Size

	session := s.sessions.Create(doc, req.Role)
	zap.S().Infow("document uploaded",
		"session", session.ID,
		"file", filename,
		"pages", doc.Pages,
		"words", doc.WordCount,
		"chunks", len(doc.Chunks),
	)
	return session, nil
}

// SanitizeFileName replaces characters outside the safe file name set.
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}
