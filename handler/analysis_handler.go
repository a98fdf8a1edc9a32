package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	services "github.com/tieubaoca/eduinsights-be/service"
	"github.com/tieubaoca/eduinsights-be/types"
)

type AnalysisHandler struct {
	analysis *services.AnalysisService
	sessions *services.SessionService
}

func NewAnalysisHandler(analysis *services.AnalysisService, sessions *services.SessionService) *AnalysisHandler {
	return &AnalysisHandler{
		analysis: analysis,
		sessions: sessions,
	}
}

// HandleAnalyze runs one analysis task against the session document.
// A completion failure is reported for this action only; the session
// stays usable for retries and other tasks.
func (h *AnalysisHandler) HandleAnalyze(c *gin.Context) {
	var req types.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	session, ok := h.getSession(c, req.SessionID)
	if !ok {
		return
	}

	role := req.Role
	if role == "" {
		role = session.Role
	}

	result, err := h.analysis.Analyze(c.Request.Context(), types.TaskRequest{
		Kind: req.Task,
		Role: role,
		Text: session.Document.Text,
	})
	if err != nil {
		h.writeTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.AnalyzeResponse{
			Task:   result.Kind,
			Result: result.Text,
		},
	})
}

// HandleAsk answers a free-form question about the session document.
func (h *AnalysisHandler) HandleAsk(c *gin.Context) {
	var req types.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	session, ok := h.getSession(c, req.SessionID)
	if !ok {
		return
	}

	result, err := h.analysis.AnswerQuestion(c.Request.Context(), req.Question, session.Document.Text)
	if err != nil {
		h.writeTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.AskResponse{
			Question: req.Question,
			Answer:   result.Text,
		},
	})
}

func (h *AnalysisHandler) getSession(c *gin.Context, id string) (*types.Session, bool) {
	session, err := h.sessions.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return nil, false
	}
	return session, true
}

func (h *AnalysisHandler) writeTaskError(c *gin.Context, err error) {
	var completionErr *types.CompletionError
	switch {
	case errors.As(err, &completionErr):
		c.JSON(http.StatusBadGateway, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
	}
}
