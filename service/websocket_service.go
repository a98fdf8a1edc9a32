package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tieubaoca/eduinsights-be/types"
)

// WebSocketService answers free-form questions over a websocket,
// streaming response deltas as they arrive from the provider.
type WebSocketService struct {
	analysis *AnalysisService
	sessions *SessionService
	upgrader websocket.Upgrader
}

func NewWebSocketService(analysis *AnalysisService, sessions *SessionService) *WebSocketService {
	return &WebSocketService{
		analysis: analysis,
		sessions: sessions,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (s *WebSocketService) HandleAsk(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorw("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512 * 1024) // 512KB max message size
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.S().Warnw("websocket read error", "error", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			s.writeError(conn, "invalid message")
			continue
		}

		switch req.Type {
		case types.TypeWebsocketPing:
			conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebsocketPong})

		case types.TypeWebsocketAsk:
			payloadBytes, err := json.Marshal(req.Payload)
			if err != nil {
				s.writeError(conn, "invalid payload")
				continue
			}
			var payload types.WebSocketAskPayload
			if err := json.Unmarshal(payloadBytes, &payload); err != nil {
				s.writeError(conn, "invalid payload")
				continue
			}
			s.streamAnswer(ctx, conn, payload)

		default:
			s.writeError(conn, "invalid message type")
		}
	}
}

func (s *WebSocketService) streamAnswer(ctx context.Context, conn *websocket.Conn, payload types.WebSocketAskPayload) {
	session, err := s.sessions.Get(payload.SessionID)
	if err != nil {
		s.writeError(conn, err.Error())
		return
	}

	conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebsocketProcessing})

	err = s.analysis.AnswerQuestionStream(ctx, payload.Question, session.Document.Text, func(delta string) {
		if delta == "" {
			return
		}
		conn.WriteJSON(types.WebSocketResponse{
			Type:    types.TypeWebsocketAnswer,
			Payload: types.WebSocketAnswerResponse{Delta: delta},
		})
	})
	if err != nil {
		s.writeError(conn, err.Error())
		return
	}

	conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebsocketDone})
}

func (s *WebSocketService) writeError(conn *websocket.Conn, message string) {
	conn.WriteJSON(types.WebSocketResponse{
		Type:    types.TypeWebsocketError,
		Payload: types.WebSocketErrorResponse{Message: message},
	})
}
