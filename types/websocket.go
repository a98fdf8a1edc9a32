package types

const (
	TypeWebsocketPing       = "ping"
	TypeWebsocketPong       = "pong"
	TypeWebsocketAsk        = "ask"
	TypeWebsocketAnswer     = "answer"
	TypeWebsocketDone       = "done"
	TypeWebsocketProcessing = "processing"
	TypeWebsocketError      = "error"
)

type WebsocketRequest struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type WebSocketAskPayload struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
}

type WebSocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type WebSocketAnswerResponse struct {
	Delta string `json:"delta"`
}

type WebSocketErrorResponse struct {
	Message string `json:"message"`
}
