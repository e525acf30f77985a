package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-webapi/internal/entity"
)

const (
	ActionPlay   = "game:play"
	ActionDraw   = "game:draw"
	ActionReset  = "game:reset"
	ActionMoves  = "game:moves"
	ActionStatus = "game:status"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type PlayPayload struct {
	Symbol   string `json:"symbol"`
	Position int    `json:"position"`
}

type ResponsePayload struct {
	Message string           `json:"message,omitempty"`
	Board   *entity.Board    `json:"board,omitempty"`
	Outcome *entity.Outcome  `json:"outcome,omitempty"`
	Errors  entity.ErrorList `json:"errors,omitempty"`
	Moves   []entity.Move    `json:"moves,omitempty"`
	Error   string           `json:"error,omitempty"`
}
