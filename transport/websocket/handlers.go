package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coder/websocket"

	"github.com/rocketscienceinc/tictactoe-webapi/internal/entity"
)

const (
	msgInvalidPayload = "invalid payload"
	msgInternalError  = "internal server error"
)

// handlePlay - applies a move; accepted moves are broadcast to every connection, rejections go to the sender only.
func (that *Server) handlePlay(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	log := that.logger.With("method", "handlePlay")

	var payload PlayPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Debug("failed to unmarshal payload", "error", err)
		return that.sendError(ctx, conn, msg.Action, msgInvalidPayload)
	}

	that.broadcastMutex.Lock()
	defer that.broadcastMutex.Unlock()

	result, err := that.game.Play(ctx, payload.Symbol, payload.Position)
	if err != nil {
		var errs entity.ErrorList
		if errors.As(err, &errs) {
			return that.sendMessage(ctx, conn, msg.Action, ResponsePayload{Errors: errs})
		}

		if sendErr := that.sendError(ctx, conn, msg.Action, msgInternalError); sendErr != nil {
			return sendErr
		}

		return fmt.Errorf("failed to play: %w", err)
	}

	that.broadcast(ctx, msg.Action, ResponsePayload{Message: result.Message, Board: &result.Board, Outcome: &result.Outcome})

	return nil
}

func (that *Server) handleDraw(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	board := that.game.Draw(ctx)

	return that.sendMessage(ctx, conn, msg.Action, ResponsePayload{Board: &board})
}

func (that *Server) handleReset(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	that.broadcastMutex.Lock()
	defer that.broadcastMutex.Unlock()

	result, err := that.game.Reset(ctx)
	if err != nil {
		if sendErr := that.sendError(ctx, conn, msg.Action, msgInternalError); sendErr != nil {
			return sendErr
		}

		return fmt.Errorf("failed to reset game: %w", err)
	}

	that.broadcast(ctx, msg.Action, ResponsePayload{Message: result.Message, Board: &result.Board})

	return nil
}

func (that *Server) handleMoves(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	moves, err := that.game.Moves(ctx)
	if err != nil {
		if sendErr := that.sendError(ctx, conn, msg.Action, msgInternalError); sendErr != nil {
			return sendErr
		}

		return fmt.Errorf("failed to list moves: %w", err)
	}

	return that.sendMessage(ctx, conn, msg.Action, ResponsePayload{Moves: moves})
}

func (that *Server) handleStatus(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	outcome := that.game.Status(ctx)

	return that.sendMessage(ctx, conn, msg.Action, ResponsePayload{Outcome: &outcome})
}
