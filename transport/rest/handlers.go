package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-webapi/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-webapi/internal/entity"
)

const maxBodyBytes = 4 << 10

const (
	msgInvalidBody   = "invalid request body"
	msgInternalError = "internal server error"
)

type gameUseCase interface {
	Play(ctx context.Context, symbol string, position int) (*entity.PlayResult, error)
	Draw(ctx context.Context) entity.Board
	Reset(ctx context.Context) (*entity.ResetResult, error)
	Moves(ctx context.Context) ([]entity.Move, error)
	Status(ctx context.Context) entity.Outcome
}

type Handlers interface {
	Play(w http.ResponseWriter, r *http.Request)
	Draw(w http.ResponseWriter, r *http.Request)
	ResetGame(w http.ResponseWriter, r *http.Request)
	Moves(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type playRequest struct {
	Symbol   string `json:"symbol"`
	Position int    `json:"position"`
}

type drawResponse struct {
	Board entity.Board `json:"board"`
}

type movesResponse struct {
	Moves []entity.Move `json:"moves"`
}

type errorsResponse struct {
	Errors entity.ErrorList `json:"errors"`
}

type handlers struct {
	logger *slog.Logger
	game   gameUseCase
}

func NewHandlers(logger *slog.Logger, game gameUseCase) Handlers {
	return &handlers{
		logger: logger,
		game:   game,
	}
}

func (that *handlers) Play(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Play", "request_id", RequestID(r.Context()))

	var req playRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		log.Debug("failed to decode play request", "error", err)
		writeErrors(w, http.StatusBadRequest, entity.ErrorList{{Message: msgInvalidBody}})
		return
	}

	result, err := that.game.Play(r.Context(), req.Symbol, req.Position)
	if err != nil {
		var errs entity.ErrorList
		switch {
		case errors.Is(err, apperror.ErrGameFinished) && errors.As(err, &errs):
			writeErrors(w, http.StatusConflict, errs)
		case errors.As(err, &errs):
			writeErrors(w, http.StatusUnprocessableEntity, errs)
		default:
			log.Error("failed to play", "error", err)
			writeErrors(w, http.StatusInternalServerError, entity.ErrorList{{Message: msgInternalError}})
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (that *handlers) Draw(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, drawResponse{Board: that.game.Draw(r.Context())})
}

func (that *handlers) ResetGame(w http.ResponseWriter, r *http.Request) {
	result, err := that.game.Reset(r.Context())
	if err != nil {
		that.logger.Error("failed to reset game", "request_id", RequestID(r.Context()), "error", err)
		writeErrors(w, http.StatusInternalServerError, entity.ErrorList{{Message: msgInternalError}})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (that *handlers) Moves(w http.ResponseWriter, r *http.Request) {
	moves, err := that.game.Moves(r.Context())
	if err != nil {
		that.logger.Error("failed to list moves", "request_id", RequestID(r.Context()), "error", err)
		writeErrors(w, http.StatusInternalServerError, entity.ErrorList{{Message: msgInternalError}})
		return
	}

	if moves == nil {
		moves = []entity.Move{}
	}

	writeJSON(w, http.StatusOK, movesResponse{Moves: moves})
}

// Status - reports whether the current game is ongoing, won or drawn.
func (that *handlers) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, that.game.Status(r.Context()))
}

func (that *handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

func writeErrors(w http.ResponseWriter, status int, errs entity.ErrorList) {
	writeJSON(w, status, errorsResponse{Errors: errs})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
