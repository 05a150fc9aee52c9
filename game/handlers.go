package game

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Request is a client-to-server message on the game socket.
type Request struct {
	Type          string `json:"type"`
	Team1Kind     string `json:"team1Kind,omitempty"`
	Team2Kind     string `json:"team2Kind,omitempty"`
	SessionID     string `json:"sessionId,omitempty"`
	Guess         string `json:"guess,omitempty"`
	TimeRemaining int    `json:"timeRemaining"`
}

const (
	RequestCreateGame  = "create_game"
	RequestSubmitGuess = "submit_guess"
	RequestUpdateTimer = "update_timer"
	RequestGetGameData = "get_game_data"
)

type Handler struct {
	service  *Service
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origins are filtered by the server middleware before the
			// upgrade reaches this handler.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		log: log,
	}
}

// GameSocketHandler upgrades the connection and serves game requests on it
// until the client goes away.
func (h *Handler) GameSocketHandler(ctx *gin.Context) {
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Str("ip", ctx.ClientIP()).Msg("ws upgrade failed")
		return
	}
	wc := NewWebsocketConn(conn)
	defer wc.Close("")

	for {
		req, err := wc.ReadRequest()
		if err != nil {
			return
		}
		h.handleRequest(ctx.Request.Context(), wc, req)
	}
}

func (h *Handler) handleRequest(ctx context.Context, wc *WebsocketConn, req Request) {
	var err error

	switch req.Type {
	case RequestCreateGame:
		_, err = h.service.CreateGame(req.Team1Kind, req.Team2Kind, wc)
	case RequestSubmitGuess:
		err = h.service.SubmitGuess(req.SessionID, req.Guess)
	case RequestUpdateTimer:
		err = h.service.ReportTimer(req.SessionID, req.TimeRemaining)
	case RequestGetGameData:
		var data GameData
		if data, err = h.service.GameData(ctx, req.SessionID); err == nil {
			err = wc.Send(Event{Type: EventGameData, Payload: data})
		}
	default:
		err = fmt.Errorf("unknown request type %q", req.Type)
	}

	if err != nil {
		h.log.Warn().Err(err).Str("type", req.Type).Msg("request failed")
		wc.Send(Event{Type: EventError, Payload: ErrorPayload{Message: requestFailureMessage(req.Type, err)}})
	}
}

func requestFailureMessage(reqType string, err error) string {
	if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrSessionClosed) {
		return "Game not found"
	}
	switch reqType {
	case RequestCreateGame:
		return "Failed to create game"
	case RequestSubmitGuess:
		return "Failed to process guess"
	default:
		return "Request failed"
	}
}

// RandomWordHandler serves a word from the supplier, for clients that want
// one outside a session.
func (h *Handler) RandomWordHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"word": h.service.RandomWord()})
}

// noopSink drops every event. REST-created sessions have no live observer.
type noopSink struct{}

func (noopSink) Send(Event) error { return nil }

// StartGameHandler creates a session over REST and returns its id. The
// session runs without an observer; clients that want the event stream use
// the socket's create_game instead.
func (h *Handler) StartGameHandler(ctx *gin.Context) {
	var req struct {
		Team1Kind string `json:"team1Kind"`
		Team2Kind string `json:"team2Kind"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sess, err := h.service.CreateGame(req.Team1Kind, req.Team2Kind, noopSink{})
	if err != nil {
		h.log.Warn().Err(err).Msg("rest game creation failed")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create game"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"gameId": sess.ID()})
}
