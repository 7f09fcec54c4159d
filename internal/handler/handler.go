package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mkosinov/taskboard/internal/logger"
	"github.com/mkosinov/taskboard/internal/service"
)

type Handler struct {
	auth    service.AuthService
	board   service.BoardService
	list    service.ListService
	card    service.CardService
	comment service.CommentService
}

func New(auth service.AuthService, board service.BoardService, list service.ListService, card service.CardService, comment service.CommentService) *Handler {
	return &Handler{auth, board, list, card, comment}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
