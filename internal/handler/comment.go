package handler

import (
	"net/http"

	"github.com/mkosinov/taskboard/internal/api"
	"github.com/mkosinov/taskboard/internal/utils"
)

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body api.AddCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	comment, err := h.comment.Add(*user, body.CardId, body.Text)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}
