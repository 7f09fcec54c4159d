package handler

import (
	"net/http"

	"github.com/mkosinov/taskboard/internal/api"
	"github.com/mkosinov/taskboard/internal/utils"
)

func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	boards, err := h.board.GetAll(*user)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	summaries := make([]api.BoardSummary, len(boards))
	for i, b := range boards {
		summaries[i] = api.BoardSummary{Id: b.Id, Name: b.Name}
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body api.CreateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Create(*user, body.Name)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.BoardSummary{Id: board.Id, Name: board.Name})
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	boardId, err := urlId(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Get(*user, boardId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, board)
}

func (h *Handler) InviteMember(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	boardId, err := urlId(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.InviteMemberRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.board.Invite(*user, boardId, body.Email); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.MessageResponse{Msg: "User added to the board"})
}
