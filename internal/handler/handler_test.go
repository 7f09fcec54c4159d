package handler

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/mkosinov/taskboard/internal/domain"
	"github.com/mkosinov/taskboard/internal/middleware"
)

// Shared test fixtures: func-field mocks for every service interface plus
// a helper that routes a request with an authenticated user in context.

var testUser = domain.User{Id: 1, Email: "alice@x.com"}

type MockAuthService struct {
	registerFunc func(creds domain.Credentials) (string, error)
	loginFunc    func(creds domain.Credentials) (string, error)
}

func (m *MockAuthService) Register(creds domain.Credentials) (string, error) {
	if m.registerFunc != nil {
		return m.registerFunc(creds)
	}
	return "token", nil
}

func (m *MockAuthService) Login(creds domain.Credentials) (string, error) {
	if m.loginFunc != nil {
		return m.loginFunc(creds)
	}
	return "token", nil
}

type MockBoardService struct {
	getAllFunc func(user domain.User) ([]domain.Board, error)
	createFunc func(user domain.User, name string) (domain.Board, error)
	getFunc    func(user domain.User, boardId domain.BoardId) (domain.Board, error)
	inviteFunc func(user domain.User, boardId domain.BoardId, email domain.Email) error
}

func (m *MockBoardService) GetAll(user domain.User) ([]domain.Board, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(user)
	}
	return nil, nil
}

func (m *MockBoardService) Create(user domain.User, name string) (domain.Board, error) {
	if m.createFunc != nil {
		return m.createFunc(user, name)
	}
	return domain.Board{Id: 1, Name: name}, nil
}

func (m *MockBoardService) Get(user domain.User, boardId domain.BoardId) (domain.Board, error) {
	if m.getFunc != nil {
		return m.getFunc(user, boardId)
	}
	return domain.Board{Id: boardId}, nil
}

func (m *MockBoardService) Invite(user domain.User, boardId domain.BoardId, email domain.Email) error {
	if m.inviteFunc != nil {
		return m.inviteFunc(user, boardId, email)
	}
	return nil
}

type MockListService struct {
	createFunc  func(user domain.User, boardId domain.BoardId, name string) (domain.List, error)
	deleteFunc  func(user domain.User, listId domain.ListId) error
	reorderFunc func(user domain.User, boardId domain.BoardId, orderedListIds []domain.ListId) error
}

func (m *MockListService) Create(user domain.User, boardId domain.BoardId, name string) (domain.List, error) {
	if m.createFunc != nil {
		return m.createFunc(user, boardId, name)
	}
	return domain.List{Id: 1, BoardId: boardId, Name: name, Cards: []domain.Card{}}, nil
}

func (m *MockListService) Delete(user domain.User, listId domain.ListId) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(user, listId)
	}
	return nil
}

func (m *MockListService) Reorder(user domain.User, boardId domain.BoardId, orderedListIds []domain.ListId) error {
	if m.reorderFunc != nil {
		return m.reorderFunc(user, boardId, orderedListIds)
	}
	return nil
}

type MockCardService struct {
	createFunc  func(user domain.User, listId domain.ListId, content string) (domain.Card, error)
	deleteFunc  func(user domain.User, cardId domain.CardId) error
	moveFunc    func(user domain.User, cardId domain.CardId, newListId domain.ListId, newPosition int) error
	detailsFunc func(user domain.User, cardId domain.CardId) (domain.CardDetails, error)
	updateFunc  func(user domain.User, cardId domain.CardId, upd domain.CardUpdate) error
}

func (m *MockCardService) Create(user domain.User, listId domain.ListId, content string) (domain.Card, error) {
	if m.createFunc != nil {
		return m.createFunc(user, listId, content)
	}
	return domain.Card{Id: 1, ListId: listId, Content: content}, nil
}

func (m *MockCardService) Delete(user domain.User, cardId domain.CardId) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(user, cardId)
	}
	return nil
}

func (m *MockCardService) Move(user domain.User, cardId domain.CardId, newListId domain.ListId, newPosition int) error {
	if m.moveFunc != nil {
		return m.moveFunc(user, cardId, newListId, newPosition)
	}
	return nil
}

func (m *MockCardService) Details(user domain.User, cardId domain.CardId) (domain.CardDetails, error) {
	if m.detailsFunc != nil {
		return m.detailsFunc(user, cardId)
	}
	return domain.CardDetails{}, nil
}

func (m *MockCardService) Update(user domain.User, cardId domain.CardId, upd domain.CardUpdate) error {
	if m.updateFunc != nil {
		return m.updateFunc(user, cardId, upd)
	}
	return nil
}

type MockCommentService struct {
	addFunc func(user domain.User, cardId domain.CardId, text string) (domain.Comment, error)
}

func (m *MockCommentService) Add(user domain.User, cardId domain.CardId, text string) (domain.Comment, error) {
	if m.addFunc != nil {
		return m.addFunc(user, cardId, text)
	}
	return domain.Comment{Id: 1, CardId: cardId, Text: text}, nil
}

// newTestRouter wires a handler into a chi router matching the real route
// table and injects testUser unless anonymous.
func newTestRouter(h *Handler, anonymous bool) chi.Router {
	r := chi.NewRouter()
	if !anonymous {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, middleware.WithUser(req, &testUser))
			})
		})
	}
	r.Post("/api/auth/register", h.Register)
	r.Post("/api/auth/login", h.Login)
	r.Get("/api/boards", h.GetBoards)
	r.Post("/api/boards", h.CreateBoard)
	r.Get("/api/boards/{id}", h.GetBoard)
	r.Post("/api/boards/{id}/members", h.InviteMember)
	r.Post("/api/lists", h.CreateList)
	r.Delete("/api/lists/{id}", h.DeleteList)
	r.Put("/api/lists/reorder", h.ReorderLists)
	r.Post("/api/cards", h.CreateCard)
	r.Delete("/api/cards/{id}", h.DeleteCard)
	r.Put("/api/cards/move", h.MoveCard)
	r.Get("/api/cards/{id}/details", h.GetCardDetails)
	r.Put("/api/cards/{id}/details", h.UpdateCardDetails)
	r.Post("/api/comments", h.AddComment)
	return r
}

func doRequest(r chi.Router, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}
