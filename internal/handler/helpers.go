package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mkosinov/taskboard/internal/api"
	"github.com/mkosinov/taskboard/internal/domain"
	"github.com/mkosinov/taskboard/internal/errors"
	"github.com/mkosinov/taskboard/internal/middleware"
)

// parseIntParam parses an integer parameter from a string and returns a meaningful error
func parseIntParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, &errors.ErrorWithStatusCode{Message: fmt.Sprintf("invalid %s: must be an integer", paramName), StatusCode: http.StatusBadRequest}
	}
	return val, nil
}

func urlId(r *http.Request, name string) (int64, error) {
	return parseIntParam(chi.URLParam(r, name), name)
}

// requireUser pulls the authenticated user out of the request context.
func requireUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return nil, false
	}
	return user, true
}

// cardUpdateFromRequest maps the wire DTO onto the domain's partial update.
// A present-but-empty due_date clears the deadline; anything else must be
// RFC3339.
func cardUpdateFromRequest(body api.UpdateCardRequest) (domain.CardUpdate, error) {
	upd := domain.CardUpdate{Content: body.Content, Description: body.Description}
	if body.DueDate != nil {
		if *body.DueDate == "" {
			upd.ClearDueDate = true
		} else {
			t, err := time.Parse(time.RFC3339, *body.DueDate)
			if err != nil {
				return domain.CardUpdate{}, &errors.ErrorWithStatusCode{Message: "invalid due_date: must be RFC3339", StatusCode: http.StatusBadRequest}
			}
			upd.DueDate = &t
		}
	}
	return upd, nil
}
