package service

import (
	"net/http"
	"strings"

	"github.com/mkosinov/taskboard/internal/domain"
	"github.com/mkosinov/taskboard/internal/errors"
	"github.com/mkosinov/taskboard/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// to mock service in tests
type AuthService interface {
	Register(creds domain.Credentials) (string, error)
	Login(creds domain.Credentials) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.UserId, error)
	User(email domain.Email) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) AuthService {
	return &Auth{storage, jwt}
}

// Register creates the user with a bcrypt hash and issues a token right
// away so the client is logged in without a second round trip.
func (a *Auth) Register(creds domain.Credentials) (string, error) {
	email := strings.ToLower(creds.Email)

	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", err
	}

	id, err := a.storage.SaveUser(domain.User{Email: email, PassHash: string(passHash)})
	if err != nil {
		return "", err
	}

	return a.jwt.NewToken(domain.User{Id: id, Email: email})
}

// Login deliberately reports the same error for an unknown email and a
// wrong password.
func (a *Auth) Login(creds domain.Credentials) (string, error) {
	email := strings.ToLower(creds.Email)

	user, err := a.storage.User(email)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", invalidCredentials()
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		return "", invalidCredentials()
	}

	return a.jwt.NewToken(user)
}

func invalidCredentials() error {
	return &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusBadRequest}
}
