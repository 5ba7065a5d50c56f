package service

import (
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/flowspace-dev/flowspace/internal/apperr"
	"github.com/flowspace-dev/flowspace/internal/domain"
	"github.com/flowspace-dev/flowspace/internal/logger"
)

// to mock service in tests
type AuthService interface {
	Register(name string, creds domain.Credentials) (domain.User, string, error)
	Login(creds domain.Credentials) (domain.User, string, error)
	Me(userId domain.UserId) (domain.User, error)
	UpdateProfile(userId domain.UserId, upd domain.UserUpdate) (domain.User, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.UserId, error)
	UserByEmail(email domain.Email) (domain.User, error)
	User(id domain.UserId) (domain.User, error)
	UpdateUser(id domain.UserId, upd domain.UserUpdate) (domain.User, error)
}

type Jwt interface {
	NewToken(userId domain.UserId) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) AuthService {
	return &Auth{storage, jwt}
}

func (a *Auth) Register(name string, creds domain.Credentials) (domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, "", apperr.BadRequest("Invalid email address")
	}
	if len(creds.Password) < 6 {
		return domain.User{}, "", apperr.BadRequest("Password must be at least 6 characters")
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, "", err
	}

	user := domain.User{
		Name:      name,
		Email:     email,
		PassHash:  string(passHash),
		AvatarUrl: domain.DefaultAvatarUrl(name),
	}
	id, err := a.storage.SaveUser(user)
	if err != nil {
		return domain.User{}, "", err
	}

	saved, err := a.storage.User(id)
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := a.jwt.NewToken(id)
	if err != nil {
		return domain.User{}, "", err
	}
	return saved, token, nil
}

func (a *Auth) Login(creds domain.Credentials) (domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	user, err := a.storage.UserByEmail(email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return domain.User{}, "", apperr.Unauthorized("Invalid credentials")
		}
		return domain.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		return domain.User{}, "", apperr.Unauthorized("Invalid credentials")
	}

	token, err := a.jwt.NewToken(user.Id)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (a *Auth) Me(userId domain.UserId) (domain.User, error) {
	return a.storage.User(userId)
}

func (a *Auth) UpdateProfile(userId domain.UserId, upd domain.UserUpdate) (domain.User, error) {
	if upd.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*upd.Email))
		if _, err := mail.ParseAddress(email); err != nil {
			return domain.User{}, apperr.BadRequest("Invalid email address")
		}
		upd.Email = &email
	}
	return a.storage.UpdateUser(userId, upd)
}
