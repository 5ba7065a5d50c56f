package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/flowspace-dev/flowspace/internal/config"
	"github.com/flowspace-dev/flowspace/internal/domain"
	"github.com/flowspace-dev/flowspace/internal/middleware"
)

// Mock services with overridable function fields, default behavior is a
// zero-value success.

type MockAuthService struct {
	MockRegister      func(name string, creds domain.Credentials) (domain.User, string, error)
	MockLogin         func(creds domain.Credentials) (domain.User, string, error)
	MockMe            func(userId domain.UserId) (domain.User, error)
	MockUpdateProfile func(userId domain.UserId, upd domain.UserUpdate) (domain.User, error)
}

func (m *MockAuthService) Register(name string, creds domain.Credentials) (domain.User, string, error) {
	if m.MockRegister != nil {
		return m.MockRegister(name, creds)
	}
	return domain.User{}, "", nil
}

func (m *MockAuthService) Login(creds domain.Credentials) (domain.User, string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(creds)
	}
	return domain.User{}, "", nil
}

func (m *MockAuthService) Me(userId domain.UserId) (domain.User, error) {
	if m.MockMe != nil {
		return m.MockMe(userId)
	}
	return domain.User{}, nil
}

func (m *MockAuthService) UpdateProfile(userId domain.UserId, upd domain.UserUpdate) (domain.User, error) {
	if m.MockUpdateProfile != nil {
		return m.MockUpdateProfile(userId, upd)
	}
	return domain.User{}, nil
}

type MockBoardService struct {
	MockCreate    func(actor domain.UserId, title, description string, columns []string) (domain.Board, error)
	MockGet       func(actor domain.UserId, boardId domain.BoardId) (domain.Board, error)
	MockList      func(actor domain.UserId) ([]domain.Board, error)
	MockDelete    func(actor domain.UserId, boardId domain.BoardId) error
	MockAddColumn func(actor domain.UserId, boardId domain.BoardId, title string) (domain.Board, error)
}

func (m *MockBoardService) Create(actor domain.UserId, title, description string, columns []string) (domain.Board, error) {
	if m.MockCreate != nil {
		return m.MockCreate(actor, title, description, columns)
	}
	return domain.Board{}, nil
}

func (m *MockBoardService) Get(actor domain.UserId, boardId domain.BoardId) (domain.Board, error) {
	if m.MockGet != nil {
		return m.MockGet(actor, boardId)
	}
	return domain.Board{}, nil
}

func (m *MockBoardService) List(actor domain.UserId) ([]domain.Board, error) {
	if m.MockList != nil {
		return m.MockList(actor)
	}
	return nil, nil
}

func (m *MockBoardService) Delete(actor domain.UserId, boardId domain.BoardId) error {
	if m.MockDelete != nil {
		return m.MockDelete(actor, boardId)
	}
	return nil
}

func (m *MockBoardService) AddColumn(actor domain.UserId, boardId domain.BoardId, title string) (domain.Board, error) {
	if m.MockAddColumn != nil {
		return m.MockAddColumn(actor, boardId, title)
	}
	return domain.Board{}, nil
}

type MockCardService struct {
	MockCreate func(actor domain.UserId, card domain.Card) (domain.Card, error)
	MockList   func(actor domain.UserId, boardId domain.BoardId) ([]domain.Card, error)
	MockUpdate func(actor domain.UserId, cardId domain.CardId, upd domain.CardUpdate) (domain.Card, error)
	MockDelete func(actor domain.UserId, cardId domain.CardId) error
}

func (m *MockCardService) Create(actor domain.UserId, card domain.Card) (domain.Card, error) {
	if m.MockCreate != nil {
		return m.MockCreate(actor, card)
	}
	return domain.Card{}, nil
}

func (m *MockCardService) List(actor domain.UserId, boardId domain.BoardId) ([]domain.Card, error) {
	if m.MockList != nil {
		return m.MockList(actor, boardId)
	}
	return nil, nil
}

func (m *MockCardService) Update(actor domain.UserId, cardId domain.CardId, upd domain.CardUpdate) (domain.Card, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(actor, cardId, upd)
	}
	return domain.Card{}, nil
}

func (m *MockCardService) Delete(actor domain.UserId, cardId domain.CardId) error {
	if m.MockDelete != nil {
		return m.MockDelete(actor, cardId)
	}
	return nil
}

type MockInviteService struct {
	MockCreate       func(actor domain.UserId, boardId domain.BoardId, email domain.Email, role domain.Role) (domain.Invite, string, error)
	MockAccept       func(actor domain.UserId, token string) (domain.Board, error)
	MockListForBoard func(actor domain.UserId, boardId domain.BoardId) ([]domain.Invite, error)
	MockRevoke       func(actor domain.UserId, token string) error
}

func (m *MockInviteService) Create(actor domain.UserId, boardId domain.BoardId, email domain.Email, role domain.Role) (domain.Invite, string, error) {
	if m.MockCreate != nil {
		return m.MockCreate(actor, boardId, email, role)
	}
	return domain.Invite{}, "", nil
}

func (m *MockInviteService) Accept(actor domain.UserId, token string) (domain.Board, error) {
	if m.MockAccept != nil {
		return m.MockAccept(actor, token)
	}
	return domain.Board{}, nil
}

func (m *MockInviteService) ListForBoard(actor domain.UserId, boardId domain.BoardId) ([]domain.Invite, error) {
	if m.MockListForBoard != nil {
		return m.MockListForBoard(actor, boardId)
	}
	return nil, nil
}

func (m *MockInviteService) Revoke(actor domain.UserId, token string) error {
	if m.MockRevoke != nil {
		return m.MockRevoke(actor, token)
	}
	return nil
}

type MockActivityService struct {
	MockFeed func(userId domain.UserId, limit int) ([]domain.Activity, error)
}

func (m *MockActivityService) Feed(userId domain.UserId, limit int) ([]domain.Activity, error) {
	if m.MockFeed != nil {
		return m.MockFeed(userId, limit)
	}
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{Public: config.Public{
		Port:              8080,
		AppURL:            "http://localhost:8080",
		JwtTTL:            24 * time.Hour,
		ActivityPageLimit: 50,
		ActivityPageMax:   200,
	}}
}

// authedRequest builds a request carrying an authenticated user id, the way
// the auth middleware would.
func authedRequest(t *testing.T, method, url string, body []byte, userId domain.UserId) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	return req.WithContext(middleware.ContextWithUserId(req.Context(), userId))
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}
