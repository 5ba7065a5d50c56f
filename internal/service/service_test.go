package service

import (
	"github.com/flowspace-dev/flowspace/internal/apperr"
	"github.com/flowspace-dev/flowspace/internal/domain"
)

// Mock storages with overridable function fields, default behavior is a
// zero-value success.

type MockAuthStorage struct {
	MockSaveUser    func(user domain.User) (domain.UserId, error)
	MockUserByEmail func(email domain.Email) (domain.User, error)
	MockUser        func(id domain.UserId) (domain.User, error)
	MockUpdateUser  func(id domain.UserId, upd domain.UserUpdate) (domain.User, error)
}

func (m *MockAuthStorage) SaveUser(user domain.User) (domain.UserId, error) {
	if m.MockSaveUser != nil {
		return m.MockSaveUser(user)
	}
	return 1, nil
}

func (m *MockAuthStorage) UserByEmail(email domain.Email) (domain.User, error) {
	if m.MockUserByEmail != nil {
		return m.MockUserByEmail(email)
	}
	return domain.User{}, nil
}

func (m *MockAuthStorage) User(id domain.UserId) (domain.User, error) {
	if m.MockUser != nil {
		return m.MockUser(id)
	}
	return domain.User{Id: id}, nil
}

func (m *MockAuthStorage) UpdateUser(id domain.UserId, upd domain.UserUpdate) (domain.User, error) {
	if m.MockUpdateUser != nil {
		return m.MockUpdateUser(id, upd)
	}
	return domain.User{Id: id}, nil
}

type MockJwt struct {
	MockNewToken func(userId domain.UserId) (string, error)
}

func (m *MockJwt) NewToken(userId domain.UserId) (string, error) {
	if m.MockNewToken != nil {
		return m.MockNewToken(userId)
	}
	return "token", nil
}

type MockBoardStorage struct {
	MockCreateBoard   func(board domain.Board) (domain.Board, error)
	MockBoard         func(id domain.BoardId) (domain.Board, error)
	MockBoardsForUser func(userId domain.UserId) ([]domain.Board, error)
	MockDeleteBoard   func(id domain.BoardId) error
	MockAddColumn     func(boardId domain.BoardId, title string) (domain.Board, error)
	MockMemberRole    func(boardId domain.BoardId, userId domain.UserId) (domain.Role, error)
	MockAddMember     func(boardId domain.BoardId, userId domain.UserId, role domain.Role) error
}

func (m *MockBoardStorage) CreateBoard(board domain.Board) (domain.Board, error) {
	if m.MockCreateBoard != nil {
		return m.MockCreateBoard(board)
	}
	board.Id = 1
	return board, nil
}

func (m *MockBoardStorage) Board(id domain.BoardId) (domain.Board, error) {
	if m.MockBoard != nil {
		return m.MockBoard(id)
	}
	return domain.Board{Id: id}, nil
}

func (m *MockBoardStorage) BoardsForUser(userId domain.UserId) ([]domain.Board, error) {
	if m.MockBoardsForUser != nil {
		return m.MockBoardsForUser(userId)
	}
	return nil, nil
}

func (m *MockBoardStorage) DeleteBoard(id domain.BoardId) error {
	if m.MockDeleteBoard != nil {
		return m.MockDeleteBoard(id)
	}
	return nil
}

func (m *MockBoardStorage) AddColumn(boardId domain.BoardId, title string) (domain.Board, error) {
	if m.MockAddColumn != nil {
		return m.MockAddColumn(boardId, title)
	}
	return domain.Board{Id: boardId}, nil
}

func (m *MockBoardStorage) MemberRole(boardId domain.BoardId, userId domain.UserId) (domain.Role, error) {
	if m.MockMemberRole != nil {
		return m.MockMemberRole(boardId, userId)
	}
	return domain.RoleOwner, nil
}

func (m *MockBoardStorage) AddMember(boardId domain.BoardId, userId domain.UserId, role domain.Role) error {
	if m.MockAddMember != nil {
		return m.MockAddMember(boardId, userId, role)
	}
	return nil
}

type MockCardStorage struct {
	MockCreateCard    func(card domain.Card, creatorId domain.UserId) (domain.Card, error)
	MockCard          func(id domain.CardId) (domain.Card, error)
	MockCardsForBoard func(boardId domain.BoardId) ([]domain.Card, error)
	MockUpdateCard    func(id domain.CardId, upd domain.CardUpdate, actorId domain.UserId) (domain.Card, error)
	MockDeleteCard    func(id domain.CardId) error
}

func (m *MockCardStorage) CreateCard(card domain.Card, creatorId domain.UserId) (domain.Card, error) {
	if m.MockCreateCard != nil {
		return m.MockCreateCard(card, creatorId)
	}
	card.Id = 1
	card.CreatedBy = domain.UserRef{Id: creatorId}
	card.UpdatedBy = domain.UserRef{Id: creatorId}
	return card, nil
}

func (m *MockCardStorage) Card(id domain.CardId) (domain.Card, error) {
	if m.MockCard != nil {
		return m.MockCard(id)
	}
	return domain.Card{Id: id}, nil
}

func (m *MockCardStorage) CardsForBoard(boardId domain.BoardId) ([]domain.Card, error) {
	if m.MockCardsForBoard != nil {
		return m.MockCardsForBoard(boardId)
	}
	return nil, nil
}

func (m *MockCardStorage) UpdateCard(id domain.CardId, upd domain.CardUpdate, actorId domain.UserId) (domain.Card, error) {
	if m.MockUpdateCard != nil {
		return m.MockUpdateCard(id, upd, actorId)
	}
	return domain.Card{Id: id, UpdatedBy: domain.UserRef{Id: actorId}}, nil
}

func (m *MockCardStorage) DeleteCard(id domain.CardId) error {
	if m.MockDeleteCard != nil {
		return m.MockDeleteCard(id)
	}
	return nil
}

type MockInviteStorage struct {
	MockSaveInvite      func(invite domain.Invite) error
	MockInvite          func(token string) (domain.Invite, error)
	MockInvitesForBoard func(boardId domain.BoardId) ([]domain.Invite, error)
	MockAcceptInvite    func(token string, userId domain.UserId) (domain.Invite, error)
	MockRevokeInvite    func(token string) error
}

func (m *MockInviteStorage) SaveInvite(invite domain.Invite) error {
	if m.MockSaveInvite != nil {
		return m.MockSaveInvite(invite)
	}
	return nil
}

func (m *MockInviteStorage) Invite(token string) (domain.Invite, error) {
	if m.MockInvite != nil {
		return m.MockInvite(token)
	}
	return domain.Invite{Token: token}, nil
}

func (m *MockInviteStorage) InvitesForBoard(boardId domain.BoardId) ([]domain.Invite, error) {
	if m.MockInvitesForBoard != nil {
		return m.MockInvitesForBoard(boardId)
	}
	return nil, nil
}

func (m *MockInviteStorage) AcceptInvite(token string, userId domain.UserId) (domain.Invite, error) {
	if m.MockAcceptInvite != nil {
		return m.MockAcceptInvite(token, userId)
	}
	return domain.Invite{Token: token, Status: domain.InviteAccepted}, nil
}

func (m *MockInviteStorage) RevokeInvite(token string) error {
	if m.MockRevokeInvite != nil {
		return m.MockRevokeInvite(token)
	}
	return nil
}

type MockActivityStorage struct {
	MockSaveActivity      func(a domain.Activity) error
	MockActivitiesForUser func(userId domain.UserId, limit int) ([]domain.Activity, error)
}

func (m *MockActivityStorage) SaveActivity(a domain.Activity) error {
	if m.MockSaveActivity != nil {
		return m.MockSaveActivity(a)
	}
	return nil
}

func (m *MockActivityStorage) ActivitiesForUser(userId domain.UserId, limit int) ([]domain.Activity, error) {
	if m.MockActivitiesForUser != nil {
		return m.MockActivitiesForUser(userId, limit)
	}
	return nil, nil
}

// notMember mimics storage behavior for a user with no membership row.
func notMember(boardId domain.BoardId, userId domain.UserId) (domain.Role, error) {
	return "", apperr.Forbidden("Not a member of this board")
}
