package service

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/flowspace-dev/flowspace/internal/apperr"
	"github.com/flowspace-dev/flowspace/internal/domain"
	"github.com/flowspace-dev/flowspace/internal/utils"
)

const inviteTokenBytes = 32

// to mock service in tests
type InviteService interface {
	Create(actor domain.UserId, boardId domain.BoardId, email domain.Email, role domain.Role) (domain.Invite, string, error)
	Accept(actor domain.UserId, token string) (domain.Board, error)
	ListForBoard(actor domain.UserId, boardId domain.BoardId) ([]domain.Invite, error)
	Revoke(actor domain.UserId, token string) error
}

type InviteStorage interface {
	SaveInvite(invite domain.Invite) error
	Invite(token string) (domain.Invite, error)
	InvitesForBoard(boardId domain.BoardId) ([]domain.Invite, error)
	AcceptInvite(token string, userId domain.UserId) (domain.Invite, error)
	RevokeInvite(token string) error
}

type Invite struct {
	storage  InviteStorage
	boards   BoardStorage
	activity ActivityStorage
	appURL   string
}

func NewInvite(storage InviteStorage, boards BoardStorage, activity ActivityStorage, appURL string) InviteService {
	return &Invite{storage, boards, activity, appURL}
}

// Create issues a pending invite valid for domain.InviteTTL. Owners and
// editors may invite; viewers never can. Only editor and viewer roles are
// grantable, so a board keeps exactly one owner.
func (s *Invite) Create(actor domain.UserId, boardId domain.BoardId, email domain.Email, role domain.Role) (domain.Invite, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.Invite{}, "", apperr.BadRequest("Invalid email address")
	}
	if !role.Grantable() {
		return domain.Invite{}, "", apperr.BadRequest("Role must be editor or viewer")
	}

	actorRole, err := s.boards.MemberRole(boardId, actor)
	if err != nil {
		return domain.Invite{}, "", err
	}
	if !actorRole.CanInvite() {
		return domain.Invite{}, "", apperr.Forbidden("Viewers cannot send invites")
	}

	invite := domain.Invite{
		Token:     utils.GenerateToken(inviteTokenBytes),
		BoardId:   boardId,
		Email:     email,
		Role:      role,
		Status:    domain.InvitePending,
		InvitedBy: domain.UserRef{Id: actor},
		ExpiresAt: time.Now().Add(domain.InviteTTL),
	}
	if err := s.storage.SaveInvite(invite); err != nil {
		return domain.Invite{}, "", err
	}

	link := fmt.Sprintf("%s/invite?token=%s", strings.TrimRight(s.appURL, "/"), invite.Token)
	return invite, link, nil
}

// Accept consumes the token and adds the caller to the board with the
// invite's role. The pending → accepted transition happens at most once;
// a caller who is already a member still consumes the invite but keeps the
// existing role. Returns the updated board.
func (s *Invite) Accept(actor domain.UserId, token string) (domain.Board, error) {
	invite, err := s.storage.AcceptInvite(token, actor)
	if err != nil {
		return domain.Board{}, err
	}

	board, err := s.boards.Board(invite.BoardId)
	if err != nil {
		return domain.Board{}, err
	}

	record(s.activity, domain.Activity{
		User:       domain.UserRef{Id: actor},
		BoardId:    board.Id,
		EntityType: domain.EntityInvite,
		EntityId:   board.Id,
		Action:     fmt.Sprintf("joined board %q as %s", board.Title, invite.Role),
	})

	return board, nil
}

// ListForBoard is restricted to members who could have sent invites.
func (s *Invite) ListForBoard(actor domain.UserId, boardId domain.BoardId) ([]domain.Invite, error) {
	actorRole, err := s.boards.MemberRole(boardId, actor)
	if err != nil {
		return nil, err
	}
	if !actorRole.CanInvite() {
		return nil, apperr.Forbidden("Viewers cannot list invites")
	}
	return s.storage.InvitesForBoard(boardId)
}

// Revoke cancels a pending invite. Allowed for the inviter and the board
// owner.
func (s *Invite) Revoke(actor domain.UserId, token string) error {
	invite, err := s.storage.Invite(token)
	if err != nil {
		return err
	}

	actorRole, err := s.boards.MemberRole(invite.BoardId, actor)
	if err != nil {
		return err
	}
	if invite.InvitedBy.Id != actor && actorRole != domain.RoleOwner {
		return apperr.Forbidden("Only the inviter or the board owner can revoke an invite")
	}

	return s.storage.RevokeInvite(invite.Token)
}
