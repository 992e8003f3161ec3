package connection

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/koinonia/koinonia/internal/utils"
	"github.com/koinonia/koinonia/pkg/user"
	log "github.com/sirupsen/logrus"
)

var (
	ErrConnectionNotFound = fmt.Errorf("connection not found")
	ErrSelfConnection     = fmt.Errorf("cannot connect to yourself")
	ErrNotAddressee       = fmt.Errorf("only the addressee can accept a connection")
	ErrNotParticipant     = fmt.Errorf("user is not part of this connection")
)

// Directory is the read side consumed by task visibility: the identities
// whose tasks the given user may see.
type Directory interface {
	ListAcceptedConnections(ctx context.Context, userId string) ([]string, error)
}

type Service interface {
	Directory
	ListConnections(ctx context.Context) ([]Connection, error)
	RequestConnection(ctx context.Context, addresseeUid string) (Connection, error)
	AcceptConnection(ctx context.Context, id uuid.UUID) (Connection, error)
	RemoveConnection(ctx context.Context, id uuid.UUID) error
}

type ServiceImpl struct {
	repo  Repository
	clock utils.Clock
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: &utils.SystemClock{}}
}

func (s *ServiceImpl) ListAcceptedConnections(ctx context.Context, userId string) ([]string, error) {
	return s.repo.ListAcceptedPeers(ctx, userId)
}

func (s *ServiceImpl) ListConnections(ctx context.Context) ([]Connection, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.ListForUser(ctx, userId)
}

func (s *ServiceImpl) RequestConnection(ctx context.Context, addresseeUid string) (Connection, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Connection{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if addresseeUid == userId {
		return Connection{}, ErrSelfConnection
	}

	connection := Connection{
		ID:           uuid.New(),
		RequesterUid: userId,
		AddresseeUid: addresseeUid,
		Status:       StatusPending,
		CreatedAt:    s.clock.Now().UTC(),
	}
	if err := s.repo.StoreConnection(ctx, connection); err != nil {
		return Connection{}, err
	}
	log.Debugf("Connection %s requested by %s", connection.ID, userId)
	return connection, nil
}

func (s *ServiceImpl) AcceptConnection(ctx context.Context, id uuid.UUID) (Connection, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Connection{}, fmt.Errorf("failed to get current user: %w", err)
	}

	connection, err := s.repo.GetConnection(ctx, id)
	if err != nil {
		return Connection{}, err
	}
	if connection == nil {
		return Connection{}, ErrConnectionNotFound
	}
	if connection.AddresseeUid != userId {
		return Connection{}, ErrNotAddressee
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusAccepted); err != nil {
		return Connection{}, err
	}
	connection.Status = StatusAccepted
	log.Debugf("Connection %s accepted by %s", id, userId)
	return *connection, nil
}

func (s *ServiceImpl) RemoveConnection(ctx context.Context, id uuid.UUID) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	connection, err := s.repo.GetConnection(ctx, id)
	if err != nil {
		return err
	}
	if connection == nil {
		return ErrConnectionNotFound
	}
	if !connection.Involves(userId) {
		return ErrNotParticipant
	}

	return s.repo.DeleteConnection(ctx, id)
}
