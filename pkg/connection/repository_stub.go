package connection

import (
	"context"

	"github.com/google/uuid"
)

type StubRepository struct {
	Connections []Connection
}

func (s *StubRepository) StoreConnection(ctx context.Context, connection Connection) error {
	s.Connections = append(s.Connections, connection)
	return nil
}

func (s *StubRepository) GetConnection(ctx context.Context, id uuid.UUID) (*Connection, error) {
	for i := range s.Connections {
		if s.Connections[i].ID == id {
			return &s.Connections[i], nil
		}
	}
	return nil, nil
}

func (s *StubRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	for i := range s.Connections {
		if s.Connections[i].ID == id {
			s.Connections[i].Status = status
		}
	}
	return nil
}

func (s *StubRepository) DeleteConnection(ctx context.Context, id uuid.UUID) error {
	remaining := s.Connections[:0]
	for _, c := range s.Connections {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	s.Connections = remaining
	return nil
}

func (s *StubRepository) ListForUser(ctx context.Context, uid string) ([]Connection, error) {
	result := make([]Connection, 0)
	for _, c := range s.Connections {
		if c.Involves(uid) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *StubRepository) ListAcceptedPeers(ctx context.Context, uid string) ([]string, error) {
	peers := make([]string, 0)
	for _, c := range s.Connections {
		if c.Status == StatusAccepted && c.Involves(uid) {
			peers = append(peers, c.PeerUid(uid))
		}
	}
	return peers, nil
}
