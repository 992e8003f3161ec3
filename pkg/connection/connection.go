package connection

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
)

// Connection is a social link between two members. Tasks become mutually
// visible only once the addressee accepts.
type Connection struct {
	ID           uuid.UUID
	RequesterUid string
	AddresseeUid string
	Status       Status
	CreatedAt    time.Time
}

// PeerUid returns the other side of the connection from uid's point of view.
func (c Connection) PeerUid(uid string) string {
	if c.RequesterUid == uid {
		return c.AddresseeUid
	}
	return c.RequesterUid
}

func (c Connection) Involves(uid string) bool {
	return c.RequesterUid == uid || c.AddresseeUid == uid
}
