package task

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single-date commitment. Date holds the storage instant produced
// by season.ToStorageDate (always UTC midnight); OwnerUid never changes after
// creation.
type Task struct {
	ID          uuid.UUID
	OwnerUid    string
	Title       string
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// Draft carries the user-entered fields of a create or update intent. Date is
// the raw picker value; it is parsed and normalized during validation, before
// any store call.
type Draft struct {
	Title       string
	Description string
	Date        string
}
