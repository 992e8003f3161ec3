package connection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	StoreConnection(ctx context.Context, connection Connection) error
	GetConnection(ctx context.Context, id uuid.UUID) (*Connection, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteConnection(ctx context.Context, id uuid.UUID) error
	ListForUser(ctx context.Context, uid string) ([]Connection, error)
	ListAcceptedPeers(ctx context.Context, uid string) ([]string, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) StoreConnection(ctx context.Context, connection Connection) error {
	query := `INSERT INTO connection (id, requester_uid, addressee_uid, status, created_at)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query,
		connection.ID.String(), connection.RequesterUid, connection.AddresseeUid,
		string(connection.Status), connection.CreatedAt.Unix())
	if err != nil {
		err := fmt.Errorf("could not store connection: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) GetConnection(ctx context.Context, id uuid.UUID) (*Connection, error) {
	query := `SELECT id, requester_uid, addressee_uid, status, created_at
	          FROM connection WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id.String())

	connection, err := scanConnection(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		err := fmt.Errorf("failed to get connection %s: %w", id, err)
		log.Error(err)
		return nil, err
	}
	return &connection, nil
}

func (r *RepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	query := "UPDATE connection SET status = $1 WHERE id = $2"
	_, err := r.db.ExecContext(ctx, query, string(status), id.String())
	if err != nil {
		err := fmt.Errorf("could not update connection %s: %w", id, err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) DeleteConnection(ctx context.Context, id uuid.UUID) error {
	query := "DELETE FROM connection WHERE id = $1"
	_, err := r.db.ExecContext(ctx, query, id.String())
	if err != nil {
		err := fmt.Errorf("could not delete connection %s: %w", id, err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) ListForUser(ctx context.Context, uid string) ([]Connection, error) {
	query := `SELECT id, requester_uid, addressee_uid, status, created_at
	          FROM connection
	          WHERE requester_uid = $1 OR addressee_uid = $1
	          ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, uid)
	if err != nil {
		err := fmt.Errorf("failed to list connections for %s: %w", uid, err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	connections := make([]Connection, 0)
	for rows.Next() {
		connection, err := scanConnection(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan connection row: %w", err)
		}
		connections = append(connections, connection)
	}
	return connections, rows.Err()
}

func (r *RepositoryImpl) ListAcceptedPeers(ctx context.Context, uid string) ([]string, error) {
	query := `SELECT requester_uid, addressee_uid
	          FROM connection
	          WHERE status = $1 AND (requester_uid = $2 OR addressee_uid = $2)`
	rows, err := r.db.QueryContext(ctx, query, string(StatusAccepted), uid)
	if err != nil {
		err := fmt.Errorf("failed to list accepted peers for %s: %w", uid, err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	peers := make([]string, 0)
	for rows.Next() {
		var requester, addressee string
		if err := rows.Scan(&requester, &addressee); err != nil {
			return nil, fmt.Errorf("failed to scan connection row: %w", err)
		}
		if requester == uid {
			peers = append(peers, addressee)
		} else {
			peers = append(peers, requester)
		}
	}
	return peers, rows.Err()
}

func scanConnection(scan func(dest ...any) error) (Connection, error) {
	var connection Connection
	var idString, status string
	var createdAtUnix int64
	if err := scan(&idString, &connection.RequesterUid, &connection.AddresseeUid, &status, &createdAtUnix); err != nil {
		return Connection{}, err
	}

	id, err := uuid.Parse(idString)
	if err != nil {
		return Connection{}, fmt.Errorf("invalid connection id %q: %w", idString, err)
	}
	connection.ID = id
	connection.Status = Status(status)
	connection.CreatedAt = time.Unix(createdAtUnix, 0).UTC()
	return connection, nil
}
