package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/nordcart/mcp-commerce/contacts"
)

type Store struct {
	db *sqlx.DB
}

func NewStore(connectionString string) (*Store, error) {
	_, err := mysql.ParseDSN(connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	db, err := sqlx.Open("mysql", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}

	if err := store.Ping(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return store, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// FindByIdentifier resolves a contact by any of its identifier shapes.
// The three conditions are independent; any one matching is enough.
func (s *Store) FindByIdentifier(ctx context.Context, identifier string) (*contacts.Contact, error) {
	const query = `
		SELECT id, customer_id, external_ref, account_no, email, name
		FROM contacts
		WHERE customer_id = ? OR external_ref = ? OR account_no = ?
		LIMIT 1
	`

	var contact contacts.Contact
	if err := s.db.GetContext(ctx, &contact, query, identifier, identifier, identifier); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &contacts.NotFoundError{Identifier: identifier}
		}
		return nil, fmt.Errorf("failed to query contact: %w", err)
	}

	return &contact, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
