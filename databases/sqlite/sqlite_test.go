package sqlite

import (
	"context"
	"testing"

	"github.com/nordcart/mcp-commerce/contacts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = store.db.Exec(`
		CREATE TABLE contacts (
			id INTEGER PRIMARY KEY,
			customer_id TEXT NOT NULL,
			external_ref TEXT NOT NULL,
			account_no TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL DEFAULT ''
		)
	`)
	require.NoError(t, err)

	_, err = store.db.Exec(`
		INSERT INTO contacts (id, customer_id, external_ref, account_no, email, name)
		VALUES (1, 'CUST-001', 'ext-9f2', 'ACC-42', 'ada@example.com', 'Ada')
	`)
	require.NoError(t, err)

	return store
}

func TestFindByIdentifierMatchesAnyShape(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"CUST-001", "ext-9f2", "ACC-42"} {
		contact, err := store.FindByIdentifier(ctx, id)
		require.NoError(t, err, "identifier %s", id)
		assert.Equal(t, int64(1), contact.ID)
		assert.Equal(t, "Ada", contact.Name)
	}
}

func TestFindByIdentifierNotFound(t *testing.T) {
	store := newTestStore(t)

	contact, err := store.FindByIdentifier(context.Background(), "nope")
	assert.Nil(t, contact)

	var notFound *contacts.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.Identifier)
	assert.Contains(t, notFound.Error(), `"nope"`)
}
