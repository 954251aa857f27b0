package contacts

import (
	"context"
	"fmt"
)

// Contact is the owning parent record a mapped document is attached to.
type Contact struct {
	ID          int64  `db:"id" json:"id"`
	CustomerID  string `db:"customer_id" json:"customerId"`
	ExternalRef string `db:"external_ref" json:"externalRef"`
	AccountNo   string `db:"account_no" json:"accountNo"`
	Email       string `db:"email" json:"email,omitempty"`
	Name        string `db:"name" json:"name,omitempty"`
}

// Store resolves contacts by identifier.
//
// FindByIdentifier matches the candidate against customer_id,
// external_ref and account_no independently (any match wins) and
// returns at most one contact. An unmatched identifier yields a
// *NotFoundError.
type Store interface {
	FindByIdentifier(ctx context.Context, identifier string) (*Contact, error)
	Ping(ctx context.Context) error
	Close() error
}

const notFoundTemplate = "no contact found for identifier %q"

// NotFoundError reports an identifier that matched no contact.
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(notFoundTemplate, e.Identifier)
}
