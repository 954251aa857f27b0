package databases

import (
	"fmt"

	"github.com/nordcart/mcp-commerce/contacts"
	"github.com/nordcart/mcp-commerce/databases/mysql"
	"github.com/nordcart/mcp-commerce/databases/postgres"
	"github.com/nordcart/mcp-commerce/databases/sqlite"
)

// NewStore opens a contact store for the configured database type.
func NewStore(dbType, connectionString string) (contacts.Store, error) {
	switch dbType {
	case "postgres":
		return postgres.NewStore(connectionString)
	case "mysql":
		return mysql.NewStore(connectionString)
	case "sqlite":
		return sqlite.NewStore(connectionString)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
}
