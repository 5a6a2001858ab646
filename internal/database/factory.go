package database

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/winegen/internal/database/mysql"
	"github.com/Lumos-Labs-HQ/winegen/internal/database/postgres"
	"github.com/Lumos-Labs-HQ/winegen/internal/database/sqlite"
)

func NewAdapter(provider string) (DatabaseAdapter, error) {
	switch provider {
	case "postgresql", "postgres":
		return postgres.New(), nil
	case "mysql":
		return mysql.New(), nil
	case "sqlite", "sqlite3":
		return sqlite.New(), nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}
}
