package database

import (
	"github.com/Rana718/clothseed/internal/database/mysql"
	"github.com/Rana718/clothseed/internal/database/postgres"
	"github.com/Rana718/clothseed/internal/database/sqlite"
)

func NewAdapter(provider string) DatabaseAdapter {
	switch provider {
	case "postgresql", "postgres":
		return postgres.New()
	case "sqlite", "sqlite3":
		return sqlite.New()
	default:
		return mysql.New()
	}
}
