// Package postgres provides the PostgreSQL substring dialect.
// This package is pure Go with no database driver dependencies.
package postgres

import (
	"github.com/leapstack-labs/sqlsubstr/pkg/dialect"
	"github.com/leapstack-labs/sqlsubstr/pkg/substr"
)

func init() {
	dialect.Register(Postgres)
}

// Postgres is the PostgreSQL dialect.
var Postgres = &dialect.Dialect{
	ID:          dialect.PostgreSQL,
	Name:        "postgres",
	Description: "PostgreSQL SUBSTR",
	Rule: substr.Rule{
		FunctionName:       "substr",
		AllowNegativeStart: false,
		StartShift:         0,
	},
}
