// Package sqlite provides the SQLite substring dialect.
package sqlite

import (
	"github.com/leapstack-labs/sqlsubstr/pkg/dialect"
	"github.com/leapstack-labs/sqlsubstr/pkg/substr"
)

func init() {
	dialect.Register(SQLite)
}

// SQLite is the SQLite dialect.
var SQLite = &dialect.Dialect{
	ID:          dialect.SQLite,
	Name:        "sqlite",
	Description: "SQLite SUBSTR",
	Rule: substr.Rule{
		FunctionName:       "substr",
		AllowNegativeStart: false,
		StartShift:         0,
	},
}
