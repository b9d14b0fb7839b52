// Package duckdb provides the DuckDB substring dialect.
package duckdb

import (
	"github.com/leapstack-labs/sqlsubstr/pkg/dialect"
	"github.com/leapstack-labs/sqlsubstr/pkg/substr"
)

func init() {
	dialect.Register(DuckDB)
}

// DuckDB is the DuckDB dialect.
var DuckDB = &dialect.Dialect{
	ID:          dialect.DuckDB,
	Name:        "duckdb",
	Description: "DuckDB substring, negative start counts from the end",
	Rule: substr.Rule{
		FunctionName:       "substring",
		AllowNegativeStart: true,
	},
}
