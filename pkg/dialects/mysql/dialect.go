// Package mysql provides the MySQL substring dialect.
package mysql

import (
	"github.com/leapstack-labs/sqlsubstr/pkg/dialect"
	"github.com/leapstack-labs/sqlsubstr/pkg/substr"
)

func init() {
	dialect.Register(MySQL)
}

// MySQL is the MySQL dialect.
// Negative starts are rejected to keep output portable to strict modes.
var MySQL = &dialect.Dialect{
	ID:          dialect.MySQL,
	Name:        "mysql",
	Description: "MySQL SUBSTRING",
	Rule: substr.Rule{
		FunctionName:       "substring",
		AllowNegativeStart: false,
		StartShift:         0,
	},
}
