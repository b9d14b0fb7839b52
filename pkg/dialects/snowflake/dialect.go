// Package snowflake provides the Snowflake substring dialect.
package snowflake

import (
	"github.com/leapstack-labs/sqlsubstr/pkg/dialect"
	"github.com/leapstack-labs/sqlsubstr/pkg/substr"
)

func init() {
	dialect.Register(Snowflake)
}

// Snowflake is the Snowflake dialect.
var Snowflake = &dialect.Dialect{
	ID:          dialect.Snowflake,
	Name:        "snowflake",
	Description: "Snowflake SUBSTR, negative start counts from the end",
	Rule: substr.Rule{
		FunctionName:       "substr",
		AllowNegativeStart: true,
	},
}
