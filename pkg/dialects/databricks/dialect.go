// Package databricks provides the Databricks substring dialect.
package databricks

import (
	"github.com/leapstack-labs/sqlsubstr/pkg/dialect"
	"github.com/leapstack-labs/sqlsubstr/pkg/substr"
)

func init() {
	dialect.Register(Databricks)
}

// Databricks is the Databricks dialect.
var Databricks = &dialect.Dialect{
	ID:          dialect.Databricks,
	Name:        "databricks",
	Description: "Databricks SQL substr, negative start counts from the end",
	Rule: substr.Rule{
		FunctionName:       "substr",
		AllowNegativeStart: true,
	},
}
