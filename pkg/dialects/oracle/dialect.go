// Package oracle provides the Oracle substring dialect.
package oracle

import (
	"github.com/leapstack-labs/sqlsubstr/pkg/dialect"
	"github.com/leapstack-labs/sqlsubstr/pkg/substr"
)

func init() {
	dialect.Register(Oracle)
}

// Oracle is the Oracle dialect.
var Oracle = &dialect.Dialect{
	ID:          dialect.Oracle,
	Name:        "oracle",
	Description: "Oracle SUBSTR, negative start counts from the end",
	Rule: substr.Rule{
		FunctionName:       "substr",
		AllowNegativeStart: true,
		StartShift:         0,
	},
}
