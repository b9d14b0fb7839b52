// Package sqlserver provides the SQL Server substring dialect.
package sqlserver

import (
	"github.com/leapstack-labs/sqlsubstr/pkg/dialect"
	"github.com/leapstack-labs/sqlsubstr/pkg/substr"
)

func init() {
	dialect.Register(SQLServer)
}

// SQLServer is the SQL Server dialect. SUBSTRING takes a start before
// position 1 and shortens the result instead of failing.
var SQLServer = &dialect.Dialect{
	ID:          dialect.SQLServer,
	Name:        "sqlserver",
	Description: "SQL Server SUBSTRING",
	Rule: substr.Rule{
		FunctionName:       "substring",
		AllowNegativeStart: true,
		StartShift:         0,
	},
}
