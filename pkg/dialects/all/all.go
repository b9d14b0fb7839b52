// Package all registers every built-in dialect.
package all

import (
	_ "github.com/leapstack-labs/sqlsubstr/pkg/dialects/databricks" // register databricks
	_ "github.com/leapstack-labs/sqlsubstr/pkg/dialects/duckdb"     // register duckdb
	_ "github.com/leapstack-labs/sqlsubstr/pkg/dialects/mysql"      // register mysql
	_ "github.com/leapstack-labs/sqlsubstr/pkg/dialects/oracle"     // register oracle
	_ "github.com/leapstack-labs/sqlsubstr/pkg/dialects/postgres"   // register postgres
	_ "github.com/leapstack-labs/sqlsubstr/pkg/dialects/snowflake"  // register snowflake
	_ "github.com/leapstack-labs/sqlsubstr/pkg/dialects/sqlite"     // register sqlite
	_ "github.com/leapstack-labs/sqlsubstr/pkg/dialects/sqlserver"  // register sqlserver
)
