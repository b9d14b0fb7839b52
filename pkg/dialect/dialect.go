// Package dialect holds the substring rules of known SQL dialects.
//
// Concrete dialects are registered from pkg/dialects/*/ packages in their
// init() functions; custom dialects can be registered at runtime from
// configuration. Lookups are safe for concurrent use.
package dialect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlsubstr/pkg/substr"
)

// ID identifies a built-in dialect. The first five keep the historical
// numbering used by callers that select dialects by number.
type ID int

const (
	Oracle ID = iota
	SQLServer
	PostgreSQL
	MySQL
	SQLite
	Databricks
	DuckDB
	Snowflake

	// Custom marks dialects registered from configuration.
	Custom
)

// String returns the canonical registry name of the ID.
func (id ID) String() string {
	switch id {
	case Oracle:
		return "oracle"
	case SQLServer:
		return "sqlserver"
	case PostgreSQL:
		return "postgres"
	case MySQL:
		return "mysql"
	case SQLite:
		return "sqlite"
	case Databricks:
		return "databricks"
	case DuckDB:
		return "duckdb"
	case Snowflake:
		return "snowflake"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("dialect(%d)", int(id))
	}
}

// Dialect pairs a registry name with the substring rule of that dialect.
type Dialect struct {
	ID          ID
	Name        string
	Description string
	Rule        substr.Rule
}

// IndexBase describes the start index convention implied by the rule's shift,
// relative to 1-based input.
func (d *Dialect) IndexBase() string {
	switch d.Rule.StartShift {
	case 0:
		return "1-based"
	case -1:
		return "0-based"
	default:
		return fmt.Sprintf("shift %+d", d.Rule.StartShift)
	}
}

// Validate checks that the dialect can be registered.
func (d *Dialect) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrDialectRequired
	}
	if strings.TrimSpace(d.Rule.FunctionName) == "" {
		return fmt.Errorf("dialect %s: function name is required", d.Name)
	}
	if strings.ContainsAny(d.Rule.FunctionName, " (),\"") {
		return fmt.Errorf("dialect %s: invalid function name %q", d.Name, d.Rule.FunctionName)
	}
	return nil
}

// ErrUnknownDialect is returned when a lookup finds no dialect.
var ErrUnknownDialect = errors.New("unknown dialect")

// TranslateCall translates input for the named dialect into dst.
// Lookup failures wrap ErrUnknownDialect; pipeline errors are returned unchanged.
func TranslateCall(input, name string, dst []byte) (int, error) {
	d, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return substr.TranslateCall(input, &d.Rule, dst)
}

// TranslateCallByID is TranslateCall with the dialect selected by ID.
func TranslateCallByID(input string, id ID, dst []byte) (int, error) {
	d, ok := ByID(id)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownDialect, id)
	}
	return substr.TranslateCall(input, &d.Rule, dst)
}
