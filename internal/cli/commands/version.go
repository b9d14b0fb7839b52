package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlsubstr/pkg/dialect"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display sqlsubstr version and the built-in dialects.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sqlsubstr v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "SUBSTR translator for %s\n", strings.Join(dialect.List(), ", "))
		},
	}
}
