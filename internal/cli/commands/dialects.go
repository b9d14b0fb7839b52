package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlsubstr/pkg/dialect"
)

// dialectInfo describes a registered dialect in structured output.
type dialectInfo struct {
	Name               string `json:"name" yaml:"name"`
	Function           string `json:"function" yaml:"function"`
	AllowNegativeStart bool   `json:"allow_negative_start" yaml:"allow_negative_start"`
	StartShift         int64  `json:"start_shift" yaml:"start_shift"`
	IndexBase          string `json:"index_base" yaml:"index_base"`
	Custom             bool   `json:"custom" yaml:"custom"`
	Description        string `json:"description" yaml:"description"`
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "dialects",
		Aliases: []string{"ls"},
		Short:   "List registered dialects",
		Long: `List the built-in dialects and any custom dialects defined in configuration,
with their substring function and negative start policy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDialects(cmd)
		},
	}
}

func runDialects(cmd *cobra.Command) error {
	cmdCtx := NewCommandContextWithoutDialect(cmd)
	r := cmdCtx.Renderer

	all := dialect.All()
	infos := make([]dialectInfo, 0, len(all))
	for _, d := range all {
		infos = append(infos, dialectInfo{
			Name:               d.Name,
			Function:           d.Rule.FunctionName,
			AllowNegativeStart: d.Rule.AllowNegativeStart,
			StartShift:         d.Rule.StartShift,
			IndexBase:          d.IndexBase(),
			Custom:             d.ID == dialect.Custom,
			Description:        d.Description,
		})
	}

	if ok, err := r.Structured(infos); ok {
		return err
	}

	r.Header(1, "Dialects ("+strconv.Itoa(len(infos))+" registered)")
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		negative := "no"
		if info.AllowNegativeStart {
			negative = "yes"
		}
		name := info.Name
		if info.Name == cmdCtx.Cfg.Dialect {
			name += " *"
		}
		rows = append(rows, []string{name, info.Function, negative, info.IndexBase, info.Description})
	}
	r.Table([]string{"Name", "Function", "Negative start", "Index", "Description"}, rows)
	r.Println("")
	r.Muted("* current dialect")
	return nil
}
