package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cloudarch/pkg/arch"
)

// rulesCommand creates the command that prints the recommendation rules.
func (c *CLI) rulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rules used to pick architectures",
		Long: `List the recommendation rules in evaluation order.

Every matching rule contributes one architecture. The fallback applies only
when no other rule matched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRules(cmd.OutOrStdout(), arch.Rules())
		},
	}
}

// printRules renders the rule table.
func printRules(w io.Writer, rules []arch.RuleInfo) error {
	rows := make([][]string, len(rules))
	for i, r := range rules {
		rows[i] = []string{strconv.Itoa(r.Order), r.Name, r.Summary}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("#", "Rule", "Matches").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			if col == 0 {
				return styleTableCell.Foreground(colorGray)
			}
			return styleTableCell
		})

	_, err := fmt.Fprintln(w, t.String())
	return err
}
