package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jsuplift/jsuplift/pkg/analyze"
	"github.com/jsuplift/jsuplift/pkg/analyze/rules"
)

type rulesFlags struct {
	format string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Tier        string `json:"tier"`
	Severity    string `json:"severity"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available modernization rules",
		Long: `List all available modernization rules with their IDs, descriptions,
categories, stability tiers, and default severities.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := rules.All().Rules()

			// Handle JSON output format.
			if flags.format == formatJSON {
				return outputRulesJSON(cmd.OutOrStdout(), all)
			}

			// Default to a table on stdout.
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "Name", "Category", "Tier", "Severity", "Description"})
			table.SetBorder(false)
			table.SetCenterSeparator("")
			table.SetAutoWrapText(false)
			table.SetColumnAlignment([]int{
				tablewriter.ALIGN_LEFT,
				tablewriter.ALIGN_LEFT,
				tablewriter.ALIGN_LEFT,
				tablewriter.ALIGN_LEFT,
				tablewriter.ALIGN_LEFT,
				tablewriter.ALIGN_LEFT,
			})

			for _, rule := range all {
				table.Append([]string{
					rule.ID(),
					rule.Name(),
					string(rule.Category()),
					string(rule.Tier()),
					string(rule.DefaultSeverity()),
					rule.Description(),
				})
			}

			table.SetFooter([]string{"", "", "", "", "Total", fmt.Sprintf("%d rules", len(all))})
			table.Render()

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(w io.Writer, all []analyze.Rule) error {
	infos := make([]ruleInfo, 0, len(all))
	for _, rule := range all {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Category:    string(rule.Category()),
			Tier:        string(rule.Tier()),
			Severity:    string(rule.DefaultSeverity()),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
