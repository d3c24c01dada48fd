package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reef-lang/reeflint/internal/simplify"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List all rules",
	Run: func(cmd *cobra.Command, args []string) {
		for _, rule := range simplify.Rules() {
			fmt.Printf("%-28s %s\n", rule.Name, rule.Doc)
		}
	},
}
