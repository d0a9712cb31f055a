package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the moldcost command tree.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moldcost [command] [flags]",
		Short: "moldcost estimates injection molding part costs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	cmd.AddCommand(NewCmdEstimate())
	cmd.AddCommand(NewCmdCooling())
	cmd.AddCommand(NewCmdMHR())
	cmd.AddCommand(NewCmdCatalog())
	cmd.AddCommand(NewCmdVersion())

	return cmd
}
