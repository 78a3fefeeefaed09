package account

import (
	"github.com/hance08/sats/internal/service"
	"github.com/spf13/cobra"
)

// NewAccountCmd groups the account subcommands. svc is resolved when a
// subcommand runs, after the root command has loaded configuration.
func NewAccountCmd(svc func() *service.Service) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Create accounts and show the list of all accounts.",
		Long:  `Create accounts and show the list of all accounts with their balances.`,
	}

	accountCmd.AddCommand(NewCreateCmd(svc))
	accountCmd.AddCommand(NewListCmd(svc))

	return accountCmd
}
