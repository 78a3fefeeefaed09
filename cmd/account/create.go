package account

import (
	"fmt"

	"github.com/hance08/sats/internal/model"
	"github.com/hance08/sats/internal/service"
	"github.com/hance08/sats/internal/ui/prompts"
	"github.com/hance08/sats/internal/ui/views"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name    string
	Balance string
}

type CreateCommandRunner struct {
	svc   *service.Service
	flags *createFlags
}

func NewCreateCmd(svc func() *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account.",
		Long: `Create a new account with an opening balance in satoshis.
Without flags the name and balance are asked interactively.

Example: sats account create -n "John Harvard" -b 150000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &CreateCommandRunner{
				svc:   svc(),
				flags: flags,
			}

			if cmd.Flags().Changed("name") {
				return runner.FlagsMode()
			}
			return runner.InteractiveMode()
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Account name")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "0", "Opening balance in SATS (digits only)")

	return cmd
}

func (r *CreateCommandRunner) FlagsMode() error {
	acc, err := r.svc.Account.Create(r.flags.Name, r.flags.Balance)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return views.RenderAccountCreated(&model.Account{Name: acc.Name(), Balance: acc.Balance()})
}

func (r *CreateCommandRunner) InteractiveMode() error {
	p := &prompts.SessionPrompter{DashWidth: r.svc.Config.UI.DashWidth}

	acc, err := r.svc.Account.CreateInteractive(p)
	if err != nil {
		return err
	}

	return views.RenderAccountCreated(&model.Account{Name: acc.Name(), Balance: acc.Balance()})
}
