package account

import (
	"fmt"

	"github.com/hance08/sats/internal/service"
	"github.com/hance08/sats/internal/ui/views"
	"github.com/spf13/cobra"
)

type ListCommandRunner struct {
	svc *service.Service
}

func NewListCmd(svc func() *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts with their balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{svc: svc()}
			return runner.Run()
		},
	}
}

func (r *ListCommandRunner) Run() error {
	accounts, err := r.svc.Account.List()
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	return views.RenderAccountList(accounts)
}
