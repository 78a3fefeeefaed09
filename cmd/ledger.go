package cmd

import (
	"fmt"
	"strings"

	"github.com/hance08/sats/internal/service"
	"github.com/hance08/sats/internal/ui/views"
	"github.com/hance08/sats/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type ledgerFlags struct {
	Account string
}

func addAccountFlag(cmd *cobra.Command, flags *ledgerFlags) {
	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Account name")
	_ = cmd.MarkFlagRequired("account")
}

func NewBalanceCmd(rt *runtime) *cobra.Command {
	flags := &ledgerFlags{}

	cmd := &cobra.Command{
		Use:     "balance",
		Short:   "Show the balance of an account",
		Example: `  sats balance -a "John Harvard"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := rt.Service().Account.Open(flags.Account)
			if err != nil {
				return err
			}

			views.RenderBalance(acc.Name(), acc.Balance(), rt.cfg.UI.DashWidth)
			return nil
		},
	}

	addAccountFlag(cmd, flags)
	return cmd
}

func NewDepositCmd(rt *runtime) *cobra.Command {
	flags := &ledgerFlags{}

	cmd := &cobra.Command{
		Use:     "deposit AMOUNT",
		Short:   "Log a deposit to an account",
		Example: `  sats deposit -a "John Harvard" 1500`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransfer(rt, flags.Account, func(acc *service.Account) (string, error) {
				return acc.Deposit(args[0])
			})
		},
	}

	addAccountFlag(cmd, flags)
	return cmd
}

func NewWithdrawCmd(rt *runtime) *cobra.Command {
	flags := &ledgerFlags{}

	cmd := &cobra.Command{
		Use:     "withdraw AMOUNT",
		Short:   "Log a withdrawal from an account",
		Example: `  sats withdraw -a "John Harvard" 1500`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransfer(rt, flags.Account, func(acc *service.Account) (string, error) {
				return acc.Withdraw(args[0])
			})
		},
	}

	addAccountFlag(cmd, flags)
	return cmd
}

func runTransfer(rt *runtime, name string, apply func(*service.Account) (string, error)) error {
	acc, err := rt.Service().Account.Open(name)
	if err != nil {
		return err
	}

	msg, err := apply(acc)
	if err != nil {
		return err
	}

	if msg == service.InsufficientBalanceMessage {
		pterm.Warning.Println(msg)
		return nil
	}

	views.RenderResult(msg, rt.cfg.UI.DashWidth)
	return nil
}

func NewConvertCmd(rt *runtime) *cobra.Command {
	flags := &ledgerFlags{}

	cmd := &cobra.Command{
		Use:   "convert [CODE]",
		Short: "Convert an account balance to a local currency",
		Long: `Convert an account balance to a local currency. CODE is a three letter
ticker such as USD or EUR; without it the configured default currency is used.`,
		Example: `  sats convert -a "John Harvard" EUR`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := rt.cfg.Defaults.Currency
			if len(args) == 1 {
				code = args[0]
			}
			if err := validation.ValidateCurrency(code); err != nil {
				return fmt.Errorf("invalid currency: %w", err)
			}

			svc := rt.Service()
			acc, err := svc.Account.Open(flags.Account)
			if err != nil {
				return err
			}

			conv, err := svc.Rates.Convert(cmd.Context(), acc.Balance(), strings.ToUpper(code))
			if err != nil {
				if problem := conversionProblem(err); problem != "" {
					return fmt.Errorf("%s: %w", strings.TrimSuffix(problem, "."), err)
				}
				return err
			}

			views.RenderConversion(conv, rt.cfg.UI.DashWidth)
			return nil
		},
	}

	addAccountFlag(cmd, flags)
	return cmd
}
