package cmd

import (
	"context"
	"errors"

	"github.com/hance08/sats/internal/config"
	"github.com/hance08/sats/internal/rates"
	"github.com/hance08/sats/internal/service"
	"github.com/hance08/sats/internal/ui"
	"github.com/hance08/sats/internal/ui/prompts"
	"github.com/hance08/sats/internal/ui/views"
)

const (
	sessionTitle         = "SATStracker: TRACK YOUR BITCOIN BALANCE. BE ON TOP OF YOUR SATS"
	invalidAmountMessage = "Invalid Input. Please enter positive numbers only (e.g 1500)"
	networkMessage       = "Problem fetching exchange data. Check your internet connection."
	tickerMessage        = "Problem with the ticker information entered. Please try again."
)

type sessionRunner struct {
	svc *service.Service
	cfg *config.Config
}

func (r *sessionRunner) Run(ctx context.Context) error {
	ui.PrintL1Title(sessionTitle)

	acc, err := r.svc.Account.GetOrCreate(&prompts.SessionPrompter{DashWidth: r.cfg.UI.DashWidth})
	if errors.Is(err, service.ErrAttemptsExhausted) {
		r.farewell()
		return nil
	}
	if err != nil {
		return err
	}

	for {
		choice, err := prompts.PromptService()
		if err != nil {
			return err
		}
		if choice == prompts.ServiceQuit {
			r.farewell()
			return nil
		}

		if err := r.dispatch(ctx, acc, choice); err != nil {
			return err
		}

		again, err := prompts.PromptAnotherTransaction()
		if err != nil {
			return err
		}
		if !again {
			r.farewell()
			return nil
		}
	}
}

func (r *sessionRunner) dispatch(ctx context.Context, acc *service.Account, choice string) error {
	width := r.cfg.UI.DashWidth

	switch choice {
	case prompts.ServiceBalance:
		if err := acc.Refresh(); err != nil {
			return err
		}
		views.RenderBalance(acc.Name(), acc.Balance(), width)

	case prompts.ServiceDeposit:
		text, err := prompts.PromptAmount("Enter deposit amount: SATS", "Digits only, e.g 1500", nil)
		if err != nil {
			return err
		}
		msg, err := acc.Deposit(text)
		return r.report(msg, err)

	case prompts.ServiceWithdraw:
		text, err := prompts.PromptAmount("Enter withdrawal amount: SATS", "Digits only, e.g 1500", nil)
		if err != nil {
			return err
		}
		msg, err := acc.Withdraw(text)
		return r.report(msg, err)

	case prompts.ServiceConvert:
		code, err := prompts.PromptCurrency(r.cfg.Defaults.Currency)
		if err != nil {
			return err
		}
		conv, err := r.svc.Rates.Convert(ctx, acc.Balance(), code)
		if problem := conversionProblem(err); problem != "" {
			views.RenderProblem(problem, width)
			return nil
		}
		if err != nil {
			return err
		}
		views.RenderConversion(conv, width)
	}

	return nil
}

// report prints the outcome of a deposit or withdrawal. Bad input and an
// insufficient balance leave the session running.
func (r *sessionRunner) report(msg string, err error) error {
	width := r.cfg.UI.DashWidth

	if problem := amountProblem(msg, err); problem != "" {
		views.RenderProblem(problem, width)
		return nil
	}
	if err != nil {
		return err
	}

	views.RenderResult(msg, width)
	return nil
}

func (r *sessionRunner) farewell() {
	views.RenderFarewell(r.cfg.UI.QuitMessage, r.cfg.UI.DashWidth)
}

func amountProblem(msg string, err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidAmount):
		return invalidAmountMessage
	case err == nil && msg == service.InsufficientBalanceMessage:
		return msg
	}
	return ""
}

func conversionProblem(err error) string {
	switch {
	case errors.Is(err, rates.ErrNetwork):
		return networkMessage
	case errors.Is(err, rates.ErrUnknownCurrency):
		return tickerMessage
	}
	return ""
}
