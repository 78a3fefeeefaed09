package prompts

import (
	"fmt"

	"github.com/hance08/sats/internal/constants"
	"github.com/hance08/sats/internal/ui"
	"github.com/pterm/pterm"
)

// SessionPrompter asks the account selection questions of an interactive session.
type SessionPrompter struct {
	DashWidth int
}

func (p *SessionPrompter) ExistingAccountName() (string, error) {
	return PromptInput(
		fmt.Sprintf("Enter existing account name or type [%s] to create new:", constants.NewAccountKey),
		"", nil,
	)
}

func (p *SessionPrompter) NewAccountName(validate func(string) error) (string, error) {
	return PromptInput("Create new account name (e.g John Harvard):", "", validate)
}

// OpeningBalance takes raw input; the caller validates and asks again on failure.
func (p *SessionPrompter) OpeningBalance() (string, error) {
	return PromptInput("Enter initial account balance: SATS", "", nil)
}

func (p *SessionPrompter) AccountNotFound(name string) {
	pterm.Warning.Printf("SATStracker failed to find an existing account named '%s'.\n", name)
	pterm.Println(fmt.Sprintf("Type [%s] to create a new one.", constants.NewAccountKey))
	ui.Separator(p.DashWidth)
}

func (p *SessionPrompter) InvalidOpeningBalance(err error) {
	ui.Separator(p.DashWidth)
	pterm.Warning.Println("Invalid Input. Please enter numbers only (e.g 1500)")
}
