package prompts

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/sats/internal/ui"
	"github.com/hance08/sats/internal/validation"
)

// Menu keys of the interactive session.
const (
	ServiceBalance  = "0"
	ServiceDeposit  = "1"
	ServiceWithdraw = "2"
	ServiceConvert  = "3"
	ServiceQuit     = "X"
)

var serviceOptions = []string{
	"[0] View account balance",
	"[1] Log a deposit to your account",
	"[2] Log a withdrawal from your account",
	"[3] Convert your bitcoin satoshis balance to a local currency",
	"[X] Quit",
}

// PromptService shows the main menu and returns the chosen key.
func PromptService() (string, error) {
	var selected string

	prompt := &survey.Select{
		Message:  "Please choose a service:",
		Options:  serviceOptions,
		PageSize: len(serviceOptions),
	}
	if err := survey.AskOne(prompt, &selected, ui.IconOption()); err != nil {
		return "", err
	}

	return ServiceKey(selected), nil
}

// ServiceKey extracts the key from a menu line such as "[1] Log a deposit".
func ServiceKey(option string) string {
	start := strings.Index(option, "[")
	end := strings.Index(option, "]")
	if start < 0 || end <= start+1 {
		return ""
	}
	return strings.ToUpper(option[start+1 : end])
}

// PromptAnotherTransaction asks whether the session should go on.
func PromptAnotherTransaction() (bool, error) {
	return PromptConfirm("Would you like to perform another transaction?", true)
}

// PromptCurrency asks for the local currency ticker.
func PromptCurrency(defaultCurrency string) (string, error) {
	code, err := PromptInput(
		fmt.Sprintf("Enter local currency ticker (e.g %s):", defaultCurrency),
		defaultCurrency,
		validation.ValidateCurrency,
	)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(strings.TrimSpace(code)), nil
}
