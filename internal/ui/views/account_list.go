package views

import (
	"github.com/dustin/go-humanize"
	"github.com/hance08/sats/internal/model"
	"github.com/pterm/pterm"
)

func RenderAccountList(accounts []*model.Account) error {
	tableData := pterm.TableData{{"Name", "Balance (SATS)"}}

	var total int64
	for _, acc := range accounts {
		tableData = append(tableData, []string{pterm.Green(acc.Name), humanize.Comma(acc.Balance)})
		total += acc.Balance
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts, SATS %s\n", len(accounts), humanize.Comma(total))

	return nil
}

func RenderAccountCreated(acc *model.Account) error {
	tableData := pterm.TableData{
		{pterm.Blue("Name"), acc.Name},
		{pterm.Blue("Balance"), "SATS " + humanize.Comma(acc.Balance)},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Print("Account created successfully!\n")

	return nil
}
