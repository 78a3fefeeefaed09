package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath      string
	Driver          string
	DataPaths       []string
	DataExists      bool // true = Found, false = Not Found
	DefaultCurrency string
	RateCache       string
	LogFile         string
	AppDataDir      string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dataStatus := pterm.Green("Found")
	if !data.DataExists {
		dataStatus = pterm.Red("Not Found (Will be created)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Storage Driver", data.Driver},
	}
	for _, p := range data.DataPaths {
		tableData = append(tableData, []string{"Data File", p})
	}
	tableData = append(tableData,
		[]string{"Data Status", dataStatus},
		[]string{"Default Currency", data.DefaultCurrency},
		[]string{"Rate Cache", data.RateCache},
		[]string{"Log File", data.LogFile},
		[]string{"AppData Directory", data.AppDataDir},
	)

	return pterm.DefaultTable.WithData(tableData).Render()
}
