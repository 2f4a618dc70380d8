package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/AEMWks/fotodiario/app"
)

func main() {
	configPath := flag.String("config", "fotodiario.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	library := app.NewLibrary(cfg.Library, zerolog.Nop())
	comments, err := app.NewCommentStore(cfg.Library.BasePath, cfg.API.MaxCommentLen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open comment store: %v\n", err)
		os.Exit(1)
	}

	datesTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Files", Width: 7},
			{Title: "Photos", Width: 7},
			{Title: "Videos", Width: 7},
		}),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	filesTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Time", Width: 10},
			{Title: "Filename", Width: 20},
			{Title: "Type", Width: 7},
			{Title: "Size", Width: 10},
		}),
		table.WithRows([]table.Row{}),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	datesTable.SetStyles(styles)
	filesTable.SetStyles(styles)

	m := model{
		library:    library,
		comments:   comments,
		datesTable: datesTable,
		filesTable: filesTable,
		mode:       datesMode,
	}
	m.reloadDates()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting program: %v\n", err)
		os.Exit(1)
	}
}
