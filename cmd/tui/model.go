package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AEMWks/fotodiario/app"
	"github.com/AEMWks/fotodiario/models"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	tableStyle = lipgloss.NewStyle().
			Margin(0, 0, 1, 0)
	commentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Margin(1, 0, 0, 0)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

const (
	datesMode = "dates"
	dayMode   = "day"
)

type model struct {
	library    *app.Library
	comments   *app.CommentStore
	datesTable table.Model
	filesTable table.Model

	mode        string
	dates       []models.DateInfo
	dayRecords  []models.MediaRecord
	currentDate string
	dayComment  string
	err         error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m *model) reloadDates() {
	m.dates = m.library.Dates()

	// Newest first, like the feed.
	for i, j := 0, len(m.dates)-1; i < j; i, j = i+1, j-1 {
		m.dates[i], m.dates[j] = m.dates[j], m.dates[i]
	}

	rows := make([]table.Row, 0, len(m.dates))
	for _, d := range m.dates {
		rows = append(rows, table.Row{
			d.Date,
			strconv.Itoa(d.FileCount),
			strconv.Itoa(d.Photos),
			strconv.Itoa(d.Videos),
		})
	}
	m.datesTable.SetRows(rows)
}

func (m *model) openDay(date string) {
	m.currentDate = date
	m.dayRecords = m.library.ScanDate(date)
	m.dayComment = ""

	if c, err := m.comments.Get(date); err == nil && c != nil {
		m.dayComment = c.Comment
	}

	rows := make([]table.Row, 0, len(m.dayRecords))
	for _, rec := range m.dayRecords {
		rows = append(rows, table.Row{
			rec.Time,
			rec.Filename,
			string(rec.Type),
			formatSize(rec.Size),
		})
	}
	m.filesTable.SetRows(rows)
	m.filesTable.SetCursor(0)

	m.mode = dayMode
	m.datesTable.Blur()
	m.filesTable.Focus()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	var enter = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("⏎", "open"),
	)
	var refresh = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, enter):
			if m.mode == datesMode && len(m.dates) > 0 {
				idx := m.datesTable.Cursor()
				if idx < len(m.dates) {
					m.openDay(m.dates[idx].Date)
				}
				return m, nil
			}
			if m.mode == dayMode && len(m.dayRecords) > 0 {
				idx := m.filesTable.Cursor()
				if idx < len(m.dayRecords) {
					if err := openFile(m.dayRecords[idx].FullPath); err != nil {
						m.err = err
					}
				}
				return m, nil
			}
		case key.Matches(msg, refresh):
			m.library.InvalidateAll()
			if m.mode == datesMode {
				m.reloadDates()
			} else {
				m.openDay(m.currentDate)
			}
			return m, nil
		case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
			if m.mode == dayMode {
				m.mode = datesMode
				m.filesTable.Blur()
				m.datesTable.Focus()
				m.err = nil
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))):
			return m, tea.Quit
		}

		if m.mode == datesMode {
			m.datesTable, cmd = m.datesTable.Update(msg)
		} else {
			m.filesTable, cmd = m.filesTable.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.datesTable.SetWidth(msg.Width)
		m.datesTable.SetHeight(msg.Height - 7)
		m.filesTable.SetWidth(msg.Width)
		m.filesTable.SetHeight(msg.Height - 10)
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	if m.mode == datesMode {
		b.WriteString(fmt.Sprintf("Diary: %d days with content\n", len(m.dates)))
		b.WriteString(tableStyle.Render(m.datesTable.View()))
	} else {
		b.WriteString(fmt.Sprintf("%s (%d files)\n", m.currentDate, len(m.dayRecords)))
		b.WriteString(tableStyle.Render(m.filesTable.View()))
		if m.dayComment != "" {
			b.WriteString(commentStyle.Render("Note: " + m.dayComment))
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString(fmt.Sprintf("Error: %v\n", m.err))
	}

	help := "Enter to open day, r to refresh, Esc to quit."
	if m.mode == dayMode {
		help = "Enter to open file, r to refresh, Esc to go back."
	}

	return baseStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, b.String(), helpStyle.Render(help)),
	)
}
