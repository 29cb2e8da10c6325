// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The accuchek authors

package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/idaniel86/accuchek/pkg/performa"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse stored readings interactively",
	Long: `Fetch all stored readings and browse them in a scrollable list.

Filtering works on the timestamp text; press / to filter, q to quit.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// Styles
var (
	tuiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("27")).
			Padding(0, 1)

	tuiStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tuiErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	tuiHighStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))
)

// readingItem adapts a Reading to the bubbles list
type readingItem performa.Reading

func (i readingItem) Title() string {
	return i.Timestamp.Format("02.01.2006 15:04")
}

func (i readingItem) Description() string {
	desc := fmt.Sprintf("%.1f mmol/L", i.Glucose)
	if i.Flags != 0 {
		desc += tuiHighStyle.Render(fmt.Sprintf("  flags 0x%02X", i.Flags))
	}
	return desc
}

func (i readingItem) FilterValue() string {
	return i.Timestamp.Format("02.01.2006 15:04")
}

// Messages
type readingsLoadedMsg []performa.Reading
type loadFailedMsg struct{ err error }

// TUI model
type tuiModel struct {
	meter    *performa.Meter
	connInfo string
	list     list.Model
	loading  bool
	loadErr  error
	width    int
	height   int
}

func newTUIModel(meter *performa.Meter, connInfo string) tuiModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Stored readings"
	l.SetShowStatusBar(true)
	return tuiModel{
		meter:    meter,
		connInfo: connInfo,
		list:     l,
		loading:  true,
	}
}

// fetchReadings pulls the full reading range from the meter
func (m tuiModel) fetchReadings() tea.Msg {
	count, err := m.meter.ReadingCount()
	if err != nil {
		return loadFailedMsg{err}
	}
	if count == 0 {
		return readingsLoadedMsg(nil)
	}
	readings, err := m.meter.Readings(1, count)
	if err != nil {
		return loadFailedMsg{err}
	}
	return readingsLoadedMsg(readings)
}

func (m tuiModel) Init() tea.Cmd {
	return m.fetchReadings
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't intercept keys while the filter input is active
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)

	case readingsLoadedMsg:
		m.loading = false
		items := make([]list.Item, len(msg))
		for i, r := range msg {
			items[i] = readingItem(r)
		}
		return m, m.list.SetItems(items)

	case loadFailedMsg:
		m.loading = false
		m.loadErr = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m tuiModel) View() string {
	header := tuiTitleStyle.Render("Accu-Chek Performa Nano") + " " +
		tuiStatusStyle.Render(m.connInfo)

	if m.loading {
		return header + "\n\nFetching readings...\n"
	}
	if m.loadErr != nil {
		return header + "\n\n" + tuiErrorStyle.Render(fmt.Sprintf("Error: %v", m.loadErr)) + "\n\nPress q to quit.\n"
	}
	return header + "\n" + m.list.View()
}

func runTUI(cmd *cobra.Command, args []string) error {
	meter, connInfo, err := OpenMeter()
	if err != nil {
		return err
	}
	defer meter.Close()

	p := tea.NewProgram(newTUIModel(meter, connInfo), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
