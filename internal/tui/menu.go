package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuChoice is the selection made on the main menu.
type MenuChoice int

const (
	ChoiceClassic MenuChoice = iota
	ChoiceAI
	ChoiceDuel
	ChoiceLeaderboard
	ChoiceStats
	ChoiceQuit
)

var menuItems = []struct {
	choice MenuChoice
	title  string
	desc   string
}{
	{ChoiceClassic, "Classic Mode", "You guess the number"},
	{ChoiceAI, "AI Mode", "The AI guesses your number"},
	{ChoiceDuel, "Duel Mode", "Race against the AI"},
	{ChoiceLeaderboard, "Leaderboard", "Top 20 scores"},
	{ChoiceStats, "Statistics", "Your record so far"},
	{ChoiceQuit, "Quit", "Leave the game"},
}

// menuModel is a minimal cursor list; gameplay itself is line-oriented, so
// the program exits as soon as a choice is made.
type menuModel struct {
	cursor int
	choice MenuChoice
	done   bool
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.choice = ChoiceQuit
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.choice = menuItems[m.cursor].choice
		m.done = true
		return m, tea.Quit
	case "1", "2", "3", "4", "5":
		m.cursor = int(keyMsg.String()[0] - '1')
		m.choice = menuItems[m.cursor].choice
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m menuModel) View() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("SELECT GAME MODE"))
	b.WriteString("\n\n")
	for i, item := range menuItems {
		cursor := "  "
		title := fmt.Sprintf("%-14s", item.title)
		if i == m.cursor {
			cursor = AccentStyle.Render("▸ ")
			title = AccentStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, title, InfoStyle.Render(item.desc)))
	}
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("↑/↓ move · enter select · q quit"))
	return BoxStyle.Render(b.String())
}

// RunMenu shows the main menu and blocks until a choice is made. Ctrl-C and
// q both map to ChoiceQuit so the caller can exit cleanly.
func RunMenu() (MenuChoice, error) {
	final, err := tea.NewProgram(menuModel{}).Run()
	if err != nil {
		return ChoiceQuit, fmt.Errorf("menu failed: %w", err)
	}
	m, ok := final.(menuModel)
	if !ok || !m.done {
		return ChoiceQuit, nil
	}
	return m.choice, nil
}
