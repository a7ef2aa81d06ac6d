package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/kennytm/oztags/internal/model"
)

// symbolItem wraps a tag record for the bubbles list.
type symbolItem struct {
	sym m.Symbol
}

// FilterValue filters on the symbol name, the same key the tags file
// is sorted by.
func (it symbolItem) FilterValue() string {
	return it.sym.Name
}

var kindColors = map[m.SymbolKind]lipgloss.Color{
	m.KindProcedure: lipgloss.Color("12"), // blue
	m.KindClass:     lipgloss.Color("11"), // yellow
	m.KindMethod:    lipgloss.Color("10"), // green
}

// symbolDelegate renders one record per row.
type symbolDelegate struct{}

func (d symbolDelegate) Height() int  { return 1 }
func (d symbolDelegate) Spacing() int { return 0 }
func (d symbolDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d symbolDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	it, ok := item.(symbolItem)
	if !ok {
		return
	}

	sym := it.sym
	isSelected := index == lm.Index()

	kindStyle := lipgloss.NewStyle().Foreground(kindColors[sym.Kind]).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	scopeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	locStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		kindStyle = selected
		nameStyle = selected
		scopeStyle = selected
		locStyle = selected
	}

	name := sym.Name
	if scope := sym.ScopeName(); scope != "" {
		name = scope + "." + name
	}

	line := fmt.Sprintf("%s %s  %s",
		kindStyle.Render(string(sym.Kind.Char())),
		nameStyle.Render(truncateToWidth(name, lm.Width()/2)),
		locStyle.Render(fmt.Sprintf("%s:%d", sym.File, sym.Line)),
	)

	if sym.Kind == m.KindMethod && sym.Access == m.AccessPrivate {
		line += " " + scopeStyle.Render("(private)")
	}

	_, _ = fmt.Fprint(w, line)
}

// symbolModel is the Bubble Tea model browsing a loaded tags file.
type symbolModel struct {
	width      int
	height     int
	symbolList list.Model
	total      int
	files      int
}

func newSymbolModel(symbols []m.Symbol) symbolModel {
	items := make([]list.Item, 0, len(symbols))
	files := make(map[m.Path]struct{})

	for _, sym := range symbols {
		items = append(items, symbolItem{sym: sym})
		files[sym.File] = struct{}{}
	}

	symbolList := list.New(items, symbolDelegate{}, 80, 20)
	symbolList.SetShowPagination(false)
	symbolList.SetShowFilter(true)
	symbolList.SetShowHelp(false)
	symbolList.SetShowTitle(false)
	symbolList.SetShowStatusBar(false)
	symbolList.FilterInput.Placeholder = "Filter by name…"

	return symbolModel{
		symbolList: symbolList,
		total:      len(symbols),
		files:      len(files),
	}
}

func (sm symbolModel) Init() tea.Cmd {
	return nil
}

func (sm symbolModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width = msg.Width
		sm.height = msg.Height
		sm.symbolList.SetWidth(sm.width)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if sm.symbolList.FilterState() != list.Filtering {
				return sm, tea.Quit
			}

			fallthrough
		default:
			var newList list.Model

			newList, cmd = sm.symbolList.Update(msg)
			sm.symbolList = newList

			return sm, cmd
		}
	}

	return sm, cmd
}

func (sm symbolModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("🏷  oztags")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Tags: %s   Files: %s",
		accentStyle.Render(fmt.Sprintf("%d", sm.total)),
		accentStyle.Render(fmt.Sprintf("%d", sm.files)),
	))

	listHeight := sm.height - 7
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := sm.width - 4
	if listWidth < 20 {
		listWidth = 20
	}

	sm.symbolList.SetHeight(listHeight)
	sm.symbolList.SetWidth(listWidth)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(sm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		sm.symbolList.View(),
		footer,
	)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
