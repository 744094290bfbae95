package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	prevPage   key.Binding
	nextPage   key.Binding
	nextTab    key.Binding
	prevTab    key.Binding
	enter      key.Binding
	esc        key.Binding
	quit       key.Binding
	search     key.Binding
	columns    key.Binding
	status     key.Binding
	payment    key.Binding
	dates      key.Binding
	sort       key.Binding
	biggerPage key.Binding
	smallPage  key.Binding
	newItem    key.Binding
	edit       key.Binding
	delete     key.Binding
	copy       key.Binding
	refresh    key.Binding
	report     key.Binding
	info       key.Binding
	help       key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	prevPage:   key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
	nextPage:   key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
	nextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	prevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
	enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	esc:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	columns:    key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "column filters")),
	status:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "status filter")),
	payment:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "payment method")),
	dates:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "date range")),
	sort:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "order by")),
	biggerPage: key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "page size")),
	smallPage:  key.NewBinding(key.WithKeys("-")),
	newItem:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	copy:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy id")),
	refresh:    key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "refresh")),
	report:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "summary")),
	info:       key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n", "esc")),
}

// ShortHelp and FullHelp make keyMap a help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.nextTab, k.search, k.status, k.newItem, k.edit, k.delete, k.refresh, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.prevPage, k.nextPage, k.nextTab, k.prevTab},
		{k.search, k.columns, k.status, k.payment, k.dates, k.sort, k.biggerPage},
		{k.newItem, k.edit, k.delete, k.copy, k.refresh},
		{k.report, k.info, k.help, k.quit},
	}
}
