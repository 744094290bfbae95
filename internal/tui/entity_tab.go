package tui

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pos-client/internal/app"
	"github.com/MKhiriev/go-pos-client/internal/service"
	"github.com/MKhiriev/go-pos-client/models"
)

const (
	statusTTL    = 4 * time.Second
	pageSizeStep = 10
)

// tab is one entity screen of the root model.
type tab interface {
	title() string
	init() tea.Cmd
	update(msg tea.Msg) tea.Cmd
	view() string
	// capturing reports whether the tab owns the keyboard (an input, a form
	// or a confirmation is open).
	capturing() bool
	setSize(width, height int)
}

type tabMode int

const (
	modeBrowse tabMode = iota
	modeSearch
	modeFilters
	modeDates
	modeSort
	modeForm
	modeConfirm
)

// listTab renders one paginated entity list and drives its synchronizer.
type listTab[T models.Entity, I any] struct {
	ctx   context.Context
	index int
	sync  service.EntitySync[T, I]
	spec  entitySpec[T, I]
	now   func() time.Time

	page    models.PageView[T]
	closed  bool
	busy    bool
	table   table.Model
	spinner spinner.Model

	mode    tabMode
	search  textinput.Model
	prompt  textinput.Model
	form    formModel
	confirm confirmModel
	target  int64

	status    string
	statusErr bool
	statusSeq int
}

func newListTab[T models.Entity, I any](ctx context.Context, index int, sync service.EntitySync[T, I], spec entitySpec[T, I]) *listTab[T, I] {
	cols := make([]table.Column, 0, len(spec.columns))
	width := 0
	for _, c := range spec.columns {
		cols = append(cols, table.Column{Title: c.title, Width: c.width})
		width += c.width + 2
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search"
	search.Width = 40

	prompt := textinput.New()
	prompt.Width = 50

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	t := &listTab[T, I]{
		ctx:     ctx,
		index:   index,
		sync:    sync,
		spec:    spec,
		now:     time.Now,
		table:   table.New(table.WithColumns(cols), table.WithFocused(true), table.WithHeight(12), table.WithWidth(width)),
		spinner: s,
		search:  search,
		prompt:  prompt,
	}
	t.apply(sync.View())
	return t
}

func (t *listTab[T, I]) title() string { return t.sync.Schema().Name }

func (t *listTab[T, I]) capturing() bool { return t.mode != modeBrowse }

func (t *listTab[T, I]) setSize(width, height int) {
	t.table.SetWidth(width)
	t.table.SetHeight(max(height-14, 5))
}

func (t *listTab[T, I]) init() tea.Cmd {
	return tea.Batch(t.waitForView(), t.spinner.Tick)
}

// waitForView blocks on the next published view.
func (t *listTab[T, I]) waitForView() tea.Cmd {
	updates, idx := t.sync.Updates(), t.index
	return func() tea.Msg {
		view, ok := <-updates
		if !ok {
			return viewUpdatedMsg{tab: idx, closed: true}
		}
		return viewUpdatedMsg{tab: idx, view: view}
	}
}

func (t *listTab[T, I]) apply(view models.PageView[T]) {
	t.page = view
	rows := make([]table.Row, 0, len(view.Records))
	for _, rec := range view.Records {
		row := make(table.Row, 0, len(t.spec.columns))
		for _, c := range t.spec.columns {
			row = append(row, fitText(c.value(rec), c.width))
		}
		rows = append(rows, row)
	}
	t.table.SetRows(rows)
	if c := t.table.Cursor(); c >= len(rows) {
		t.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (t *listTab[T, I]) selected() (T, bool) {
	var zero T
	c := t.table.Cursor()
	if c < 0 || c >= len(t.page.Records) {
		return zero, false
	}
	return t.page.Records[c], true
}

func (t *listTab[T, I]) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case viewUpdatedMsg:
		if msg.closed {
			t.closed = true
			return nil
		}
		if view, ok := msg.view.(models.PageView[T]); ok {
			t.apply(view)
		}
		return t.waitForView()
	case mutationDoneMsg:
		return t.mutationDone(msg)
	case refreshDoneMsg:
		t.busy = false
		if msg.err != nil {
			return t.setStatus(service.UserMessage(msg.err), true)
		}
		return nil
	case copiedMsg:
		if msg.err != nil {
			return t.setStatus(msg.err.Error(), true)
		}
		return t.setStatus(fmt.Sprintf("%s: %d", app.MsgCopied, msg.id), false)
	case clearStatusMsg:
		if msg.seq == t.statusSeq {
			t.status, t.statusErr = "", false
		}
		return nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		t.spinner, cmd = t.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		return t.handleKey(msg)
	}
	return t.updateInput(msg)
}

// updateInput forwards cursor blinks to the focused input.
func (t *listTab[T, I]) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch t.mode {
	case modeSearch:
		t.search, cmd = t.search.Update(msg)
	case modeFilters, modeDates, modeSort:
		t.prompt, cmd = t.prompt.Update(msg)
	case modeForm:
		cmd = t.form.update(msg)
	}
	return cmd
}

func (t *listTab[T, I]) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch t.mode {
	case modeSearch:
		return t.updateSearch(msg)
	case modeFilters, modeDates, modeSort:
		return t.updatePrompt(msg)
	case modeForm:
		return t.updateForm(msg)
	case modeConfirm:
		return t.updateConfirm(msg)
	}

	q := t.sync.Query()
	schema := t.sync.Schema()

	switch {
	case key.Matches(msg, keys.search):
		t.mode = modeSearch
		t.search.SetValue(q.Search)
		t.search.CursorEnd()
		return t.search.Focus()
	case key.Matches(msg, keys.columns):
		return t.openPrompt(modeFilters, formatFilters(q.Filters), "column=term, ...")
	case key.Matches(msg, keys.dates):
		return t.openPrompt(modeDates, formatDateRange(q.StartDate, q.EndDate), "YYYY-MM-DD..YYYY-MM-DD")
	case key.Matches(msg, keys.sort):
		return t.openPrompt(modeSort, q.OrderBy, sortPlaceholder(schema))
	case key.Matches(msg, keys.status):
		return t.report(t.sync.SetStatus(nextOption(schema.Labels(), q.Status)))
	case key.Matches(msg, keys.payment):
		if !schema.SupportsPaymentMethod {
			return t.setStatus("payment method filter is not available for "+schema.Name, true)
		}
		return t.report(t.sync.SetPaymentMethod(nextOption([]string{"", models.PaymentCash, models.PaymentBank}, q.PaymentMethod)))
	case key.Matches(msg, keys.nextPage):
		if q.Page+1 < t.page.TotalPages() {
			return t.report(t.sync.SetPage(q.Page + 1))
		}
		return nil
	case key.Matches(msg, keys.prevPage):
		if q.Page > 0 {
			return t.report(t.sync.SetPage(q.Page - 1))
		}
		return nil
	case key.Matches(msg, keys.biggerPage):
		t.sync.SetPageSize(q.PageSize + pageSizeStep)
		return nil
	case key.Matches(msg, keys.smallPage):
		t.sync.SetPageSize(q.PageSize - pageSizeStep)
		return nil
	case key.Matches(msg, keys.newItem):
		t.form = newFormModel("New "+schema.Entity, t.spec.fields, nil, 0)
		t.mode = modeForm
		return textinput.Blink
	case key.Matches(msg, keys.edit):
		rec, ok := t.selected()
		if !ok {
			return nil
		}
		t.form = newFormModel(fmt.Sprintf("Edit %s #%d", schema.Entity, rec.EntityID()), t.spec.fields, t.spec.values(rec), rec.EntityID())
		t.mode = modeForm
		return textinput.Blink
	case key.Matches(msg, keys.delete):
		rec, ok := t.selected()
		if !ok {
			return nil
		}
		t.target = rec.EntityID()
		t.confirm = confirmModel{message: t.spec.label(rec)}
		t.mode = modeConfirm
		return nil
	case key.Matches(msg, keys.copy):
		rec, ok := t.selected()
		if !ok {
			return nil
		}
		return copyIDCmd(t.index, rec.EntityID())
	case key.Matches(msg, keys.refresh):
		if t.busy {
			return nil
		}
		t.busy = true
		return tea.Batch(t.refreshCmd(), t.setStatus(app.MsgRefreshing, false))
	}

	var cmd tea.Cmd
	t.table, cmd = t.table.Update(msg)
	return cmd
}

func (t *listTab[T, I]) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
		t.search.Blur()
		t.mode = modeBrowse
		return nil
	}
	before := t.search.Value()
	var cmd tea.Cmd
	t.search, cmd = t.search.Update(msg)
	if v := t.search.Value(); v != before {
		t.sync.SetSearch(v)
	}
	return cmd
}

func (t *listTab[T, I]) openPrompt(mode tabMode, value, placeholder string) tea.Cmd {
	t.mode = mode
	t.prompt.Placeholder = placeholder
	t.prompt.SetValue(value)
	t.prompt.CursorEnd()
	return t.prompt.Focus()
}

func (t *listTab[T, I]) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		t.closePrompt()
		return nil
	case key.Matches(msg, keys.enter):
		err := t.applyPrompt(strings.TrimSpace(t.prompt.Value()))
		if err != nil {
			return t.report(err)
		}
		t.closePrompt()
		return nil
	}
	var cmd tea.Cmd
	t.prompt, cmd = t.prompt.Update(msg)
	return cmd
}

func (t *listTab[T, I]) applyPrompt(v string) error {
	switch t.mode {
	case modeFilters:
		filters, err := parseColumnFilters(v, t.columnNames())
		if err != nil {
			return err
		}
		t.sync.SetColumnFilters(filters)
		return nil
	case modeDates:
		start, end, err := parseDateRange(v)
		if err != nil {
			return err
		}
		return t.sync.SetDateRange(start, end)
	case modeSort:
		return t.sync.SetSort(v)
	}
	return nil
}

func (t *listTab[T, I]) closePrompt() {
	t.prompt.Blur()
	t.mode = modeBrowse
}

func (t *listTab[T, I]) columnNames() []string {
	names := make([]string, 0, len(t.spec.columns))
	for _, c := range t.spec.columns {
		names = append(names, strings.ToLower(c.title))
	}
	return names
}

func (t *listTab[T, I]) updateForm(msg tea.KeyMsg) tea.Cmd {
	if t.form.submitting {
		return nil
	}
	switch msg.String() {
	case "esc":
		t.mode = modeBrowse
		return nil
	case "tab", "down":
		t.form.move(1)
		return nil
	case "shift+tab", "up":
		t.form.move(-1)
		return nil
	case "enter":
		input, err := t.spec.toInput(t.form.values(), t.now())
		if err != nil {
			t.form.err = errorText(err)
			return nil
		}
		t.form.err = ""
		t.form.submitting = true
		if t.form.editingID == 0 {
			return t.createCmd(input)
		}
		return t.updateCmd(t.form.editingID, input)
	}
	return t.form.update(msg)
}

func (t *listTab[T, I]) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.yes):
		t.mode = modeBrowse
		return t.deleteCmd(t.target)
	case key.Matches(msg, keys.no):
		t.mode = modeBrowse
	}
	return nil
}

func (t *listTab[T, I]) mutationDone(msg mutationDoneMsg) tea.Cmd {
	if msg.err != nil {
		if t.mode == modeForm {
			t.form.submitting = false
			t.form.err = service.UserMessage(msg.err)
			return nil
		}
		return t.setStatus(service.UserMessage(msg.err), true)
	}
	if t.mode == modeForm {
		t.mode = modeBrowse
	}
	if msg.action == app.MsgCreated {
		t.table.GotoTop()
	}
	return t.setStatus(t.sync.Schema().Entity+" "+msg.action, false)
}

// report shows err in the status line, if any.
func (t *listTab[T, I]) report(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return t.setStatus(errorText(err), true)
}

func (t *listTab[T, I]) setStatus(text string, isErr bool) tea.Cmd {
	t.statusSeq++
	t.status, t.statusErr = text, isErr
	seq, idx := t.statusSeq, t.index
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{tab: idx, seq: seq} })
}

// ── commands ─────────────────────────────────────────────────────────────────

func (t *listTab[T, I]) createCmd(input I) tea.Cmd {
	ctx, sync, idx := t.ctx, t.sync, t.index
	return func() tea.Msg {
		_, err := sync.Create(ctx, input)
		return mutationDoneMsg{tab: idx, action: app.MsgCreated, err: err}
	}
}

func (t *listTab[T, I]) updateCmd(id int64, input I) tea.Cmd {
	ctx, sync, idx := t.ctx, t.sync, t.index
	return func() tea.Msg {
		_, err := sync.Update(ctx, id, input)
		return mutationDoneMsg{tab: idx, action: app.MsgUpdated, err: err}
	}
}

func (t *listTab[T, I]) deleteCmd(id int64) tea.Cmd {
	ctx, sync, idx := t.ctx, t.sync, t.index
	return func() tea.Msg {
		err := sync.Delete(ctx, id)
		return mutationDoneMsg{tab: idx, action: app.MsgDeleted, err: err}
	}
}

func (t *listTab[T, I]) refreshCmd() tea.Cmd {
	ctx, sync, idx := t.ctx, t.sync, t.index
	return func() tea.Msg {
		return refreshDoneMsg{tab: idx, err: sync.Refresh(ctx)}
	}
}

func copyIDCmd(tab int, id int64) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(strconv.FormatInt(id, 10))
		return copiedMsg{tab: tab, id: id, err: err}
	}
}

// ── view ─────────────────────────────────────────────────────────────────────

func (t *listTab[T, I]) view() string {
	switch t.mode {
	case modeForm:
		return t.form.View()
	case modeConfirm:
		return t.confirm.View()
	}

	var b strings.Builder
	b.WriteString(t.filterLine())
	b.WriteString("\n")
	switch t.mode {
	case modeSearch:
		b.WriteString(t.search.View())
		b.WriteString("\n")
	case modeFilters, modeDates, modeSort:
		b.WriteString(promptLabel(t.mode))
		b.WriteString(t.prompt.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(t.table.View())
	b.WriteString("\n\n")
	b.WriteString(t.pageLine())
	if t.status != "" {
		b.WriteString("\n")
		if t.statusErr {
			b.WriteString(errorStyle.Render(t.status))
		} else {
			b.WriteString(okStyle.Render(t.status))
		}
	}
	return b.String()
}

func (t *listTab[T, I]) filterLine() string {
	q := t.page.Query
	parts := []string{"Status: " + defaultString(q.Status, models.StatusAll)}
	if q.Search != "" {
		parts = append(parts, fmt.Sprintf("Search: %q", q.Search))
	}
	if len(q.Filters) > 0 {
		parts = append(parts, "Columns: "+formatFilters(q.Filters))
	}
	if q.PaymentMethod != "" {
		parts = append(parts, "Payment: "+q.PaymentMethod)
	}
	if q.StartDate != "" || q.EndDate != "" {
		parts = append(parts, "Dates: "+formatDateRange(q.StartDate, q.EndDate))
	}
	if q.OrderBy != "" {
		parts = append(parts, "Order: "+q.OrderBy)
	}
	return helpStyle.Render(strings.Join(parts, "  |  "))
}

func (t *listTab[T, I]) pageLine() string {
	v := t.page
	line := fmt.Sprintf("Page %d/%d  ·  %d records  ·  %d per page", v.Query.Page+1, v.TotalPages(), v.Total, v.Query.PageSize)
	if !v.Loaded || t.busy {
		line += "  " + t.spinner.View() + " loading"
	}
	if v.Degraded {
		line += "  " + offlineBadge
	}
	if t.closed {
		line += "  " + errorStyle.Render("stopped")
	}
	return line
}

func promptLabel(mode tabMode) string {
	switch mode {
	case modeFilters:
		return "Columns: "
	case modeDates:
		return "Dates: "
	default:
		return "Order by: "
	}
}

func formatFilters(filters map[string]string) string {
	cols := make([]string, 0, len(filters))
	for c := range filters {
		cols = append(cols, c)
	}
	slices.Sort(cols)
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, c+"="+filters[c])
	}
	return strings.Join(parts, ", ")
}

func formatDateRange(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	return start + ".." + end
}

func sortPlaceholder(schema models.EntitySchema) string {
	if len(schema.SortFields) == 0 {
		return "not available"
	}
	paths := make([]string, 0, len(schema.SortFields))
	for p := range schema.SortFields {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return strings.Join(paths, " | ") + " [desc]"
}

// nextOption returns the option after current, wrapping around. An unknown
// current value yields the first option.
func nextOption(options []string, current string) string {
	if len(options) == 0 {
		return current
	}
	i := slices.Index(options, current)
	return options[(i+1)%len(options)]
}
