package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgetly/internal/budget"
	"github.com/MrJamesThe3rd/budgetly/internal/overview"
	"github.com/MrJamesThe3rd/budgetly/internal/period"
)

type budgetState int

const (
	budgetStateBrowse budgetState = iota
	budgetStateEdit
	budgetStateAdd
)

type BudgetModel struct {
	CommonModel
	svc     *overview.Service
	ownerID uuid.UUID

	state  budgetState
	period period.Period
	view   *overview.BudgetView
	table  table.Model
	form   *huh.Form

	categories []budget.Category

	loading bool
	err     error
	status  string

	// Form bindings
	formAmount   string
	formCategory string
}

func NewBudgetModel(svc *overview.Service, ownerID uuid.UUID, p period.Period) BudgetModel {
	t := newTable([]table.Column{
		{Title: "Category", Width: 28},
		{Title: "Planned", Width: 16},
		{Title: "Actual", Width: 16},
		{Title: "Difference", Width: 16},
		{Title: "", Width: 10},
	})

	return BudgetModel{
		svc:     svc,
		ownerID: ownerID,
		period:  p,
		table:   t,
		loading: true,
	}
}

func (m BudgetModel) Title() string { return "Budget " + m.period.String() }
func (m BudgetModel) ShortHelp() string {
	if m.state != budgetStateBrowse {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | e: edit planned | a: add category | ←/→: month | r: refresh"
}

func (m BudgetModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m BudgetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case budgetLoadedMsg:
		if msg.period != m.period {
			return m, nil
		}
		m.loading = false

		m.err = msg.err
		m.view = msg.view
		if m.view == nil {
			// Keep the page usable when loading fails.
			m.view = &overview.BudgetView{Period: m.period, Totals: overview.ComputeTotals(nil)}
		}
		m.refreshTable()
		return m, nil

	case budgetCategoriesMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading categories: %v", msg.err)
			return m, nil
		}
		m.categories = msg.categories
		return m.enterAddMode()

	case budgetSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = "Saved"
		}
		m.state = budgetStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.table.SetHeight(msg.Height - 12)
		return m, nil
	}

	switch m.state {
	case budgetStateBrowse:
		return m.updateBrowse(msg)
	case budgetStateEdit, budgetStateAdd:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m BudgetModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "left", "h":
			m.period = m.period.Prev()
			m.loading = true
			return m, m.loadCmd()
		case "right", "l":
			m.period = m.period.Next()
			m.loading = true
			return m, m.loadCmd()
		case "e", "enter":
			return m.enterEditMode()
		case "a":
			return m, m.loadCategoriesCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func validateAmount(s string) error {
	if _, err := overview.ParsePlannedAmount(s); err != nil {
		var vErr *overview.ValidationError
		if errors.As(err, &vErr) && vErr.Reason != "not a number" {
			return errors.New("amount " + vErr.Reason)
		}
		return errors.New("enter a number such as 250 or 1.234,56")
	}
	return nil
}

func (m BudgetModel) selectedRow() (overview.Row, bool) {
	idx := m.table.Cursor()
	if m.view == nil || idx < 0 || idx >= len(m.view.Rows) {
		return overview.Row{}, false
	}
	return m.view.Rows[idx], true
}

func (m BudgetModel) enterEditMode() (tea.Model, tea.Cmd) {
	row, ok := m.selectedRow()
	if !ok {
		return m, nil
	}

	m.formAmount = row.Planned.StringFixed(2)
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Planned amount").
				Value(&m.formAmount).
				Validate(validateAmount),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = budgetStateEdit
	m.table.Blur()
	return m, m.form.Init()
}

func (m BudgetModel) enterAddMode() (tea.Model, tea.Cmd) {
	options := make([]huh.Option[string], 0, len(m.categories))
	for _, c := range m.categories {
		options = append(options, huh.NewOption(c.Label(), c.Label()))
	}

	m.formAmount = ""
	m.formCategory = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(options...).
				Value(&m.formCategory),
			huh.NewInput().
				Key("amount").
				Title("Planned amount").
				Value(&m.formAmount).
				Validate(validateAmount),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = budgetStateAdd
	m.table.Blur()
	return m, m.form.Init()
}

func (m BudgetModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = budgetStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == budgetStateAdd {
		return m, m.addCmd()
	}
	return m, m.saveCmd()
}

func (m BudgetModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading budget...")
	}

	header := fmt.Sprintf("Budget for %s", activeStyle(m.period.String()))
	if m.err != nil {
		header += "\n" + overspentStyle.Render("Could not load budget: "+m.err.Error())
	}

	var footer string
	if m.view != nil {
		t := m.view.Totals
		footer = fmt.Sprintf("Planned %s | Actual %s | Difference %s",
			FormatAmount(t.Planned), FormatAmount(t.Actual), FormatDifference(t.Difference()))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		boxed(m.table.View()),
		lipgloss.NewStyle().PaddingTop(1).Render(footer),
	)

	if m.state != budgetStateBrowse && m.form != nil {
		title := "Add Category"
		if m.state == budgetStateEdit {
			row, _ := m.selectedRow()
			title = "Plan " + row.Label()
		}
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, formPanel(title, m.form.View()))
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *BudgetModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.view.Rows))
	for _, r := range m.view.Rows {
		var marker []string
		if r.Synthesized {
			marker = append(marker, "unplanned")
		}
		if r.Duplicate {
			marker = append(marker, "duplicate")
		}

		rows = append(rows, table.Row{
			r.Label(),
			FormatAmount(r.Planned),
			FormatAmount(r.Actual),
			FormatAmount(r.Difference()),
			strings.Join(marker, ","),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type budgetLoadedMsg struct {
	period period.Period
	view   *overview.BudgetView
	err    error
}

func (m BudgetModel) loadCmd() tea.Cmd {
	p := m.period
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		view, err := m.svc.GetBudgetView(ctx, m.ownerID, p)
		return budgetLoadedMsg{period: p, view: view, err: err}
	}
}

type budgetCategoriesMsg struct {
	categories []budget.Category
	err        error
}

func (m BudgetModel) loadCategoriesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		cats, err := m.svc.BudgetCategories(ctx, m.ownerID)
		return budgetCategoriesMsg{categories: cats, err: err}
	}
}

type budgetSavedMsg struct {
	err error
}

func (m BudgetModel) saveCmd() tea.Cmd {
	row, ok := m.selectedRow()
	if !ok {
		return nil
	}

	p, amount := m.period, m.form.GetString("amount")
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.svc.SavePlannedAmount(ctx, m.ownerID, p, row.Ref, amount)
		return budgetSavedMsg{err: err}
	}
}

func (m BudgetModel) addCmd() tea.Cmd {
	p, category, amount := m.period, m.form.GetString("category"), m.form.GetString("amount")
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.svc.AddBudgetCategory(ctx, m.ownerID, p, category, amount)
		return budgetSavedMsg{err: err}
	}
}
