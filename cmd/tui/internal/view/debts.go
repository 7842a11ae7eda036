package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgetly/internal/debt"
	"github.com/MrJamesThe3rd/budgetly/internal/money"
)

var (
	statusFilters = []*debt.Status{nil, new(debt.StatusActive), new(debt.StatusNegotiated), new(debt.StatusPaid)}
	statusLabels  = []string{"All", "Active", "Negotiated", "Paid"}
)

type debtsState int

const (
	debtsStateBrowse debtsState = iota
	debtsStateEdit
)

type DebtsModel struct {
	CommonModel
	svc     *debt.Service
	ownerID uuid.UUID

	state debtsState
	table table.Model
	debts []*debt.Debt
	form  *huh.Form

	statusFilterIdx int

	loading bool
	err     error
	status  string

	// Form bindings
	formStatus  debt.Status
	formMinimum string
}

func NewDebtsModel(svc *debt.Service, ownerID uuid.UUID) DebtsModel {
	t := newTable([]table.Column{
		{Title: "Name", Width: 24},
		{Title: "Total", Width: 16},
		{Title: "Minimum", Width: 14},
		{Title: "Due", Width: 5},
		{Title: "Strategy", Width: 10},
		{Title: "Status", Width: 12},
	})

	return DebtsModel{svc: svc, ownerID: ownerID, table: t, loading: true}
}

func (m DebtsModel) Title() string { return "Debts" }
func (m DebtsModel) ShortHelp() string {
	if m.state == debtsStateEdit {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | e: edit | s: status filter | r: refresh"
}

func (m DebtsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DebtsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case debtsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.debts = msg.debts
		m.refreshTable()
		return m, nil

	case debtSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		}
		m.state = debtsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == debtsStateEdit {
		return m.updateEdit(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % len(statusFilters)
			return m, m.loadCmd()
		case "e":
			return m.enterEditMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m DebtsModel) enterEditMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.debts) {
		return m, nil
	}

	d := m.debts[idx]
	m.formStatus = d.Status
	m.formMinimum = d.MinimumPayment.StringFixed(2)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[debt.Status]().
				Key("status").
				Title("Status").
				Options(
					huh.NewOption("Active", debt.StatusActive),
					huh.NewOption("Negotiated", debt.StatusNegotiated),
					huh.NewOption("Paid", debt.StatusPaid),
				).
				Value(&m.formStatus),
			huh.NewInput().
				Key("minimum").
				Title("Minimum payment").
				Value(&m.formMinimum).
				Validate(validateAmount),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = debtsStateEdit
	m.table.Blur()
	return m, m.form.Init()
}

func (m DebtsModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = debtsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m DebtsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading debts...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("Filter: [s] Status: %s", activeStyle(statusLabels[m.statusFilterIdx]))

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		boxed(m.table.View()),
	)

	if m.state == debtsStateEdit && m.form != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, formPanel("Edit Debt", m.form.View()))
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *DebtsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.debts))
	for _, d := range m.debts {
		rows = append(rows, table.Row{
			d.Name,
			FormatAmount(d.TotalAmount),
			FormatAmount(d.MinimumPayment),
			fmt.Sprintf("%d", d.DueDay),
			string(d.Strategy),
			string(d.Status),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type debtsLoadedMsg struct {
	debts []*debt.Debt
	err   error
}

func (m DebtsModel) loadCmd() tea.Cmd {
	filter := debt.ListFilter{
		OwnerID: m.ownerID,
		Status:  statusFilters[m.statusFilterIdx],
		OrderBy: debt.OrderLargestDebt,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		debts, err := m.svc.List(ctx, filter)
		return debtsLoadedMsg{debts: debts, err: err}
	}
}

type debtSavedMsg struct {
	err error
}

func (m DebtsModel) saveCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.debts) {
		return nil
	}

	d := m.debts[idx]
	status, ok := m.form.Get("status").(debt.Status)
	if !ok {
		status = d.Status
	}
	minimum := m.form.GetString("minimum")

	return func() tea.Msg {
		amount, err := money.Parse(minimum)
		if err != nil {
			return debtSavedMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		_, err = m.svc.Update(ctx, d.ID, debt.Params{
			OwnerID:             d.OwnerID,
			Name:                d.Name,
			TotalAmount:         d.TotalAmount,
			MonthlyInterestRate: d.MonthlyInterestRate,
			MinimumPayment:      amount,
			DueDay:              d.DueDay,
			Strategy:            d.Strategy,
			Status:              status,
			Notes:               d.Notes,
		})
		return debtSavedMsg{err: err}
	}
}
