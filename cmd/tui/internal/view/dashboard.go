package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgetly/internal/overview"
)

type DashboardModel struct {
	CommonModel
	svc     *overview.Service
	ownerID uuid.UUID

	dashboard *overview.Dashboard
	loading   bool
	err       error
}

func NewDashboardModel(svc *overview.Service, ownerID uuid.UUID) DashboardModel {
	return DashboardModel{svc: svc, ownerID: ownerID, loading: true}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.dashboard = msg.dashboard
		return m, nil

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v\n\n(Esc to back)", m.err))
	}

	d := m.dashboard
	s := d.Summary

	var b strings.Builder

	fmt.Fprintf(&b, "Month %s\n\n", activeStyle(d.Period.String()))
	fmt.Fprintf(&b, "Income         %s\n", FormatAmount(s.MonthlyIncome))
	fmt.Fprintf(&b, "Expenses       %s\n", FormatAmount(s.MonthlyExpenses))
	fmt.Fprintf(&b, "Balance        %s\n", FormatDifference(s.MonthlyBalance))
	fmt.Fprintf(&b, "Debt payments  %s\n", FormatAmount(s.MonthlyDebtPayments))
	fmt.Fprintf(&b, "Total debt     %s\n", FormatAmount(s.TotalDebtBalance))

	b.WriteString("\nRecent transactions\n")

	if len(d.RecentTransactions) == 0 {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("  none yet") + "\n")
	}

	for _, tx := range d.RecentTransactions {
		fmt.Fprintf(&b, "  %s  %-14s  %s\n", FormatDate(tx.Date), FormatAmount(tx.Amount), tx.Description)
	}

	b.WriteString("\nLargest debts\n")

	if len(d.TopDebts) == 0 {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("  no active debts") + "\n")
	}

	for _, debt := range d.TopDebts {
		fmt.Fprintf(&b, "  %-24s %s (due day %d)\n", debt.Name, FormatAmount(debt.TotalAmount), debt.DueDay)
	}

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

// Messages

type dashboardLoadedMsg struct {
	dashboard *overview.Dashboard
	err       error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		d, err := m.svc.GetDashboard(ctx, m.ownerID, time.Now())
		return dashboardLoadedMsg{dashboard: d, err: err}
	}
}
