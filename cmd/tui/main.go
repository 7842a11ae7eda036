package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/budgetly/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/budgetly/internal/budget"
	budgetStore "github.com/MrJamesThe3rd/budgetly/internal/budget/store"
	"github.com/MrJamesThe3rd/budgetly/internal/config"
	"github.com/MrJamesThe3rd/budgetly/internal/database"
	"github.com/MrJamesThe3rd/budgetly/internal/debt"
	debtStore "github.com/MrJamesThe3rd/budgetly/internal/debt/store"
	"github.com/MrJamesThe3rd/budgetly/internal/overview"
	"github.com/MrJamesThe3rd/budgetly/internal/period"
	"github.com/MrJamesThe3rd/budgetly/internal/transaction"
	txStore "github.com/MrJamesThe3rd/budgetly/internal/transaction/store"
)

type model struct {
	ownerID         uuid.UUID
	txService       *transaction.Service
	debtService     *debt.Service
	overviewService *overview.Service

	currentView View

	dashboardView view.DashboardModel
	budgetView    view.BudgetModel
	listView      view.ListModel
	debtsView     view.DebtsModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewBudget    View = 2
	ViewList      View = 3
	ViewDebts     View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ownerID, err := uuid.Parse(cfg.TUI.OwnerID)
	if err != nil {
		slog.Error("TUI_OWNER_ID must be a valid owner id", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	debtSvc := debt.NewService(debtStore.New(db))
	txSvc := transaction.NewService(txStore.New(db), debtSvc)
	budgetSvc := budget.NewService(budgetStore.New(db))
	overviewSvc := overview.NewService(txSvc, debtSvc, budgetSvc)

	return model{
		ownerID:         ownerID,
		txService:       txSvc,
		debtService:     debtSvc,
		overviewService: overviewSvc,
		currentView:     ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.overviewService, m.ownerID)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewBudget
				m.budgetView = view.NewBudgetModel(m.overviewService, m.ownerID, period.Of(time.Now()))

				return m, m.budgetView.Init()
			case "3":
				m.currentView = ViewList
				m.listView = view.NewListModel(m.txService, m.ownerID)

				return m, m.listView.Init()
			case "4":
				m.currentView = ViewDebts
				m.debtsView = view.NewDebtsModel(m.debtService, m.ownerID)

				return m, m.debtsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewBudget:
		var newModel tea.Model
		newModel, cmd = m.budgetView.Update(msg)
		m.budgetView = newModel.(view.BudgetModel)
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	case ViewDebts:
		var newModel tea.Model
		newModel, cmd = m.debtsView.Update(msg)
		m.debtsView = newModel.(view.DebtsModel)
	}

	return m, cmd
}

func (m model) active() view.View {
	switch m.currentView {
	case ViewDashboard:
		return m.dashboardView
	case ViewBudget:
		return m.budgetView
	case ViewList:
		return m.listView
	case ViewDebts:
		return m.debtsView
	}

	return nil
}

func (m model) View() string {
	if m.currentView == ViewMenu {
		return lipgloss.NewStyle().Padding(2).Render(
			"Budgetly TUI\n\n" +
				"1. Dashboard\n" +
				"2. Budget vs Actual\n" +
				"3. Transactions\n" +
				"4. Debts\n\n" +
				"q. Quit",
		)
	}

	v := m.active()
	if v == nil {
		return "Unknown View"
	}

	help := lipgloss.NewStyle().Faint(true).PaddingLeft(1).Render(v.Title() + " | " + v.ShortHelp())

	return v.View() + "\n" + help
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
