package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"budgetscope/internal/dashboard"
	"budgetscope/internal/transaction"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).PaddingTop(1)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type DashboardModel struct {
	CommonModel
	svc   *dashboard.Service
	owner uuid.UUID

	overview *dashboard.Overview
	bars     []progress.Model
	loading  bool
	err      error
}

func NewDashboardModel(svc *dashboard.Service, owner uuid.UUID) DashboardModel {
	return DashboardModel{
		svc:     svc,
		owner:   owner,
		loading: true,
	}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDashboardMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.overview = msg.overview
		m.bars = make([]progress.Model, len(m.overview.Budgets))

		for i, b := range m.overview.Budgets {
			bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(30))
			if b.PercentageUsed > 100 {
				bar = progress.New(progress.WithSolidFill("196"), progress.WithWidth(30))
			}

			m.bars[i] = bar
		}

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
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	var sb strings.Builder

	sum := m.overview.Summary
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Overview %d/%d", sum.Period.Month, sum.Period.Year)))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Income:   %s\n", incomeStyle.Render(FormatAmount(sum.TotalIncome))))
	sb.WriteString(fmt.Sprintf("Expenses: %s\n", expenseStyle.Render(FormatAmount(sum.TotalExpense))))
	sb.WriteString(fmt.Sprintf("Balance:  %s\n", FormatAmount(sum.RemainingBalance)))

	sb.WriteString(sectionStyle.Render("Budgets"))
	sb.WriteString("\n")

	if len(m.overview.Budgets) == 0 {
		sb.WriteString(faintStyle.Render("No budgets for this month.\n"))
	}

	for i, b := range m.overview.Budgets {
		ratio := b.PercentageUsed / 100
		if ratio > 1 {
			ratio = 1
		}

		sb.WriteString(fmt.Sprintf("%-20s %s %s of %s (%.0f%%)\n",
			b.Budget.CategoryName,
			m.bars[i].ViewAs(ratio),
			FormatAmount(b.SpentAmount),
			FormatAmount(b.Budget.Amount),
			b.PercentageUsed,
		))
	}

	sb.WriteString(sectionStyle.Render("Recent Transactions"))
	sb.WriteString("\n")

	if len(m.overview.RecentTransactions) == 0 {
		sb.WriteString(faintStyle.Render("Nothing yet.\n"))
	}

	for _, tx := range m.overview.RecentTransactions {
		amount := FormatAmount(tx.Amount)
		if tx.Type == transaction.TypeExpense {
			amount = expenseStyle.Render("-" + amount)
		} else {
			amount = incomeStyle.Render("+" + amount)
		}

		category := tx.CategoryName
		if category == "" {
			category = "-"
		}

		sb.WriteString(fmt.Sprintf("%s  %10s  %-16s %s\n",
			FormatDate(tx.Date), amount, category, tx.Description))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}

type loadDashboardMsg struct {
	overview *dashboard.Overview
	err      error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		ov, err := m.svc.Overview(ctx, m.owner)

		return loadDashboardMsg{overview: ov, err: err}
	}
}
