package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"smartexpense/internal/core"
	"smartexpense/internal/view"
)

const (
	chartBarWidth = 30
	limitBarWidth = 30
)

func (m Model) View() string {
	switch m.screen {
	case screenLogin:
		return m.loginView()
	case screenRegister:
		return m.registerView()
	}
	switch m.modal {
	case modalAddExpense:
		return m.addExpenseView()
	case modalSetLimits:
		return m.setLimitsView()
	}
	return m.dashboardView()
}

func (m Model) loginView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("SmartExpense"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Panel.Render(
		m.styles.Greeting.Render("Login") + "\n\n" + m.renderFieldSet(&m.loginForm),
	))
	b.WriteString("\n")
	b.WriteString(m.toastView())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter login • tab next field • ctrl+r register • ctrl+c quit"))
	return b.String()
}

func (m Model) registerView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("SmartExpense"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Panel.Render(
		m.styles.Greeting.Render("Create Account") + "\n\n" + m.renderFieldSet(&m.registerForm),
	))
	b.WriteString("\n")
	b.WriteString(m.toastView())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter register • tab next field • esc back to login • ctrl+c quit"))
	return b.String()
}

func (m Model) dashboardView() string {
	d := view.BuildDashboard(m.snapshot, m.window, m.limits, m.limitsState, m.user, m.now())

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom,
		m.styles.Title.Render("SmartExpense"),
		m.styles.Chrome.Render("  "+m.user.FullName),
	))
	b.WriteString("\n")
	b.WriteString(m.styles.Greeting.Render(d.Greeting))
	b.WriteString("\n")
	b.WriteString(m.styles.Chrome.Render(fmt.Sprintf("Showing: %s (%d expenses)", d.Window.Label(), d.Count)))
	b.WriteString("\n\n")

	b.WriteString(m.summaryView(d.Summary))
	b.WriteString("\n\n")
	b.WriteString(m.chartView(d.Chart))
	b.WriteString("\n")
	b.WriteString(m.limitsView(d))
	b.WriteString("\n")
	b.WriteString(m.tableView(d.Rows))
	b.WriteString("\n")
	b.WriteString(m.toastView())
	b.WriteString("\n")
	if m.confirmDelete {
		b.WriteString(m.styles.ToastError.Render("Delete selected expense? y/n"))
	} else {
		b.WriteString(m.styles.Help.Render("a add • d delete • f filter • l limits • r refresh • t theme • Q logout • q quit"))
	}
	return b.String()
}

func (m Model) summaryView(s view.SummaryCards) string {
	card := func(label, value string) string {
		return m.styles.Card.Render(
			m.styles.CardLabel.Render(label) + "\n" + m.styles.CardValue.Render(value),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Spent", s.Total),
		card("Min", s.Min),
		card("Max", s.Max),
		card("Average", s.Avg),
	)
}

func (m Model) chartView(slices []view.ChartSlice) string {
	var b strings.Builder
	b.WriteString(m.styles.Greeting.Render("By Category"))
	b.WriteString("\n")
	for _, s := range slices {
		style, ok := m.styles.Categories[s.Label]
		if !ok {
			style = m.styles.Chrome
		}
		b.WriteString(fmt.Sprintf("%-10s %s %s\n",
			style.Render(s.Label),
			style.Render(bar(s.Percent, chartBarWidth)),
			s.Amount,
		))
	}
	return b.String()
}

func (m Model) limitsView(d view.Dashboard) string {
	var b strings.Builder
	b.WriteString(m.styles.Greeting.Render("Spending Limits"))
	b.WriteString("\n")

	switch d.Limits {
	case view.LimitsUnavailable:
		b.WriteString(m.styles.Faint.Render("Unable to load limits"))
		b.WriteString("\n")
	case view.LimitsNone:
		b.WriteString(m.styles.Faint.Render("No limits set. Press l to configure."))
		b.WriteString("\n")
	default:
		for _, lb := range d.LimitBars {
			b.WriteString(fmt.Sprintf("%-10s %s %3.0f%%  %s\n",
				lb.Label,
				m.styles.barStyle(lb.Tier).Render(bar(lb.BarPercent, limitBarWidth)),
				lb.Percent,
				m.styles.Faint.Render(lb.Caption),
			))
		}
	}
	return b.String()
}

func (m Model) tableView(rows []view.TableRow) string {
	var b strings.Builder
	b.WriteString(m.styles.Greeting.Render("Expenses"))
	b.WriteString("\n")
	if len(rows) == 0 {
		b.WriteString(m.styles.Faint.Render("No expenses yet. Press a to add one."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.styles.TableHeader.Render(
		fmt.Sprintf("%-24s %-12s %-10s %-13s %s", "Title", "Amount", "Category", "Date", "Notes"),
	))
	b.WriteString("\n")
	for i, r := range rows {
		line := fmt.Sprintf("%-24s %-12s %-10s %-13s %s",
			truncate(r.Title, 24), r.Amount, r.Category, r.Date, truncate(r.Notes, 30))
		if i == m.selected {
			b.WriteString(m.styles.TableSelected.Render("> " + line))
		} else {
			b.WriteString(m.styles.TableRow.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) addExpenseView() string {
	var b strings.Builder
	b.WriteString(m.styles.Greeting.Render("Add Expense"))
	b.WriteString("\n\n")

	f := &m.addForm
	b.WriteString(m.fieldLine(&f.fields, expTitle))
	b.WriteString(m.fieldLine(&f.fields, expAmount))

	catLabel := "Category"
	if f.onCat {
		catLabel = m.styles.InputFocus.Render(catLabel)
	} else {
		catLabel = m.styles.CardLabel.Render(catLabel)
	}
	b.WriteString(fmt.Sprintf("%s\n  %s\n", catLabel, m.categorySelector(f)))

	b.WriteString(m.fieldLine(&f.fields, expNotes))

	body := m.styles.Panel.Render(b.String())
	return body + "\n" + m.toastView() + "\n" +
		m.styles.Help.Render("enter save • tab next field • ←/→ category • esc cancel")
}

func (m Model) categorySelector(f *expenseForm) string {
	parts := make([]string, 0, len(core.Categories()))
	for i, c := range core.Categories() {
		label := view.CategoryLabel(c)
		if i == f.catIndex {
			style, ok := m.styles.Categories[label]
			if !ok {
				style = m.styles.InputFocus
			}
			parts = append(parts, style.Bold(true).Render("["+label+"]"))
		} else {
			parts = append(parts, m.styles.Faint.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) setLimitsView() string {
	var b strings.Builder
	b.WriteString(m.styles.Greeting.Render("Set Monthly Limits"))
	b.WriteString("\n")
	b.WriteString(m.styles.Faint.Render("0 disables a limit"))
	b.WriteString("\n\n")
	b.WriteString(m.renderFieldSet(&m.limitsForm))

	body := m.styles.Panel.Render(b.String())
	return body + "\n" + m.toastView() + "\n" +
		m.styles.Help.Render("enter save • tab next field • esc cancel")
}

func (m Model) renderFieldSet(f *fieldSet) string {
	var b strings.Builder
	for i := range f.inputs {
		label := f.labels[i]
		if i == f.focus {
			b.WriteString(m.styles.InputFocus.Render(label))
		} else {
			b.WriteString(m.styles.CardLabel.Render(label))
		}
		b.WriteString("\n  ")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) fieldLine(f *fieldSet, i int) string {
	label := f.labels[i]
	if i == f.focus && !m.addForm.onCat {
		label = m.styles.InputFocus.Render(label)
	} else {
		label = m.styles.CardLabel.Render(label)
	}
	return fmt.Sprintf("%s\n  %s\n", label, f.inputs[i].View())
}

// bar draws a filled/empty gauge for a 0..100 percentage.
func bar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent/100*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
