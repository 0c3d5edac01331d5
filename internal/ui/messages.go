package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"smartexpense/internal/api"
	"smartexpense/internal/core"
	applog "smartexpense/internal/log"
	"smartexpense/internal/view"
)

// Every network operation runs as a tea.Cmd off the update loop, so the
// interface stays responsive while a request is outstanding. Requests are
// never cancelled once issued.
type (
	loginResultMsg struct {
		user core.User
		err  error
	}

	registerResultMsg struct {
		err error
	}

	expensesLoadedMsg struct {
		expenses []core.Expense
		err      error
	}

	limitsLoadedMsg struct {
		limits core.Limits
		state  view.LimitsState
		err    error
	}

	expenseCreatedMsg struct {
		err error
	}

	expenseDeletedMsg struct {
		err error
	}

	limitsSavedMsg struct {
		err error
	}
)

func (m *Model) loginCmd(email, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		user, err := client.Login(context.Background(), email, password)
		return loginResultMsg{user: user, err: err}
	}
}

func (m *Model) registerCmd(fullName, email, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		_, err := client.Register(context.Background(), fullName, email, password)
		return registerResultMsg{err: err}
	}
}

func (m *Model) fetchExpensesCmd() tea.Cmd {
	client, userID := m.client, m.user.ID
	return func() tea.Msg {
		expenses, err := client.ListExpenses(context.Background(), userID)
		return expensesLoadedMsg{expenses: expenses, err: err}
	}
}

func (m *Model) fetchLimitsCmd() tea.Cmd {
	client, userID := m.client, m.user.ID
	return func() tea.Msg {
		limits, err := client.GetLimits(context.Background(), userID)
		if err != nil {
			if errors.Is(err, api.ErrLimitsNotFound) {
				// No limits configured yet; this is the unset state,
				// not a failure.
				return limitsLoadedMsg{state: view.LimitsOK}
			}
			return limitsLoadedMsg{state: view.LimitsUnavailable, err: err}
		}
		return limitsLoadedMsg{limits: limits, state: view.LimitsOK}
	}
}

func (m *Model) createExpenseCmd(e core.Expense) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		_, err := client.CreateExpense(context.Background(), e)
		return expenseCreatedMsg{err: err}
	}
}

func (m *Model) deleteExpenseCmd(expenseID int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.DeleteExpense(context.Background(), expenseID)
		return expenseDeletedMsg{err: err}
	}
}

func (m *Model) saveLimitsCmd(limits core.Limits) tea.Cmd {
	client, userID := m.client, m.user.ID
	return func() tea.Msg {
		err := client.SetLimits(context.Background(), userID, limits)
		return limitsSavedMsg{err: err}
	}
}

// saveSessionCmd persists the session in the background; a storage failure
// is logged but never blocks the login flow.
func (m *Model) saveSessionCmd(user core.User) tea.Cmd {
	store, logger := m.store, m.logger
	return func() tea.Msg {
		if store == nil {
			return nil
		}
		if err := store.SaveUser(context.Background(), user); err != nil {
			logger.Error("persist session failed", applog.FieldError, err)
		}
		return nil
	}
}

func (m *Model) clearSessionCmd() tea.Cmd {
	store, logger := m.store, m.logger
	return func() tea.Msg {
		if store == nil {
			return nil
		}
		if err := store.ClearUser(context.Background()); err != nil {
			logger.Error("clear session failed", applog.FieldError, err)
		}
		return nil
	}
}

func (m *Model) saveThemeCmd(theme string) tea.Cmd {
	store, logger := m.store, m.logger
	return func() tea.Msg {
		if store == nil {
			return nil
		}
		if err := store.SetTheme(context.Background(), theme); err != nil {
			logger.Error("persist theme failed", applog.FieldError, err, applog.FieldTheme, theme)
		}
		return nil
	}
}
