// Package ui is the Bubble Tea adapter over the pure view models. It owns
// the page state machine (login, registration, dashboard), the two overlay
// modals, the toast and the key handling; everything it paints comes from
// internal/view.
package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"smartexpense/internal/api"
	"smartexpense/internal/core"
	applog "smartexpense/internal/log"
	"smartexpense/internal/session"
	"smartexpense/internal/view"
)

type screen int

const (
	screenLogin screen = iota
	screenRegister
	screenDashboard
)

type modal int

const (
	modalNone modal = iota
	modalAddExpense
	modalSetLimits
)

type Model struct {
	client *api.Client
	store  *session.Store
	logger *applog.Logger

	screen screen
	modal  modal

	// Process-wide state: the snapshot is replaced wholesale on every
	// successful load, never patched; the window resets to All on start
	// and is never persisted.
	user        core.User
	snapshot    []core.Expense
	limits      core.Limits
	limitsState view.LimitsState
	window      core.Window

	loginForm    fieldSet
	registerForm fieldSet
	addForm      expenseForm
	limitsForm   fieldSet

	selected      int
	confirmDelete bool

	// One request at a time per user gesture: submits are ignored while
	// a mutation or login is outstanding, so rapid duplicate submissions
	// cannot race.
	inFlight bool

	toast  toast
	theme  string
	styles Styles
	width  int
	height int
	now    func() time.Time
}

func New(client *api.Client, store *session.Store, logger *applog.Logger) Model {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentUI)
	}
	m := newModel(client, store, logger)

	ctx := context.Background()
	if store != nil {
		m.theme = store.Theme(ctx)
		m.styles = newStyles(m.theme)
		if user, ok := store.LoadUser(ctx); ok {
			m.user = user
			m.screen = screenDashboard
		}
	}
	return m
}

func newModel(client *api.Client, store *session.Store, logger *applog.Logger) Model {
	return Model{
		client:       client,
		store:        store,
		logger:       logger,
		screen:       screenLogin,
		window:       core.WindowAll,
		limitsState:  view.LimitsOK,
		loginForm:    newLoginForm(),
		registerForm: newRegisterForm(),
		addForm:      newExpenseForm(),
		limitsForm:   newLimitsForm(),
		theme:        session.ThemeLight,
		styles:       newStyles(session.ThemeLight),
		width:        100,
		height:       40,
		now:          time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	if m.screen == screenDashboard {
		return tea.Batch(textinput.Blink, m.fetchLimitsCmd(), m.fetchExpensesCmd())
	}
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toastExpiredMsg:
		m.clearToast(msg.id)
		return m, nil

	case loginResultMsg:
		m.inFlight = false
		if msg.err != nil {
			return m, m.showToast(userMessage(msg.err), true)
		}
		m.user = msg.user
		m.screen = screenDashboard
		m.window = core.WindowAll
		m.loginForm.reset()
		return m, tea.Batch(
			m.showToast("Welcome back, "+msg.user.FullName+"!", false),
			m.saveSessionCmd(msg.user),
			m.fetchLimitsCmd(),
			m.fetchExpensesCmd(),
		)

	case registerResultMsg:
		m.inFlight = false
		if msg.err != nil {
			return m, m.showToast(userMessage(msg.err), true)
		}
		m.registerForm.reset()
		m.screen = screenLogin
		return m, m.showToast("Registration successful! Please login.", false)

	case expensesLoadedMsg:
		if msg.err != nil {
			// Prior snapshot stays; the failure is only reported.
			m.logger.Warn("expense reload failed", applog.FieldError, msg.err)
			return m, m.showToast(userMessage(msg.err), true)
		}
		m.snapshot = msg.expenses
		m.clampSelection()
		return m, nil

	case limitsLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("limits load failed", applog.FieldError, msg.err)
		}
		m.limits = msg.limits
		m.limitsState = msg.state
		return m, nil

	case expenseCreatedMsg:
		m.inFlight = false
		if msg.err != nil {
			return m, m.showToast(userMessage(msg.err), true)
		}
		m.closeAddExpense()
		return m, tea.Batch(
			m.showToast("Expense added successfully!", false),
			m.fetchExpensesCmd(),
		)

	case expenseDeletedMsg:
		m.inFlight = false
		if msg.err != nil {
			return m, m.showToast(userMessage(msg.err), true)
		}
		return m, tea.Batch(
			m.showToast("Expense deleted successfully!", false),
			m.fetchExpensesCmd(),
		)

	case limitsSavedMsg:
		m.inFlight = false
		if msg.err != nil {
			return m, m.showToast(userMessage(msg.err), true)
		}
		m.modal = modalNone
		return m, tea.Batch(
			m.showToast("Limits updated successfully!", false),
			m.fetchLimitsCmd(),
			m.fetchExpensesCmd(),
		)

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	}

	switch m.modal {
	case modalAddExpense:
		return m.updateAddExpense(msg)
	case modalSetLimits:
		return m.updateSetLimits(msg)
	}
	return m.updateDashboard(msg)
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.loginForm.next()
		return m, nil
	case "shift+tab", "up":
		m.loginForm.prev()
		return m, nil
	case "ctrl+r":
		m.screen = screenRegister
		return m, nil
	case "enter":
		return m.submitLogin()
	}
	cmd := m.loginForm.update(msg)
	return m, cmd
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	if m.inFlight {
		return m, nil
	}
	email := m.loginForm.value(loginEmail)
	password := m.loginForm.inputs[loginPassword].Value()

	if email == "" || password == "" {
		return m, m.showToast("Please enter email and password!", true)
	}
	if !view.ValidEmail(email) {
		return m, m.showToast("Please enter a valid email address!", true)
	}

	m.inFlight = true
	return m, m.loginCmd(email, password)
}

func (m Model) updateRegister(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenLogin
		return m, nil
	case "tab", "down":
		m.registerForm.next()
		return m, nil
	case "shift+tab", "up":
		m.registerForm.prev()
		return m, nil
	case "enter":
		return m.submitRegister()
	}
	cmd := m.registerForm.update(msg)
	return m, cmd
}

func (m Model) submitRegister() (tea.Model, tea.Cmd) {
	if m.inFlight {
		return m, nil
	}
	fullName := m.registerForm.value(regFullName)
	email := m.registerForm.value(regEmail)
	password := m.registerForm.inputs[regPassword].Value()
	confirm := m.registerForm.inputs[regConfirm].Value()

	if fullName == "" || email == "" || password == "" || confirm == "" {
		return m, m.showToast("All fields are required!", true)
	}
	if !view.ValidEmail(email) {
		return m, m.showToast("Please enter a valid email address!", true)
	}
	if len(password) < 6 {
		return m, m.showToast("Password must be at least 6 characters!", true)
	}
	if password != confirm {
		return m, m.showToast("Passwords do not match!", true)
	}

	m.inFlight = true
	return m, m.registerCmd(fullName, email, password)
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmDelete {
		return m.updateConfirmDelete(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "a":
		m.modal = modalAddExpense
		return m, nil
	case "l":
		fillLimitsForm(&m.limitsForm, m.limits)
		m.modal = modalSetLimits
		return m, nil
	case "f":
		m.window = nextWindow(m.window)
		m.selected = 0
		return m, nil
	case "r":
		return m, tea.Batch(m.fetchLimitsCmd(), m.fetchExpensesCmd())
	case "t":
		return m.toggleTheme()
	case "Q":
		return m.logout()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.filteredExpenses())-1 {
			m.selected++
		}
		return m, nil
	case "d", "delete":
		if len(m.filteredExpenses()) > 0 {
			m.confirmDelete = true
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirmDelete = false
	if msg.String() != "y" {
		return m, nil
	}
	if m.inFlight {
		return m, nil
	}
	filtered := m.filteredExpenses()
	if m.selected >= len(filtered) {
		return m, nil
	}
	m.inFlight = true
	return m, m.deleteExpenseCmd(filtered[m.selected].ID)
}

func (m Model) updateAddExpense(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeAddExpense()
		return m, nil
	case "tab", "down":
		m.addForm.next()
		return m, nil
	case "shift+tab", "up":
		m.addForm.prev()
		return m, nil
	case "left":
		if m.addForm.onCat {
			m.addForm.cycleCategory(-1)
			return m, nil
		}
	case "right":
		if m.addForm.onCat {
			m.addForm.cycleCategory(1)
			return m, nil
		}
	case "enter":
		return m.submitAddExpense()
	}
	cmd := m.addForm.update(msg)
	return m, cmd
}

func (m Model) submitAddExpense() (tea.Model, tea.Cmd) {
	if m.inFlight {
		return m, nil
	}
	title := view.Sanitize(m.addForm.fields.value(expTitle))
	amountText := m.addForm.fields.value(expAmount)
	notes := view.Sanitize(m.addForm.fields.value(expNotes))

	if title == "" || amountText == "" {
		return m, m.showToast("Please fill all required fields!", true)
	}
	cents, err := core.ParseDecimalToCents(amountText)
	if err != nil {
		return m, m.showToast("Amount must be greater than zero!", true)
	}

	expense := core.Expense{
		UserID:   m.user.ID,
		Title:    title,
		Amount:   core.Money{Cents: cents},
		Category: m.addForm.category(),
		Notes:    notes,
	}
	m.inFlight = true
	return m, m.createExpenseCmd(expense)
}

func (m Model) updateSetLimits(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil
	case "tab", "down":
		m.limitsForm.next()
		return m, nil
	case "shift+tab", "up":
		m.limitsForm.prev()
		return m, nil
	case "enter":
		return m.submitSetLimits()
	}
	cmd := m.limitsForm.update(msg)
	return m, cmd
}

func (m Model) submitSetLimits() (tea.Model, tea.Cmd) {
	if m.inFlight {
		return m, nil
	}
	m.inFlight = true
	return m, m.saveLimitsCmd(limitsFromForm(&m.limitsForm))
}

func (m *Model) closeAddExpense() {
	m.modal = modalNone
	m.addForm.reset()
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.theme == session.ThemeLight {
		m.theme = session.ThemeDark
	} else {
		m.theme = session.ThemeLight
	}
	m.styles = newStyles(m.theme)
	return m, m.saveThemeCmd(m.theme)
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	m.user = core.User{}
	m.snapshot = nil
	m.limits = core.Limits{}
	m.limitsState = view.LimitsOK
	m.window = core.WindowAll
	m.selected = 0
	m.modal = modalNone
	m.screen = screenLogin
	m.loginForm.reset()
	return m, tea.Batch(
		m.showToast("Logged out successfully!", false),
		m.clearSessionCmd(),
	)
}

func (m Model) filteredExpenses() []core.Expense {
	return core.FilterExpenses(m.snapshot, m.window, m.now())
}

func (m *Model) clampSelection() {
	n := len(m.filteredExpenses())
	if n == 0 {
		m.selected = 0
		return
	}
	if m.selected >= n {
		m.selected = n - 1
	}
}

func nextWindow(w core.Window) core.Window {
	windows := core.Windows()
	for i, candidate := range windows {
		if candidate == w {
			return windows[(i+1)%len(windows)]
		}
	}
	return core.WindowAll
}

// userMessage maps any operation failure to toast text: typed API errors
// know their own wording, anything else is a connectivity problem.
func userMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return "Unable to connect to server"
}
