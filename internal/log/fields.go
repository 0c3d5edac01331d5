package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldError       = "error"
	FieldUserID      = "user_id"
	FieldExpenseID   = "expense_id"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldWindow      = "window"
	FieldScreen      = "screen"
	FieldTheme       = "theme"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentAPI     = "api"
	ComponentSession = "session"
	ComponentUI      = "ui"
)

// Operations defines standard operation names
const (
	OpRegister    = "register"
	OpLogin       = "login"
	OpLogout      = "logout"
	OpListExpense = "list_expenses"
	OpAddExpense  = "add_expense"
	OpDelExpense  = "delete_expense"
	OpGetLimits   = "get_limits"
	OpSetLimits   = "set_limits"
	OpHealth      = "health"
	OpStartup     = "startup"
	OpShutdown    = "shutdown"
)
