package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"smartexpense/internal/core"
)

// fieldSet is a vertical group of text inputs with one focused at a time.
type fieldSet struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newFieldSet(labels []string, build func(i int) textinput.Model) fieldSet {
	inputs := make([]textinput.Model, 0, len(labels))
	for i := range labels {
		inputs = append(inputs, build(i))
	}
	fs := fieldSet{labels: labels, inputs: inputs}
	fs.inputs[0].Focus()
	return fs
}

func (f *fieldSet) focusIndex(i int) {
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	f.focus = i
}

func (f *fieldSet) next() {
	f.focusIndex((f.focus + 1) % len(f.inputs))
}

func (f *fieldSet) prev() {
	f.focusIndex((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *fieldSet) update(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(f.inputs))
	for i := range f.inputs {
		f.inputs[i], cmds[i] = f.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (f *fieldSet) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.focusIndex(0)
}

func (f *fieldSet) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func textField(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 32
	return ti
}

func passwordField(placeholder string) textinput.Model {
	ti := textField(placeholder, 64)
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	return ti
}

// Login form: email, password.
const (
	loginEmail = iota
	loginPassword
)

func newLoginForm() fieldSet {
	return newFieldSet([]string{"Email", "Password"}, func(i int) textinput.Model {
		if i == loginPassword {
			return passwordField("password")
		}
		return textField("you@example.com", 64)
	})
}

// Registration form: full name, email, password, confirm password.
const (
	regFullName = iota
	regEmail
	regPassword
	regConfirm
)

func newRegisterForm() fieldSet {
	return newFieldSet([]string{"Full Name", "Email", "Password", "Confirm Password"}, func(i int) textinput.Model {
		switch i {
		case regEmail:
			return textField("you@example.com", 64)
		case regPassword:
			return passwordField("min 6 characters")
		case regConfirm:
			return passwordField("repeat password")
		}
		return textField("Jane Doe", 200)
	})
}

// Add-expense form: title, amount and notes are text inputs; the category
// is a fixed selector cycled with left/right.
type expenseForm struct {
	fields   fieldSet
	catIndex int
	onCat    bool
}

const (
	expTitle = iota
	expAmount
	expNotes
)

func newExpenseForm() expenseForm {
	return expenseForm{
		fields: newFieldSet([]string{"Title", "Amount", "Notes"}, func(i int) textinput.Model {
			switch i {
			case expAmount:
				return textField("0.00", 12)
			case expNotes:
				return textField("optional", 200)
			}
			return textField("What was it?", 50)
		}),
	}
}

func (f *expenseForm) category() core.Category {
	return core.Categories()[f.catIndex]
}

func (f *expenseForm) cycleCategory(delta int) {
	n := len(core.Categories())
	f.catIndex = (f.catIndex + delta + n) % n
}

// The tab order is title, amount, category selector, notes.
func (f *expenseForm) next() {
	switch {
	case f.onCat:
		f.onCat = false
		f.fields.focusIndex(expNotes)
	case f.fields.focus == expAmount:
		f.onCat = true
		f.fields.inputs[expAmount].Blur()
	default:
		f.fields.next()
	}
}

func (f *expenseForm) prev() {
	switch {
	case f.onCat:
		f.onCat = false
		f.fields.focusIndex(expAmount)
	case f.fields.focus == expNotes:
		f.onCat = true
		f.fields.inputs[expNotes].Blur()
	default:
		f.fields.prev()
	}
}

func (f *expenseForm) update(msg tea.Msg) tea.Cmd {
	if f.onCat {
		return nil
	}
	return f.fields.update(msg)
}

func (f *expenseForm) reset() {
	f.fields.reset()
	f.catIndex = 0
	f.onCat = false
}

// Set-limits form: one numeric field per category, in the fixed order.
func newLimitsForm() fieldSet {
	labels := make([]string, 0, 5)
	for _, c := range core.Categories() {
		labels = append(labels, string(c))
	}
	return newFieldSet(labels, func(int) textinput.Model {
		return textField("0", 9)
	})
}

// limitsFromForm coerces each field to a non-negative integer, defaulting
// to 0 on blank or non-numeric input.
func limitsFromForm(f *fieldSet) core.Limits {
	at := func(i int) int64 {
		v, err := strconv.ParseInt(f.value(i), 10, 64)
		if err != nil || v < 0 {
			return 0
		}
		return v
	}
	return core.Limits{
		Food:     at(0),
		Travel:   at(1),
		Shopping: at(2),
		Bills:    at(3),
		Other:    at(4),
	}
}

// fillLimitsForm pre-populates the form with the current limits.
func fillLimitsForm(f *fieldSet, l core.Limits) {
	for i, c := range core.Categories() {
		f.inputs[i].SetValue(strconv.FormatInt(l.ForCategory(c), 10))
	}
	f.focusIndex(0)
}
