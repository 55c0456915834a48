package window

import (
	"unicode"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// clockEntry accepts MM:SS input. Enter or leaving the field commits, Escape cancels.
type clockEntry struct {
	widget.Entry
	active   bool
	onCommit func(text string)
	onCancel func()
}

func newClockEntry() *clockEntry {
	entry := &clockEntry{}
	entry.ExtendBaseWidget(entry)
	entry.SetPlaceHolder("MM:SS")
	return entry
}

// begin opens an empty field; committing it unchanged edits nothing.
func (entry *clockEntry) begin() {
	entry.active = true
	entry.SetText("")
	entry.CursorColumn = 0
	entry.Refresh()
}

func (entry *clockEntry) TypedRune(r rune) {
	if unicode.IsDigit(r) || r == ':' {
		entry.Entry.TypedRune(r)
	}
}

func (entry *clockEntry) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyEscape:
		entry.finish(false)
	case fyne.KeyReturn, fyne.KeyEnter:
		entry.finish(true)
	default:
		entry.Entry.TypedKey(key)
	}
}

func (entry *clockEntry) FocusLost() {
	entry.Entry.FocusLost()
	entry.finish(true)
}

func (entry *clockEntry) finish(commit bool) {
	if !entry.active {
		return
	}
	entry.active = false
	if commit {
		if entry.onCommit != nil {
			entry.onCommit(entry.Text)
		}
		return
	}
	if entry.onCancel != nil {
		entry.onCancel()
	}
}
