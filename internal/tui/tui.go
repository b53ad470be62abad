package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/redcode/internal/app"
	"github.com/dshills/redcode/internal/censor"
	"github.com/dshills/redcode/internal/editor"
)

const tabWidth = 4

const helpLine = " ^O Open  ^L Clear  ^K Censor  ^D Done  ^Q Quit"

var (
	styleText     = tcell.StyleDefault
	styleSelected = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleCensored = tcell.StyleDefault.Reverse(true)
	styleBar      = tcell.StyleDefault.Reverse(true)
	styleError    = tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(tcell.ColorWhite)
)

// UI runs the editor loop on a tcell screen.
type UI struct {
	screen tcell.Screen
	app    *app.App
	doc    *editor.Document

	title  string
	status string
	alert  bool

	top, left int

	// Keys between the start and end of a bracketed paste are text.
	pasting bool
	pasted  strings.Builder
}

// New creates a UI. The caller keeps ownership of a and doc; the UI installs
// itself as a's notifier.
func New(screen tcell.Screen, a *app.App, doc *editor.Document) *UI {
	u := &UI{screen: screen, app: a, doc: doc, title: "redcode"}
	a.Notifier = u
	return u
}

// Notify shows a message in the status line.
func (u *UI) Notify(title, message string) {
	u.status = title + ": " + strings.ReplaceAll(message, "\n", " ")
	u.alert = title == app.TitleError || title == app.TitleWarning
}

// Status returns the current status message.
func (u *UI) Status() string {
	return u.status
}

// Run initialises the screen and processes events until the user quits.
func (u *UI) Run() error {
	if err := u.screen.Init(); err != nil {
		return fmt.Errorf("initialising terminal: %w", err)
	}
	defer u.screen.Fini()
	u.screen.EnablePaste()

	for {
		u.Draw()
		if !u.HandleEvent(u.screen.PollEvent()) {
			return nil
		}
	}
}

// HandleEvent applies ev. It returns false when the editor should exit.
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if u.pasting {
			u.bufferPaste(e)
			return true
		}
		return u.handleKey(e)
	case *tcell.EventPaste:
		if e.Start() {
			u.pasting = true
			u.pasted.Reset()
		} else if u.pasting {
			u.pasting = false
			u.insertPaste()
		}
	case *tcell.EventResize:
		if u.screen != nil {
			u.screen.Sync()
		}
	case nil:
		return false
	}
	return true
}

func (u *UI) handleKey(e *tcell.EventKey) bool {
	u.status = ""
	u.alert = false
	extend := e.Modifiers()&tcell.ModShift != 0

	switch normalizeKey(e) {
	case tcell.KeyCtrlQ, tcell.KeyEscape:
		return false
	case tcell.KeyCtrlD:
		u.app.Done(u.doc)
	case tcell.KeyCtrlO:
		if path, err := u.app.Open(u.doc); err == nil && path != "" {
			u.title = "redcode - " + path
			u.top, u.left = 0, 0
		}
	case tcell.KeyCtrlL:
		u.app.Clear(u.doc)
		u.top, u.left = 0, 0
	case tcell.KeyCtrlK:
		u.app.Censor(u.doc)
	case tcell.KeyCtrlA:
		u.doc.Select(censor.Range{Start: 0, End: u.doc.Len()})
	case tcell.KeyEnter:
		u.doc.InsertRune('\n')
	case tcell.KeyTab:
		u.doc.InsertRune('\t')
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		u.doc.Backspace()
	case tcell.KeyDelete:
		u.doc.Delete()
	case tcell.KeyLeft:
		u.doc.Move(editor.Left, extend)
	case tcell.KeyRight:
		u.doc.Move(editor.Right, extend)
	case tcell.KeyUp:
		u.doc.Move(editor.Up, extend)
	case tcell.KeyDown:
		u.doc.Move(editor.Down, extend)
	case tcell.KeyHome:
		u.doc.Move(editor.LineStart, extend)
	case tcell.KeyEnd:
		u.doc.Move(editor.LineEnd, extend)
	case tcell.KeyPgUp:
		for i := 0; i < u.pageHeight(); i++ {
			u.doc.Move(editor.Up, extend)
		}
	case tcell.KeyPgDn:
		for i := 0; i < u.pageHeight(); i++ {
			u.doc.Move(editor.Down, extend)
		}
	case tcell.KeyRune:
		u.doc.InsertRune(e.Rune())
	}
	return true
}

// bufferPaste collects one pasted key. Line breaks, tabs and printable runes
// are kept; other control keys are dropped so pasted bytes never run
// commands.
func (u *UI) bufferPaste(e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyRune:
		u.pasted.WriteRune(e.Rune())
	case tcell.KeyEnter:
		if e.Rune() == '\n' {
			u.pasted.WriteByte('\n')
		} else {
			u.pasted.WriteByte('\r')
		}
	case tcell.KeyLF:
		u.pasted.WriteByte('\n')
	case tcell.KeyTab:
		u.pasted.WriteByte('\t')
	}
}

// insertPaste inserts the buffered paste as one edit, folding CRLF and lone
// CR line endings to LF.
func (u *UI) insertPaste() {
	text := strings.ReplaceAll(u.pasted.String(), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	u.pasted.Reset()
	u.status = ""
	u.alert = false
	u.doc.Insert(text)
}

// normalizeKey folds Ctrl+letter reported as a modified rune into the
// matching control key.
func normalizeKey(e *tcell.EventKey) tcell.Key {
	if e.Key() == tcell.KeyRune && e.Modifiers()&tcell.ModCtrl != 0 {
		if r := unicode.ToLower(e.Rune()); r >= 'a' && r <= 'z' {
			return tcell.KeyCtrlA + tcell.Key(r-'a')
		}
	}
	return e.Key()
}

func (u *UI) pageHeight() int {
	if u.screen == nil {
		return 1
	}
	_, h := u.screen.Size()
	return max(h-2, 1)
}

// Draw renders the document, title bar and status line.
func (u *UI) Draw() {
	s := u.screen
	s.Clear()
	w, h := s.Size()
	if w <= 0 || h < 3 {
		s.Show()
		return
	}
	body := h - 2
	line, col := u.doc.CursorPos()
	lines := u.doc.Lines()
	cursorX := DisplayColumn(lines[line], col)
	u.scrollTo(line, cursorX, w, body)

	drawBar(s, 0, w, u.title, styleBar)

	offset := u.doc.Offset(u.top, 0)
	for row := 0; row < body && u.top+row < len(lines); row++ {
		u.drawLine(row+1, w, lines[u.top+row], offset)
		offset += len([]rune(lines[u.top+row])) + 1
	}

	status, style := helpLine, styleBar
	if u.status != "" {
		status = " " + u.status
		if u.alert {
			style = styleError
		}
	}
	drawBar(s, h-1, w, status, style)

	s.ShowCursor(cursorX-u.left, line-u.top+1)
	s.Show()
}

func (u *UI) scrollTo(line, x, w, body int) {
	if line < u.top {
		u.top = line
	}
	if line >= u.top+body {
		u.top = line - body + 1
	}
	if x < u.left {
		u.left = x
	}
	if x >= u.left+w {
		u.left = x - w + 1
	}
}

func (u *UI) drawLine(y, w int, line string, offset int) {
	x := 0
	for i, r := range []rune(line) {
		off := offset + i
		style := styleText
		switch {
		case u.doc.IsSelected(off):
			style = styleSelected
		case u.doc.IsCensored(off):
			style = styleCensored
		}
		width := cellWidth(r, x)
		glyph := r
		if r == '\t' {
			glyph = ' '
		}
		for c := 0; c < width; c++ {
			sx := x + c - u.left
			if sx >= 0 && sx < w {
				if c == 0 || r == '\t' {
					u.screen.SetContent(sx, y, glyph, nil, style)
				}
			}
		}
		x += width
		if x-u.left >= w {
			return
		}
	}
}

func drawBar(s tcell.Screen, y, w int, text string, style tcell.Style) {
	x := 0
	for _, r := range text {
		if x >= w {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	for ; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// DisplayColumn returns the screen column of rune column col in line, with
// tabs expanded to the next multiple of four and wide runes taking two cells.
func DisplayColumn(line string, col int) int {
	x := 0
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		x += cellWidth(r, x)
	}
	return x
}

func cellWidth(r rune, x int) int {
	if r == '\t' {
		return tabWidth - x%tabWidth
	}
	return max(runewidth.RuneWidth(r), 1)
}
