package screen

import (
	"github.com/gdamore/tcell/v2"
)

// Terminal is a Display backed by a tcell screen.
type Terminal struct {
	screen tcell.Screen
}

// Open initialises the process terminal as a full-screen display.
func Open() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, &UnsupportedError{Wrapped: err}
	}
	return NewTerminal(s)
}

// NewTerminal initialises s and checks that it can host the animation.
// On failure the screen is finalised before returning.
func NewTerminal(s tcell.Screen) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, &UnsupportedError{Wrapped: err}
	}

	w, h := s.Size()
	colors := s.Colors()
	var cause error
	switch {
	case w < MinWidth || h < MinHeight:
		cause = ErrTooSmall
	case colors < MinColors:
		cause = ErrNoColor
	}
	if cause != nil {
		s.Fini()
		return nil, &UnsupportedError{Width: w, Height: h, Colors: colors, Wrapped: cause}
	}

	s.SetStyle(tcell.StyleDefault)
	s.HideCursor()
	s.Clear()
	return &Terminal{screen: s}, nil
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) SetCell(x, y int, r rune, style tcell.Style) {
	w, h := t.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	t.screen.SetContent(x, y, r, nil, style)
}

func (t *Terminal) Show() {
	t.screen.Show()
}

// Poll never blocks: it only reads from tcell's queue when an event is
// already pending.
func (t *Terminal) Poll() (Event, bool) {
	for t.screen.HasPendingEvent() {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{}, false
		}
		if out, ok := translate(ev); ok {
			if out.Kind == EventResize {
				t.screen.Sync()
			}
			return out, true
		}
	}
	return Event{}, false
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

func translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return Event{Kind: EventInterrupt}, true
		case tcell.KeyRune:
			return Event{Kind: EventKey, Rune: ev.Rune()}, true
		}
		return Event{}, false
	case *tcell.EventResize:
		return Event{Kind: EventResize}, true
	}
	return Event{}, false
}
