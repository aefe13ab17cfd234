package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Key is a decoded key press named the way key bindings are written:
// "ctrl+q", "esc", "enter", "left", "i".
type Key string

// KeyNone is returned for input that is not a key press, such as a resize.
const KeyNone Key = ""

// Common key names
const (
	KeyEsc   Key = "esc"
	KeyEnter Key = "enter"
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
)

func (k Key) String() string { return string(k) }

var namedKeys = map[tcell.Key]string{
	tcell.KeyEscape:     "esc",
	tcell.KeyEnter:      "enter",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "shift+tab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdown",
}

// KeyFromEvent converts a tcell key event into a Key
func KeyFromEvent(ev *tcell.EventKey) Key {
	mods := ev.Modifiers()

	if ev.Key() == tcell.KeyRune {
		name := string(ev.Rune())
		switch {
		case mods&tcell.ModCtrl != 0:
			return Key("ctrl+" + strings.ToLower(name))
		case mods&tcell.ModAlt != 0:
			return Key("alt+" + name)
		}
		return Key(name)
	}

	if name, ok := namedKeys[ev.Key()]; ok {
		if ev.Key() == tcell.KeyBacktab {
			return Key(name)
		}
		return Key(modifierPrefix(mods) + name)
	}

	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return Key("ctrl+" + string(rune('a'+int(ev.Key()-tcell.KeyCtrlA))))
	}

	return KeyNone
}

func modifierPrefix(mods tcell.ModMask) string {
	var b strings.Builder
	if mods&tcell.ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if mods&tcell.ModAlt != 0 {
		b.WriteString("alt+")
	}
	if mods&tcell.ModShift != 0 {
		b.WriteString("shift+")
	}
	return b.String()
}
