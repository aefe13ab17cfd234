package keys

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"tilde/internal/config"
)

// KeyMap holds the bindings for every editor command
type KeyMap struct {
	Quit   key.Binding
	Escape key.Binding
	Insert key.Binding
	Left   key.Binding
	Down   key.Binding
	Up     key.Binding
	Right  key.Binding
}

// New builds a key map from configured key names
func New(settings config.KeySettings) *KeyMap {
	return &KeyMap{
		Quit:   binding(settings.Quit, "quit"),
		Escape: binding(settings.Escape, "navigation mode"),
		Insert: binding(settings.Insert, "insertion mode"),
		Left:   binding(settings.Left, "left"),
		Down:   binding(settings.Down, "down"),
		Up:     binding(settings.Up, "up"),
		Right:  binding(settings.Right, "right"),
	}
}

// Default returns the key map for the default configuration
func Default() *KeyMap {
	return New(config.DefaultConfig().Keys)
}

func binding(names []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(names...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// ShortHelp implements help.KeyMap
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Insert, k.Escape, k.Quit}
}

// FullHelp implements help.KeyMap
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Down, k.Up, k.Right},
		{k.Insert, k.Escape, k.Quit},
	}
}

var _ help.KeyMap = (*KeyMap)(nil)

// HelpView renders every binding as a plain multi column block
func (k *KeyMap) HelpView(width int) string {
	h := help.New()
	h.Width = width
	h.ShowAll = true
	return h.View(k)
}
