package input

import (
	"tilde/internal/terminal"
	"tilde/internal/ui/input/modes"
	"tilde/internal/ui/input/types"
	"tilde/internal/ui/keys"
)

// Handler routes keys to the handler of the session's current mode. It holds
// no mode state of its own; the mode is read from the context on every key.
type Handler struct {
	modes map[types.Mode]types.ModeHandler
}

func New(km *keys.KeyMap) *Handler {
	h := &Handler{
		modes: make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeNavigation] = modes.NewNavigationMode(km)
	h.modes[types.ModeInsertion] = modes.NewInsertionMode(km)

	return h
}

// HandleKey returns the actions for k. A mode change is expanded into the
// old mode's exit actions, the change itself and the new mode's enter
// actions, in that order.
func (h *Handler) HandleKey(k terminal.Key, ctx types.Context) []types.Action {
	current := h.modes[ctx.CurrentMode()]
	if current == nil {
		return nil
	}

	actions, consumed := current.HandleKey(k, ctx)
	if !consumed {
		return nil
	}

	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}

		allActions = append(allActions, current.Exit(ctx)...)
		allActions = append(allActions, changeMode)
		if next := h.modes[changeMode.Mode]; next != nil {
			allActions = append(allActions, next.Enter(ctx)...)
			current = next
		}
	}

	return allActions
}

// EnterActions returns the actions needed to start out in mode, such as
// setting its cursor glyph.
func (h *Handler) EnterActions(mode types.Mode, ctx types.Context) []types.Action {
	if handler := h.modes[mode]; handler != nil {
		return handler.Enter(ctx)
	}
	return nil
}

// ModeName returns the display name of mode
func (h *Handler) ModeName(mode types.Mode) string {
	if handler := h.modes[mode]; handler != nil {
		return handler.Name()
	}
	return mode.String()
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}
