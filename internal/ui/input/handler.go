package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lotview/internal/domain"
	"lotview/internal/ui/input/modes"
	"lotview/internal/ui/input/types"
)

// Handler routes keys to the handler of the open panel. The panel itself is owned
// by the window mode controller; Sync follows it.
type Handler struct {
	currentMode domain.WindowMode
	modes       map[domain.WindowMode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = ""

	h := &Handler{
		currentMode: domain.ModeListing,
		textInput:   &ti,
		modes:       make(map[domain.WindowMode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[domain.ModeListing] = modes.NewListingMode()
	h.modes[domain.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[domain.ModeFilters] = modes.NewFiltersMode(h.textInput)
	h.modes[domain.ModeSorting] = modes.NewSortMode()
	h.modes[domain.ModeCategory] = modes.NewCategoryMode("category")
	h.modes[domain.ModeCategoryFilters] = modes.NewCategoryMode("category picker")

	return h
}

// HandleKey passes the key to the active panel. Keys the panel leaves unconsumed
// edit the text input when the panel accepts text.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed {
		var cmd tea.Cmd
		if h.acceptsText() && h.textInput.Focused() {
			cmd = textinput.Blink
		}
		return actions, cmd
	}
	if !h.acceptsText() {
		return nil, nil
	}

	var cmd tea.Cmd
	before := h.textInput.Value()
	*h.textInput, cmd = h.textInput.Update(msg)
	if h.textInput.Value() != before {
		actions = append(actions, types.UpdateTextAction{Text: h.textInput.Value()})
	}
	return actions, cmd
}

// Sync switches to the handler of mode. text seeds the input of text panels.
func (h *Handler) Sync(mode domain.WindowMode, text string, ctx types.Context) ([]types.Action, tea.Cmd) {
	if mode == h.currentMode {
		return nil, nil
	}

	var actions []types.Action
	if old := h.modes[h.currentMode]; old != nil {
		actions = append(actions, old.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[mode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}

	if h.acceptsText() {
		h.textInput.SetValue(text)
		h.textInput.CursorEnd()
		h.textInput.Focus()
		return actions, textinput.Blink
	}
	h.textInput.Blur()
	return actions, nil
}

// SetText replaces the text input value without emitting an update
func (h *Handler) SetText(text string) {
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

func (h *Handler) CurrentMode() domain.WindowMode {
	return h.currentMode
}

// Name returns the display name of the active handler
func (h *Handler) Name() string {
	if handler := h.modes[h.currentMode]; handler != nil {
		return handler.Name()
	}
	return ""
}

// Editing reports whether a filter value is being typed
func (h *Handler) Editing() bool {
	if f, ok := h.modes[domain.ModeFilters].(*modes.FiltersMode); ok && h.currentMode == domain.ModeFilters {
		return f.Editing()
	}
	return false
}

// TextInput returns the shared input while the active handler accepts text
func (h *Handler) TextInput() *textinput.Model {
	if h.acceptsText() {
		return h.textInput
	}
	return nil
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.acceptsText() {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

func (h *Handler) acceptsText() bool {
	tm, ok := h.modes[h.currentMode].(types.TextMode)
	return ok && tm.AcceptsText()
}
