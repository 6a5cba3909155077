// Package keys holds the key bindings of every panel; the same bindings drive
// input handling and the help overlay.
package keys

import "github.com/charmbracelet/bubbles/key"

// Shared bindings
var (
	ForceQuit = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	Up        = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	Down      = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	PageUp    = key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up"))
	PageDown  = key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down"))
	Home      = key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top"))
	End       = key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom"))
	Close     = key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close"))
)

// ListingKeys are active while no panel is open
type ListingKeys struct {
	Search     key.Binding
	Filters    key.Binding
	Sort       key.Binding
	Category   key.Binding
	TabAll     key.Binding
	TabAuction key.Binding
	TabBuyNow  key.Binding
	ClearAll   key.Binding
	ChipLeft   key.Binding
	ChipRight  key.Binding
	RemoveChip key.Binding
	History    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var Listing = ListingKeys{
	Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Filters:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
	Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	Category:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
	TabAll:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
	TabAuction: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "auctions")),
	TabBuyNow:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "buy now")),
	ClearAll:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
	ChipLeft:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous chip")),
	ChipRight:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next chip")),
	RemoveChip: key.NewBinding(key.WithKeys("d", "backspace"), key.WithHelp("d", "remove chip")),
	History:    key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "history pager")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

func (k ListingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Filters, k.Sort, k.Category, k.Help, k.Quit}
}

func (k ListingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{Up, Down, PageUp, PageDown, Home, End},
		{k.Search, k.Filters, k.Sort, k.Category, k.ClearAll},
		{k.TabAll, k.TabAuction, k.TabBuyNow},
		{k.ChipLeft, k.ChipRight, k.RemoveChip},
		{k.History, k.Help, k.Quit},
	}
}

// SearchKeys are active in the search panel; unbound keys edit the query
type SearchKeys struct {
	Submit         key.Binding
	Cancel         key.Binding
	Prev           key.Binding
	Next           key.Binding
	Pick           key.Binding
	Edit           key.Binding
	Delete         key.Binding
	ClearHistory   key.Binding
	UserSearch     key.Binding
	Finished       key.Binding
	Refresh        key.Binding
	CategoryPicker key.Binding
	Pager          key.Binding
}

var Search = SearchKeys{
	Submit:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
	Cancel:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Prev:           key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous entry")),
	Next:           key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next entry")),
	Pick:           key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "run entry")),
	Edit:           key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "edit entry")),
	Delete:         key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete entry")),
	ClearHistory:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear history")),
	UserSearch:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "my offers")),
	Finished:       key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "finished")),
	Refresh:        key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
	CategoryPicker: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "category")),
	Pager:          key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "history pager")),
}

func (k SearchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Pick, k.UserSearch, k.Finished, k.CategoryPicker, k.Cancel}
}

func (k SearchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Cancel, k.Refresh},
		{k.Prev, k.Next, k.Pick, k.Edit, k.Delete, k.ClearHistory},
		{k.UserSearch, k.Finished, k.CategoryPicker, k.Pager},
	}
}

// FilterKeys are active in the filters editor
type FilterKeys struct {
	Edit   key.Binding
	Reset  key.Binding
	Apply  key.Binding
	Clear  key.Binding
	Submit key.Binding
	Cancel key.Binding
}

var Filters = FilterKeys{
	Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit value")),
	Reset:  key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "reset value")),
	Apply:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "apply")),
	Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear all")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept value")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard value")),
}

func (k FilterKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Reset, k.Apply, k.Clear, Close}
}

func (k FilterKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{Up, Down}, k.ShortHelp()}
}

// SortKeys are active in the sort picker
type SortKeys struct {
	Apply  key.Binding
	NoSort key.Binding
}

var Sort = SortKeys{
	Apply:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
	NoSort: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no sort")),
}

func (k SortKeys) ShortHelp() []key.Binding {
	return []key.Binding{Up, Down, k.Apply, k.NoSort, Close}
}

func (k SortKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// CategoryKeys are active in the category browser and picker
type CategoryKeys struct {
	Open  key.Binding
	Use   key.Binding
	Clear key.Binding
	Back  key.Binding
	Close key.Binding
}

var Category = CategoryKeys{
	Open:  key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "open")),
	Use:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "use this level")),
	Clear: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "all categories")),
	Back:  key.NewBinding(key.WithKeys("backspace", "left", "h"), key.WithHelp("←", "up a level")),
	Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
}

func (k CategoryKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Use, k.Clear, k.Back, k.Close}
}

func (k CategoryKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{Up, Down}, k.ShortHelp()}
}
