package navigation

// State holds the cursor and scroll position of one list
type State struct {
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	Size           int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// List names the navigable lists of the listing screen
type List string

const (
	ListResults  List = "results"
	ListHistory  List = "history"
	ListCategory List = "category"
	ListFilters  List = "filters"
	ListSorting  List = "sorting"
)

// CursorMovedEvent is published when the cursor of a list changed position
type CursorMovedEvent struct {
	List     List
	OldIndex int
	NewIndex int
}
