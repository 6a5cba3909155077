package analytics

// Event names and parameter keys are consumed by existing dashboards and must not change.
const (
	EventOpenSearchListing = "open_search_listing"
	EventSearchForItem     = "search_for_item"
)

// open_search_listing parameters
const (
	ParamSearchString = "search_string"
	ParamCategoryID   = "category_id"
	ParamCategoryName = "category_name"
	ParamUserLogin    = "user_login"
	ParamUserSearch   = "user_search"
	ParamUserFinished = "user_finished"
)

// search_for_item parameters
const (
	ParamSearchQuery     = "search_query"
	ParamVisitorID       = "visitor_id"
	ParamSearchCatID     = "search_cat_id"
	ParamUserSearchLogin = "user_search_login"
	ParamUserSearchID    = "user_search_id"
)

// Sink receives analytics events. Reporting is fire-and-forget.
type Sink interface {
	ReportEvent(name string, params map[string]any)
}

// NoopSink discards all events.
type NoopSink struct{}

func (NoopSink) ReportEvent(string, map[string]any) {}
