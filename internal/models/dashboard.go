package models

// Metrics are the four scalar dashboard figures.
type Metrics struct {
	TotalLeads         int `json:"total_leads"`
	NewLeads           int `json:"new_leads"`
	TotalConversations int `json:"total_conversations"`
	ConversionRate     int `json:"conversion_rate"`
}

// MetricCard is one rendered metric tile.
type MetricCard struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Value string `json:"value"`
}

type BarPoint struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type PieSlice struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Value   int    `json:"value"`
	Percent int    `json:"percent"`
	Color   string `json:"color"`
}

type Charts struct {
	BySource []BarPoint `json:"by_source"`
	ByStatus []PieSlice `json:"by_status"`
}

// FilterCriteria are the user's table filter selections.
type FilterCriteria struct {
	Search string `json:"search"`
	Status string `json:"status"`
	Source string `json:"source"`
}

// Badge is a display treatment for a categorical value.
type Badge struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Tone  string `json:"tone"`
	Class string `json:"class"`
}

type LeadRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Source   string `json:"source"`
	Status   Badge  `json:"status"`
	Priority Badge  `json:"priority"`
	Date     string `json:"date"`
}

// EmptyState tells the view why a table has no rows.
type EmptyState string

const (
	EmptyNone      EmptyState = ""
	EmptyNoLeads   EmptyState = "no_leads"
	EmptyNoMatches EmptyState = "no_matches"
)

// Option is one entry of a filter select.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FilterOptions struct {
	Statuses []Option `json:"statuses"`
	Sources  []Option `json:"sources"`
}

// FilterState is the stored selections with the options they are picked from.
type FilterState struct {
	Filters FilterCriteria `json:"filters"`
	Options FilterOptions  `json:"options"`
}

type LeadTable struct {
	Filters    FilterCriteria `json:"filters"`
	Options    FilterOptions  `json:"options"`
	Total      int            `json:"total"`
	Matched    int            `json:"matched"`
	Rows       []LeadRow      `json:"rows"`
	EmptyState EmptyState     `json:"empty_state,omitempty"`
	Message    string         `json:"message,omitempty"`
}

type DashboardView struct {
	User    Session      `json:"user"`
	Metrics Metrics      `json:"metrics"`
	Cards   []MetricCard `json:"cards"`
	Charts  Charts       `json:"charts"`
	Table   LeadTable    `json:"table"`
}
