package models

// GameQuestion is one prompt card in an event game deck.
type GameQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Category string `json:"category"` // icebreaker, intimacy, sensory, creative
}

// GameInfo is a named game with its question deck.
type GameInfo struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Tagline   string         `json:"tagline"`
	Icon      string         `json:"icon"`
	Questions []GameQuestion `json:"questions"`
}

// TimelineHour is one hour of the event programme.
type TimelineHour struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Phase       string     `json:"phase"`
	Description string     `json:"description"`
	Activities  []string   `json:"activities"`
	Games       []GameInfo `json:"games"`
	Icon        string     `json:"icon"`
}

// EventDetails is the static event configuration. Prices here are display
// values only; the amount actually charged always comes from the backend.
type EventDetails struct {
	Name          string   `json:"name"`
	Tagline       string   `json:"tagline"`
	Venue         string   `json:"venue"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Duration      string   `json:"duration"`
	TableType     string   `json:"tableType"`
	PartialAmount int      `json:"partialAmount"` // rupees
	FullAmount    int      `json:"fullAmount"`    // rupees
	Currency      string   `json:"currency"`
	Includes      []string `json:"includes"`
	Slots         []string `json:"slots"`
}

// LegalDocument is a static policy page.
type LegalDocument struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body"`
}
