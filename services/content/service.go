// Package content serves the presentational event data: details, programme
// timeline, game decks and legal pages. Everything here is static
// configuration rendered by the site.
package content

import (
	"sort"

	"slowlove/data"
	"slowlove/models"
)

// ContentService exposes the event's static content.
type ContentService interface {
	Event() models.EventDetails
	Pricing() Pricing
	Timeline() []models.TimelineHour
	Games() []models.GameInfo
	Legal(slug string) (models.LegalDocument, bool)
}

// Pricing carries the display prices shown next to the two payment buttons.
// These are presentation only; the charged amount always comes from the
// backend's create-order response.
type Pricing struct {
	PartialDisplay string `json:"partialDisplay"`
	FullDisplay    string `json:"fullDisplay"`
	Currency       string `json:"currency"`
}

// DefaultContentService implements ContentService from the data package.
type DefaultContentService struct{}

func (s *DefaultContentService) Event() models.EventDetails {
	return data.Event
}

func (s *DefaultContentService) Pricing() Pricing {
	return Pricing{
		PartialDisplay: data.DisplayPartial(),
		FullDisplay:    data.DisplayFull(),
		Currency:       data.Event.Currency,
	}
}

func (s *DefaultContentService) Timeline() []models.TimelineHour {
	return data.TimelineHours
}

func (s *DefaultContentService) Games() []models.GameInfo {
	games := make([]models.GameInfo, 0, len(data.Games))
	for _, g := range data.Games {
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games
}

func (s *DefaultContentService) Legal(slug string) (models.LegalDocument, bool) {
	doc, ok := data.LegalDocuments[slug]
	return doc, ok
}
