// Package data holds the static Slow Love Club event content. It is plain
// configuration: nothing here carries business logic beyond price display
// formatting.
package data

import (
	"strconv"
	"strings"

	"slowlove/models"
)

// Event is the canonical event configuration.
var Event = models.EventDetails{
	Name:          "The Slow Love Club",
	Tagline:       "Love, but at an unhurried pace",
	Venue:         "Grano - Coffee Affairs",
	Date:          "Valentine's Day 2024",
	Time:          "7:00 PM - 10:00 PM",
	Duration:      "3 Hours",
	TableType:     "Couple's Sanctuary Table",
	PartialAmount: 1000,
	FullAmount:    5000,
	Currency:      "₹",
	Includes: []string{
		"Welcome drinks",
		"Curated games & activities",
		"Multi-course tasting experience",
		"Signature dessert ritual",
		"Polaroid takeaway",
		"Exclusive couple's sanctuary seating",
	},
	Slots: []string{
		"12:00 PM – 03:00 PM",
		"04:00 PM – 07:00 PM",
	},
}

// FormatINR renders a rupee amount with Indian digit grouping, e.g. 125000
// becomes ₹1,25,000.
func FormatINR(amount int) string {
	s := strconv.Itoa(amount)
	n := len(s)
	if n <= 3 {
		return Event.Currency + s
	}
	// Last group of three digits, then groups of two from the right.
	head := s[:n-3]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return Event.Currency + strings.Join(groups, ",") + "," + s[n-3:]
}

// DisplayPartial is the advertised partial (booking) price.
func DisplayPartial() string {
	return FormatINR(Event.PartialAmount)
}

// DisplayFull is the advertised full experience price.
func DisplayFull() string {
	return FormatINR(Event.FullAmount)
}
