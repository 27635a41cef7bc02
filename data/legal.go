package data

import "slowlove/models"

// LegalDocuments holds the static policy pages, keyed by slug.
var LegalDocuments = map[string]models.LegalDocument{
	"privacy": {
		Slug:  "privacy",
		Title: "Privacy Policy",
		Body: "We collect only the details you enter while reserving a table: your name, " +
			"your partner's name, your email address and phone number, and the time slot " +
			"you select. These are shared with our booking backend and our payment " +
			"partner solely to confirm your reservation and send your confirmation " +
			"email. Card and payment credentials are handled entirely by Razorpay; we " +
			"never see or store them. Slot availability counters contain no personal " +
			"data. You can ask us to delete your reservation details at any time by " +
			"writing to the venue.",
	},
	"terms": {
		Slug:  "terms",
		Title: "Terms & Conditions",
		Body: "A table is reserved once your payment is verified. A partial payment " +
			"secures your slot; the balance is settled at the venue. Slots have fixed " +
			"capacity and are allocated in payment order: completing the checkout " +
			"window does not guarantee a table until verification succeeds. If a " +
			"payment completes but verification fails, contact us before retrying so a " +
			"duplicate charge can be ruled out. Reservations are valid only for the " +
			"slot stated on the confirmation. The venue may reschedule for reasons " +
			"beyond its control, in which case paid amounts are transferred to the new " +
			"date or refunded.",
	},
}
