package data

import "slowlove/models"

// Game question decks.
var howWellDoYouKnowMeQuestions = []models.GameQuestion{
	{ID: "1", Question: "What's my comfort food?", Category: "icebreaker"},
	{ID: "2", Question: "What habit of mine do you find cute?", Category: "icebreaker"},
	{ID: "3", Question: "What's my go-to song when I'm happy?", Category: "icebreaker"},
	{ID: "4", Question: "What's my biggest pet peeve?", Category: "icebreaker"},
	{ID: "5", Question: "What's my dream vacation destination?", Category: "icebreaker"},
	{ID: "6", Question: "What's the one thing I can't start my day without?", Category: "icebreaker"},
}

var slowQuestionsQuestions = []models.GameQuestion{
	{ID: "7", Question: "When did you first realize you loved me?", Category: "intimacy"},
	{ID: "8", Question: "What's a moment with me you'd relive forever?", Category: "intimacy"},
	{ID: "9", Question: "What's something you've never told me but always wanted to?", Category: "intimacy"},
	{ID: "10", Question: "How have I changed your life?", Category: "intimacy"},
	{ID: "11", Question: "What's your favorite thing about us?", Category: "intimacy"},
	{ID: "12", Question: "Where do you see us in 10 years?", Category: "intimacy"},
}

var sipAndGuessQuestions = []models.GameQuestion{
	{ID: "13", Question: "Guess the coffee origin by its aroma", Category: "sensory"},
	{ID: "14", Question: "Identify the secret ingredient in this dessert", Category: "sensory"},
	{ID: "15", Question: "Match the drink to your partner's mood", Category: "sensory"},
	{ID: "16", Question: "Describe this taste using only emotions", Category: "sensory"},
}

var loveIllustratedQuestions = []models.GameQuestion{
	{ID: "17", Question: "Draw your favorite memory together", Category: "creative"},
	{ID: "18", Question: "Illustrate where you first met", Category: "creative"},
	{ID: "19", Question: "Sketch your partner's best feature", Category: "creative"},
	{ID: "20", Question: "Draw your dream home together", Category: "creative"},
}

// Games indexes the four event games by id.
var Games = map[string]models.GameInfo{
	"how-well-do-you-know-me": {
		ID:        "how-well-do-you-know-me",
		Name:      "How Well Do You Know Me?",
		Tagline:   "Emotion-forward questions that reveal how deeply you know each other",
		Icon:      "cards",
		Questions: howWellDoYouKnowMeQuestions,
	},
	"slow-questions": {
		ID:        "slow-questions",
		Name:      "The Slow Questions",
		Tagline:   "Intimacy deck for the conversations that matter",
		Icon:      "cards",
		Questions: slowQuestionsQuestions,
	},
	"sip-and-guess": {
		ID:        "sip-and-guess",
		Name:      "Sip & Guess",
		Tagline:   "Blindfolded tasting that heightens your senses",
		Icon:      "cup",
		Questions: sipAndGuessQuestions,
	},
	"love-illustrated": {
		ID:        "love-illustrated",
		Name:      "Love, Illustrated",
		Tagline:   "Draw your memories, no artistic skills required",
		Icon:      "sketch",
		Questions: loveIllustratedQuestions,
	},
}

// TimelineHours is the three-hour event programme.
var TimelineHours = []models.TimelineHour{
	{
		ID:          1,
		Title:       "Breaking the Ice",
		Phase:       "Strangers → Friends",
		Description: "Arrive at your sanctuary. Let the ambiance melt your walls as you reconnect through playful games designed to spark joy.",
		Activities:  []string{"Welcome drinks & arrival", "Icebreaker games", "First course tasting"},
		Games:       []models.GameInfo{Games["how-well-do-you-know-me"], Games["slow-questions"]},
		Icon:        "ice",
	},
	{
		ID:          2,
		Title:       "The Deep Dive",
		Phase:       "Friends → Lovers",
		Description: "Engage your senses. Blindfolded tastings and creative play bring you closer as you explore each other in new ways.",
		Activities:  []string{"Sensory experiences", "Creative expression", "Curated pairings"},
		Games:       []models.GameInfo{Games["sip-and-guess"], Games["love-illustrated"]},
		Icon:        "heart",
	},
	{
		ID:          3,
		Title:       "The Seal",
		Phase:       "Lovers → Partners",
		Description: "Share the last bite. A ritual dessert, a whispered promise, and a Polaroid moment to take home forever.",
		Activities:  []string{"\"The Last Bite\" ritual", "Love Affair Corner", "Polaroid goodbye"},
		Games:       nil,
		Icon:        "flame",
	},
}
