package classify

// Lists holds the phrase data driving every heuristic classifier. The
// shipped defaults grew out of production transcripts; deployments can swap
// any of them without touching classifier logic.
type Lists struct {
	GreetingsHe []string
	GreetingsEn []string

	SmallTalk []string

	// Confirmation words are matched as the whole utterance, not substrings.
	ConfirmationWords []string

	BuyingIntent           []string
	BuyingIntentExclusions []string

	PositiveEngagement []string

	// Disengagement phrases exit lead-collection mode.
	Disengagement []string

	LeadStatusKeywords []string

	// BusinessVerticals maps a vertical name to its indicator phrases.
	BusinessVerticals map[string][]string
}

// DefaultLists returns the production phrase data.
func DefaultLists() Lists {
	return Lists{
		GreetingsHe: []string{
			"שלום", "היי", "הי", "אהלן", "בוקר טוב", "ערב טוב", "שלום לך",
		},
		GreetingsEn: []string{
			"hello", "hi", "hey", "good morning", "good evening", "good afternoon",
		},
		SmallTalk: []string{
			"תודה", "thanks", "thank you", "יפה", "נחמד", "אוקיי", "okay", "ok",
			"בסדר", "fine", "great", "נהדר",
		},
		ConfirmationWords: []string{
			"כן", "yes", "אוקיי", "okay", "ok", "טוב", "בסדר", "sure", "נכון", "בטח",
		},
		BuyingIntent: []string{
			// Hebrew, direct commitment phrases only
			"אני רוצה לקנות", "רוצה לקנות", "רוצה לרכוש", "אני רוצה לרכוש",
			"אני רוצה להזמין", "רוצה להזמין", "רוצה את השירות", "רוצה בוט",
			"אני רוצה להתחיל", "רוצה להתחיל", "איך אפשר להתחיל", "איך מתחילים",
			"אני רוצה לעשות בוט", "רוצה לעשות בוט", "מעוניינת לקנות",
			// English, direct commitment phrases only
			"i want to buy", "want to buy", "want to purchase", "i want to purchase",
			"i want to order", "want to order", "want your service", "want a bot",
			"i want to get started", "how do i get started", "how to get started",
			"i want to create a bot", "want to create a bot", "want a chatbot",
		},
		BuyingIntentExclusions: []string{
			"רק רוצה מידע", "רק רוצה לדעת", "רק רוצה להבין", "רוצה לשמוע",
			"מעוניין לשמוע", "כמה זה עולה", "מה המחיר", "מה העלות",
			"just want info", "just want to know", "just want to understand",
			"want to hear", "interested to hear", "how much does it cost",
			"what's the price", "pricing",
		},
		PositiveEngagement: []string{
			"זה נשמע טוב", "זה מעניין", "אני מעוניין", "זה בדיוק מה שאני צריך",
			"זה יכול לעזור", "זה נראה טוב", "אני אוהב את זה", "זה נהדר", "זה מושלם",
			"בואו ננסה", "אני רוצה לנסות",
			"sounds good", "interesting", "i'm interested",
			"this is exactly what i need", "this could help", "this looks good",
			"i like this", "this is great", "this is perfect", "why not",
			"let's try", "i want to try",
		},
		Disengagement: []string{
			"עזוב", "לא עכשיו", "שכח מזה", "לא רוצה", "תודה לא", "די", "סגור",
			"not now", "forget it", "no thanks", "never mind", "maybe later",
		},
		LeadStatusKeywords: []string{
			"lead", "contact", "details", "when", "call", "email", "phone",
			"פרטים", "מתי", "אימייל", "טלפון", "חזרה",
		},
		BusinessVerticals: map[string][]string{
			"recruitment": {
				"מגייס עובדים", "גיוס עובדים", "מחפש עובדים", "רוצה לגייס",
				"לסנן מועמדים", "סינון",
				"recruiting", "hiring", "human resources", "filter candidates",
				"screen applicants",
			},
			"restaurant": {
				"מסעדה", "בר", "קפה", "תפריט", "הזמנות", "שולחנות",
				"restaurant", "cafe", "menu", "reservations", "tables",
			},
			"retail": {
				"חנות", "קמעונאות", "מוצרים", "מלאי", "מבצעים",
				"store", "retail", "shop", "products", "inventory",
			},
			"real_estate": {
				"נדל\"ן", "דירות", "בתים", "השכרה", "נכסים",
				"real estate", "apartments", "rental", "property", "listings",
			},
			"medical": {
				"קליניקה", "רופא", "מרפאה", "תורים", "מטופלים",
				"clinic", "doctor", "medical", "appointments", "patients",
			},
		},
	}
}
