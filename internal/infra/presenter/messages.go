package presenter

import "exam_results_bot/internal/domain/result"

// Messages is one localized set of user-facing texts. Fields holding a verb take
// fmt arguments as noted.
type Messages struct {
	Header         string
	StudentName    string // %s name
	ScoresTitle    string
	Outcome        map[result.OutcomeKind]string
	MissingSubject string
	Total          string // %s total, %d subjects counted
	Average        string // %s average
	Tier           map[result.Tier]string
	NoResults      string
	NotFound       string
	MoreInfo       string

	ChooseStream    string
	StreamSelected  string // %s stream label
	NeedStream      string
	EnterPhone      string
	InvalidPhone    string
	Processing      string
	Help            string
	UnexpectedError string
}

var outcomeLabels = map[result.OutcomeKind]string{
	result.OutcomeNotTaken:          "Exam not taken",
	result.OutcomeSourceUnavailable: "Data unavailable",
	result.OutcomeSchemaInvalid:     "Incomplete data",
	result.OutcomeScoreInvalid:      "Invalid score format",
}

// Amharic is the default chat locale.
func Amharic() Messages {
	return Messages{
		Header:         "━━━━━━📚 ውጤት 📚━━━━━━",
		StudentName:    "📋 የተማሪ ስም: %s",
		ScoresTitle:    "📚 የፈተና ውጤት (ከ100):",
		Outcome:        outcomeLabels,
		MissingSubject: "ውጤት አልተገኘም",
		Total:          "🏆 አጠቃላይ ውጤት: %s  (ከ %d ትምህርቶች)",
		Average:        "📊 አማካይ ውጤት : %s",
		Tier: map[result.Tier]string{
			result.TierExcellent: "🎉 አስደናቂ ውጤት! በዚህ ውጤት በመጀመሪያ ምርጫዎ ወደሆነው ዩኒቨርሲቲ መግባት ይችላሉ!",
			result.TierVeryGood:  "👍 በጣም ጥሩ ውጤት! በዚህ ውጤት በመጀመሪያ ወይም በሁለተኛ ምርጫ ዩኒቨርሲቲ መግባት ይችላሉ!",
			result.TierGood:      "👍 ጥሩ ውጤት! በዚህ ውጤት አስከ አምስተኛ ምርጫ ድረስ ባሉት ዩኒቨርሲቲዎች ውስጥ መግባት ይችላሉ!",
			result.TierAverage:   "💪 መካከለኛ ውጤት! የማለፍ እድሎ 50/50 ነው",
			result.TierLow:       "🔍 ዝቅ ያለ ውጤት ነው። ተጨማሪ ልምምድ ያስፈልጋል። በርታ/በርቺ ፥ ትችላለህ",
		},
		NoResults: "ℹ️ የዚህ ተማሪ ውጤቶች አልተገኙም።",
		NotFound: "❌ ከዚህ ስልክ ቁጥር ጋር የተያያዘ ውጤት አልተገኘም።\n\n" +
			"ምክንያቶች ሊሆኑ ሚችሉ ነገሮች:\n" +
			"- ቁጥሩ አልተመዘገበም\n" +
			"- በቁጥሩ ኣጻጻፍ ውስጥ ስህተት አለ\n" +
			"- ውጤቶቹ ገና አልታወቁም",
		MoreInfo: "ተጨማሪ መረጃ:",

		ChooseStream:    "📚 FutureX የሞዴል ፈተና ውጤት\n\nእባክዎ stream ይምረጡ",
		StreamSelected:  "✅ የተመረጠው Stream: %s\n\nአሁን ውጤትዎን ለማየት ስልክ ቁጥርዎን ያስገቡ።",
		NeedStream:      "ℹ️ እባክዎ በመጀመሪያ /start በመጠቀም stream ይምረጡ።",
		EnterPhone:      "📚 ውጤትዎን ለማየት ስልክ ቁጥርዎን ያስገቡ።",
		InvalidPhone:    "❌ እባክዎ ትክክለኛ የሆነ ስልክ ቁጥር ያስገቡ (ቢያንስ 7 አሃዞች።)",
		Processing:      "⏳ እባክዎን ይጠብቁ... ውጤቶን እየተረጋገጥን ነው።",
		Help:            "/start - stream ይምረጡ\nከዚያ ስልክ ቁጥርዎን ያስገቡ።",
		UnexpectedError: "⚠️ ያልተጠበቀ ስህተት ተከስቷል። እባክዎ አንድ ጊዜ ተመልሰው ይሞክሩ።",
	}
}

// English is used by the CLI and available to the bot via LOCALE=en.
func English() Messages {
	return Messages{
		Header:         "━━━━━━📚 Results 📚━━━━━━",
		StudentName:    "📋 Student name: %s",
		ScoresTitle:    "📚 Exam results (out of 100):",
		Outcome:        outcomeLabels,
		MissingSubject: "No result found",
		Total:          "🏆 Total: %s  (from %d subjects)",
		Average:        "📊 Average: %s",
		Tier: map[result.Tier]string{
			result.TierExcellent: "🎉 Outstanding result! You can enter the university of your first choice.",
			result.TierVeryGood:  "👍 Very good result! You can enter your first or second choice university.",
			result.TierGood:      "👍 Good result! You can enter universities up to your fifth choice.",
			result.TierAverage:   "💪 Average result. Your chance of passing is 50/50.",
			result.TierLow:       "🔍 Low result. More practice is needed. You can do it!",
		},
		NoResults: "ℹ️ No results were found for this student.",
		NotFound: "❌ No results are associated with this phone number.\n\n" +
			"Possible reasons:\n" +
			"- The number is not registered\n" +
			"- The number was mistyped\n" +
			"- Results are not published yet",
		MoreInfo: "More information:",

		ChooseStream:    "📚 Model exam results\n\nPlease choose a stream",
		StreamSelected:  "✅ Selected stream: %s\n\nNow send your phone number to see your results.",
		NeedStream:      "ℹ️ Please choose a stream first with /start.",
		EnterPhone:      "📚 Send your phone number to see your results.",
		InvalidPhone:    "❌ Please send a valid phone number (at least 7 digits).",
		Processing:      "⏳ Please wait... we are checking your results.",
		Help:            "/start - choose a stream\nThen send your phone number.",
		UnexpectedError: "⚠️ An unexpected error occurred. Please try again.",
	}
}

// ForLocale returns the message set for "am" or "en", defaulting to Amharic.
func ForLocale(locale string) Messages {
	if locale == "en" {
		return English()
	}
	return Amharic()
}
