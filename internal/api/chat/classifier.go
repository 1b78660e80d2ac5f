package chat

import (
	"regexp"
	"strings"

	"github.com/safarnameh/go-iran-travel-suggestions/internal/types"
)

// IntentClassifier maps free text onto the closed intent set plus the
// entities needed to build a structured recommendation request.
type IntentClassifier interface {
	Classify(text string, cities []types.City) types.ClassifiedIntent
}

var _ IntentClassifier = (*PatternIntentClassifier)(nil)

// PatternIntentClassifier is a bilingual (Persian/English) rule-based
// classifier. Patterns are checked in a fixed order and the first match
// wins, so the same text always classifies the same way.
type PatternIntentClassifier struct {
	intents []intentPatterns
}

type intentPatterns struct {
	intent   types.IntentType
	patterns []*regexp.Regexp
}

var persianRune = regexp.MustCompile(`[\x{0600}-\x{06FF}\x{FB50}-\x{FDFF}\x{FE70}-\x{FEFF}]`)

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

func NewPatternIntentClassifier() *PatternIntentClassifier {
	return &PatternIntentClassifier{
		intents: []intentPatterns{
			{types.IntentGreeting, compileAll(
				`^\s*(سلام|درود)`,
				`^\s*(hi|hello|hey)\b`,
			)},
			{types.IntentRouteRequest, compileAll(
				`مسیر.*(از|به|بین)`,
				`راه.*(از|به|بین)`,
				`سفر.*(از|به|بین)`,
				`برو.*(از|به|بین)`,
				`چطور.*(برم|برسیم)`,
				`\broute\b.*\b(from|to|between)\b`,
				`\bway\b.*\b(from|to|between)\b`,
				`\btravel\b.*\b(from|to|between)\b`,
				`\bgo\b.*\b(from|to|between)\b`,
				`\bhow\b.*\b(to get|do i get)\b`,
				`\bpath\b.*\b(from|to|between)\b`,
			)},
			{types.IntentPilgrimageRequest, compileAll(
				`زیارت`, `حرم`, `مقبره`, `آرامگاه`, `مذهبی`,
				`pilgrimage`, `shrine`, `tomb`, `religious`, `sacred site`,
			)},
			{types.IntentAttractionRequest, compileAll(
				`میراث.*فرهنگی`, `مکان.*تاریخی`, `بنا.*تاریخی`, `جاذبه`,
				`کاخ`, `مسجد`, `موزه`,
				`cultural heritage`, `historical site`, `attraction`,
				`palace`, `mosque`, `museum`, `ancient site`,
			)},
			{types.IntentSeasonalPlanning, compileAll(
				`بهار`, `تابستان`, `پاییز`, `زمستان`, `نوروز`, `فصل`,
				`spring`, `summer`, `fall`, `autumn`, `winter`, `season`, `nowruz`,
			)},
			{types.IntentBudgetRequest, compileAll(
				`بودجه`, `هزینه`, `قیمت`, `ارزان`, `گران`, `اقتصادی`,
				`budget`, `cost`, `price`, `cheap`, `expensive`, `economical`,
			)},
			{types.IntentFoodRequest, compileAll(
				`غذا`, `رستوران`, `کباب`, `چای`,
				`food`, `restaurant`, `kebab`, `cuisine`,
			)},
			{types.IntentAccommodationRequest, compileAll(
				`هتل`, `اقامت`, `مهمانپذیر`,
				`hotel`, `accommodation`, `stay overnight`, `guesthouse`,
			)},
		},
	}
}

// detectLanguage counts Persian-block runes against ASCII letters.
func detectLanguage(text string) string {
	persian := len(persianRune.FindAllString(text, -1))
	english := 0
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			english++
		}
	}
	if persian >= english && persian > 0 {
		return "fa"
	}
	return "en"
}

var seasonWords = []struct {
	word   string
	season types.Season
}{
	{"بهار", types.SeasonSpring}, {"نوروز", types.SeasonSpring},
	{"spring", types.SeasonSpring}, {"nowruz", types.SeasonSpring},
	{"تابستان", types.SeasonSummer}, {"summer", types.SeasonSummer},
	{"پاییز", types.SeasonFall}, {"fall", types.SeasonFall}, {"autumn", types.SeasonFall},
	{"زمستان", types.SeasonWinter}, {"winter", types.SeasonWinter},
}

var budgetWords = []struct {
	word string
	tier types.BudgetTier
}{
	{"ارزان", types.BudgetLow}, {"اقتصادی", types.BudgetLow},
	{"cheap", types.BudgetLow}, {"economical", types.BudgetLow},
	{"گران", types.BudgetLuxury}, {"لوکس", types.BudgetLuxury},
	{"expensive", types.BudgetLuxury}, {"luxury", types.BudgetLuxury},
}

// Classify detects the language, matches the intent and pulls out city,
// season and budget entities. Cities found in the text are kept in order
// of appearance; for a route request the first is the origin and the
// second the destination.
func (c *PatternIntentClassifier) Classify(text string, cities []types.City) types.ClassifiedIntent {
	lower := strings.ToLower(text)

	result := types.ClassifiedIntent{
		Intent: types.IntentUnknown,
		Entities: types.ExtractedEntities{
			Language: detectLanguage(text),
		},
	}

	for _, ip := range c.intents {
		for _, p := range ip.patterns {
			if p.MatchString(text) {
				result.Intent = ip.intent
				result.Confidence = 0.8
				break
			}
		}
		if result.Intent != types.IntentUnknown {
			break
		}
	}

	// City mentions, ordered by first occurrence in the text.
	type mention struct {
		pos  int
		name string
	}
	var mentions []mention
	for _, city := range cities {
		pos := strings.Index(text, city.NameFa)
		if en := strings.Index(lower, strings.ToLower(city.NameEn)); en >= 0 && (pos < 0 || en < pos) {
			pos = en
		}
		if pos >= 0 {
			mentions = append(mentions, mention{pos, city.NameEn})
		}
	}
	for i := 1; i < len(mentions); i++ {
		for j := i; j > 0 && mentions[j].pos < mentions[j-1].pos; j-- {
			mentions[j], mentions[j-1] = mentions[j-1], mentions[j]
		}
	}
	for _, m := range mentions {
		result.Entities.Cities = append(result.Entities.Cities, m.name)
	}
	if len(mentions) >= 2 {
		result.Entities.OriginCity = mentions[0].name
		result.Entities.DestinationCity = mentions[1].name
	} else if len(mentions) == 1 {
		result.Entities.DestinationCity = mentions[0].name
	}

	for _, sw := range seasonWords {
		if strings.Contains(lower, sw.word) {
			result.Entities.Season = sw.season
			break
		}
	}
	for _, bw := range budgetWords {
		if strings.Contains(lower, bw.word) {
			result.Entities.BudgetTier = string(bw.tier)
			break
		}
	}
	switch result.Intent {
	case types.IntentPilgrimageRequest:
		result.Entities.Categories = []string{string(types.CategoryReligious)}
	case types.IntentAttractionRequest:
		result.Entities.Categories = []string{
			string(types.CategoryHistorical), string(types.CategoryCultural),
		}
	}

	// Each recognized city sharpens confidence a little, capped at 1.0.
	if result.Intent != types.IntentUnknown {
		bonus := 0.1 * float64(len(mentions))
		if bonus > 0.2 {
			bonus = 0.2
		}
		result.Confidence += bonus
		if result.Confidence > 1.0 {
			result.Confidence = 1.0
		}
	}
	return result
}
