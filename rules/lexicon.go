package rules

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// abbreviations lists Russian tokens that are conventionally followed
// by a period without ending the sentence. Drawn from OpenCorpora and
// SynTagRus segmentation conventions; entries are stored without the
// trailing period.
var abbreviations = []string{
	// Geographic
	"г", "гг", "г-н", "г-жа",
	"ул", "пр", "пл", "пер", "просп", "наб",
	"д", "дом", "корп", "стр", "кв",
	"обл", "р-н", "п", "с", "дер", "пос",
	// Academic degrees and ranks
	"акад", "проф", "доц", "к", "канд", "докт",
	"м", "н", "мл", "ст",
	// Military and honorific
	"им", "ген", "полк", "подп", "лейт", "кап",
	// Time and money
	"в", "вв", "р", "руб", "коп",
	"ч", "час", "мин", "сек",
	// Common
	"т", "тт", "пп", "рис", "илл", "табл",
	"см", "ср", "напр", "в т.ч", "и т.д", "и т.п", "и др",
	"др", "проч", "прим", "примеч",
	// Units
	"кг", "мг", "ц", "л",
	"мм", "км", "га",
	"млн", "млрд", "тыс", "трлн",
	// Organizational
	"о-во", "о-ва", "о-ние", "о-ния",
	"зам", "пом", "зав", "нач",
	// Latin and languages
	"etc", "et al", "ibid", "op cit",
	"англ", "нем", "франц", "итал", "исп",
}

// titles lists honorifics and offices that commonly precede a name.
var titles = []string{
	"президент", "премьер", "министр", "губернатор", "мэр",
	"директор", "председатель", "генеральный", "академик",
	"профессор", "доктор", "господин", "госпожа", "товарищ",
}

// speechVerbs lists verbs that commonly introduce direct speech.
var speechVerbs = []string{
	"сказал", "сказала", "сказали",
	"говорил", "говорила",
	"ответил", "ответила",
	"спросил", "спросила",
	"заявил", "заявила",
	"отметил", "отметила",
	"подчеркнул", "подчеркнула",
	"добавил", "добавила",
	"пояснил", "пояснила",
	"уточнил", "уточнила",
}

// Lexicon holds the exception sets consulted by the blocking
// evaluator. It is immutable after construction and safe for
// concurrent use.
type Lexicon struct {
	abbr   map[string]struct{}
	title  map[string]struct{}
	speech map[string]struct{}
}

// NewLexicon builds the standard exception sets, extended with any
// additional abbreviations (stored without the trailing period).
func NewLexicon(extraAbbreviations ...string) *Lexicon {
	l := &Lexicon{
		abbr:   make(map[string]struct{}, len(abbreviations)+len(extraAbbreviations)),
		title:  make(map[string]struct{}, len(titles)),
		speech: make(map[string]struct{}, len(speechVerbs)),
	}
	for _, a := range abbreviations {
		l.abbr[normalizeEntry(a)] = struct{}{}
	}
	for _, a := range extraAbbreviations {
		if n := normalizeEntry(a); n != "" {
			l.abbr[n] = struct{}{}
		}
	}
	for _, t := range titles {
		l.title[normalizeEntry(t)] = struct{}{}
	}
	for _, v := range speechVerbs {
		l.speech[normalizeEntry(v)] = struct{}{}
	}
	return l
}

// normalizeEntry lower-cases with Russian casing rules and trims
// surrounding whitespace. Cyrillic has no locale-specific case
// exceptions, but segmented text may mix in Latin tokens ("etc",
// "et al"), so the same caser handles both.
func normalizeEntry(s string) string {
	return strings.TrimSpace(cases.Lower(language.Russian).String(s))
}

// IsAbbreviation reports whether s (any case, surrounding whitespace
// ignored) is a known non-terminal abbreviation.
func (l *Lexicon) IsAbbreviation(s string) bool {
	_, ok := l.abbr[normalizeEntry(s)]
	return ok
}

// IsTitle reports whether s is a known honorific or office.
func (l *Lexicon) IsTitle(s string) bool {
	_, ok := l.title[normalizeEntry(s)]
	return ok
}

// IsSpeechVerb reports whether s is a known speech-introducing verb.
func (l *Lexicon) IsSpeechVerb(s string) bool {
	_, ok := l.speech[normalizeEntry(s)]
	return ok
}

// Abbreviations returns the abbreviation set as an unordered slice.
func (l *Lexicon) Abbreviations() []string {
	out := make([]string, 0, len(l.abbr))
	for a := range l.abbr {
		out = append(out, a)
	}
	return out
}
