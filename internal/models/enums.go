package models

// Color is the stored color preference. Values are persisted as SMALLINT.
type Color int16

// Supported colors
const (
	ColorYellow Color = 1
	ColorGreen  Color = 2
	ColorPink   Color = 3
)

var colorNames = map[Color]string{
	ColorYellow: "yellow",
	ColorGreen:  "green",
	ColorPink:   "pink",
}

// ParseColor maps a color name to its stored value.
func ParseColor(name string) (Color, bool) {
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// String returns the color name; unknown values read as yellow.
func (c Color) String() string {
	if n, ok := colorNames[c]; ok {
		return n
	}
	return colorNames[ColorYellow]
}

// Language is the stored UI language. Values are persisted as SMALLINT.
type Language int16

// Supported languages
const (
	LanguageEN Language = 1
	LanguageRU Language = 2
	LanguageDE Language = 3
	LanguageZH Language = 4
	LanguageES Language = 5
	LanguageFR Language = 6
	LanguageKO Language = 7
	LanguageJA Language = 8
)

var languageNames = map[Language]string{
	LanguageEN: "en",
	LanguageRU: "ru",
	LanguageDE: "de",
	LanguageZH: "zh",
	LanguageES: "es",
	LanguageFR: "fr",
	LanguageKO: "ko",
	LanguageJA: "ja",
}

// ParseLanguage maps a language code to its stored value.
func ParseLanguage(code string) (Language, bool) {
	for l, n := range languageNames {
		if n == code {
			return l, true
		}
	}
	return 0, false
}

// String returns the language code; unknown values read as en.
func (l Language) String() string {
	if n, ok := languageNames[l]; ok {
		return n
	}
	return languageNames[LanguageEN]
}

// StudyMode selects which cards a study session draws from.
type StudyMode string

// Study modes
const (
	StudyModeUnlearned StudyMode = "unlearned"
	StudyModeLearned   StudyMode = "learned"
	StudyModeAll       StudyMode = "all"
)
