package dictionary_cache

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// capitalizeCityName приводит название к виду "Первая заглавная, остальные строчные".
func capitalizeCityName(name string) string {
	if name == "" {
		return ""
	}

	lowered := strings.ToLower(name)

	runes := []rune(lowered)
	caser := cases.Upper(language.Polish) // Используем правила для польского

	// Преобразуем только первую руну
	firstRuneUpper := []rune(caser.String(string(runes[0])))
	runes[0] = firstRuneUpper[0]

	return string(runes)
}
