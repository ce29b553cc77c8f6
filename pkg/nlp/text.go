package nlp

import (
	"regexp"
	"strings"
)

var reNonWord = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

// Normalize приводит текст к виду для сравнения:
// - каждый символ, не являющийся буквой, цифрой или пробелом, заменяется на пробел
// - нижний регистр
func Normalize(s string) string {
	return strings.ToLower(reNonWord.ReplaceAllString(s, " "))
}

// Tokenize нормализует текст и режет его по пробельным символам.
// Порядок и повторы токенов сохраняются.
func Tokenize(s string) []string {
	return strings.Fields(Normalize(s))
}
