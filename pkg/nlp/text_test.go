package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Python, SQL & Excel!", []string{"python", "sql", "excel"}},
		{"C++/C# dev", []string{"c", "c", "dev"}},
		{"  go\tgo\nGO ", []string{"go", "go", "go"}},
		{"Node.js", []string{"node", "js"}},
		{"", []string{}},
		{"!!!", []string{}},
	}
	for _, tc := range cases {
		got := Tokenize(tc.in)
		if len(tc.want) == 0 {
			assert.Empty(t, got, tc.in)
			continue
		}
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestNormalize_KeepsUnicodeLetters(t *testing.T) {
	assert.Equal(t, "résumé  разработчик", Normalize("Résumé, Разработчик"))
}
