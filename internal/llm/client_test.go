package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTemplateResponse(t *testing.T) {
	t.Run("drops numbered and bulleted noise lines", func(t *testing.T) {
		response := "Here is your outline:\nIntroduction\n- a stray bullet\nMarket Analysis\n1. numbered noise\nConclusion"
		items := ParseTemplateResponse(response)
		assert.Equal(t, []string{
			"Here is your outline:",
			"Introduction",
			"Market Analysis",
			"Conclusion",
		}, items)
	})

	t.Run("skips blank lines", func(t *testing.T) {
		response := "First\n\n\nSecond\n   \nThird"
		items := ParseTemplateResponse(response)
		assert.Equal(t, []string{"First", "Second", "Third"}, items)
	})

	t.Run("falls back to raw lines when every line carries a marker", func(t *testing.T) {
		response := "1. Introduction\n2. Body\n3. Conclusion"
		items := ParseTemplateResponse(response)
		assert.Equal(t, []string{"1. Introduction", "2. Body", "3. Conclusion"}, items)
	})

	t.Run("empty response yields nothing", func(t *testing.T) {
		assert.Empty(t, ParseTemplateResponse(""))
		assert.Empty(t, ParseTemplateResponse("   \n  "))
	})
}

// fieldEncoder treats every whitespace-separated word as one token, so
// truncation behavior can be asserted without loading a BPE encoding.
type fieldEncoder struct {
	words []string
}

func (e *fieldEncoder) Encode(text string, _, _ []string) []int {
	e.words = strings.Fields(text)
	tokens := make([]int, len(e.words))
	for i := range tokens {
		tokens[i] = i
	}
	return tokens
}

func (e *fieldEncoder) Decode(tokens []int) string {
	kept := make([]string, len(tokens))
	for i, tok := range tokens {
		kept[i] = e.words[tok]
	}
	return strings.Join(kept, " ")
}

func TestTruncateToTokens(t *testing.T) {
	t.Run("text within budget passes through", func(t *testing.T) {
		enc := &fieldEncoder{}
		text := "a short paragraph"
		assert.Equal(t, text, truncateWithEncoder(text, enc, 100))
	})

	t.Run("long text is clamped to the budget", func(t *testing.T) {
		enc := &fieldEncoder{}
		out := truncateWithEncoder("one two three four five six", enc, 3)
		assert.Equal(t, "one two three", out)
	})

	t.Run("zero or negative limit leaves text untouched", func(t *testing.T) {
		text := strings.Repeat("word ", 50)
		assert.Equal(t, text, TruncateToTokens(text, "gpt-4o-mini", 0))
		assert.Equal(t, text, TruncateToTokens(text, "gpt-4o-mini", -1))
	})
}
