package llm

import (
	"github.com/pkoukk/tiktoken-go"
)

// refineContextTokenBudget bounds how much existing content is fed back
// into a refinement prompt.
const refineContextTokenBudget = 3000

// tokenEncoder is the subset of tiktoken.Tiktoken the truncation needs.
type tokenEncoder interface {
	Encode(text string, allowedSpecial, disallowedSpecial []string) []int
	Decode(tokens []int) string
}

var _ tokenEncoder = (*tiktoken.Tiktoken)(nil)

// TruncateToTokens trims text to at most limit tokens using the encoding
// of the given model, falling back to cl100k_base for unknown models.
// Text within the budget, or text for which no encoder could be loaded,
// is returned unchanged.
func TruncateToTokens(text, model string, limit int) string {
	if limit <= 0 || text == "" {
		return text
	}

	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return text
		}
	}
	return truncateWithEncoder(text, enc, limit)
}

func truncateWithEncoder(text string, enc tokenEncoder, limit int) string {
	tokens := enc.Encode(text, nil, nil)
	if len(tokens) <= limit {
		return text
	}
	return enc.Decode(tokens[:limit])
}
