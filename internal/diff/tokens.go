package diff

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const approxCharsPerToken = 4

var (
	tokenEncoderOnce sync.Once
	tokenEncoder     *tiktoken.Tiktoken

	estimateTokensFunc = defaultEstimateTokens
)

// EstimateTokens returns the cl100k token count of text, or a character based
// estimate when the encoder is unavailable. Empty text is zero tokens.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return estimateTokensFunc(text)
}

// ApproxTokens estimates tokens from the character count alone.
func ApproxTokens(text string) int {
	if text == "" {
		return 0
	}
	return max(1, len(text)/approxCharsPerToken)
}

func defaultEstimateTokens(text string) int {
	enc := getTokenEncoder()
	if enc != nil {
		tokens := enc.Encode(text, nil, nil)
		if len(tokens) > 0 {
			return len(tokens)
		}
	}
	return ApproxTokens(text)
}

func getTokenEncoder() *tiktoken.Tiktoken {
	tokenEncoderOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return
		}
		tokenEncoder = enc
	})
	return tokenEncoder
}
