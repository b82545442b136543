package pet

import "regexp"

// Price intent needs both halves: the coin must be named and the question
// must be about money or momentum. "what is dogecoin" alone is not a price
// question.
var (
	coinPattern      = regexp.MustCompile(`(?i)doge\s*coin|dogecoin`)
	marketVocabulary = regexp.MustCompile(`(?i)\b(price|worth|value|market|doing|performance|up|down|trend)\b`)
)

// PriceIntent reports whether the user is asking about the coin's market
// performance.
func PriceIntent(text string) bool {
	return coinPattern.MatchString(text) && marketVocabulary.MatchString(text)
}
