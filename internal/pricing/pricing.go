// Package pricing converts measured API usage into currency amounts using
// a fixed, process-wide rate table.
package pricing

// Usage kinds accepted by Cost.
const (
	KindAudio        = "audio"
	KindInputTokens  = "input_tokens"
	KindOutputTokens = "output_tokens"
)

// Per-unit rates in USD. Whisper is billed per minute of audio, GPT-4o per
// million tokens.
const (
	RateWhisperPerMinute    = 0.006
	RateGPT4oInputPer1M     = 2.50
	RateGPT4oOutputPer1M    = 10.00
	tokensPerRateUnit       = 1_000_000
	secondsPerBillingMinute = 60
)

// Cost maps a measured usage quantity to a currency amount. Audio quantity
// is in seconds, token kinds in token counts. Unknown kinds cost nothing.
func Cost(kind string, quantity float64) float64 {
	switch kind {
	case KindAudio:
		return quantity / secondsPerBillingMinute * RateWhisperPerMinute
	case KindInputTokens:
		return quantity / tokensPerRateUnit * RateGPT4oInputPer1M
	case KindOutputTokens:
		return quantity / tokensPerRateUnit * RateGPT4oOutputPer1M
	default:
		return 0.0
	}
}

// TokenCost returns the combined cost of one chat completion call.
func TokenCost(promptTokens, completionTokens int) float64 {
	return Cost(KindInputTokens, float64(promptTokens)) +
		Cost(KindOutputTokens, float64(completionTokens))
}
