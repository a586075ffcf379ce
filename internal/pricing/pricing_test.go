package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"myteai/internal/pricing"
)

func TestCost_AudioPerMinute(t *testing.T) {
	assert.InDelta(t, pricing.RateWhisperPerMinute, pricing.Cost(pricing.KindAudio, 60), 1e-12)
	assert.InDelta(t, pricing.RateWhisperPerMinute/2, pricing.Cost(pricing.KindAudio, 30), 1e-12)
	assert.Zero(t, pricing.Cost(pricing.KindAudio, 0))
}

func TestCost_TokensPerMillion(t *testing.T) {
	assert.InDelta(t, pricing.RateGPT4oInputPer1M, pricing.Cost(pricing.KindInputTokens, 1_000_000), 1e-12)
	assert.InDelta(t, pricing.RateGPT4oOutputPer1M, pricing.Cost(pricing.KindOutputTokens, 1_000_000), 1e-12)
	assert.InDelta(t, pricing.RateGPT4oInputPer1M/1000, pricing.Cost(pricing.KindInputTokens, 1000), 1e-12)
}

func TestCost_UnknownKindIsFree(t *testing.T) {
	for _, q := range []float64{0, 1, 1e6, -5} {
		assert.Zero(t, pricing.Cost("unknown", q))
		assert.Zero(t, pricing.Cost("", q))
	}
}

func TestTokenCost_Combines(t *testing.T) {
	got := pricing.TokenCost(1_000_000, 1_000_000)
	assert.InDelta(t, pricing.RateGPT4oInputPer1M+pricing.RateGPT4oOutputPer1M, got, 1e-12)
}
