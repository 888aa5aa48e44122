package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSentimentLabel_KnownLabels(t *testing.T) {
	for _, label := range []SentimentLabel{SentimentPositive, SentimentNeutral, SentimentNegative} {
		parsed, err := ParseSentimentLabel(label.String())
		require.NoError(t, err)
		assert.Equal(t, label, parsed)
	}
}

func TestParseSentimentLabel_Unknown(t *testing.T) {
	_, err := ParseSentimentLabel("ambivalent")
	assert.Error(t, err)
}
