package sortedstorage

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankingMember(t *testing.T) {
	score := domain.Score{ID: "a1", Name: "ada", Time: 12.5, Dimension: 5, Timestamp: "2026-05-04T10:00:00Z"}

	t.Run("Keeps the ID", func(t *testing.T) {
		raw, err := encodeMember(score)
		require.NoError(t, err)

		decoded, err := decodeMember(raw)
		require.NoError(t, err)
		assert.Equal(t, score, decoded)
	})

	t.Run("Equal scores with different IDs stay distinct", func(t *testing.T) {
		twin := score
		twin.ID = "a2"

		first, err := encodeMember(score)
		require.NoError(t, err)
		second, err := encodeMember(twin)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("Garbage is rejected", func(t *testing.T) {
		_, err := decodeMember("not json")
		assert.Error(t, err)
	})

	t.Run("Keys are per dimension", func(t *testing.T) {
		assert.Equal(t, "leaderboard:dimension:5", rankingKey(5))
		assert.NotEqual(t, rankingKey(5), rankingKey(7))
	})
}
