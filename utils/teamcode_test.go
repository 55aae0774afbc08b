package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomTeamCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := RandomTeamCode()
		require.NoError(t, err)
		require.Len(t, code, TeamCodeLength)
		for _, ch := range code {
			require.True(t, strings.ContainsRune(TeamCodeAlphabet, ch),
				"unexpected character %q in code %q", ch, code)
		}
		seen[code] = true
	}
	// 100 draws from a 36^6 space colliding down to a handful would mean the
	// generator is broken
	require.Greater(t, len(seen), 90)
}

func TestGenerateTeamCode(t *testing.T) {
	t.Run("returns first free code", func(t *testing.T) {
		calls := 0
		code, err := GenerateTeamCode(func(string) (bool, error) {
			calls++
			return false, nil
		})
		require.NoError(t, err)
		require.Len(t, code, TeamCodeLength)
		require.Equal(t, 1, calls)
	})

	t.Run("skips taken codes", func(t *testing.T) {
		calls := 0
		code, err := GenerateTeamCode(func(string) (bool, error) {
			calls++
			return calls < 3, nil
		})
		require.NoError(t, err)
		require.NotEmpty(t, code)
		require.Equal(t, 3, calls)
	})

	t.Run("fails closed when every code collides", func(t *testing.T) {
		calls := 0
		_, err := GenerateTeamCode(func(string) (bool, error) {
			calls++
			return true, nil
		})
		require.ErrorIs(t, err, ErrCodeSpaceExhausted)
		require.Equal(t, maxCodeAttempts, calls)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		storeErr := errors.New("connection lost")
		_, err := GenerateTeamCode(func(string) (bool, error) {
			return false, storeErr
		})
		require.ErrorIs(t, err, storeErr)
	})
}
