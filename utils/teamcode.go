package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// TeamCodeAlphabet is the fixed alphabet team codes are drawn from
const TeamCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TeamCodeLength is the fixed code length
const TeamCodeLength = 6

// maxCodeAttempts bounds the collision retry loop. At 36^6 possible codes a
// handful of collisions in a row already means something is wrong upstream.
const maxCodeAttempts = 16

// ErrCodeSpaceExhausted is returned when code generation keeps colliding with
// existing registrations.
var ErrCodeSpaceExhausted = errors.New("could not generate a unique team code")

// RandomTeamCode returns one random 6-character code from the fixed alphabet
func RandomTeamCode() (string, error) {
	code := make([]byte, TeamCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(TeamCodeAlphabet))))
		if err != nil {
			return "", err
		}
		code[i] = TeamCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// GenerateTeamCode draws codes until one not present in the store is found,
// checking via exists. It fails closed with ErrCodeSpaceExhausted after the
// attempt bound instead of looping forever.
func GenerateTeamCode(exists func(code string) (bool, error)) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := RandomTeamCode()
		if err != nil {
			return "", err
		}

		taken, err := exists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}
