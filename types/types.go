// Package types contains shared data structures for termblox.
package types

import "fmt"

// Letter bounds for initials. The lower bound is a blank, below the 'A' default.
const (
	MinLetter     byte = ' '
	MaxLetter     byte = 'Z'
	DefaultLetter byte = 'A'
)

// InitialsLen is the number of letters a player enters.
const InitialsLen = 3

// Initials holds the raw code points a player picked.
type Initials [InitialsLen]byte

// DefaultInitials returns "AAA".
func DefaultInitials() Initials {
	return Initials{DefaultLetter, DefaultLetter, DefaultLetter}
}

// String returns the initials as a three character string, blanks included.
func (in Initials) String() string {
	return string(in[:])
}

// ParseInitials converts a string into Initials. Short names are padded with
// blanks, and characters outside [' ', 'Z'] are rejected.
func ParseInitials(s string) (Initials, error) {
	in := Initials{' ', ' ', ' '}
	if len(s) > InitialsLen {
		return in, fmt.Errorf("initials %q longer than %d characters", s, InitialsLen)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < MinLetter || s[i] > MaxLetter {
			return in, fmt.Errorf("initials %q: character %q out of range", s, s[i])
		}
		in[i] = s[i]
	}
	return in, nil
}

// ScoreEntry is one row of the high-score table.
type ScoreEntry struct {
	Score uint32 `json:"score"`
	Name  string `json:"name"`
	Date  string `json:"date,omitempty"`
}
