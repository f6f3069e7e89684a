// internal/words/words.go
//
// Provides the secret word source for the game engine.
//
// Responsibilities:
//   - Read a line-oriented word list once, fully, into memory.
//   - Normalize each line: trim whitespace, drop the fixed 2/2 wrapping,
//     uppercase.
//   - Pick one word uniformly at random from an injected generator.
//
// Word list format:
//   One word per line, wrapped in two leading and two trailing characters,
//   e.g. ['crane']. The wrapping is a property of the existing list files,
//   not a general quote-removal rule: exactly two characters are dropped from
//   each end whatever they are.
//
// Randomness:
//   The generator is passed in (math/rand/v2), so a fixed seed yields a fixed
//   sequence of picks. A nil generator is seeded from the clock.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/robalobadob/wordle/apps/go-wordle/assets"
)

// ErrEmptySource is returned when the word list has no usable line.
var ErrEmptySource = errors.New("words: empty source")

// wrapWidth is how many characters wrap each word on both sides.
const wrapWidth = 2

// maxLine bounds a single scanned line.
const maxLine = 1 << 20

// Source is an in-memory word list with its own random generator.
type Source struct {
	words []string
	rng   *rand.Rand
}

// NewSource reads every line of r and keeps the usable ones.
// An empty list is not an error here; Pick reports it.
func NewSource(r io.Reader, rng *rand.Rand) (*Source, error) {
	if rng == nil {
		rng = NewRand(0)
	}
	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		if w := Unwrap(sc.Text()); w != "" {
			out = append(out, strings.ToUpper(w))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read list: %w", err)
	}
	return &Source{words: out, rng: rng}, nil
}

// Open loads a word list file.
func Open(path string, rng *rand.Rand) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	return NewSource(f, rng)
}

// Default loads the embedded word list.
func Default(rng *rand.Rand) (*Source, error) {
	return NewSource(assets.Words(), rng)
}

// NewRand returns a PCG generator for seed; seed 0 means seed from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>32|1))
}

// Unwrap trims surrounding whitespace, then drops wrapWidth characters from
// each end. Lines too short to hold a word yield "".
func Unwrap(line string) string {
	s := strings.TrimSpace(line)
	if len(s) <= 2*wrapWidth {
		return ""
	}
	return s[wrapWidth : len(s)-wrapWidth]
}

// Pick returns a uniformly random word.
func (s *Source) Pick() (string, error) {
	if len(s.words) == 0 {
		return "", ErrEmptySource
	}
	return s.words[s.rng.IntN(len(s.words))], nil
}

// At returns the word at i modulo Len, for deterministic selection.
func (s *Source) At(i int) (string, error) {
	n := len(s.words)
	if n == 0 {
		return "", ErrEmptySource
	}
	i %= n
	if i < 0 {
		i += n
	}
	return s.words[i], nil
}

// Len returns the number of usable words.
func (s *Source) Len() int { return len(s.words) }
