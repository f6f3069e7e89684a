package assets

import (
	"bytes"
	_ "embed"
	"io"
)

// words.txt holds one word per line wrapped as ['word'], the format of the
// word lists the game has always read.
//
//go:embed words.txt
var wordsList []byte

// Words returns a reader over the embedded default word list.
func Words() io.Reader {
	return bytes.NewReader(wordsList)
}
