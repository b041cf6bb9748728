package geohash

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidCharacter is matched by every AlphabetError.
var ErrInvalidCharacter = errors.New("geohash: invalid character")

// AlphabetError reports a hash character outside the base-32 alphabet.
type AlphabetError struct {
	Hash  string
	Index int
	Char  rune
}

func newAlphabetError(hash string, index int) *AlphabetError {
	r, _ := utf8.DecodeRuneInString(hash[index:])
	return &AlphabetError{Hash: hash, Index: index, Char: r}
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("geohash: invalid character %q at index %d in %q", e.Char, e.Index, e.Hash)
}

func (e *AlphabetError) Is(target error) bool {
	return target == ErrInvalidCharacter
}
