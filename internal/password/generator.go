package password

import (
	"errors"
	"fmt"
)

const (
	MinLength = 1
	MaxLength = 128
)

var (
	ErrInvalidSelection   = errors.New("at least one character class must be selected")
	ErrLengthOutOfRange   = fmt.Errorf("password length must be between %d and %d", MinLength, MaxLength)
	ErrLengthInsufficient = errors.New("password length must be at least equal to the number of selected character classes")
)

// Generate builds a password of exactly length characters drawing from the
// selected classes. Every selected class contributes at least one character,
// so length must be at least sel.Len(). A nil src uses SecureSource.
func Generate(length int, sel Selection, src Source) (string, error) {
	if sel.IsEmpty() {
		return "", ErrInvalidSelection
	}
	if length < MinLength || length > MaxLength {
		return "", ErrLengthOutOfRange
	}
	required := sel.Classes()
	if length < len(required) {
		return "", ErrLengthInsufficient
	}
	if src == nil {
		src = SecureSource()
	}

	var pool string
	for _, c := range required {
		pool += c.Alphabet()
	}

	result := make([]byte, length)

	// Guarantee at least one character from each selected class.
	for i, c := range required {
		ch, err := randChar(src, c.Alphabet())
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	for i := len(required); i < length; i++ {
		ch, err := randChar(src, pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := shuffle(src, result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randChar picks a uniformly random character from charset.
func randChar(src Source, charset string) (byte, error) {
	i, err := src.IntN(len(charset))
	if err != nil {
		return 0, fmt.Errorf("drawing character: %w", err)
	}
	return charset[i], nil
}

// shuffle performs a Fisher-Yates shuffle in place.
func shuffle(src Source, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.IntN(i + 1)
		if err != nil {
			return fmt.Errorf("shuffling: %w", err)
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
