package rkmatch

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rkmatch/internal/bloom"
	"github.com/hupe1980/rkmatch/internal/modular"
	"github.com/hupe1980/rkmatch/internal/rollinghash"
)

var (
	// ErrInvalidChunkSize is returned when the chunk size is not positive.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")

	// ErrInvalidAlgorithm is returned for an unknown algorithm selector.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")

	// ErrInvalidModulus is returned when the hash modulus is unusable.
	ErrInvalidModulus = errors.New("invalid modulus")

	// ErrInvalidBloomBits is returned when the Bloom filter cannot be sized.
	ErrInvalidBloomBits = errors.New("invalid bloom filter size")
)

// ErrChunkTooLarge indicates the chunk size exceeds a document's length.
type ErrChunkTooLarge struct {
	ChunkSize int
	Length    int
	Document  string
}

func (e *ErrChunkTooLarge) Error() string {
	return fmt.Sprintf("chunk size %d exceeds %s length %d", e.ChunkSize, e.Document, e.Length)
}

// Is makes every ErrChunkTooLarge match ErrInvalidChunkSize.
func (e *ErrChunkTooLarge) Is(target error) bool {
	return target == ErrInvalidChunkSize
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, rollinghash.ErrInvalidWindow):
		return fmt.Errorf("%w: %w", ErrInvalidChunkSize, err)
	case errors.Is(err, modular.ErrModulusTooSmall), errors.Is(err, modular.ErrModulusTooLarge):
		return fmt.Errorf("%w: %w", ErrInvalidModulus, err)
	case errors.Is(err, bloom.ErrTooFewBits):
		return fmt.Errorf("%w: %w", ErrInvalidBloomBits, err)
	}

	return err
}
