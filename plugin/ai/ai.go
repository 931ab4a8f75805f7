// Package ai defines the text generation capability behind agenda creation.
package ai

import (
	"context"

	"github.com/pkg/errors"
)

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// UnavailableGenerator is the Generator used when no backend is configured.
// Every call fails with a clear error instead of a nil dereference.
type UnavailableGenerator struct{}

func NewUnavailableGenerator() *UnavailableGenerator {
	return &UnavailableGenerator{}
}

func (*UnavailableGenerator) Generate(context.Context, string) (string, error) {
	return "", errors.New("no text-generation backend is configured")
}
