package service

import (
	"context"
	"fmt"

	"github.com/Best-Company-A-S/masterticket/pkg/cryptox"
)

const (
	// InvitationCodeLength is the number of digits in a join code.
	InvitationCodeLength = 6

	// MaxCodeAttempts bounds the search for an unused code.
	MaxCodeAttempts = 10
)

// CodeGenerator produces candidate invitation codes.
type CodeGenerator func() (string, error)

// DefaultCodeGenerator draws six-digit codes from crypto/rand.
func DefaultCodeGenerator() (string, error) {
	return cryptox.GenerateNumericCode(InvitationCodeLength)
}

// CodeExistsFunc reports whether a code is already taken.
type CodeExistsFunc func(ctx context.Context, code string) (bool, error)

// GenerateUniqueCode draws up to maxAttempts candidates and returns the first
// one exists reports as free. A storage error stops the search immediately.
// Exhausting the budget returns ErrCodeExhausted.
func GenerateUniqueCode(ctx context.Context, gen CodeGenerator, exists CodeExistsFunc, maxAttempts int) (string, error) {
	if gen == nil {
		gen = DefaultCodeGenerator
	}
	if maxAttempts <= 0 {
		maxAttempts = MaxCodeAttempts
	}

	for range maxAttempts {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		code, err := gen()
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}

		taken, err := exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrCodeExhausted
}
