package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Best-Company-A-S/masterticket/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

// sequence yields codes in order and then fails the test if asked for more.
func sequence(t *testing.T, codes ...string) CodeGenerator {
	t.Helper()
	i := 0
	return func() (string, error) {
		if i >= len(codes) {
			t.Fatalf("generator called %d times, only %d codes queued", i+1, len(codes))
		}
		c := codes[i]
		i++
		return c, nil
	}
}

func takenSet(codes ...string) (CodeExistsFunc, *int) {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	calls := 0
	return func(_ context.Context, code string) (bool, error) {
		calls++
		return set[code], nil
	}, &calls
}

func TestGenerateUniqueCode_FirstFree(t *testing.T) {
	exists, calls := takenSet()
	code, err := GenerateUniqueCode(context.Background(), sequence(t, "111111"), exists, MaxCodeAttempts)
	require.NoError(t, err)
	require.Equal(t, "111111", code)
	require.Equal(t, 1, *calls)
}

func TestGenerateUniqueCode_SkipsTaken(t *testing.T) {
	exists, calls := takenSet("111111", "222222")
	code, err := GenerateUniqueCode(context.Background(), sequence(t, "111111", "222222", "333333"), exists, MaxCodeAttempts)
	require.NoError(t, err)
	require.Equal(t, "333333", code)
	require.Equal(t, 3, *calls)
}

func TestGenerateUniqueCode_Exhausted(t *testing.T) {
	codes := make([]string, MaxCodeAttempts)
	for i := range codes {
		codes[i] = fmt.Sprintf("%06d", 100000+i)
	}
	exists, calls := takenSet(codes...)

	_, err := GenerateUniqueCode(context.Background(), sequence(t, codes...), exists, MaxCodeAttempts)
	require.ErrorIs(t, err, ErrCodeExhausted)
	require.Equal(t, MaxCodeAttempts, *calls)
}

func TestGenerateUniqueCode_StorageErrorAborts(t *testing.T) {
	boom := errors.New("disk on fire")
	calls := 0
	exists := func(context.Context, string) (bool, error) {
		calls++
		return false, boom
	}

	_, err := GenerateUniqueCode(context.Background(), sequence(t, "111111"), exists, MaxCodeAttempts)
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, ErrCodeExhausted)
	require.Equal(t, 1, calls)
}

func TestGenerateUniqueCode_GeneratorError(t *testing.T) {
	boom := errors.New("no entropy")
	exists, calls := takenSet()
	_, err := GenerateUniqueCode(context.Background(), func() (string, error) { return "", boom }, exists, MaxCodeAttempts)
	require.ErrorIs(t, err, boom)
	require.Zero(t, *calls)
}

func TestGenerateUniqueCode_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exists, _ := takenSet()
	_, err := GenerateUniqueCode(ctx, DefaultCodeGenerator, exists, MaxCodeAttempts)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateUniqueCode_DefaultGenerator(t *testing.T) {
	exists, _ := takenSet()
	code, err := GenerateUniqueCode(context.Background(), nil, exists, 0)
	require.NoError(t, err)
	require.True(t, cryptox.IsNumericCode(code, InvitationCodeLength))
	require.NotEqual(t, byte('0'), code[0])
}
