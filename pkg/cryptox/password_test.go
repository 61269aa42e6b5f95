package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	SetPepperPath("")
	os.Exit(m.Run())
}

func TestHashPassword_Format(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6)
	require.Equal(t, "argon2id", parts[1])
	require.Equal(t, "v=19", parts[2])
	require.Equal(t, "m=19456,t=2,p=1", parts[3])
	require.NotEmpty(t, parts[4])
	require.NotEmpty(t, parts[5])
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.NoError(t, VerifyPassword("same", a))
	require.NoError(t, VerifyPassword("same", b))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Tr0ub4dor&3")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"match", "Tr0ub4dor&3", nil},
		{"case", "tr0ub4dor&3", ErrPasswordMismatch},
		{"trailing space", "Tr0ub4dor&3 ", ErrPasswordMismatch},
		{"empty", "", ErrPasswordMismatch},
		{"very long", strings.Repeat("x", 4096), ErrPasswordMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword(tt.password, hash)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	for _, h := range []string{
		"",
		"$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"x$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
	} {
		require.ErrorIs(t, VerifyPassword("pw", h), ErrMalformedHash, h)
	}
}

func TestPepperFile_PersistsAcrossReload(t *testing.T) {
	t.Cleanup(func() { SetPepperPath("") })

	path := filepath.Join(t.TempDir(), "secrets", "pepper")
	SetPepperPath(path)
	require.NoError(t, LoadPepper())

	hash, err := HashPassword("pw")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// Re-selecting the same file drops the cached value and reads it back.
	SetPepperPath(path)
	require.NoError(t, VerifyPassword("pw", hash))

	// A different pepper invalidates existing hashes.
	SetPepperPath(filepath.Join(t.TempDir(), "other"))
	require.ErrorIs(t, VerifyPassword("pw", hash), ErrPasswordMismatch)
}

func TestPepperFile_Empty(t *testing.T) {
	t.Cleanup(func() { SetPepperPath("") })

	path := filepath.Join(t.TempDir(), "pepper")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0600))
	SetPepperPath(path)
	require.Error(t, LoadPepper())
}
