package idx_test

import (
	"testing"
	"time"

	"github.com/Best-Company-A-S/masterticket/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewParses(t *testing.T) {
	id := idx.New()
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
	require.True(t, idx.Valid(idx.NewString()))
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "   ", "not-a-ulid", "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3Z"} {
		_, err := idx.Parse(s)
		require.ErrorIs(t, err, idx.ErrInvalid, s)
	}
}

func TestMonotonicWithinMillisecond(t *testing.T) {
	at := time.Unix(1700000000, 0).UTC()
	prev := idx.NewAt(at)
	for range 100 {
		next := idx.NewAt(at)
		require.Less(t, prev.String(), next.String())
		prev = next
	}
}

func TestTimeRoundTrip(t *testing.T) {
	at := time.Unix(1700000000, 0).UTC()
	require.WithinDuration(t, at, idx.NewAt(at).Time(), time.Millisecond)
	require.True(t, idx.ID("bogus").Time().IsZero())
}
