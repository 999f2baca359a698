package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "plain day",
			input: "2024-05-01",
			want:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with time of day",
			input: "2024-05-01T10:00:00Z",
			want:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "offset resolving to the same utc day",
			input: "2024-05-01T23:30:00+02:00",
			want:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "offset crossing into the next utc day",
			input: "2024-05-01T23:30:00-05:00",
			want:  time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDay(tc.input)
			require.NoError(t, err)
			require.True(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
		})
	}
}

func TestParseDay_Invalid(t *testing.T) {
	for _, input := range []string{"", "01.05.2024", "2024-13-40", "yesterday"} {
		_, err := ParseDay(input)
		require.ErrorIs(t, err, ErrInvalidDate, "input %q", input)
	}
}

func TestFormatDay(t *testing.T) {
	day, err := ParseDay("2024-05-01T18:45:00Z")
	require.NoError(t, err)
	require.Equal(t, "2024-05-01", FormatDay(day))
}
