package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeConverterToLocal(t *testing.T) {
	t.Parallel()

	cet := time.FixedZone("CET", 60*60)
	kathmandu := time.FixedZone("+0545", 5*60*60+45*60)

	testCases := []struct {
		name     string
		zone     *time.Location
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "UTC to UTC is identity",
			zone:     time.UTC,
			input:    "2024-01-10 10:00:00",
			expected: "2024-01-10 10:00:00",
		},
		{
			name:     "one hour ahead",
			zone:     cet,
			input:    "2024-01-10 10:00:00",
			expected: "2024-01-10 11:00:00",
		},
		{
			name:     "offset crossing midnight",
			zone:     cet,
			input:    "2024-01-10 23:30:00",
			expected: "2024-01-11 00:30:00",
		},
		{
			name:     "non whole hour offset",
			zone:     kathmandu,
			input:    "2024-01-10 10:00:00",
			expected: "2024-01-10 15:45:00",
		},
		{
			name:    "garbage input",
			zone:    cet,
			input:   "not a timestamp",
			wantErr: true,
		},
		{
			name:    "wrong layout",
			zone:    cet,
			input:   "2024-01-10T10:00:00Z",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			conv := NewTimeConverter(tc.zone)

			got, err := conv.ToLocal(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestTimeConverterIsPure(t *testing.T) {
	t.Parallel()

	conv := NewTimeConverter(time.FixedZone("CET", 60*60))

	first, err := conv.ToLocal("2024-06-01 08:15:30")
	require.NoError(t, err)

	// interleave an unrelated conversion
	_, err = conv.ToLocal("1999-12-31 23:59:59")
	require.NoError(t, err)

	second, err := conv.ToLocal("2024-06-01 08:15:30")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
