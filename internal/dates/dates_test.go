package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse(Layout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMissing(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		start    string
		end      string
		want     []string
	}{
		{
			name:     "all missing",
			existing: nil,
			start:    "2025-01-01",
			end:      "2025-01-03",
			want:     []string{"2025-01-01", "2025-01-02", "2025-01-03"},
		},
		{
			name:     "some existing",
			existing: []string{"2025-01-02"},
			start:    "2025-01-01",
			end:      "2025-01-03",
			want:     []string{"2025-01-01", "2025-01-03"},
		},
		{
			name:     "none missing",
			existing: []string{"2025-01-01", "2025-01-02"},
			start:    "2025-01-01",
			end:      "2025-01-02",
			want:     nil,
		},
		{
			name:     "single day range",
			existing: nil,
			start:    "2025-01-01",
			end:      "2025-01-01",
			want:     []string{"2025-01-01"},
		},
		{
			name:     "inverted range is empty",
			existing: nil,
			start:    "2025-01-03",
			end:      "2025-01-01",
			want:     nil,
		},
		{
			name:     "existing dates outside range are ignored",
			existing: []string{"2024-12-31", "2025-01-04"},
			start:    "2025-01-01",
			end:      "2025-01-02",
			want:     []string{"2025-01-01", "2025-01-02"},
		},
		{
			name:     "month boundary",
			existing: []string{"2025-01-31"},
			start:    "2025-01-30",
			end:      "2025-02-02",
			want:     []string{"2025-01-30", "2025-02-01", "2025-02-02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Missing(tt.existing, day(tt.start), day(tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMissingSortedNoDuplicates(t *testing.T) {
	got := Missing([]string{"2025-03-05"}, day("2025-03-01"), day("2025-03-10"))

	seen := make(map[string]bool)
	for i, d := range got {
		assert.False(t, seen[d], "duplicate date %s", d)
		seen[d] = true
		if i > 0 {
			assert.Less(t, got[i-1], d, "dates must be ascending")
		}
	}
	assert.Len(t, got, 9)
	assert.NotContains(t, got, "2025-03-05")
}
