package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"under a minute", now.Add(-30 * time.Second), "Just now"},
		{"ninety seconds", now.Add(-90 * time.Second), "1m ago"},
		{"minutes", now.Add(-45 * time.Minute), "45m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"just over a day", now.Add(-25 * time.Hour), "1d ago"},
		{"days", now.Add(-72 * time.Hour), "3d ago"},
		{"future timestamp clamps", now.Add(10 * time.Second), "Just now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeAgo(tt.at, now))
		})
	}
}

func TestDateBucket(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

	assert.Equal(t, "Today", DateBucket(time.Date(2025, 6, 15, 2, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Tomorrow", DateBucket(time.Date(2025, 6, 16, 23, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Jun 20", DateBucket(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Dec 25", DateBucket(time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), now))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("not-a-duration", time.Minute))
}
