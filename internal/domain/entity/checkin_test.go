package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckIn_SameDayAs(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		createdAt time.Time
		want      bool
	}{
		{"just now", now, true},
		{"one minute ago", now.Add(-time.Minute), true},
		{"23h59m ago still blocks", now.Add(-23*time.Hour - 59*time.Minute), true},
		{"exactly 24h ago allows", now.Add(-24 * time.Hour), false},
		{"25h ago allows", now.Add(-25 * time.Hour), false},
		{"future timestamp does not block", now.Add(time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checkIn := &CheckIn{CreatedAt: tc.createdAt}
			assert.Equal(t, tc.want, checkIn.SameDayAs(now))
		})
	}
}

func TestCheckIn_Active(t *testing.T) {
	cancelled := time.Now()

	assert.True(t, (&CheckIn{}).Active())
	assert.False(t, (&CheckIn{DeletedAt: &cancelled}).Active())
}
