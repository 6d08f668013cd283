package utils

import (
	"testing"
	"time"
)

func TestTimeAgo(t *testing.T) {
	now := time.Now()
	cases := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-48 * time.Hour), "2d ago"},
		{now.Add(-40 * 24 * time.Hour), "1mo ago"},
		{now.Add(-400 * 24 * time.Hour), "1y ago"},
	}
	for _, tc := range cases {
		if got := TimeAgo(tc.at); got != tc.want {
			t.Errorf("TimeAgo(%v) = %q, want %q", tc.at, got, tc.want)
		}
	}
}
