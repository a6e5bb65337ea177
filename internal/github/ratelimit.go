package github

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// RateLimit describes an exhausted API quota.
type RateLimit struct {
	// Reset is when the quota refills.
	Reset time.Time
}

// parseRateLimit inspects a 403/429 response for GitHub's rate limit headers.
// It returns nil when the response is not a rate limit rejection.
func parseRateLimit(resp *http.Response) *RateLimit {
	if resp.StatusCode != http.StatusForbidden && resp.StatusCode != http.StatusTooManyRequests {
		return nil
	}
	if resp.Header.Get("X-RateLimit-Remaining") != "0" {
		return nil
	}
	epoch, err := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64)
	if err != nil {
		return &RateLimit{}
	}
	return &RateLimit{Reset: time.Unix(epoch, 0)}
}

// describe renders the limit relative to now, e.g. "rate limited, resets in 12m 5s".
func (r *RateLimit) describe(now time.Time) string {
	if r.Reset.IsZero() {
		return "rate limited"
	}
	wait := int64(r.Reset.Sub(now).Round(time.Second) / time.Second)
	if wait <= 0 {
		return "rate limited, quota has reset"
	}
	return fmt.Sprintf("rate limited, resets in %s", FormatDuration(wait))
}

// FormatDuration formats seconds into human-readable duration.
// Examples: "2h 15m", "45m 30s", "30s"
func FormatDuration(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	out := ""
	if hours > 0 {
		out += fmt.Sprintf("%dh", hours)
	}
	if minutes > 0 {
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%dm", minutes)
	}
	if secs > 0 || out == "" {
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%ds", secs)
	}
	return out
}
