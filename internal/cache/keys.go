package cache

import "fmt"

// RateLimitKey returns the counter key for a client's per-minute request count.
func RateLimitKey(clientIP string) string {
	return fmt.Sprintf("ratelimit:%s", clientIP)
}
