package consumer

import (
	"testing"
	"time"
)

func SetRetryBackoff(t *testing.T, d time.Duration) {
	prev, prevMax := retryBackoff, maxRetryBackoff
	retryBackoff, maxRetryBackoff = d, d
	t.Cleanup(func() {
		retryBackoff, maxRetryBackoff = prev, prevMax
	})
}
