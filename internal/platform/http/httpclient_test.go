package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		timeout         time.Duration
		expectedTimeout time.Duration
	}{
		{"custom timeout", 3 * time.Second, 3 * time.Second},
		{"zero falls back to default", 0, DefaultTimeout},
		{"negative falls back to default", -time.Second, DefaultTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewHTTPClient(tt.timeout)

			assert.Equal(t, tt.expectedTimeout, c.Timeout)
			tr, ok := c.Transport.(*http.Transport)
			require.True(t, ok, "transport should be *http.Transport")
			assert.Equal(t, tt.expectedTimeout, tr.ResponseHeaderTimeout)
			assert.Equal(t, 100, tr.MaxIdleConns)
			assert.NotNil(t, tr.Proxy)
		})
	}
}
