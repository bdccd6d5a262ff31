package httpx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &FetchError{Status: 503, Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "503")

	var fe *FetchError
	require.ErrorAs(t, fmt.Errorf("visit: %w", err), &fe)
	assert.Equal(t, 503, fe.Status)
}

func TestFetchErrorWithoutCause(t *testing.T) {
	err := &FetchError{Status: 404}
	assert.Equal(t, "fetch error (status 404)", err.Error())
	assert.NoError(t, err.Unwrap())
}

func TestNormalizeURL(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "absolute passthrough", input: "https://www.target.com/p/1", want: "https://www.target.com/p/1", ok: true},
		{name: "scheme added", input: "www.target.com/p/1", want: "https://www.target.com/p/1", ok: true},
		{name: "empty rejected", input: "", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizeURL(tc.input)
			if !tc.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHostKey(t *testing.T) {
	assert.Equal(t, "amazon.com", hostKey("https://WWW.Amazon.com/dp/B0ABC123"))
	assert.Equal(t, "default", hostKey("%%%"))
}

func TestLimiterReusedPerHost(t *testing.T) {
	f := NewFetcher("")
	a := f.limiterFor("amazon.com")
	b := f.limiterFor("amazon.com")
	c := f.limiterFor("target.com")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}
