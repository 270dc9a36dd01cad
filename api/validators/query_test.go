package validators

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/changelog?limit=200", nil)
	value, err := ParseQueryInt(r, "limit", 50, 1, 500)
	require.NoError(t, err)
	assert.Equal(t, 200, value)

	r = httptest.NewRequest("GET", "/api/v1/changelog", nil)
	value, err = ParseQueryInt(r, "limit", 50, 1, 500)
	require.NoError(t, err)
	assert.Equal(t, 50, value)

	r = httptest.NewRequest("GET", "/api/v1/changelog?limit=many", nil)
	_, err = ParseQueryInt(r, "limit", 50, 1, 500)
	require.Error(t, err)

	r = httptest.NewRequest("GET", "/api/v1/changelog?limit=501", nil)
	_, err = ParseQueryInt(r, "limit", 50, 1, 500)
	require.Error(t, err)
}

func TestParsePathID(t *testing.T) {
	id, err := ParsePathID("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, bad := range []string{"", "0", "-3", "abc", "1.5"} {
		_, err := ParsePathID(bad)
		assert.Error(t, err, bad)
	}
}
