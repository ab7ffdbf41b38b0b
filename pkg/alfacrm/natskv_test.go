package alfacrm

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// kvKeyPattern mirrors the character set NATS JetStream KV accepts for keys.
var kvKeyPattern = regexp.MustCompile(`\A[-/_=\.a-zA-Z0-9]+\z`)

func assertValidKVKey(t *testing.T, key string) {
	t.Helper()

	assert.NotEmpty(t, key)
	assert.Regexp(t, kvKeyPattern, key)
	assert.False(t, strings.HasPrefix(key, "."), "key %q starts with a separator", key)
	assert.False(t, strings.HasSuffix(key, "."), "key %q ends with a separator", key)
	assert.NotContains(t, key, "..", "key %q contains an empty token", key)
}

func TestSanitizeKVKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
	}{
		{name: "list key without filter", key: `/v2api/1/customer?{"page":0}`},
		{name: "list key with filter", key: `/v2api/1/subject?{"name":"math"}`},
		{name: "unscoped list key", key: `/v2api/branch?{}`},
		{name: "filter with list values", key: `/v2api/7/lesson?{"teacher_ids":[5,6],"page":2}`},
		{name: "doubled separators", key: "//v2api//1//pay?{}"},
		{name: "trailing separator", key: "/v2api/1/task/"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assertValidKVKey(t, sanitizeKVKey(tt.key))
		})
	}
}

func TestSanitizeKVKeyDistinguishesFilters(t *testing.T) {
	t.Parallel()

	a := sanitizeKVKey(`/v2api/1/customer?{"is_study":1,"page":0}`)
	b := sanitizeKVKey(`/v2api/1/customer?{"is_study":0,"page":0}`)

	assert.NotEqual(t, a, b)
}
