package basicauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBase64Header(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"valid", "Basic QWxhZGRpbjpvcGVuc2VzYW1l", "QWxhZGRpbjpvcGVuc2VzYW1l", true},
		{"empty", "", "", false},
		{"no prefix", "QWxhZGRpbjpvcGVuc2VzYW1l", "", false},
		{"lowercase prefix", "basic QWxhZGRpbjpvcGVuc2VzYW1l", "", false},
		{"missing space", "BasicQWxhZGRpbjpvcGVuc2VzYW1l", "", false},
		{"bearer", "Bearer abc", "", false},
		{"prefix only", "Basic ", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractBase64Header(tc.header)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeBase64(t *testing.T) {
	t.Parallel()

	got, ok := DecodeBase64("QWxhZGRpbjpvcGVuc2VzYW1l")
	require.True(t, ok)
	assert.Equal(t, "Aladdin:opensesame", got)

	_, ok = DecodeBase64("not base64 at all!!!")
	assert.False(t, ok)

	// valid base64 but not valid UTF-8
	_, ok = DecodeBase64("/w==")
	assert.False(t, ok)
}

func TestExtractCredentials(t *testing.T) {
	t.Parallel()

	user, pass, ok := ExtractCredentials("Aladdin:opensesame")
	require.True(t, ok)
	assert.Equal(t, "Aladdin", user)
	assert.Equal(t, "opensesame", pass)

	// splits on the first colon only; colons in the password survive
	user, pass, ok = ExtractCredentials("bob:pa:ss:word")
	require.True(t, ok)
	assert.Equal(t, "bob", user)
	assert.Equal(t, "pa:ss:word", pass)

	_, _, ok = ExtractCredentials("no-separator")
	assert.False(t, ok)
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	excluded := []string{"/api/v1/status/"}

	assert.False(t, RequireAuth("/api/v1/status/", excluded))
	// trailing-slash tolerant
	assert.False(t, RequireAuth("/api/v1/status", excluded))
	assert.True(t, RequireAuth("/api/v1/users", excluded))

	assert.True(t, RequireAuth("/api/v1/status", nil))
	assert.True(t, RequireAuth("/api/v1/status", []string{}))
	assert.True(t, RequireAuth("", excluded))
}
