package browser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCookies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies-glassdoor.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"name": "GSESSIONID", "value": "abc", "domain": ".glassdoor.com", "path": "/", "expires": 1893456000, "httpOnly": true, "secure": true, "sameSite": "Lax"},
  {"name": "session", "value": "xyz", "domain": "www.glassdoor.com", "path": "/", "expires": -1, "sameSite": "no_restriction"}
]`), 0644))

	cookies, err := LoadCookies(path)
	require.NoError(t, err)
	require.Len(t, cookies, 2)

	first := cookies[0]
	assert.Equal(t, "GSESSIONID", first.Name)
	assert.Equal(t, ".glassdoor.com", *first.Domain)
	assert.Equal(t, 1893456000.0, *first.Expires)
	assert.True(t, *first.HttpOnly)
	assert.True(t, *first.Secure)
	assert.Equal(t, playwright.SameSiteAttributeLax, first.SameSite)

	second := cookies[1]
	assert.Nil(t, second.Expires, "session cookies have no expiry")
	assert.Nil(t, second.HttpOnly)
	assert.Equal(t, playwright.SameSiteAttributeNone, second.SameSite)
}

func TestLoadCookies_Errors(t *testing.T) {
	_, err := LoadCookies(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":`), 0644))
	_, err = LoadCookies(path)
	assert.Error(t, err)
}
