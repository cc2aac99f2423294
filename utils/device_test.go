package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDeviceType(t *testing.T) {
	assert.Equal(t, "tablet", ParseDeviceType("Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X)"))
	assert.Equal(t, "mobile", ParseDeviceType("Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) Mobile"))
	assert.Equal(t, "mobile", ParseDeviceType("Mozilla/5.0 (Linux; Android 13; Pixel 7)"))
	assert.Equal(t, "desktop", ParseDeviceType("Mozilla/5.0 (Windows NT 10.0; Win64; x64)"))
	assert.Equal(t, "desktop", ParseDeviceType(""))
}

func TestParseBrowser(t *testing.T) {
	assert.Equal(t, "Edge", ParseBrowser("Mozilla/5.0 Chrome/120.0 Safari/537.36 Edg/120.0"))
	assert.Equal(t, "Chrome", ParseBrowser("Mozilla/5.0 Chrome/120.0 Safari/537.36"))
	assert.Equal(t, "Firefox", ParseBrowser("Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0"))
	assert.Equal(t, "Safari", ParseBrowser("Mozilla/5.0 (Macintosh) Version/17.0 Safari/605.1.15"))
	assert.Equal(t, "Other", ParseBrowser("curl/8.0"))
}
