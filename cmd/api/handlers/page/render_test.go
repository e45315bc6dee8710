package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl := Templates()
	for _, name := range []string{"home.html", "video.html", "search.html", "library.html",
		"playlist.html", "upload.html", "signin.html", "admin_users.html", "error.html",
		"settings.html", "signup.html", "admin_setup.html"} {
		require.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", FormatDuration(0))
	assert.Equal(t, "1:05", FormatDuration(65))
	assert.Equal(t, "1:01:01", FormatDuration(3661))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "1.2K", FormatCount(1234))
	assert.Equal(t, "2.5M", FormatCount(2_500_000))
}

func TestTimeAgo(t *testing.T) {
	assert.Equal(t, "just now", TimeAgo(time.Now()))
	assert.Equal(t, "1 hour ago", TimeAgo(time.Now().Add(-90*time.Minute)))
	assert.Equal(t, "3 days ago", TimeAgo(time.Now().Add(-73*time.Hour)))
}
