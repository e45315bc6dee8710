package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptAndVerify(t *testing.T) {
	hashed, err := Crypt("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)

	err, ok := VerifyPassword("secret123", hashed)
	assert.NoError(t, err)
	assert.True(t, ok)

	err, ok = VerifyPassword("wrong", hashed)
	assert.Error(t, err)
	assert.False(t, ok)

	_, ok = VerifyPassword("secret123", "")
	assert.False(t, ok)
}

func TestUniqueFileName(t *testing.T) {
	name := UniqueFileName("My Clip.MP4")
	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-f]{12}\.mp4$`), name)
	assert.NotEqual(t, name, UniqueFileName("My Clip.MP4"))

	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-f]{12}$`), UniqueFileName("noext"))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestParseProbeDuration(t *testing.T) {
	d, err := parseProbeDuration(`{"format":{"duration":"12.600000"}}`)
	require.NoError(t, err)
	assert.Equal(t, int64(13), d)

	_, err = parseProbeDuration(`{"format":{}}`)
	assert.Error(t, err)

	_, err = parseProbeDuration(`not json`)
	assert.Error(t, err)
}
