package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetGravatarURL(t *testing.T) {
	got := GetGravatarURL("Reader@Example.com ", 48)
	want := GetGravatarURL("reader@example.com", 48)
	assert.Equal(t, want, got, "email must be normalized before hashing")
	assert.Contains(t, got, "https://www.gravatar.com/avatar/")
	assert.Contains(t, got, "s=48")
}

func TestGetGravatarURLDefaultSize(t *testing.T) {
	got := GetGravatarURL("reader@example.com", 0)
	assert.Contains(t, got, "s=200")
}
