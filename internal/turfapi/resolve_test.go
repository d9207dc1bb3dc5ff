package turfapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	r := NewResolver("https://api.khel.example")

	t.Run("absolute urls pass through untouched", func(t *testing.T) {
		assert.Equal(t,
			"https://cdn.example.com/turf.jpg",
			r.Resolve("https://cdn.example.com/turf.jpg"))
		assert.Equal(t,
			"http://cdn.example.com/turf.jpg",
			r.Resolve("http://cdn.example.com/turf.jpg"))
	})

	t.Run("api paths go onto the configured host", func(t *testing.T) {
		assert.Equal(t,
			"https://api.khel.example/api/files/b.jpg",
			r.Resolve("/api/files/b.jpg"))
	})

	t.Run("bare file names are served from the files endpoint", func(t *testing.T) {
		assert.Equal(t,
			"https://api.khel.example/api/files/photo.png",
			r.Resolve("photo.png"))
	})

	t.Run("a stray leading slash is not doubled", func(t *testing.T) {
		assert.Equal(t,
			"https://api.khel.example/api/files/photo.png",
			r.Resolve("/photo.png"))
	})

	t.Run("empty references stay empty", func(t *testing.T) {
		assert.Equal(t, "", r.Resolve(""))
	})

	t.Run("a trailing slash on the host is trimmed", func(t *testing.T) {
		rr := NewResolver("https://api.khel.example/")
		assert.Equal(t,
			"https://api.khel.example/api/files/a.jpg",
			rr.Resolve("a.jpg"))
	})
}

func TestResolveAll(t *testing.T) {
	r := NewResolver("https://api.khel.example")

	got := r.ResolveAll([]string{
		"https://cdn.example.com/a.jpg",
		"/api/files/b.jpg",
		"c.jpg",
	})

	assert.Equal(t, []string{
		"https://cdn.example.com/a.jpg",
		"https://api.khel.example/api/files/b.jpg",
		"https://api.khel.example/api/files/c.jpg",
	}, got)

	assert.Nil(t, r.ResolveAll(nil))
}
