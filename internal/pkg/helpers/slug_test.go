package helpers

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"UPSC Civil Services":        "upsc-civil-services",
		"  State PSC -- Prelims!  ": "state-psc-prelims",
		"GS Paper I & II (2024)":    "gs-paper-i-ii-2024",
		"already-a-slug":            "already-a-slug",
		"Café Résumé":               "caf-r-sum",
		"***":                       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestUniqueSluggerNeverCollides(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	s := NewUniqueSlugger(func() time.Time { return fixed })

	first := s.Slug("Test Post")
	second := s.Slug("Test Post")

	pattern := regexp.MustCompile(`^test-post-\d+$`)
	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.NotEqual(t, first, second)
	assert.Equal(t, "test-post-1700000000000", first)
	assert.Equal(t, "test-post-1700000000001", second)
}

func TestUniqueSluggerEmptyTitle(t *testing.T) {
	s := NewUniqueSlugger(func() time.Time { return time.UnixMilli(5) })
	assert.Equal(t, "5", s.Slug("!!!"))
}
