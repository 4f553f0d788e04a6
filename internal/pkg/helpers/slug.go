package helpers

import (
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"
)

// Slugify lowercases s, turns every run of non-alphanumeric characters into a
// single hyphen and trims hyphens from both ends.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// UniqueSlugger appends a numeric suffix to slugs. The suffix is a Unix
// millisecond timestamp bumped when needed so it strictly increases across
// calls, which keeps two posts with the same title apart.
type UniqueSlugger struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewUniqueSlugger uses now as its clock, or time.Now when nil
func NewUniqueSlugger(now func() time.Time) *UniqueSlugger {
	if now == nil {
		now = time.Now
	}
	return &UniqueSlugger{now: now}
}

// Slug returns slugify(title) + "-" + suffix
func (u *UniqueSlugger) Slug(title string) string {
	u.mu.Lock()
	suffix := u.now().UnixMilli()
	if suffix <= u.last {
		suffix = u.last + 1
	}
	u.last = suffix
	u.mu.Unlock()

	base := Slugify(title)
	if base == "" {
		return strconv.FormatInt(suffix, 10)
	}
	return base + "-" + strconv.FormatInt(suffix, 10)
}
