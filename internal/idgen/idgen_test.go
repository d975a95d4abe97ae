package idgen

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestNext_Format(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	g := NewWithClock(JobPrefix, func() time.Time { return at })

	id, err := g.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if !strings.HasPrefix(id, "job_1700000000123_") {
		t.Errorf("Next() = %q, want prefix %q", id, "job_1700000000123_")
	}
	pattern := regexp.MustCompile(`^job_[0-9]+_[a-z0-9]{9}$`)
	if !pattern.MatchString(id) {
		t.Errorf("Next() = %q, does not match %s", id, pattern)
	}
}

func TestNext_Uniqueness(t *testing.T) {
	const count = 10_000
	at := time.Now()
	g := NewWithClock("test", func() time.Time { return at })
	seen := make(map[string]struct{}, count)
	for i := 0; i < count; i++ {
		id, err := g.Next()
		if err != nil {
			t.Fatalf("Next() error on iteration %d: %v", i, err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate ID after %d generations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}
