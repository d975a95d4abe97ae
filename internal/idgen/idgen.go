// Package idgen generates namespaced identifiers of the form
// <prefix>_<unix-millis>_<random>, backed by nanoid.
package idgen

import (
	"fmt"
	"strconv"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet defines the character set used for the random suffix.
const Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Length is the number of random characters in the suffix.
const Length = 9

// JobPrefix namespaces generation job ids.
const JobPrefix = "job"

// Generator builds ids for one namespace.
type Generator struct {
	prefix string
	now    func() time.Time
}

// New returns a Generator for prefix.
func New(prefix string) *Generator {
	return &Generator{prefix: prefix, now: time.Now}
}

// NewWithClock returns a Generator with an injected clock.
func NewWithClock(prefix string, now func() time.Time) *Generator {
	return &Generator{prefix: prefix, now: now}
}

// Next returns a fresh id. Ids are unique with overwhelming probability but
// uniqueness is not enforced.
func (g *Generator) Next() (string, error) {
	suffix, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return g.prefix + "_" + strconv.FormatInt(g.now().UnixMilli(), 10) + "_" + suffix, nil
}
