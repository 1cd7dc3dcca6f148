// Package policy holds the ordered matching rules that assign a transaction
// note to a named category, and the timestamp exception table that overrides
// them.
package policy

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/paycycle-dev/paycycle/internal/model"
)

// Policy is a named rule for one direction. A note matches when it equals one
// of the literals or when one of the patterns matches from its first byte.
type Policy struct {
	Name      string
	Direction model.Direction
	Literals  []string
	Patterns  []string

	once     sync.Once
	compiled []*regexp.Regexp
	err      error
}

// New creates a Policy. Patterns are compiled on first use.
func New(name string, dir model.Direction, literals, patterns []string) *Policy {
	return &Policy{Name: name, Direction: dir, Literals: literals, Patterns: patterns}
}

// Label returns the category label: the direction tag followed by the name.
func (p *Policy) Label() string {
	return p.Direction.Tag() + p.Name
}

// Compiled returns the compiled patterns, compiling them once.
func (p *Policy) Compiled() ([]*regexp.Regexp, error) {
	p.once.Do(func() {
		res := make([]*regexp.Regexp, 0, len(p.Patterns))
		for _, pat := range p.Patterns {
			// Anchor at the start only, never at the end.
			re, err := regexp.Compile(`^(?:` + pat + `)`)
			if err != nil {
				p.err = fmt.Errorf("policy %s: pattern %q: %w", p.Label(), pat, err)
				return
			}
			res = append(res, re)
		}
		p.compiled = res
	})
	return p.compiled, p.err
}

// Match reports whether note satisfies the policy. Literals are tried first.
func (p *Policy) Match(note string) bool {
	for _, lit := range p.Literals {
		if note == lit {
			return true
		}
	}
	res, err := p.Compiled()
	if err != nil {
		return false
	}
	for _, re := range res {
		if re.MatchString(note) {
			return true
		}
	}
	return false
}
