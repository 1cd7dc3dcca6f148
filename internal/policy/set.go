package policy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paycycle-dev/paycycle/internal/model"
)

// ErrInvalidPolicy marks a configuration error in a policy definition.
var ErrInvalidPolicy = errors.New("invalid policy")

// Set is the ordered collection of income and loss policies.
type Set struct {
	income []*Policy
	loss   []*Policy
}

// NewSet validates policies and groups them by direction, preserving the
// order they were given in. Every pattern is compiled here so malformed
// expressions fail at construction.
func NewSet(policies ...*Policy) (*Set, error) {
	s := &Set{}
	seen := make(map[string]bool, len(policies))
	for _, p := range policies {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidPolicy)
		}
		if seen[p.Label()] {
			return nil, fmt.Errorf("%w: duplicate policy %s", ErrInvalidPolicy, p.Label())
		}
		seen[p.Label()] = true

		if _, err := p.Compiled(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPolicy, err)
		}

		switch p.Direction {
		case model.DirectionIncome:
			s.income = append(s.income, p)
		case model.DirectionLoss:
			s.loss = append(s.loss, p)
		default:
			return nil, fmt.Errorf("%w: policy %q has direction %q", ErrInvalidPolicy, p.Name, p.Direction)
		}
	}
	return s, nil
}

// Policies returns the ordered policies for a direction.
func (s *Set) Policies(dir model.Direction) []*Policy {
	switch dir {
	case model.DirectionIncome:
		return s.income
	case model.DirectionLoss:
		return s.loss
	default:
		return nil
	}
}

// Match returns the first policy of the given direction whose test accepts
// note. Declaration order is the only tie-break.
func (s *Set) Match(dir model.Direction, note string) (*Policy, bool) {
	for _, p := range s.Policies(dir) {
		if p.Match(note) {
			return p, true
		}
	}
	return nil, false
}

// ByLabel returns the policy whose Label is label.
func (s *Set) ByLabel(label string) (*Policy, bool) {
	for _, group := range [][]*Policy{s.income, s.loss} {
		for _, p := range group {
			if p.Label() == label {
				return p, true
			}
		}
	}
	return nil, false
}

// Len returns the total number of policies.
func (s *Set) Len() int {
	return len(s.income) + len(s.loss)
}
