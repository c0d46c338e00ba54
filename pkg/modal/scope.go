package modal

import (
	"slices"
	"strings"
)

// Scope is a node in the UI tree used to find a controller without
// threading it through every model. A scope resolves to the controller
// provided on itself or its nearest ancestor.
type Scope struct {
	name     string
	parent   *Scope
	ctrl     *Controller
	children map[string]*Scope
}

// NewScope returns a root scope.
func NewScope(name string) *Scope {
	return &Scope{name: name}
}

// Child returns the child scope called name, creating it on first use.
func (s *Scope) Child(name string) *Scope {
	if s.children == nil {
		s.children = make(map[string]*Scope)
	}
	if child, ok := s.children[name]; ok {
		return child
	}
	child := &Scope{name: name, parent: s}
	s.children[name] = child
	return child
}

// Provide makes c visible to s and every descendant that does not provide
// its own.
func (s *Scope) Provide(c *Controller) {
	s.ctrl = c
}

// Controller returns the nearest provided controller.
func (s *Scope) Controller() (*Controller, error) {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.ctrl != nil {
			return cur.ctrl, nil
		}
	}
	return nil, ErrNoController
}

// Path returns the slash-separated names from the root to s.
func (s *Scope) Path() string {
	var parts []string
	for cur := s; cur != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}
	slices.Reverse(parts)
	return strings.Join(parts, "/")
}
