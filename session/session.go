// Package session keeps one UI state per browser: the request orchestrator,
// the two city selectors and the map visibility toggle.
package session

import (
	"fmt"
	"sync"

	"github.com/you/pathfinder/finder"
	"github.com/you/pathfinder/selector"
)

// Field names one of the two city selectors
type Field string

const (
	FieldSource      Field = "source"
	FieldDestination Field = "destination"
)

// ParseField validates a selector name taken from a URL
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldSource, FieldDestination:
		return Field(s), nil
	}
	return "", fmt.Errorf("unknown selector %q", s)
}

// Session is the state of one browser
type Session struct {
	ID     string
	Finder *finder.Orchestrator

	mu          sync.Mutex // guards the selectors and showMap
	source      *selector.Dropdown
	destination *selector.Dropdown
	showMap     bool
}

func newSession(id string, f *finder.Orchestrator) *Session {
	return &Session{
		ID:          id,
		Finder:      f,
		source:      selector.NewDropdown("Select starting city", f.SetSource),
		destination: selector.NewDropdown("Select destination city", f.SetDestination),
		showMap:     true,
	}
}

func (s *Session) dropdowns(field Field) (target, other *selector.Dropdown) {
	if field == FieldSource {
		return s.source, s.destination
	}
	return s.destination, s.source
}

// ToggleSelector opens or closes a selector. Opening one counts as a click
// outside the other, which closes it.
func (s *Session) ToggleSelector(field Field) {
	s.mu.Lock()
	defer s.mu.Unlock()
	target, other := s.dropdowns(field)
	other.ClickOutside()
	target.Toggle()
}

// SearchSelector updates the live query of a selector
func (s *Session) SearchSelector(field Field, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	target, other := s.dropdowns(field)
	other.ClickOutside()
	target.Search(query)
}

// SelectCity picks city in a selector; the orchestrator receives the new value
func (s *Session) SelectCity(field Field, city string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	target, _ := s.dropdowns(field)
	target.Select(city)
}

// CloseSelectors closes both lists without changing any value
func (s *Session) CloseSelectors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source.ClickOutside()
	s.destination.ClickOutside()
}

// ToggleMap shows or hides the map panel
func (s *Session) ToggleMap() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showMap = !s.showMap
}

// ShowMap reports whether the map panel is visible
func (s *Session) ShowMap() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showMap
}

// SelectorViews renders both selectors against candidates and the orchestrator's selection
func (s *Session) SelectorViews(candidates []string, snap finder.Snapshot) (source, destination selector.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source.View(candidates, snap.Source), s.destination.View(candidates, snap.Destination)
}
