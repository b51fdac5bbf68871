package skill

import (
	"encoding/json"
	"strings"
)

// Set is an ordered collection of skill labels with uniqueness. Labels keep the
// order in which they were first added and are compared case-sensitively.
type Set struct {
	labels []string
	index  map[string]struct{}
}

func NewSet(labels ...string) Set {
	s := Set{
		labels: make([]string, 0, len(labels)),
		index:  make(map[string]struct{}, len(labels)),
	}
	for _, l := range labels {
		s.add(l)
	}
	return s
}

func (s *Set) add(label string) {
	if strings.TrimSpace(label) == "" {
		return
	}
	if s.index == nil {
		s.index = map[string]struct{}{}
	}
	if _, ok := s.index[label]; ok {
		return
	}
	s.index[label] = struct{}{}
	s.labels = append(s.labels, label)
}

func (s Set) Len() int {
	return len(s.labels)
}

func (s Set) IsEmpty() bool {
	return len(s.labels) == 0
}

func (s Set) Contains(label string) bool {
	if s.index == nil {
		return false
	}
	_, ok := s.index[label]
	return ok
}

// Labels returns a copy of the labels in insertion order.
func (s Set) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Intersect returns the labels of s that are also in other, in the order of s.
func (s Set) Intersect(other Set) []string {
	out := make([]string, 0)
	for _, l := range s.labels {
		if other.Contains(l) {
			out = append(out, l)
		}
	}
	return out
}

func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Labels())
}

func (s *Set) UnmarshalJSON(b []byte) error {
	var labels []string
	if err := json.Unmarshal(b, &labels); err != nil {
		return err
	}
	*s = NewSet(labels...)
	return nil
}
