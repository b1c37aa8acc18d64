package service

import (
	"github.com/vampirenirmal/writermem/internal/memory"
	"github.com/vampirenirmal/writermem/internal/relationship"
)

// AddRelationship links a character pair. Fails with relationship.ErrExists
// when the pair is already linked in either orientation.
func (s *Service) AddRelationship(from, to, relType, dynamic string) (*memory.Relationship, error) {
	doc := s.loadOrNew()
	r, err := relationship.Add(doc, from, to, relType, dynamic)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return r, nil
}

// GetRelationship finds the pair's relationship, order-insensitive.
func (s *Service) GetRelationship(a, b string) *memory.Relationship {
	return relationship.Find(s.loadOrNew(), a, b)
}

// UpdateRelationship merges a partial update into the pair's relationship.
// Nil result with nil error means the pair is not linked.
func (s *Service) UpdateRelationship(a, b string, u relationship.Update) (*memory.Relationship, error) {
	doc := s.loadOrNew()
	r := relationship.Apply(doc, a, b, u)
	if r == nil {
		return nil, nil
	}
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return r, nil
}

// RemoveRelationship deletes the pair's relationship, either orientation.
func (s *Service) RemoveRelationship(a, b string) (bool, error) {
	doc := s.loadOrNew()
	if !relationship.Remove(doc, a, b) {
		return false, nil
	}
	if err := s.store.Save(doc); err != nil {
		return false, err
	}
	return true, nil
}

// ListRelationships returns every relationship in storage order.
func (s *Service) ListRelationships() []*memory.Relationship {
	return s.loadOrNew().Relationships
}

// AddRelationshipEvent appends to the pair's evolution timeline.
func (s *Service) AddRelationshipEvent(a, b string, ev memory.RelationshipEvent) (*memory.RelationshipEvent, error) {
	doc := s.loadOrNew()
	added := relationship.AddEvent(doc, a, b, ev)
	if added == nil {
		return nil, nil
	}
	event := *added
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return &event, nil
}

// RelationshipEvents returns the pair's timeline sorted by timestamp.
func (s *Service) RelationshipEvents(a, b string) []memory.RelationshipEvent {
	return relationship.Events(s.loadOrNew(), a, b)
}

// RelationshipArc joins the pair's change descriptions in timestamp order.
func (s *Service) RelationshipArc(a, b string) string {
	return relationship.EvolutionArc(s.loadOrNew(), a, b)
}

// Connections returns every relationship touching the named character.
func (s *Service) Connections(name string) []relationship.Connection {
	return relationship.Connections(s.loadOrNew(), name)
}

// RelationshipWeb builds the full node/edge graph view.
func (s *Service) RelationshipWeb() relationship.Web {
	return relationship.BuildWeb(s.loadOrNew())
}

// RelationshipMap renders the graph as plain text.
func (s *Service) RelationshipMap() string {
	return relationship.RenderMap(s.loadOrNew())
}
