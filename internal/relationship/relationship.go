// Package relationship manages the undirected graph of character pairs. The
// stored From/To orientation is kept for display, but existence, lookup, and
// removal all treat the pair as unordered.
package relationship

import (
	"errors"
	"fmt"

	"github.com/vampirenirmal/writermem/internal/memory"
)

// ErrExists is returned by Add when the pair already has a relationship in
// either orientation.
var ErrExists = errors.New("relationship already exists for this pair")

// Update carries a partial-field merge. Identity fields (id, from, to,
// created) cannot be set through an update.
type Update struct {
	Type        string `json:"type,omitempty"`
	Dynamic     string `json:"dynamic,omitempty"`
	SpeechLevel string `json:"speechLevel,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Find locates the relationship for a pair in either orientation.
func Find(doc *memory.Document, a, b string) *memory.Relationship {
	for _, r := range doc.Relationships {
		if (r.From == a && r.To == b) || (r.From == b && r.To == a) {
			return r
		}
	}
	return nil
}

// Add creates a relationship between from and to. Fails with ErrExists when
// the pair is already linked, in either orientation. Endpoint existence is
// not enforced here; the validator reports unresolved names.
func Add(doc *memory.Document, from, to, relType, dynamic string) (*memory.Relationship, error) {
	if !memory.ValidRelationshipTypes[relType] {
		return nil, fmt.Errorf("unknown relationship type %q", relType)
	}
	if Find(doc, from, to) != nil {
		return nil, ErrExists
	}
	r := &memory.Relationship{
		ID:      memory.NewID("rel"),
		From:    from,
		To:      to,
		Type:    relType,
		Dynamic: dynamic,
		Created: memory.Now(),
	}
	doc.Relationships = append(doc.Relationships, r)
	return r, nil
}

// Apply merges the update into the pair's relationship. Returns nil when the
// pair is not linked.
func Apply(doc *memory.Document, a, b string, u Update) *memory.Relationship {
	r := Find(doc, a, b)
	if r == nil {
		return nil
	}
	if u.Type != "" && memory.ValidRelationshipTypes[u.Type] {
		r.Type = u.Type
	}
	if u.Dynamic != "" {
		r.Dynamic = u.Dynamic
	}
	if u.SpeechLevel != "" {
		r.SpeechLevel = u.SpeechLevel
	}
	if u.Notes != "" {
		r.Notes = u.Notes
	}
	return r
}

// Remove deletes the pair's relationship, matching either orientation.
func Remove(doc *memory.Document, a, b string) bool {
	for i, r := range doc.Relationships {
		if (r.From == a && r.To == b) || (r.From == b && r.To == a) {
			doc.Relationships = append(doc.Relationships[:i], doc.Relationships[i+1:]...)
			return true
		}
	}
	return false
}
