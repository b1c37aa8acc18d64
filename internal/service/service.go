// Package service owns the load-mutate-save bracket around every public
// operation. Subsystem packages are pure functions over the document; this
// layer loads the store, applies one logical operation, and persists the
// result for mutations. Queries never write.
//
// The model is single-actor: no locking, no conflict detection. If two
// processes interleave load/save cycles the later save wins; that lost-update
// hazard is accepted, not solved here.
package service

import (
	"go.uber.org/zap"

	"github.com/vampirenirmal/writermem/internal/character"
	"github.com/vampirenirmal/writermem/internal/memory"
	"github.com/vampirenirmal/writermem/internal/store"
	"github.com/vampirenirmal/writermem/internal/validate"
)

type Service struct {
	store      *store.Store
	log        *zap.Logger
	classifier character.SpeechClassifier
}

// SpeechClassifier is aliased so callers can swap the dialogue classifier
// without importing the character package.
type SpeechClassifier = character.SpeechClassifier

func New(st *store.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: st, log: log}
}

// SetClassifier swaps the dialogue speech classifier. nil restores the
// default fixed-pattern classifier.
func (s *Service) SetClassifier(c SpeechClassifier) {
	s.classifier = c
}

// loadOrNew returns the stored document, or a fresh empty one when the store
// is absent or unusable. A corrupt store is logged and treated as no usable
// memory; the corrupt bytes still get backed up on the next save, which is
// the recovery path.
func (s *Service) loadOrNew() *memory.Document {
	doc, err := s.store.Load()
	switch {
	case err == nil:
		return doc
	case store.IsNotFound(err):
		return memory.NewDocument("untitled", "")
	case store.IsCorrupt(err):
		s.log.Warn("store is corrupt, starting from empty memory", zap.Error(err))
		return memory.NewDocument("untitled", "")
	default:
		s.log.Warn("store could not be read, starting from empty memory", zap.Error(err))
		return memory.NewDocument("untitled", "")
	}
}

// Init creates the store for a project if it does not exist yet, and returns
// the current document either way.
func (s *Service) Init(name, genre string) (*memory.Document, error) {
	doc, err := s.store.Load()
	if err == nil {
		return doc, nil
	}
	if !store.IsNotFound(err) && !store.IsCorrupt(err) {
		return nil, err
	}
	doc = memory.NewDocument(name, genre)
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Document returns the full current document for read-only use.
func (s *Service) Document() *memory.Document {
	return s.loadOrNew()
}

// Validate runs the integrity checks against the current document.
func (s *Service) Validate() validate.Result {
	return validate.Check(s.loadOrNew())
}

// UpdateWorld merges non-empty fields into the world singleton. Rule and
// location lists replace wholesale when supplied; missing ids are assigned.
func (s *Service) UpdateWorld(w memory.World) (*memory.World, error) {
	doc := s.loadOrNew()
	cur := &doc.World
	if w.Name != "" {
		cur.Name = w.Name
	}
	if w.Era != "" {
		cur.Era = w.Era
	}
	if w.Atmosphere != "" {
		cur.Atmosphere = w.Atmosphere
	}
	if w.Rules != nil {
		for i := range w.Rules {
			if w.Rules[i].ID == "" {
				w.Rules[i].ID = memory.NewID("rule")
			}
		}
		cur.Rules = w.Rules
	}
	if w.Locations != nil {
		for i := range w.Locations {
			if w.Locations[i].ID == "" {
				w.Locations[i].ID = memory.NewID("loc")
			}
		}
		cur.Locations = w.Locations
	}
	if w.CulturalNotes != "" {
		cur.CulturalNotes = w.CulturalNotes
	}
	if w.Notes != "" {
		cur.Notes = w.Notes
	}
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return cur, nil
}

// AddTheme registers a theme. Soft references to characters and scenes are
// stored as given; the validator reports unresolved ones.
func (s *Service) AddTheme(t memory.Theme) (*memory.Theme, error) {
	doc := s.loadOrNew()
	t.ID = memory.NewID("theme")
	doc.Themes = append(doc.Themes, &t)
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return &t, nil
}

// RemoveTheme deletes a theme by id. Returns false without error when the id
// does not resolve.
func (s *Service) RemoveTheme(id string) (bool, error) {
	doc := s.loadOrNew()
	for i, t := range doc.Themes {
		if t.ID == id {
			doc.Themes = append(doc.Themes[:i], doc.Themes[i+1:]...)
			if err := s.store.Save(doc); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// ListThemes returns all themes.
func (s *Service) ListThemes() []*memory.Theme {
	return s.loadOrNew().Themes
}
