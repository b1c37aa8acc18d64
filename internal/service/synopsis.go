package service

import (
	"fmt"

	"github.com/vampirenirmal/writermem/internal/memory"
	"github.com/vampirenirmal/writermem/internal/synopsis"
)

// Search scans every entity collection with case-folded substring matching.
func (s *Service) Search(query string) []synopsis.Result {
	return synopsis.Search(s.loadOrNew(), query)
}

// ExtractSynopsis derives the five narrative elements from current state.
func (s *Service) ExtractSynopsis() synopsis.Elements {
	return synopsis.Extract(s.loadOrNew())
}

// UpdateSynopsis merges authored slots into the stored synopsis state.
func (s *Service) UpdateSynopsis(u memory.SynopsisState) (*memory.SynopsisState, error) {
	doc := s.loadOrNew()
	state := synopsis.UpdateState(doc, u)
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return state, nil
}

// SynopsisChecklist computes completeness per element.
func (s *Service) SynopsisChecklist() []synopsis.ChecklistItem {
	return synopsis.Checklist(s.loadOrNew())
}

// RenderSynopsis renders the requested format: full, brief, or pitch.
func (s *Service) RenderSynopsis(format string) (string, error) {
	doc := s.loadOrNew()
	switch format {
	case "full":
		return synopsis.RenderFull(doc), nil
	case "brief":
		return synopsis.RenderBrief(doc), nil
	case "pitch":
		return synopsis.RenderPitch(doc), nil
	default:
		return "", fmt.Errorf("unknown synopsis format %q", format)
	}
}
