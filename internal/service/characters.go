package service

import (
	"go.uber.org/zap"

	"github.com/vampirenirmal/writermem/internal/character"
	"github.com/vampirenirmal/writermem/internal/memory"
)

// AddCharacter inserts a new character. Duplicate names fail with
// character.ErrExists and nothing is persisted.
func (s *Service) AddCharacter(c memory.Character) (*memory.Character, error) {
	doc := s.loadOrNew()
	added, err := character.Add(doc, c)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	s.log.Debug("character added", zap.String("name", added.Name))
	return added, nil
}

// UpdateCharacter merges a partial update into the character resolved by
// name or alias. A nil result with nil error means the character was not
// found; nothing was persisted.
func (s *Service) UpdateCharacter(nameOrAlias string, u character.Update) (*memory.Character, error) {
	doc := s.loadOrNew()
	c := character.Apply(doc, nameOrAlias, u)
	if c == nil {
		return nil, nil
	}
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveCharacter deletes a character without cascading: relationships and
// scenes keep their now-dangling references, which the validator reports.
func (s *Service) RemoveCharacter(nameOrAlias string) (bool, error) {
	doc := s.loadOrNew()
	if !character.Remove(doc, nameOrAlias) {
		return false, nil
	}
	if err := s.store.Save(doc); err != nil {
		return false, err
	}
	return true, nil
}

// ListCharacters returns summaries in name order.
func (s *Service) ListCharacters() []character.Summary {
	return character.List(s.loadOrNew())
}

// GetCharacter resolves by name or alias.
func (s *Service) GetCharacter(nameOrAlias string) *memory.Character {
	return s.loadOrNew().ResolveCharacter(nameOrAlias)
}

// AddAlias attaches an alias; idempotent on duplicates.
func (s *Service) AddAlias(nameOrAlias, alias string) (bool, error) {
	doc := s.loadOrNew()
	if !character.AddAlias(doc, nameOrAlias, alias) {
		return false, nil
	}
	if err := s.store.Save(doc); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveAlias detaches an alias; idempotent on absent aliases.
func (s *Service) RemoveAlias(nameOrAlias, alias string) (bool, error) {
	doc := s.loadOrNew()
	if !character.RemoveAlias(doc, nameOrAlias, alias) {
		return false, nil
	}
	if err := s.store.Save(doc); err != nil {
		return false, err
	}
	return true, nil
}

// AddEmotionPoint appends to a character's emotion timeline.
func (s *Service) AddEmotionPoint(nameOrAlias string, p memory.EmotionPoint) (*memory.EmotionPoint, error) {
	doc := s.loadOrNew()
	added := character.AddEmotionPoint(doc, nameOrAlias, p)
	if added == nil {
		return nil, nil
	}
	point := *added
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return &point, nil
}

// EmotionTimeline returns the full timeline in insertion order.
func (s *Service) EmotionTimeline(nameOrAlias string) []memory.EmotionPoint {
	return character.Timeline(s.loadOrNew(), nameOrAlias)
}

// LatestEmotion returns the most recent point, or nil.
func (s *Service) LatestEmotion(nameOrAlias string) *memory.EmotionPoint {
	return character.LatestEmotion(s.loadOrNew(), nameOrAlias)
}

// EmotionArc renders the timeline as an arrow-joined label string.
func (s *Service) EmotionArc(nameOrAlias string) string {
	return character.EmotionArc(s.loadOrNew(), nameOrAlias)
}

// LintDialogue runs the dialogue consistency checks for a character. Returns
// nil when the character does not resolve.
func (s *Service) LintDialogue(nameOrAlias, line string) *character.LintResult {
	doc := s.loadOrNew()
	c := doc.ResolveCharacter(nameOrAlias)
	if c == nil {
		return nil
	}
	result := character.LintDialogue(c, line, s.classifier)
	return &result
}

// Profile renders the character's markdown profile, or "" when the character
// does not resolve.
func (s *Service) Profile(nameOrAlias string) string {
	c := s.loadOrNew().ResolveCharacter(nameOrAlias)
	if c == nil {
		return ""
	}
	return character.ProfileMarkdown(c)
}
