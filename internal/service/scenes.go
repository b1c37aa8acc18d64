package service

import (
	"github.com/vampirenirmal/writermem/internal/memory"
	"github.com/vampirenirmal/writermem/internal/scene"
)

// AddScene appends a scene at the end of the narrative order.
func (s *Service) AddScene(sc memory.Scene) (*memory.Scene, error) {
	doc := s.loadOrNew()
	added := scene.Add(doc, sc)
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return added, nil
}

// RemoveScene deletes a scene and renumbers the rest to a dense 0..n-1.
func (s *Service) RemoveScene(sceneID string) (bool, error) {
	doc := s.loadOrNew()
	if !scene.Remove(doc, sceneID) {
		return false, nil
	}
	if err := s.store.Save(doc); err != nil {
		return false, err
	}
	return true, nil
}

// ReorderScenes re-derives scene order from an exact permutation of the
// current scene id set.
func (s *Service) ReorderScenes(ids []string) error {
	doc := s.loadOrNew()
	if err := scene.Reorder(doc, ids); err != nil {
		return err
	}
	return s.store.Save(doc)
}

// GetScene returns the scene with the given id, or nil.
func (s *Service) GetScene(sceneID string) *memory.Scene {
	return s.loadOrNew().SceneByID(sceneID)
}

// ListScenes returns all scenes sorted by order.
func (s *Service) ListScenes() []*memory.Scene {
	return s.loadOrNew().ScenesInOrder()
}

// AddCut appends a cut to a scene. Nil result with nil error means the scene
// does not exist.
func (s *Service) AddCut(sceneID string, cut memory.Cut) (*memory.Cut, error) {
	doc := s.loadOrNew()
	added := scene.AddCut(doc, sceneID, cut)
	if added == nil {
		return nil, nil
	}
	out := *added
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveCut deletes the cut at the given order and renumbers the rest.
func (s *Service) RemoveCut(sceneID string, order int) (bool, error) {
	doc := s.loadOrNew()
	if !scene.RemoveCut(doc, sceneID, order) {
		return false, nil
	}
	if err := s.store.Save(doc); err != nil {
		return false, err
	}
	return true, nil
}

// ReorderCuts rebuilds a scene's cut list from a permutation of 0..n-1.
func (s *Service) ReorderCuts(sceneID string, indexes []int) error {
	doc := s.loadOrNew()
	if err := scene.ReorderCuts(doc, sceneID, indexes); err != nil {
		return err
	}
	return s.store.Save(doc)
}

// TagScene adds an emotion tag; idempotent on duplicates.
func (s *Service) TagScene(sceneID, tag string) (bool, error) {
	doc := s.loadOrNew()
	if !scene.AddEmotionTag(doc, sceneID, tag) {
		return false, nil
	}
	if err := s.store.Save(doc); err != nil {
		return false, err
	}
	return true, nil
}

// UntagScene removes an emotion tag; idempotent on absent tags.
func (s *Service) UntagScene(sceneID, tag string) (bool, error) {
	doc := s.loadOrNew()
	if !scene.RemoveEmotionTag(doc, sceneID, tag) {
		return false, nil
	}
	if err := s.store.Save(doc); err != nil {
		return false, err
	}
	return true, nil
}

// ScenesByChapter filters scenes by chapter label, in order.
func (s *Service) ScenesByChapter(chapter string) []*memory.Scene {
	return scene.ByChapter(s.loadOrNew(), chapter)
}

// ScenesByCharacter filters scenes by participant, in order.
func (s *Service) ScenesByCharacter(name string) []*memory.Scene {
	return scene.ByCharacter(s.loadOrNew(), name)
}

// ScenesByEmotion filters scenes by emotion tag, in order.
func (s *Service) ScenesByEmotion(tag string) []*memory.Scene {
	return scene.ByEmotion(s.loadOrNew(), tag)
}

// EmotionStats counts emotion tags across all scenes, descending.
func (s *Service) EmotionStats() []scene.TagCount {
	return scene.EmotionStats(s.loadOrNew())
}

// SceneFlow projects the scene list into the linear pacing summary.
func (s *Service) SceneFlow() []scene.FlowEntry {
	return scene.Flow(s.loadOrNew())
}
