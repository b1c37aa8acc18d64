// Package scene keeps the ordered scene list and the ordered cut lists inside
// each scene. Scene order and cut order are dense zero-based sequences; every
// structural change ends by restoring that invariant.
package scene

import (
	"fmt"
	"sort"

	"github.com/vampirenirmal/writermem/internal/memory"
)

// Add appends a scene at the end of the current order. ID, order, and created
// timestamp are assigned here; caller-supplied values for them are ignored.
func Add(doc *memory.Document, s memory.Scene) *memory.Scene {
	s.ID = memory.NewID("scene")
	s.Order = len(doc.Scenes)
	s.Created = memory.Now()
	if s.Cuts == nil {
		s.Cuts = []memory.Cut{}
	}
	added := &s
	doc.Scenes = append(doc.Scenes, added)
	return added
}

// Remove splices the scene out and renumbers the remaining scenes to a dense
// 0..n-1 sequence in their surviving relative order.
func Remove(doc *memory.Document, sceneID string) bool {
	for i, s := range doc.Scenes {
		if s.ID == sceneID {
			doc.Scenes = append(doc.Scenes[:i], doc.Scenes[i+1:]...)
			renumber(doc)
			return true
		}
	}
	return false
}

// Reorder re-derives scene order from the given id sequence. The sequence
// must be exactly the current id set; anything else fails without mutating.
func Reorder(doc *memory.Document, ids []string) error {
	if len(ids) != len(doc.Scenes) {
		return fmt.Errorf("reorder needs all %d scene ids, got %d", len(doc.Scenes), len(ids))
	}
	byID := make(map[string]*memory.Scene, len(doc.Scenes))
	for _, s := range doc.Scenes {
		byID[s.ID] = s
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("duplicate scene id %q in reorder", id)
		}
		if _, ok := byID[id]; !ok {
			return fmt.Errorf("unknown scene id %q in reorder", id)
		}
		seen[id] = true
	}

	reordered := make([]*memory.Scene, len(ids))
	for i, id := range ids {
		reordered[i] = byID[id]
		reordered[i].Order = i
	}
	doc.Scenes = reordered
	return nil
}

// renumber restores the dense 0..n-1 order, keeping the current relative
// sequence.
func renumber(doc *memory.Document) {
	sort.SliceStable(doc.Scenes, func(i, j int) bool {
		return doc.Scenes[i].Order < doc.Scenes[j].Order
	})
	for i, s := range doc.Scenes {
		s.Order = i
	}
}

// AddEmotionTag tags a scene. Adding a tag that is already present is a
// no-op success; false means the scene does not exist.
func AddEmotionTag(doc *memory.Document, sceneID, tag string) bool {
	s := doc.SceneByID(sceneID)
	if s == nil {
		return false
	}
	for _, t := range s.Emotions {
		if t == tag {
			return true
		}
	}
	s.Emotions = append(s.Emotions, tag)
	return true
}

// RemoveEmotionTag untags a scene. Removing an absent tag is a no-op success.
func RemoveEmotionTag(doc *memory.Document, sceneID, tag string) bool {
	s := doc.SceneByID(sceneID)
	if s == nil {
		return false
	}
	for i, t := range s.Emotions {
		if t == tag {
			s.Emotions = append(s.Emotions[:i], s.Emotions[i+1:]...)
			return true
		}
	}
	return true
}
