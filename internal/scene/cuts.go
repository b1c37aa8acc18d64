package scene

import (
	"fmt"
	"sort"

	"github.com/vampirenirmal/writermem/internal/memory"
)

// AddCut appends a cut at the end of the scene's cut list. An unknown cut
// type defaults to narration. Returns nil when the scene does not exist.
func AddCut(doc *memory.Document, sceneID string, cut memory.Cut) *memory.Cut {
	s := doc.SceneByID(sceneID)
	if s == nil {
		return nil
	}
	if !memory.ValidCutTypes[cut.Type] {
		cut.Type = "narration"
	}
	cut.Order = len(s.Cuts)
	s.Cuts = append(s.Cuts, cut)
	return &s.Cuts[len(s.Cuts)-1]
}

// RemoveCut splices out the cut at the given order and renumbers the rest,
// preserving their relative sequence.
func RemoveCut(doc *memory.Document, sceneID string, order int) bool {
	s := doc.SceneByID(sceneID)
	if s == nil || order < 0 || order >= len(s.Cuts) {
		return false
	}
	s.Cuts = append(s.Cuts[:order], s.Cuts[order+1:]...)
	for i := range s.Cuts {
		s.Cuts[i].Order = i
	}
	return true
}

// ReorderCuts rebuilds the cut list so position i holds the cut previously at
// indexes[i]. The slice must be a permutation of 0..n-1: length is checked
// first, then a sorted copy is compared against the full range. Fails fast
// without mutating.
func ReorderCuts(doc *memory.Document, sceneID string, indexes []int) error {
	s := doc.SceneByID(sceneID)
	if s == nil {
		return fmt.Errorf("unknown scene %q", sceneID)
	}
	if len(indexes) != len(s.Cuts) {
		return fmt.Errorf("reorder needs all %d cut indexes, got %d", len(s.Cuts), len(indexes))
	}
	sorted := make([]int, len(indexes))
	copy(sorted, indexes)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i {
			return fmt.Errorf("cut indexes are not a permutation of 0..%d", len(s.Cuts)-1)
		}
	}

	reordered := make([]memory.Cut, len(indexes))
	for i, old := range indexes {
		reordered[i] = s.Cuts[old]
		reordered[i].Order = i
	}
	s.Cuts = reordered
	return nil
}
