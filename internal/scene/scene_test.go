package scene

import (
	"sort"
	"testing"

	"github.com/vampirenirmal/writermem/internal/memory"
)

func newDoc() *memory.Document {
	return memory.NewDocument("test", "")
}

func assertDenseOrder(t *testing.T, doc *memory.Document) {
	t.Helper()
	orders := make([]int, len(doc.Scenes))
	for i, s := range doc.Scenes {
		orders[i] = s.Order
	}
	sort.Ints(orders)
	for i, o := range orders {
		if o != i {
			t.Fatalf("scene orders not dense: %v", orders)
		}
	}
}

func TestAddAppendsAtEnd(t *testing.T) {
	doc := newDoc()
	first := Add(doc, memory.Scene{Title: "첫 만남"})
	second := Add(doc, memory.Scene{Title: "재회"})

	if first.Order != 0 || second.Order != 1 {
		t.Errorf("orders = %d, %d", first.Order, second.Order)
	}
	if first.ID == "" || first.Created == "" {
		t.Error("identity fields not assigned")
	}
	if first.Cuts == nil {
		t.Error("cut list not initialized")
	}
	assertDenseOrder(t, doc)
}

func TestRemoveRenumbers(t *testing.T) {
	doc := newDoc()
	a := Add(doc, memory.Scene{Title: "a"})
	b := Add(doc, memory.Scene{Title: "b"})
	c := Add(doc, memory.Scene{Title: "c"})

	if !Remove(doc, b.ID) {
		t.Fatal("remove failed")
	}
	assertDenseOrder(t, doc)
	if a.Order != 0 || c.Order != 1 {
		t.Errorf("relative sequence broken: a=%d c=%d", a.Order, c.Order)
	}
	if Remove(doc, "ghost") {
		t.Error("removing unknown scene reported success")
	}
}

func TestReorder(t *testing.T) {
	doc := newDoc()
	a := Add(doc, memory.Scene{Title: "a"})
	b := Add(doc, memory.Scene{Title: "b"})
	c := Add(doc, memory.Scene{Title: "c"})

	if err := Reorder(doc, []string{c.ID, a.ID, b.ID}); err != nil {
		t.Fatal(err)
	}
	if c.Order != 0 || a.Order != 1 || b.Order != 2 {
		t.Errorf("orders after reorder: c=%d a=%d b=%d", c.Order, a.Order, b.Order)
	}
	assertDenseOrder(t, doc)

	tests := []struct {
		name string
		ids  []string
	}{
		{"too short", []string{a.ID, b.ID}},
		{"duplicate", []string{a.ID, a.ID, b.ID}},
		{"unknown id", []string{a.ID, b.ID, "ghost"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Reorder(doc, tt.ids); err == nil {
				t.Error("expected failure")
			}
			assertDenseOrder(t, doc)
		})
	}
}

func TestCutRemovalRenumbers(t *testing.T) {
	doc := newDoc()
	sc := Add(doc, memory.Scene{Title: "첫 만남"})
	AddCut(doc, sc.ID, memory.Cut{Type: "narration", Content: "비가 내렸다."})
	AddCut(doc, sc.ID, memory.Cut{Type: "dialogue", Content: "\"우산 있어요?\"", Character: "서연"})
	AddCut(doc, sc.ID, memory.Cut{Type: "internal", Content: "왜 말을 걸었을까.", Character: "민준"})

	if !RemoveCut(doc, sc.ID, 1) {
		t.Fatal("cut removal failed")
	}
	if len(sc.Cuts) != 2 {
		t.Fatalf("expected 2 cuts, got %d", len(sc.Cuts))
	}
	if sc.Cuts[0].Order != 0 || sc.Cuts[1].Order != 1 {
		t.Errorf("cut orders = %d, %d", sc.Cuts[0].Order, sc.Cuts[1].Order)
	}
	// The surviving cuts keep their relative sequence.
	if sc.Cuts[0].Content != "비가 내렸다." || sc.Cuts[1].Content != "왜 말을 걸었을까." {
		t.Errorf("wrong cuts survived: %+v", sc.Cuts)
	}

	if RemoveCut(doc, sc.ID, 5) {
		t.Error("out-of-range removal reported success")
	}
}

func TestAddCutDefaultsType(t *testing.T) {
	doc := newDoc()
	sc := Add(doc, memory.Scene{Title: "a"})
	cut := AddCut(doc, sc.ID, memory.Cut{Type: "monologue", Content: "x"})
	if cut.Type != "narration" {
		t.Errorf("unknown type should default to narration, got %q", cut.Type)
	}
	if AddCut(doc, "ghost", memory.Cut{Content: "x"}) != nil {
		t.Error("cut added to unknown scene")
	}
}

func TestReorderCuts(t *testing.T) {
	doc := newDoc()
	sc := Add(doc, memory.Scene{Title: "a"})
	AddCut(doc, sc.ID, memory.Cut{Type: "narration", Content: "one"})
	AddCut(doc, sc.ID, memory.Cut{Type: "narration", Content: "two"})
	AddCut(doc, sc.ID, memory.Cut{Type: "narration", Content: "three"})

	if err := ReorderCuts(doc, sc.ID, []int{2, 0, 1}); err != nil {
		t.Fatal(err)
	}
	got := []string{sc.Cuts[0].Content, sc.Cuts[1].Content, sc.Cuts[2].Content}
	want := []string{"three", "one", "two"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cuts after reorder = %v, want %v", got, want)
		}
		if sc.Cuts[i].Order != i {
			t.Errorf("cut %d has order %d", i, sc.Cuts[i].Order)
		}
	}

	tests := []struct {
		name    string
		indexes []int
	}{
		{"wrong length", []int{0, 1}},
		{"duplicate index", []int{0, 0, 1}},
		{"out of range", []int{0, 1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ReorderCuts(doc, sc.ID, tt.indexes); err == nil {
				t.Error("expected failure")
			}
		})
	}
}

func TestEmotionTagIdempotency(t *testing.T) {
	doc := newDoc()
	sc := Add(doc, memory.Scene{Title: "a"})

	if !AddEmotionTag(doc, sc.ID, "설렘") || !AddEmotionTag(doc, sc.ID, "설렘") {
		t.Fatal("tag add failed")
	}
	if len(sc.Emotions) != 1 {
		t.Errorf("tag list grew on duplicate add: %v", sc.Emotions)
	}
	if !RemoveEmotionTag(doc, sc.ID, "없는태그") {
		t.Error("removing absent tag should succeed")
	}
	if !RemoveEmotionTag(doc, sc.ID, "설렘") {
		t.Fatal("tag remove failed")
	}
	if len(sc.Emotions) != 0 {
		t.Errorf("tag not removed: %v", sc.Emotions)
	}
	if AddEmotionTag(doc, "ghost", "x") {
		t.Error("tagging unknown scene reported success")
	}
}

func TestQueries(t *testing.T) {
	doc := newDoc()
	a := Add(doc, memory.Scene{Title: "a", Chapter: "1", Characters: []string{"서연"}})
	b := Add(doc, memory.Scene{Title: "b", Chapter: "2", Characters: []string{"서연", "민준"}})
	Add(doc, memory.Scene{Title: "c", Chapter: "1"})
	AddEmotionTag(doc, a.ID, "불안")
	AddEmotionTag(doc, b.ID, "설렘")

	if got := ByChapter(doc, "1"); len(got) != 2 {
		t.Errorf("ByChapter = %d scenes", len(got))
	}
	if got := ByCharacter(doc, "민준"); len(got) != 1 || got[0].ID != b.ID {
		t.Errorf("ByCharacter wrong: %v", got)
	}
	if got := ByEmotion(doc, "불안"); len(got) != 1 || got[0].ID != a.ID {
		t.Errorf("ByEmotion wrong: %v", got)
	}
}

func TestEmotionStats(t *testing.T) {
	doc := newDoc()
	a := Add(doc, memory.Scene{Title: "a"})
	b := Add(doc, memory.Scene{Title: "b"})
	c := Add(doc, memory.Scene{Title: "c"})
	AddEmotionTag(doc, a.ID, "설렘")
	AddEmotionTag(doc, b.ID, "설렘")
	AddEmotionTag(doc, c.ID, "불안")

	stats := EmotionStats(doc)
	if len(stats) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(stats))
	}
	if stats[0].Tag != "설렘" || stats[0].Count != 2 {
		t.Errorf("top row = %+v", stats[0])
	}
}

func TestFlow(t *testing.T) {
	doc := newDoc()
	a := Add(doc, memory.Scene{Title: "첫 만남", Chapter: "1", Characters: []string{"서연", "민준"}})
	Add(doc, memory.Scene{Title: "재회"})
	AddCut(doc, a.ID, memory.Cut{Type: "narration", Content: "x"})
	AddEmotionTag(doc, a.ID, "설렘")

	flow := Flow(doc)
	if len(flow) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(flow))
	}
	if flow[0].Position != 1 || flow[0].Emotion != "설렘" || flow[0].CutCount != 1 {
		t.Errorf("first entry = %+v", flow[0])
	}
	if flow[1].Position != 2 || flow[1].Emotion != "unset" {
		t.Errorf("second entry = %+v", flow[1])
	}
}
