package character

import (
	"testing"

	"github.com/vampirenirmal/writermem/internal/memory"
)

func TestClassify(t *testing.T) {
	cls := NewPatternClassifier()
	tests := []struct {
		name string
		line string
		want string
	}{
		{"formal", "처음 뵙겠습니다. 잘 부탁드립니다.", "formal"},
		{"formal question", "어디로 가야 합니까?", "formal"},
		{"informal", "오늘 날씨가 좋네요. 같이 걸을까요?", "informal"},
		{"casual", "뭐야, 너 진짜 몰랐어? 말도 안 돼.", "casual"},
		{"no ending matched", "음...", "mixed"},
		{"tie is mixed", "알겠습니다. 근데 왜요?", "mixed"},
		{"empty", "", "mixed"},
		{"majority wins", "갈게요. 기다려요. 빨리 와.", "informal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cls.Classify(tt.line); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestLintDialogue(t *testing.T) {
	restrained := &memory.Character{
		Name:        "서연",
		Tone:        "차분하고 담담한 말투",
		SpeechLevel: "formal",
		Keywords:    []string{"서고", "밤"},
	}

	tests := []struct {
		name       string
		c          *memory.Character
		line       string
		wantStatus string
	}{
		{
			"all pass",
			restrained,
			"밤의 서고에서 기다리겠습니다.",
			"pass",
		},
		{
			"one failure warns",
			restrained,
			"서고 열쇠는 여기 있습니다!! 지금 바로요!!",
			"warn", // tone fails, speech and keyword pass
		},
		{
			"two failures fail",
			restrained,
			"야!! 빨리 와!! 늦었잖아!!",
			"fail",
		},
		{
			"mixed detection always passes speech",
			restrained,
			"그 서고, 밤에도 열릴까",
			"pass",
		},
		{
			"no keywords passes vacuously",
			&memory.Character{Name: "민준", SpeechLevel: "casual"},
			"어디야? 빨리 와.",
			"pass",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LintDialogue(tt.c, tt.line, nil)
			if result.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q, checks: %+v", result.Status, tt.wantStatus, result.Checks)
			}
			if len(result.Checks) != 3 {
				t.Errorf("expected 3 checks, got %d", len(result.Checks))
			}
		})
	}
}

func TestRestrainedToneDetection(t *testing.T) {
	tests := []struct {
		tone string
		want bool
	}{
		{"차분하고 담담한 말투", true},
		{"quiet and restrained", true},
		{"폭발적이고 시끄러운", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isRestrainedTone(tt.tone); got != tt.want {
			t.Errorf("isRestrainedTone(%q) = %v", tt.tone, got)
		}
	}
}
