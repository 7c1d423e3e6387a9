package generator

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/quizforge/backend/internal/models"
)

// threeSectionDoc has three headed sections, each opening with an
// "X is a Y that does Z." sentence.
const threeSectionDoc = `PHOTOSYNTHESIS
Photosynthesis is a biological process that converts light energy into chemical energy. It takes place mainly in the leaves of green plants. The Calvin Cycle produces glucose from carbon dioxide in about 6 steps.

CELLULAR RESPIRATION
Cellular respiration is a metabolic pathway that releases energy stored in glucose. The mitochondria are organelles that produce about 36 molecules of ATP per glucose. The citric acid cycle was described by Hans Krebs in 1937.

ENZYMES
An enzyme is a protein catalyst that speeds up chemical reactions in cells. Enzymes are highly specific and each one binds a particular substrate. The lock and key model was proposed by Emil Fischer in 1894.
`

const ampleDoc = threeSectionDoc + `
PLANT STRUCTURE
A chloroplast is an organelle that captures sunlight for photosynthesis. The stomata are tiny pores that regulate gas exchange in leaves. Plant tissues include the epidermis, the xylem, the phloem, and the cortex.

GENETICS
DNA is a molecule that stores genetic information in all living organisms. Gregor Mendel published his experiments on pea plants in 1866. A gene is a segment of DNA that codes for a specific protein. The human genome contains about 20000 genes that control every inherited trait.
`

// narrativeDoc is well structured but carries no factual statements.
const narrativeDoc = `MORNING
We woke up early and walked slowly toward the quiet river. Birds drifted over the water while we talked about nothing much. Later we ate bread and cheese on the grassy bank.

AFTERNOON
Clouds gathered above the hills and the wind turned cold. We packed our bags quickly and hurried back along the narrow path. Rain started to fall just before we reached the car.

EVENING
We cooked soup and sat by the fire until late. Nobody wanted to talk much after the long walk. Eventually everyone drifted off to sleep in the warm cabin.
`

func mustInput(t *testing.T, text string, difficulty models.Difficulty, seed int64) Input {
	t.Helper()
	tuning := DefaultTuning()
	chunks, err := Segment(text, tuning)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	facts, err := ExtractFacts(chunks, tuning)
	if err != nil {
		t.Fatalf("ExtractFacts: %v", err)
	}
	return Input{Chunks: chunks, Facts: facts, Difficulty: difficulty, Rand: NewRand(seed), Tuning: tuning}
}

func chunkInput(text string, difficulty models.Difficulty, seed int64) Input {
	return Input{
		Chunks:     []Chunk{{Index: 0, Text: text}},
		Difficulty: difficulty,
		Rand:       NewRand(seed),
		Tuning:     DefaultTuning(),
	}
}

// checkQuestionInvariants asserts the properties every emitted question holds.
func checkQuestionInvariants(t *testing.T, q models.Question) {
	t.Helper()
	if n := len(q.Options); n != 2 && n != 4 {
		t.Errorf("question %d: %d options", q.ID, n)
	}
	if len(q.Answer.Indices) == 0 {
		t.Errorf("question %d: no answer", q.ID)
	}
	if q.Type == models.QuestionSingle && len(q.Answer.Indices) != 1 {
		t.Errorf("question %d: single question with %d answers", q.ID, len(q.Answer.Indices))
	}
	for _, idx := range q.Answer.Indices {
		if idx < 0 || idx >= len(q.Options) {
			t.Errorf("question %d: answer %d out of range", q.ID, idx)
		}
	}
	seen := make(map[string]bool)
	for _, o := range q.Options {
		key := strings.ToLower(strings.TrimSpace(o))
		if seen[key] {
			t.Errorf("question %d: duplicate option %q", q.ID, o)
		}
		seen[key] = true
	}
	if q.Question == "" {
		t.Fatalf("question %d: empty prompt", q.ID)
	}
	if r, _ := utf8.DecodeRuneInString(q.Question); !unicode.IsUpper(r) {
		t.Errorf("question %d: prompt %q does not start upper-case", q.ID, q.Question)
	}
	if !strings.ContainsAny(q.Question[len(q.Question)-1:], ".?!") {
		t.Errorf("question %d: prompt %q lacks terminal punctuation", q.ID, q.Question)
	}
}
