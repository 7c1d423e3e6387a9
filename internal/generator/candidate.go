package generator

import (
	"github.com/quizforge/backend/internal/models"
)

// Family groups candidates for the selector's quota allocation.
type Family string

const (
	FamilyExam       Family = "exam"
	FamilyMSQ        Family = "msq"
	FamilyFactual    Family = "factual"
	FamilyDefinition Family = "definition"
	FamilyComparison Family = "comparison"
	FamilyTrueFalse  Family = "truefalse"
)

// quotaFamily folds definition and comparison questions into factual MCQ.
func (f Family) quotaFamily() Family {
	switch f {
	case FamilyDefinition, FamilyComparison:
		return FamilyFactual
	}
	return f
}

// Candidate is a question before selection. Correct holds indices into
// Options; single-answer candidates carry exactly one.
type Candidate struct {
	Prompt     string
	Options    []string
	Correct    []int
	Type       models.QuestionType
	Difficulty models.Difficulty
	Family     Family
	Subject    string
}

// Input is the read-only view every generator works from.
type Input struct {
	Chunks     []Chunk
	Facts      []Fact
	Difficulty models.Difficulty
	Rand       Rand
	Tuning     Tuning
}

func (in Input) formatter() Formatter { return NewFormatter(in.Tuning) }

func (in Input) synthesizer() *Synthesizer { return NewSynthesizer(in.Rand, in.Tuning) }

// sentences lists every chunk sentence in document order.
func (in Input) sentences() []string {
	var out []string
	for _, c := range in.Chunks {
		out = append(out, splitSentences(c.Text)...)
	}
	return out
}

// CountTable is a per-difficulty question count.
type CountTable struct {
	Easy, Medium, Hard int
}

func (t CountTable) For(d models.Difficulty) int {
	switch d {
	case models.DifficultyEasy:
		return t.Easy
	case models.DifficultyHard:
		return t.Hard
	default:
		return t.Medium
	}
}

var (
	FactualCounts    = CountTable{Easy: 5, Medium: 8, Hard: 12}
	DefinitionCounts = CountTable{Easy: 3, Medium: 5, Hard: 8}
	MSQCounts        = CountTable{Easy: 2, Medium: 3, Hard: 5}
	ExamCounts       = CountTable{Easy: 5, Medium: 10, Hard: 15}
	TrueFalseCounts  = CountTable{Easy: 3, Medium: 5, Hard: 7}
	ComparisonCounts = CountTable{Easy: 2, Medium: 3, Hard: 5}
)

// QuestionGenerator turns chunks and facts into candidates. Implementations
// keep their dedup state local and never mutate the input.
type QuestionGenerator struct {
	Family   Family
	Generate func(in Input) []Candidate
}

// primaryGenerators run on every request; ComparisonMCQ is supplementary.
var primaryGenerators = []QuestionGenerator{
	{FamilyFactual, FactualMCQ},
	{FamilyDefinition, DefinitionMCQ},
	{FamilyMSQ, MultiSelect},
	{FamilyExam, ExamStyle},
	{FamilyTrueFalse, TrueFalse},
}

// singleChoice shuffles options and returns a candidate whose answer points
// at the correct option's new position. The correct option must be at index
// 0 of set.
func singleChoice(in Input, prompt string, set *OptionSet, family Family, subject string) Candidate {
	items := set.Items()
	order := shuffled(in.Rand, indexRange(len(items)))
	options := make([]string, len(items))
	answer := 0
	for pos, from := range order {
		options[pos] = items[from]
		if from == 0 {
			answer = pos
		}
	}
	return Candidate{
		Prompt:     in.formatter().Question(prompt),
		Options:    options,
		Correct:    []int{answer},
		Type:       models.QuestionSingle,
		Difficulty: in.Difficulty,
		Family:     family,
		Subject:    subject,
	}
}

func indexRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
