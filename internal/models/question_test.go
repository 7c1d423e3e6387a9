package models

import (
	"encoding/json"
	"testing"
)

func TestAnswerJSON(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		want   string
	}{
		{"single", SingleAnswer(2), `2`},
		{"multiple", MultipleAnswer([]int{0, 3}), `[0,3]`},
		{"empty multiple", Answer{Multiple: true}, `[]`},
		{"unset single", Answer{}, `-1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.answer)
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tt.want {
				t.Errorf("Marshal = %s, want %s", b, tt.want)
			}
		})
	}
}

func TestAnswerUnmarshal(t *testing.T) {
	var q Question
	if err := json.Unmarshal([]byte(`{"id":1,"answer":[1,2],"type":"multiple"}`), &q); err != nil {
		t.Fatal(err)
	}
	if !q.Answer.Multiple || len(q.Answer.Indices) != 2 || q.Answer.Indices[1] != 2 {
		t.Errorf("multiple answer decoded as %+v", q.Answer)
	}

	if err := json.Unmarshal([]byte(`{"id":2,"answer": 3 ,"type":"single"}`), &q); err != nil {
		t.Fatal(err)
	}
	if q.Answer.Multiple || q.Answer.Index() != 3 {
		t.Errorf("single answer decoded as %+v", q.Answer)
	}

	if err := json.Unmarshal([]byte(`{"answer":"b"}`), &q); err == nil {
		t.Error("expected error for string answer")
	}
}

func TestDifficultyBudget(t *testing.T) {
	for d, want := range map[Difficulty]int{DifficultyEasy: 5, DifficultyMedium: 10, DifficultyHard: 15} {
		if got := d.QuestionBudget(); got != want {
			t.Errorf("%s budget = %d, want %d", d, got, want)
		}
	}
}
