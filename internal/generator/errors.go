package generator

import (
	"errors"
	"fmt"
)

// ErrorCode tags the stage whose minimum-output threshold was not met.
type ErrorCode string

const (
	CodeInsufficientStructure ErrorCode = "INSUFFICIENT_TEXT_STRUCTURE"
	CodeInsufficientFacts     ErrorCode = "INSUFFICIENT_FACTS"
	CodeGenerationFailed      ErrorCode = "QUESTION_GENERATION_FAILED"
	CodeInsufficientQuestions ErrorCode = "INSUFFICIENT_QUESTIONS"
)

var codeMessages = map[ErrorCode]string{
	CodeInsufficientStructure: "the document does not have enough structure to build a quiz",
	CodeInsufficientFacts:     "not enough factual statements were found in the document",
	CodeGenerationFailed:      "no valid questions could be generated from the document",
	CodeInsufficientQuestions: "too few valid questions could be generated from the document",
}

// GenerationError aborts the current request. Count records how many items
// the failing stage did produce.
type GenerationError struct {
	Code    ErrorCode
	Message string
	Count   int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %s (got %d)", e.Code, e.Message, e.Count)
}

// Is matches any GenerationError carrying the same code, so the package
// sentinels work with errors.Is.
func (e *GenerationError) Is(target error) bool {
	var t *GenerationError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

func newGenerationError(code ErrorCode, count int) *GenerationError {
	return &GenerationError{Code: code, Message: codeMessages[code], Count: count}
}

var (
	ErrInsufficientStructure = newGenerationError(CodeInsufficientStructure, 0)
	ErrInsufficientFacts     = newGenerationError(CodeInsufficientFacts, 0)
	ErrGenerationFailed      = newGenerationError(CodeGenerationFailed, 0)
	ErrInsufficientQuestions = newGenerationError(CodeInsufficientQuestions, 0)

	ErrInvalidDifficulty = errors.New("difficulty must be 'easy', 'medium', or 'hard'")
)
