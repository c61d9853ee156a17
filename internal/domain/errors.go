package domain

import "errors"

var (
	// ErrQuizNotFound indicates the quiz content could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrEmptyQuiz is returned when a quiz has no questions to play.
	ErrEmptyQuiz = errors.New("quiz has no questions")
	// ErrInvalidQuestion indicates malformed question content.
	ErrInvalidQuestion = errors.New("invalid question")
	// ErrInvalidAnswer marks input that is not one of the answer labels.
	ErrInvalidAnswer = errors.New("answer must be A, B, C, or D")
	// ErrInputClosed is returned when the input source has no more lines.
	ErrInputClosed = errors.New("input closed")
)
