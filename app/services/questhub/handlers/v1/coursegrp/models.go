package coursegrp

import "github.com/ardanlabs/questhub/business/core/course"

// AppAnswer is the payload for answering a module quiz.
type AppAnswer struct {
	Option *int `json:"option" validate:"required,gte=0"`
}

// AppAnswerResult reports whether the answer was correct.
type AppAnswerResult struct {
	Correct bool            `json:"correct"`
	Course  course.Snapshot `json:"course"`
}
