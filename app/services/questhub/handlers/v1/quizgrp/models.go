package quizgrp

// AppAnswer is the payload for answering a question. An option of -1
// submits no answer.
type AppAnswer struct {
	Option *int `json:"option" validate:"required,gte=-1"`
}
