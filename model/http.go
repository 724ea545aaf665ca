package model

type NotesRequestBody struct {
	Notes Notes `json:"notes"`
}

// OperatorRequestBody.Index is a pointer so a missing field can be told
// apart from index 0.
type OperatorRequestBody struct {
	Index *int `json:"index"`
}

type ProgressionRequestBody struct {
	Notes     Notes  `json:"notes"`
	Operators string `json:"operators"`
}

type OperatorResponse struct {
	Index    int    `json:"index"`
	Operator string `json:"operator"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
	Kind  string `json:"kind,omitempty"`
}
