package model

// RoutineRequest represents the request payload for generating a routine.
type RoutineRequest struct {
	SkinType string `json:"skin_type" validate:"required"`
	Concern  string `json:"concern" validate:"required"`
}

// Routine holds the ordered morning and night product sequences.
type Routine struct {
	Morning []Product `json:"morning"`
	Night   []Product `json:"night"`
}
