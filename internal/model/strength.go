package model

// StrengthRequest asks for the rating of an arbitrary password.
type StrengthRequest struct {
	Password string `json:"password" validate:"max=1024"`
}

// ClassPresence reports which character classes a password contains.
type ClassPresence struct {
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Digit     bool `json:"digit"`
	Symbol    bool `json:"symbol"`
}

// EstimateResponse carries the zxcvbn guessability estimate.
type EstimateResponse struct {
	Score       int     `json:"score"`
	EntropyBits float64 `json:"entropy_bits"`
	CrackTime   string  `json:"crack_time"`
}

// StrengthResponse is the full breakdown of a strength evaluation.
type StrengthResponse struct {
	StrengthSummary
	Length      int              `json:"length"`
	LengthScore int              `json:"length_score"`
	Diversity   int              `json:"diversity"`
	TotalScore  int              `json:"total_score"`
	Classes     ClassPresence    `json:"classes"`
	Estimate    EstimateResponse `json:"estimate"`
}
