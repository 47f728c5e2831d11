package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length" validate:"gte=0,lte=128"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
	Count     int   `json:"count" validate:"gte=0"`
}

// StrengthSummary is the tier attached to a generated password.
type StrengthSummary struct {
	Tier      string `json:"tier"`
	Label     string `json:"label"`
	MinLength int    `json:"min_length"`
}

// GeneratedPassword is a single generated password with its rating.
type GeneratedPassword struct {
	Password string          `json:"password"`
	Length   int             `json:"length"`
	Strength StrengthSummary `json:"strength"`
}

// GenerateResponse represents a password generation response. The first
// password is mirrored at the top level for single-password clients.
type GenerateResponse struct {
	Password  string              `json:"password"`
	Length    int                 `json:"length"`
	Strength  StrengthSummary     `json:"strength"`
	Classes   []string            `json:"classes"`
	Passwords []GeneratedPassword `json:"passwords"`
}

// ClassInfo describes one character class.
type ClassInfo struct {
	Name     string `json:"name"`
	Alphabet string `json:"alphabet"`
	Size     int    `json:"size"`
}
