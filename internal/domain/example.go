package domain

// GeneratedExample is one example sentence parsed from model output.
type GeneratedExample struct {
	En string
	Ja *string
}
