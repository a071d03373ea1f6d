package model

// RoundResult is a value rounded to two decimal places.
type RoundResult struct {
	Input     string  `json:"input"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// FractionResult holds the two-decimal rendering of a value and the integer value of
// the digits after its separator.
type FractionResult struct {
	Input     string `json:"input"`
	Rendering string `json:"rendering"`
	Digits    int    `json:"digits"`
}
