// Package labels defines the fixed 28-emotion label table produced by the
// pre-trained classifier and resolves class indices to emotion names.
package labels

import (
	"errors"
	"fmt"
)

// ErrUnknownLabel is returned when a class index falls outside the label
// table. It indicates an artifact/table mismatch, not a user error.
var ErrUnknownLabel = errors.New("labels: index outside label table")

// table maps class index to emotion name. The order is fixed by the trained
// artifact and must never be reordered.
var table = [...]string{
	0:  "admiration",
	1:  "amusement",
	2:  "anger",
	3:  "annoyance",
	4:  "approval",
	5:  "caring",
	6:  "confusion",
	7:  "curiosity",
	8:  "desire",
	9:  "disappointment",
	10: "disapproval",
	11: "disgust",
	12: "embarrassment",
	13: "excitement",
	14: "fear",
	15: "gratitude",
	16: "grief",
	17: "joy",
	18: "love",
	19: "nervousness",
	20: "neutral",
	21: "optimism",
	22: "pride",
	23: "realization",
	24: "relief",
	25: "remorse",
	26: "sadness",
	27: "surprise",
}

// defaultColor is used for emotions without an entry in the color map.
const defaultColor = "#073B4C"

// colors assigns a display color to the most common emotions.
var colors = map[string]string{
	"joy":        "#FFD166",
	"love":       "#EF476F",
	"surprise":   "#06D6A0",
	"gratitude":  "#118AB2",
	"admiration": "#073B4C",
	"amusement":  "#FF9E6D",
	"anger":      "#FF6B6B",
	"sadness":    "#6A67CE",
	"fear":       "#4ECDC4",
	"neutral":    "#B8B8B8",
}

// Count returns the number of emotion labels.
func Count() int {
	return len(table)
}

// Resolve maps a class index to its emotion name. Any index outside
// [0, Count) returns an error wrapping ErrUnknownLabel.
func Resolve(index int) (string, error) {
	if index < 0 || index >= len(table) {
		return "", fmt.Errorf("%w: %d", ErrUnknownLabel, index)
	}
	return table[index], nil
}

// Contains reports whether name is a value in the label table.
func Contains(name string) bool {
	for _, l := range table {
		if l == name {
			return true
		}
	}
	return false
}

// All returns the emotion names in index order.
func All() []string {
	out := make([]string, len(table))
	copy(out, table[:])
	return out
}

// Color returns the display color for an emotion, falling back to a neutral
// dark tone for emotions without a dedicated color.
func Color(emotion string) string {
	if c, ok := colors[emotion]; ok {
		return c
	}
	return defaultColor
}
