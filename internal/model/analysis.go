package model

// Analysis is the engine's output for a single journal text.
type Analysis struct {
	Emotion    string  `json:"emotion"`    // resolved label name, e.g. "joy"
	Index      int     `json:"index"`      // class index in [0, 27]
	Score      float32 `json:"score"`      // raw decision score of the winning class
	Normalized string  `json:"normalized"` // cleaned text fed to the vectorizer
}
