package mheda

// Result is a classified journal entry.
// This is the stable public type — internal representations may evolve
// independently without breaking consumers.
type Result struct {
	Emotion         string  `json:"emotion"`                    // Leaf label: joy, sadness, neutral, etc.
	Score           float32 `json:"score"`                      // Raw decision score for the winning label
	Color           string  `json:"color"`                      // Display color for the label
	Tip             string  `json:"tip"`                        // Advisory text for the emotion
	CrisisResources string  `json:"crisis_resources,omitempty"` // Helpline link for heavy emotions
}
