// Package tips maps emotions to short advisory texts shown after an
// analysis, plus the crisis-resource link for heavy emotions.
package tips

// CrisisURL points at a helpline directory, shown alongside tips for the
// emotions in crisisEmotions.
const CrisisURL = "https://www.thelivelovelaughfoundation.org/find-help/helplines"

// defaultTip covers every emotion without a dedicated entry.
const defaultTip = "You're doing great just by checking in with yourself"

var tipTable = map[string]string{
	"sadness":        "Try listening to uplifting music - sometimes vibrations heal better than words",
	"anger":          "Do a 5-minute intense workout - channel that energy productively!",
	"fear":           "Name your fear and challenge its probability - most fears never happen",
	"joy":            "Celebrate this moment! Text someone who amplifies your happiness",
	"neutral":        "Try something new - novelty sparks emotional growth",
	"grief":          "Light a candle and honor your feelings - grief is love with nowhere to go",
	"disappointment": "Remember: This feeling is temporary like weather - brighter days are coming",
	"excitement":     "Channel this energy into a creative project!",
	"love":           "Send a heartfelt message to someone you cherish",
}

// crisisEmotions triggers the crisis-resource link. "despair" is not a value
// the classifier can emit but is kept so manually entered emotions match the
// historic behavior.
var crisisEmotions = map[string]struct{}{
	"sadness": {},
	"grief":   {},
	"anger":   {},
	"despair": {},
}

// For returns the advisory text for an emotion, falling back to a generic
// encouragement.
func For(emotion string) string {
	if tip, ok := tipTable[emotion]; ok {
		return tip
	}
	return defaultTip
}

// NeedsCrisisResources reports whether the crisis-resource link should be
// shown for this emotion.
func NeedsCrisisResources(emotion string) bool {
	_, ok := crisisEmotions[emotion]
	return ok
}
