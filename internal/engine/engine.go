// Package engine orchestrates the normalize → vectorize → predict → resolve
// pipeline that turns raw journal text into an emotion label.
package engine

import (
	"context"
	"fmt"

	"github.com/crimson-sun/mheda/internal/engine/classifier"
	"github.com/crimson-sun/mheda/internal/engine/labels"
	"github.com/crimson-sun/mheda/internal/engine/normalizer"
	"github.com/crimson-sun/mheda/internal/model"
)

// Vectorizer produces feature vectors from normalized text.
type Vectorizer interface {
	Transform(normalized string) []float32
	Dim() int
}

// Engine runs the inference pipeline. All components are read-only after
// construction; Analyze is safe for concurrent use.
type Engine struct {
	stopwords  *normalizer.Stopwords
	vectorizer Vectorizer
	classifier classifier.Classifier
}

// New creates an Engine and validates that the artifact pair and the label
// table agree on dimensions. A mismatch means inconsistent artifacts and no
// inference is possible.
func New(sw *normalizer.Stopwords, vec Vectorizer, cls classifier.Classifier) (*Engine, error) {
	if vec.Dim() != cls.FeatureDim() {
		return nil, fmt.Errorf("engine: vectorizer dim %d != classifier input dim %d",
			vec.Dim(), cls.FeatureDim())
	}
	if cls.NumClasses() != labels.Count() {
		return nil, fmt.Errorf("engine: classifier emits %d classes, label table has %d",
			cls.NumClasses(), labels.Count())
	}
	return &Engine{stopwords: sw, vectorizer: vec, classifier: cls}, nil
}

// Analyze classifies a single journal text. Empty normalized text is valid
// input — every token may be a stop word — and still yields a label. The
// context only bounds the one-time stop-word fetch on first use; inference
// itself is synchronous and single-shot.
func (e *Engine) Analyze(ctx context.Context, text string) (model.Analysis, error) {
	stop, err := e.stopwords.Load(ctx)
	if err != nil {
		return model.Analysis{}, fmt.Errorf("engine: %w", err)
	}

	normalized := normalizer.Normalize(text, stop)
	vec := e.vectorizer.Transform(normalized)

	res, err := e.classifier.Predict(vec)
	if err != nil {
		return model.Analysis{}, fmt.Errorf("engine: %w", err)
	}

	emotion, err := labels.Resolve(res.Index)
	if err != nil {
		return model.Analysis{}, fmt.Errorf("engine: %w", err)
	}

	return model.Analysis{
		Emotion:    emotion,
		Index:      res.Index,
		Score:      res.Score,
		Normalized: normalized,
	}, nil
}
