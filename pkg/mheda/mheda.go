package mheda

import (
	"context"
	"fmt"

	"github.com/crimson-sun/mheda/internal/engine"
	"github.com/crimson-sun/mheda/internal/engine/classifier"
	"github.com/crimson-sun/mheda/internal/engine/labels"
	"github.com/crimson-sun/mheda/internal/engine/normalizer"
	"github.com/crimson-sun/mheda/internal/engine/vectorizer"
	"github.com/crimson-sun/mheda/internal/httpclient"
	"github.com/crimson-sun/mheda/internal/tips"
)

// Mheda is an emotion analysis engine for journal text.
// Safe for concurrent use.
type Mheda struct {
	engine     *engine.Engine
	classifier *classifier.ONNXClassifier
}

// New creates a Mheda instance, loading the vectorizer and classifier
// artifacts. This is an expensive operation — create once, reuse across
// requests. The stop word list is loaded lazily on first Analyze.
func New(opts ...Option) (*Mheda, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	modelPath, vocabPath, idfPath, stopwordsPath := resolvePaths(o)

	vec, err := vectorizer.New(vocabPath, idfPath)
	if err != nil {
		return nil, fmt.Errorf("mheda: %w", err)
	}

	cls, err := classifier.New(modelPath)
	if err != nil {
		return nil, fmt.Errorf("mheda: %w", err)
	}

	sw := normalizer.NewStopwords(stopwordsPath, o.stopwordsURL, httpclient.New(""))

	eng, err := engine.New(sw, vec, cls)
	if err != nil {
		cls.Close()
		return nil, fmt.Errorf("mheda: %w", err)
	}

	return &Mheda{engine: eng, classifier: cls}, nil
}

// Analyze classifies a single journal entry and returns the emotion with
// its tip. Text with no signal after normalization still resolves to a
// label, usually neutral.
func (m *Mheda) Analyze(ctx context.Context, text string) (Result, error) {
	a, err := m.engine.Analyze(ctx, text)
	if err != nil {
		return Result{}, err
	}
	r := Result{
		Emotion: a.Emotion,
		Score:   a.Score,
		Color:   labels.Color(a.Emotion),
		Tip:     tips.For(a.Emotion),
	}
	if tips.NeedsCrisisResources(a.Emotion) {
		r.CrisisResources = tips.CrisisURL
	}
	return r, nil
}

// AnalyzeAll classifies multiple entries in order. A single failing entry
// aborts the batch.
func (m *Mheda) AnalyzeAll(ctx context.Context, texts []string) ([]Result, error) {
	results := make([]Result, len(texts))
	for i, t := range texts {
		r, err := m.Analyze(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		results[i] = r
	}
	return results, nil
}

// Labels returns the full emotion label set in index order.
func (m *Mheda) Labels() []string {
	return labels.All()
}

// Close releases model resources (ONNX runtime, memory).
// Must be called when the Mheda instance is no longer needed.
func (m *Mheda) Close() error {
	return m.classifier.Close()
}
