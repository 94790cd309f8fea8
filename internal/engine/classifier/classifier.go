// Package classifier runs the pre-trained emotion classifier artifact.
// The artifact is an ONNX model with a single 2-D float input (the TF-IDF
// feature vector) and a single 2-D float output (one decision score per
// emotion class).
package classifier

import "fmt"

// Result holds the outcome of classifying a single feature vector.
type Result struct {
	Index int     // winning class index
	Score float32 // raw decision score of the winning class
}

// Classifier maps a feature vector to a class index.
type Classifier interface {
	Predict(vec []float32) (Result, error)
	FeatureDim() int
	NumClasses() int
	Close() error
}

// ONNXClassifier wraps an ONNX Runtime session for the classifier artifact.
// Read-only after construction; safe for concurrent use.
type ONNXClassifier struct {
	session *onnxSession
}

// New loads the classifier artifact and creates an inference session.
func New(modelPath string) (*ONNXClassifier, error) {
	sess, err := newONNXSession(modelPath)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	return &ONNXClassifier{session: sess}, nil
}

// FeatureDim returns the expected input vector dimensionality.
func (c *ONNXClassifier) FeatureDim() int {
	return int(c.session.featureDim)
}

// NumClasses returns the number of output classes.
func (c *ONNXClassifier) NumClasses() int {
	return int(c.session.numClasses)
}

// Predict scores a single feature vector and returns the argmax class.
// The model's decision function is opaque; only the winning index and its
// score are surfaced.
func (c *ONNXClassifier) Predict(vec []float32) (Result, error) {
	if int64(len(vec)) != c.session.featureDim {
		return Result{}, fmt.Errorf("classifier: feature dim %d != model input dim %d",
			len(vec), c.session.featureDim)
	}

	scores, err := c.session.infer(vec)
	if err != nil {
		return Result{}, fmt.Errorf("classifier: %w", err)
	}

	idx := argmax(scores)
	return Result{Index: idx, Score: scores[idx]}, nil
}

// Close releases ONNX Runtime resources.
func (c *ONNXClassifier) Close() error {
	if c.session != nil {
		return c.session.close()
	}
	return nil
}

// argmax returns the index of the largest score. Ties resolve to the lowest
// index, matching the trained artifact's own argmax convention.
func argmax(scores []float32) int {
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return best
}
