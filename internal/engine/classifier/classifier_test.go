package classifier

import (
	"os"
	"testing"
)

const testModelPath = "../../../models/emotion_model.onnx"

func skipIfNoModel(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(testModelPath); os.IsNotExist(err) {
		t.Skip("classifier artifact not available, skipping integration test")
	}
}

func TestArgmax(t *testing.T) {
	tests := []struct {
		name   string
		scores []float32
		want   int
	}{
		{"single", []float32{0.5}, 0},
		{"last wins", []float32{-1, 0, 2.5}, 2},
		{"first wins", []float32{3, 1, 2}, 0},
		{"all negative", []float32{-5, -2, -9}, 1},
		{"tie resolves to lowest index", []float32{1, 7, 7, 3}, 1},
		{"zero vector input scores", []float32{0, 0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := argmax(tt.scores); got != tt.want {
				t.Errorf("argmax(%v) = %d, want %d", tt.scores, got, tt.want)
			}
		})
	}
}

func TestNew_MissingArtifact(t *testing.T) {
	if _, err := New("testdata/does_not_exist.onnx"); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}

func TestPredict_RealModel(t *testing.T) {
	skipIfNoModel(t)

	cls, err := New(testModelPath)
	if err != nil {
		t.Fatalf("failed to load classifier: %v", err)
	}
	defer cls.Close()

	if cls.NumClasses() != 28 {
		t.Errorf("NumClasses() = %d, want 28", cls.NumClasses())
	}

	vec := make([]float32, cls.FeatureDim())
	res, err := cls.Predict(vec)
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}
	if res.Index < 0 || res.Index >= cls.NumClasses() {
		t.Errorf("Index = %d, want [0, %d)", res.Index, cls.NumClasses())
	}

	// Deterministic for a fixed artifact and input.
	res2, err := cls.Predict(vec)
	if err != nil {
		t.Fatalf("second Predict() error: %v", err)
	}
	if res2.Index != res.Index || res2.Score != res.Score {
		t.Errorf("non-deterministic prediction: %+v vs %+v", res, res2)
	}
}

func TestPredict_WrongDim(t *testing.T) {
	skipIfNoModel(t)

	cls, err := New(testModelPath)
	if err != nil {
		t.Fatalf("failed to load classifier: %v", err)
	}
	defer cls.Close()

	if _, err := cls.Predict(make([]float32, cls.FeatureDim()+1)); err == nil {
		t.Fatal("expected error for wrong feature dim")
	}
}
