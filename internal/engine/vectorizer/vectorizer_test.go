package vectorizer

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// writeIDFFixture builds a safetensors file holding a 1-D F32 "idf" tensor.
func writeIDFFixture(t *testing.T, dir string, weights []float32) string {
	t.Helper()

	header := fmt.Sprintf(`{"idf":{"dtype":"F32","shape":[%d],"data_offsets":[0,%d]}}`,
		len(weights), len(weights)*4)

	buf := make([]byte, 8, 8+len(header)+len(weights)*4)
	binary.LittleEndian.PutUint64(buf, uint64(len(header)))
	buf = append(buf, header...)
	for _, w := range weights {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(w))
		buf = append(buf, b[:]...)
	}

	path := filepath.Join(dir, "tfidf_idf.safetensors")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write idf fixture: %v", err)
	}
	return path
}

func writeVocabFixture(t *testing.T, dir string, terms ...string) string {
	t.Helper()
	path := filepath.Join(dir, "tfidf_vocab.txt")
	data := ""
	for _, term := range terms {
		data += term + "\n"
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write vocab fixture: %v", err)
	}
	return path
}

func newTestTFIDF(t *testing.T, terms []string, idf []float32) *TFIDF {
	t.Helper()
	dir := t.TempDir()
	vocabPath := writeVocabFixture(t, dir, terms...)
	idfPath := writeIDFFixture(t, dir, idf)
	tf, err := New(vocabPath, idfPath)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return tf
}

func TestNew_DimMismatch(t *testing.T) {
	dir := t.TempDir()
	vocabPath := writeVocabFixture(t, dir, "happy", "sad")
	idfPath := writeIDFFixture(t, dir, []float32{1, 2, 3})

	if _, err := New(vocabPath, idfPath); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

func TestNew_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	idfPath := writeIDFFixture(t, dir, []float32{1})

	if _, err := New(filepath.Join(dir, "nope.txt"), idfPath); err == nil {
		t.Fatal("expected error for missing vocab")
	}

	vocabPath := writeVocabFixture(t, dir, "happy")
	if _, err := New(vocabPath, filepath.Join(dir, "nope.safetensors")); err == nil {
		t.Fatal("expected error for missing idf tensor")
	}
}

func TestLoadIDF_Corrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.safetensors")
	if err := os.WriteFile(path, []byte("junk"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := loadIDF(path); err == nil {
		t.Fatal("expected error for corrupt safetensors file")
	}
}

func TestTransform_Values(t *testing.T) {
	tf := newTestTFIDF(t,
		[]string{"happy", "sad", "calm"},
		[]float32{2, 1, 1},
	)

	// "happy happy sad": tf*idf = [4, 1, 0], L2 norm = sqrt(17).
	vec := tf.Transform("happy happy sad")
	if len(vec) != 3 {
		t.Fatalf("expected dim 3, got %d", len(vec))
	}
	norm := float32(math.Sqrt(17))
	want := []float32{4 / norm, 1 / norm, 0}
	for i := range want {
		if diff := math.Abs(float64(vec[i] - want[i])); diff > 1e-6 {
			t.Errorf("vec[%d] = %f, want %f", i, vec[i], want[i])
		}
	}
}

func TestTransform_L2Norm(t *testing.T) {
	tf := newTestTFIDF(t,
		[]string{"happy", "sad", "calm"},
		[]float32{1.5, 0.5, 2},
	)

	vec := tf.Transform("calm happy calm")
	var sumSq float64
	for _, x := range vec {
		sumSq += float64(x) * float64(x)
	}
	if math.Abs(sumSq-1) > 1e-6 {
		t.Errorf("squared norm = %f, want 1", sumSq)
	}
}

func TestTransform_EmptyAndUnknown(t *testing.T) {
	tf := newTestTFIDF(t, []string{"happy"}, []float32{1})

	for _, in := range []string{"", "completely unknown words"} {
		vec := tf.Transform(in)
		if len(vec) != tf.Dim() {
			t.Fatalf("Transform(%q) dim = %d, want %d", in, len(vec), tf.Dim())
		}
		for i, x := range vec {
			if x != 0 {
				t.Errorf("Transform(%q)[%d] = %f, want 0", in, i, x)
			}
		}
	}
}

func TestTransform_Deterministic(t *testing.T) {
	tf := newTestTFIDF(t,
		[]string{"happy", "sad", "calm", "tired"},
		[]float32{1, 2, 3, 4},
	)

	a := tf.Transform("tired calm tired sad")
	b := tf.Transform("tired calm tired sad")
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic transform at index %d: %f != %f", i, a[i], b[i])
		}
	}
}
