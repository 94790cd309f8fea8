package classifier

import (
	"fmt"
	"path/filepath"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ortEnv manages global ONNX Runtime initialization (process-wide singleton).
var ortEnv struct {
	once sync.Once
	err  error
}

// initORT initializes the ONNX Runtime environment. Safe to call multiple
// times; only the first call has any effect.
func initORT(libPath string) error {
	ortEnv.once.Do(func() {
		ort.SetSharedLibraryPath(libPath)
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// onnxSession wraps a DynamicAdvancedSession for the linear emotion model.
type onnxSession struct {
	session    *ort.DynamicAdvancedSession
	inputName  string
	outputName string
	featureDim int64
	numClasses int64
}

// newONNXSession loads the ONNX model and creates an inference session.
// It validates the model's input/output tensor names and shapes.
func newONNXSession(modelPath string) (*onnxSession, error) {
	// Resolve the ONNX Runtime shared library path. We ship it alongside the
	// model files in the models/ directory.
	modelDir := filepath.Dir(modelPath)
	libPath := filepath.Join(modelDir, "libonnxruntime.so")

	if err := initORT(libPath); err != nil {
		return nil, fmt.Errorf("onnx: failed to initialize runtime: %w", err)
	}

	// Inspect model to discover tensor names and shapes.
	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to read model info: %w", err)
	}

	// Validate input — expect a single 2D float tensor [batch, featureDim].
	if len(inputs) != 1 {
		return nil, fmt.Errorf("onnx: expected 1 input tensor, got %d", len(inputs))
	}
	inDims := inputs[0].Dimensions
	if len(inDims) != 2 {
		return nil, fmt.Errorf("onnx: expected 2D input tensor, got %v", inDims)
	}
	featureDim := inDims[1]
	if featureDim <= 0 {
		return nil, fmt.Errorf("onnx: model input dim is dynamic (%v); a fixed feature dim is required", inDims)
	}

	// Validate output — expect a single 2D tensor [batch, numClasses].
	if len(outputs) == 0 {
		return nil, fmt.Errorf("onnx: model has no outputs")
	}
	outDims := outputs[0].Dimensions
	if len(outDims) != 2 {
		return nil, fmt.Errorf("onnx: expected 2D output tensor, got %v", outDims)
	}
	numClasses := outDims[1]
	if numClasses <= 0 {
		return nil, fmt.Errorf("onnx: model output dim is dynamic (%v); a fixed class count is required", outDims)
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session options: %w", err)
	}
	defer opts.Destroy()
	opts.SetIntraOpNumThreads(1)
	opts.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{inputs[0].Name},
		[]string{outputs[0].Name},
		opts,
	)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session: %w", err)
	}

	return &onnxSession{
		session:    session,
		inputName:  inputs[0].Name,
		outputName: outputs[0].Name,
		featureDim: featureDim,
		numClasses: numClasses,
	}, nil
}

// infer runs a single inference call for one feature vector and returns the
// per-class decision scores.
func (s *onnxSession) infer(features []float32) ([]float32, error) {
	inShape := ort.NewShape(1, s.featureDim)
	tIn, err := ort.NewTensor(inShape, features)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create input tensor: %w", err)
	}
	defer tIn.Destroy()

	outShape := ort.NewShape(1, s.numClasses)
	tOut, err := ort.NewEmptyTensor[float32](outShape)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create output tensor: %w", err)
	}
	defer tOut.Destroy()

	err = s.session.Run(
		[]ort.Value{tIn},
		[]ort.Value{tOut},
	)
	if err != nil {
		return nil, fmt.Errorf("onnx: inference failed: %w", err)
	}

	// Copy data out before tensor is destroyed.
	src := tOut.GetData()
	result := make([]float32, len(src))
	copy(result, src)
	return result, nil
}

// close releases the ONNX session resources.
func (s *onnxSession) close() error {
	return s.session.Destroy()
}
