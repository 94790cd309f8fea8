package vectorizer

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// loadIDF reads a safetensors file containing a single 1-D "idf" tensor of
// dtype F32: the inverse-document-frequency weight per vocabulary term.
func loadIDF(path string) ([]float32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("idf: %w", err)
	}
	if len(data) < 8 {
		return nil, fmt.Errorf("idf: file too small: %d bytes", len(data))
	}

	// Parse safetensors header: 8-byte LE uint64 header length, then JSON.
	headerLen := binary.LittleEndian.Uint64(data[:8])
	if uint64(len(data)) < 8+headerLen {
		return nil, fmt.Errorf("idf: header length %d exceeds file size", headerLen)
	}

	var header map[string]json.RawMessage
	if err := json.Unmarshal(data[8:8+headerLen], &header); err != nil {
		return nil, fmt.Errorf("idf: failed to parse header: %w", err)
	}

	raw, ok := header["idf"]
	if !ok {
		return nil, fmt.Errorf("idf: tensor 'idf' not found in header")
	}

	var meta struct {
		Dtype       string `json:"dtype"`
		Shape       []int  `json:"shape"`
		DataOffsets [2]int `json:"data_offsets"`
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("idf: failed to parse tensor metadata: %w", err)
	}

	if meta.Dtype != "F32" {
		return nil, fmt.Errorf("idf: expected dtype F32, got %s", meta.Dtype)
	}
	if len(meta.Shape) != 1 {
		return nil, fmt.Errorf("idf: expected 1D tensor, got shape %v", meta.Shape)
	}

	numFloats := meta.Shape[0]
	expectedBytes := numFloats * 4

	dataStart := int(8+headerLen) + meta.DataOffsets[0]
	dataEnd := int(8+headerLen) + meta.DataOffsets[1]
	if dataEnd-dataStart != expectedBytes {
		return nil, fmt.Errorf("idf: data size %d doesn't match shape %v",
			dataEnd-dataStart, meta.Shape)
	}
	if dataEnd > len(data) {
		return nil, fmt.Errorf("idf: data range [%d:%d] exceeds file size %d",
			dataStart, dataEnd, len(data))
	}

	// Reinterpret raw bytes as float32 slice.
	weights := make([]float32, numFloats)
	for i := range weights {
		bits := binary.LittleEndian.Uint32(data[dataStart+i*4 : dataStart+i*4+4])
		weights[i] = math.Float32frombits(bits)
	}

	return weights, nil
}
