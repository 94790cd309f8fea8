// Package mheda provides an emotion analysis engine for journal text.
// It vectorizes free-form diary entries with a TF-IDF model and classifies
// them against a fixed 28-emotion label set.
//
// Quick start:
//
//	m, err := mheda.New(mheda.WithModelDir("models/"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer m.Close()
//
//	result, _ := m.Analyze(ctx, "I finally finished the marathon and I am so proud")
//	fmt.Println(result.Emotion, result.Tip) // pride ...
//
// The Mheda instance is safe for concurrent use. Create once, reuse across
// requests.
package mheda
