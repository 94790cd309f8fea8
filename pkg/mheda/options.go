package mheda

import "path/filepath"

const defaultStopwordsURL = "https://raw.githubusercontent.com/stopwords-iso/stopwords-en/master/stopwords-en.txt"

type options struct {
	modelDir      string
	modelPath     string
	vocabPath     string
	idfPath       string
	stopwordsPath string
	stopwordsURL  string
}

// Option configures a Mheda instance.
type Option func(*options)

// WithModelDir sets the directory containing model files.
// Expects: emotion_model.onnx, tfidf_vocab.txt, tfidf_idf.safetensors,
// stopwords.txt.
func WithModelDir(dir string) Option {
	return func(o *options) {
		o.modelDir = dir
	}
}

// WithModelPaths sets explicit paths for each model file.
// Use this when model files aren't in the default directory layout.
func WithModelPaths(model, vocab, idf string) Option {
	return func(o *options) {
		o.modelPath = model
		o.vocabPath = vocab
		o.idfPath = idf
	}
}

// WithStopwords sets the stop word list location. path is tried first;
// when the file is missing the list is fetched from url and cached at path.
func WithStopwords(path, url string) Option {
	return func(o *options) {
		o.stopwordsPath = path
		o.stopwordsURL = url
	}
}

func defaultOptions() options {
	return options{
		stopwordsURL: defaultStopwordsURL,
	}
}

// resolvePaths determines the model, vocab, IDF and stop word file paths
// from the configured options. Explicit paths take precedence over modelDir.
func resolvePaths(o options) (model, vocab, idf, stopwords string) {
	dir := o.modelDir
	if dir == "" {
		dir = "models"
	}
	stopwords = o.stopwordsPath
	if stopwords == "" {
		stopwords = filepath.Join(dir, "stopwords.txt")
	}
	if o.modelPath != "" {
		return o.modelPath, o.vocabPath, o.idfPath, stopwords
	}
	return filepath.Join(dir, "emotion_model.onnx"),
		filepath.Join(dir, "tfidf_vocab.txt"),
		filepath.Join(dir, "tfidf_idf.safetensors"),
		stopwords
}
