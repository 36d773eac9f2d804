package report

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
)

// Artifact file names, fixed relative paths the rendering page fetches.
const (
	SummaryFile  = "summary.json"
	TopWordsFile = "top_words.json"
	BigramsFile  = "bigrams.json"
	LogOddsFile  = "log_odds.json"
	ManifestFile = "manifest.json"
)

// Manifest records one generation run
type Manifest struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Input       string    `json:"input"`
	TopK        int       `json:"top_k"`
	Files       []string  `json:"files"`
}

// Writer persists generated assets into an output directory
type Writer struct {
	outDir  string
	entropy *ulid.MonotonicEntropy
}

// NewWriter creates a writer for the given directory, creating it if needed
func NewWriter(outDir string) (*Writer, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", outDir, err)
	}
	return &Writer{
		outDir:  outDir,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Write persists all artifacts plus a manifest and returns the manifest.
// input names the dataset the assets were generated from.
func (w *Writer) Write(assets Assets, input string) (Manifest, error) {
	files := map[string]interface{}{
		SummaryFile:  assets.Summary,
		TopWordsFile: assets.TopWords,
		BigramsFile:  assets.Bigrams,
		LogOddsFile:  assets.Associations,
	}

	names := make([]string, 0, len(files)+1)
	for _, name := range []string{SummaryFile, TopWordsFile, BigramsFile, LogOddsFile} {
		if err := w.writeJSON(name, files[name]); err != nil {
			return Manifest{}, err
		}
		names = append(names, name)
	}

	manifest := Manifest{
		RunID:       ulid.MustNew(ulid.Now(), w.entropy).String(),
		GeneratedAt: time.Now().UTC(),
		Input:       input,
		TopK:        assets.Summary.TopK,
		Files:       append(names, ManifestFile),
	}
	if err := w.writeJSON(ManifestFile, manifest); err != nil {
		return Manifest{}, err
	}
	return manifest, nil
}

func (w *Writer) writeJSON(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(w.outDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
