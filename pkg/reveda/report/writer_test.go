package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriterWritesAllAssets(t *testing.T) {
	dir := t.TempDir()

	writer, err := NewWriter(filepath.Join(dir, "assets"))
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	manifest, err := writer.Write(sampleAssets(t), "reviews.csv")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	if len(manifest.RunID) != 26 {
		t.Errorf("run id should be a ULID, got %q", manifest.RunID)
	}
	if manifest.Input != "reviews.csv" {
		t.Errorf("manifest input: got %q", manifest.Input)
	}

	for _, name := range []string{SummaryFile, TopWordsFile, BigramsFile, LogOddsFile, ManifestFile} {
		path := filepath.Join(dir, "assets", name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "assets", SummaryFile))
	if err != nil {
		t.Fatal(err)
	}
	var summary Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("summary.json not valid JSON: %v", err)
	}
	if summary.NReviews != 2 {
		t.Errorf("persisted summary wrong: %+v", summary)
	}
}

func TestWriterRunIDsAreUnique(t *testing.T) {
	writer, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	assets := sampleAssets(t)
	first, err := writer.Write(assets, "a.csv")
	if err != nil {
		t.Fatal(err)
	}
	second, err := writer.Write(assets, "a.csv")
	if err != nil {
		t.Fatal(err)
	}
	if first.RunID == second.RunID {
		t.Error("consecutive runs must get distinct run ids")
	}
}
