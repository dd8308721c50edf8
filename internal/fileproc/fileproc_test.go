package fileproc

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func createTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestForEachFileIndexed verifies that indexed result collection
// preserves input order.
func TestForEachFileIndexed(t *testing.T) {
	tmpDir := t.TempDir()

	files := make([]string, 100)
	for i := 0; i < 100; i++ {
		files[i] = createTestFile(t, tmpDir, fmt.Sprintf("file%d.py", i), "x = 1")
	}

	results, errs := ForEachFileIndexed(files, 0, func(path string) (string, error) {
		return filepath.Base(path), nil
	}, nil)

	if errs != nil && errs.HasErrors() {
		t.Errorf("Unexpected errors: %v", errs)
	}
	if len(results) != len(files) {
		t.Fatalf("Expected %d results, got %d", len(files), len(results))
	}
	for i, r := range results {
		expected := fmt.Sprintf("file%d.py", i)
		if r != expected {
			t.Errorf("Result[%d] = %q, want %q", i, r, expected)
		}
	}
}

// TestForEachFileIndexed_WithErrors verifies failed slots hold the zero
// value while valid results keep their indices.
func TestForEachFileIndexed_WithErrors(t *testing.T) {
	tmpDir := t.TempDir()

	files := []string{
		createTestFile(t, tmpDir, "file0.py", "x"),
		createTestFile(t, tmpDir, "file1.py", "x"),
		createTestFile(t, tmpDir, "file2.py", "x"),
	}

	results, errs := ForEachFileIndexed(files, 0, func(path string) (string, error) {
		if filepath.Base(path) == "file1.py" {
			return "", fmt.Errorf("simulated error")
		}
		return filepath.Base(path), nil
	}, nil)

	if len(results) != len(files) {
		t.Fatalf("Expected %d result slots, got %d", len(files), len(results))
	}
	if results[1] != "" {
		t.Errorf("Error slot should be empty, got %q", results[1])
	}
	if results[0] != "file0.py" || results[2] != "file2.py" {
		t.Errorf("Valid results misplaced: %v", results)
	}
	if errs == nil || len(errs.Errors) != 1 {
		t.Errorf("Expected 1 error, got %v", errs)
	}
}

// TestForEachFileIndexed_Progress verifies the progress callback fires
// once per file, including failures.
func TestForEachFileIndexed_Progress(t *testing.T) {
	tmpDir := t.TempDir()

	files := []string{
		createTestFile(t, tmpDir, "a.py", "x"),
		createTestFile(t, tmpDir, "b.py", "x"),
		createTestFile(t, tmpDir, "c.py", "x"),
	}

	progressCount := atomic.Int32{}
	results, _ := ForEachFileIndexed(files, 2, func(path string) (int, error) {
		if filepath.Base(path) == "b.py" {
			return 0, fmt.Errorf("boom")
		}
		return 1, nil
	}, func() {
		progressCount.Add(1)
	})

	if len(results) != 3 {
		t.Errorf("Expected 3 results, got %d", len(results))
	}
	if int(progressCount.Load()) != 3 {
		t.Errorf("Expected 3 progress callbacks, got %d", progressCount.Load())
	}
}

func TestForEachFileIndexedEmpty(t *testing.T) {
	results, errs := ForEachFileIndexed(nil, 0, func(path string) (int, error) {
		return 0, nil
	}, nil)
	if results != nil || errs != nil {
		t.Errorf("Empty input should return nil, nil; got %v, %v", results, errs)
	}
}

func TestProcessingErrors(t *testing.T) {
	errs := &ProcessingErrors{}
	if errs.HasErrors() {
		t.Error("new ProcessingErrors should have no errors")
	}
	if errs.Error() != "no errors" {
		t.Errorf("Error() = %q", errs.Error())
	}

	errs.Add("a.py", fmt.Errorf("bad"))
	if !errs.HasErrors() {
		t.Error("HasErrors should be true after Add")
	}
	errs.Add("b.py", fmt.Errorf("worse"))
	if len(errs.Errors) != 2 {
		t.Errorf("len(Errors) = %d, want 2", len(errs.Errors))
	}
}
