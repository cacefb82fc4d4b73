package hash

import (
	"os"
	"path/filepath"
	"testing"
)

const emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func TestDigest(t *testing.T) {
	if got := Digest(nil); got != emptySHA256 {
		t.Errorf("Digest(nil) = %s, want %s", got, emptySHA256)
	}
	if Digest([]byte("rules: []")) == Digest([]byte("rules: [ ]")) {
		t.Error("different content produced the same digest")
	}
}

func TestSHA256Hasher_HashFile(t *testing.T) {
	tmpDir := t.TempDir()
	hasher := NewSHA256Hasher()

	t.Run("matches Digest of the contents", func(t *testing.T) {
		content := []byte("rules:\n  - group: custom\n    matchers: [custom-]\n")
		path := filepath.Join(tmpDir, "rules.yaml")
		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("failed to write rule file: %v", err)
		}

		got, err := hasher.HashFile(path)
		if err != nil {
			t.Fatalf("HashFile failed: %v", err)
		}
		if got != Digest(content) {
			t.Errorf("HashFile = %s, want %s", got, Digest(content))
		}
	})

	t.Run("rewriting identical content keeps the hash", func(t *testing.T) {
		path := filepath.Join(tmpDir, "stable.yaml")
		content := []byte("sort: true\n")
		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
		first, err := hasher.HashFile(path)
		if err != nil {
			t.Fatalf("HashFile failed: %v", err)
		}

		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
		second, err := hasher.HashFile(path)
		if err != nil {
			t.Fatalf("HashFile failed: %v", err)
		}

		if first != second {
			t.Errorf("hash changed for identical content: %s vs %s", first, second)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "empty.yaml")
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
		got, err := hasher.HashFile(path)
		if err != nil {
			t.Fatalf("HashFile failed: %v", err)
		}
		if got != emptySHA256 {
			t.Errorf("empty file hash = %s, want %s", got, emptySHA256)
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		if _, err := hasher.HashFile(filepath.Join(tmpDir, "missing.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestFakeHasher(t *testing.T) {
	hasher := NewFakeHasher()

	hash, err := hasher.HashFile("/unknown")
	if err != nil {
		t.Fatalf("FakeHasher returned error: %v", err)
	}
	if hash != "fakehash" {
		t.Errorf("default hash = %s, want fakehash", hash)
	}

	hasher.SetHash("/rules.yaml", "abc")
	if hash, _ := hasher.HashFile("/rules.yaml"); hash != "abc" {
		t.Errorf("configured hash = %s, want abc", hash)
	}

	if hasher.Calls() != 2 {
		t.Errorf("Calls() = %d, want 2", hasher.Calls())
	}
}
