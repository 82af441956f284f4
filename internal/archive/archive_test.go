package archive

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEnsureDirCreatesArchive(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "archive")
	a := New(dir)

	if err := a.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir returned error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("archive directory missing after EnsureDir: %v", err)
	}
	if !info.IsDir() {
		t.Error("archive path is not a directory")
	}

	// Idempotent on an existing directory
	if err := a.EnsureDir(); err != nil {
		t.Errorf("EnsureDir on existing directory returned error: %v", err)
	}
}

func TestEnsureDirFailsUnderFile(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing blocker file: %v", err)
	}

	a := New(filepath.Join(blocker, "archive"))
	err := a.EnsureDir()
	if err == nil {
		t.Fatal("EnsureDir should have failed when the parent is a file")
	}

	var fsErr *FilesystemError
	if !errors.As(err, &fsErr) {
		t.Fatalf("expected FilesystemError, got %T: %v", err, err)
	}
}

func TestWriteFileAndExists(t *testing.T) {
	a := New(t.TempDir())

	if a.Exists("qr_2026-08-29.png") {
		t.Error("Exists reported an unwritten file")
	}

	path, err := a.WriteFile("qr_2026-08-29.png", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	if !a.Exists("qr_2026-08-29.png") {
		t.Error("Exists did not see the written file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back written file: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("file content = %q, want %q", data, "png-bytes")
	}
}

func TestWriteFileFailsInMissingDir(t *testing.T) {
	a := New(filepath.Join(t.TempDir(), "never-created"))

	_, err := a.WriteFile("x.png", []byte("data"))
	if err == nil {
		t.Fatal("WriteFile should have failed in a missing directory")
	}

	var fsErr *FilesystemError
	if !errors.As(err, &fsErr) {
		t.Fatalf("expected FilesystemError, got %T: %v", err, err)
	}
	if fsErr.Unwrap() == nil {
		t.Error("FilesystemError should preserve the underlying OS error")
	}
}

func TestRemove(t *testing.T) {
	a := New(t.TempDir())

	path, err := a.WriteFile("doomed.png", []byte("x"))
	if err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	if err := a.Remove(path); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if a.Exists("doomed.png") {
		t.Error("file still present after Remove")
	}
}

func TestManifestRoundTrip(t *testing.T) {
	a := New(t.TempDir())

	// Missing manifest reads as empty, not as an error
	entries, err := a.LoadManifest()
	if err != nil {
		t.Fatalf("LoadManifest on fresh archive returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("fresh archive has %d entries, want 0", len(entries))
	}

	first := Entry{
		Label:     "My Website",
		Type:      "url",
		Content:   "https://example.com",
		Date:      "2026-08-29",
		PNGPath:   "archive/my-website_2026-08-29.png",
		PDFPath:   "archive/my-website_2026-08-29.pdf",
		CreatedAt: time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC),
	}
	if err := a.AppendManifest(first); err != nil {
		t.Fatalf("AppendManifest returned error: %v", err)
	}

	second := first
	second.PNGPath = "archive/my-website_2026-08-29-2.png"
	second.PDFPath = "archive/my-website_2026-08-29-2.pdf"
	if err := a.AppendManifest(second); err != nil {
		t.Fatalf("AppendManifest returned error: %v", err)
	}

	entries, err = a.LoadManifest()
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("manifest has %d entries, want 2", len(entries))
	}
	if entries[0].Content != "https://example.com" || entries[0].Label != "My Website" {
		t.Errorf("first entry round-tripped wrong: %+v", entries[0])
	}
	if entries[1].PNGPath != second.PNGPath {
		t.Errorf("second entry PNGPath = %q, want %q", entries[1].PNGPath, second.PNGPath)
	}
}

func TestLoadManifestAcceptsUncompressed(t *testing.T) {
	a := New(t.TempDir())

	raw := `[{"label":"plain","type":"text","content":"hi","date":"2026-08-29"}]`
	if err := os.WriteFile(a.manifestPath(), []byte(raw), 0o644); err != nil {
		t.Fatalf("writing raw manifest: %v", err)
	}

	entries, err := a.LoadManifest()
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Label != "plain" {
		t.Errorf("uncompressed manifest read wrong: %+v", entries)
	}
}

func TestManifestIsCompressed(t *testing.T) {
	a := New(t.TempDir())

	if err := a.AppendManifest(Entry{Label: "x", Type: "text", Content: "y"}); err != nil {
		t.Fatalf("AppendManifest returned error: %v", err)
	}

	raw, err := os.ReadFile(a.manifestPath())
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	if len(raw) < 4 || raw[0] != 0x28 || raw[1] != 0xb5 || raw[2] != 0x2f || raw[3] != 0xfd {
		t.Error("manifest on disk is not zstd compressed")
	}
}
