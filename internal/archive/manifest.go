package archive

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"

	"qrarchive/internal/constants"
)

var (
	zstdEncoder, _ = zstd.NewWriter(nil)
	zstdDecoder, _ = zstd.NewReader(nil)
)

func (a *Archive) manifestPath() string {
	return a.Path(constants.ManifestFileName)
}

// LoadManifest returns every recorded entry, oldest first. A missing or
// empty manifest reads as no entries, not as an error — the files on disk
// are the source of truth and the manifest is only an index over them.
func (a *Archive) LoadManifest() ([]Entry, error) {
	raw, err := os.ReadFile(a.manifestPath())
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, &FilesystemError{Op: "read manifest", Path: a.manifestPath(), Err: err}
	}
	if len(raw) == 0 {
		return []Entry{}, nil
	}

	// Sniff the zstd magic so a manifest written uncompressed (e.g. by
	// hand during debugging) still loads.
	var jsonData []byte
	if len(raw) > 4 &&
		raw[0] == 0x28 && raw[1] == 0xb5 && raw[2] == 0x2f && raw[3] == 0xfd {
		jsonData, err = zstdDecoder.DecodeAll(raw, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress manifest: %w", err)
		}
	} else {
		jsonData = raw
	}

	var entries []Entry
	if err := json.Unmarshal(jsonData, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return entries, nil
}

// AppendManifest records a completed generation. An unreadable existing
// manifest is rebuilt from this entry onward rather than blocking the
// append.
func (a *Archive) AppendManifest(entry Entry) error {
	entries, err := a.LoadManifest()
	if err != nil {
		entries = []Entry{}
	}
	entries = append(entries, entry)

	jsonData, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize manifest: %w", err)
	}

	compressed := zstdEncoder.EncodeAll(jsonData, nil)
	if err := os.WriteFile(a.manifestPath(), compressed, 0o644); err != nil {
		return &FilesystemError{Op: "write manifest", Path: a.manifestPath(), Err: err}
	}
	return nil
}
