package constants

import (
	"os"
)

const (
	// DefaultArchiveDirName is the folder generated artifacts accumulate in
	// when neither the flag nor the environment override it.
	DefaultArchiveDirName = "archive"

	// ArchiveDirEnvVar overrides the archive location for workflows that
	// keep the archive outside the working directory.
	ArchiveDirEnvVar = "QR_ARCHIVE_DIR"

	// ManifestFileName is the single compressed index file tracking every
	// generation inside the archive directory.
	ManifestFileName = ".manifest.json.zst"

	// MaxLabelRunes caps the sanitized label used in filenames.
	MaxLabelRunes = 50

	// FallbackLabel is used when sanitization leaves nothing of the label.
	FallbackLabel = "qr-code"

	// DefaultPNGSize is the PNG edge length in pixels.
	DefaultPNGSize = 512

	// DateLayout is the calendar-day stamp embedded in filenames.
	DateLayout = "2006-01-02"
)

// ResolveArchiveDir picks the archive directory: the explicit flag value
// wins, then the environment override, then the default folder relative to
// the working directory.
func ResolveArchiveDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if dir := os.Getenv(ArchiveDirEnvVar); dir != "" {
		return dir
	}
	return DefaultArchiveDirName
}
