package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"qrarchive/internal/archive"
	"qrarchive/internal/constants"
	"qrarchive/internal/pdf"
	"qrarchive/internal/qr"
)

// Version information (set by ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := NewDefaultApp()
	run(app, os.Args)
}

// run is the testable entrypoint for the application
func run(app *App, args []string) {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)

	// Override the usage function to use our custom help
	fs.Usage = printUsage

	content := fs.String("content", "", "The data to encode (URL, text, email, phone, WiFi string, etc.)")
	label := fs.String("label", "", "Human-readable label for the PDF title and filename (defaults to the content)")
	contentType := fs.String("type", "", "Content type: url, text, email, phone, wifi or other (auto-detected if omitted)")
	archiveDir := fs.String("archive-dir", "", "Directory artifacts are written to (defaults to $QR_ARCHIVE_DIR, then ./archive)")
	size := fs.Int("size", constants.DefaultPNGSize, "PNG edge length in pixels")
	verify := fs.Bool("verify", false, "Decode the written PNG and confirm it round-trips")
	listEntries := fs.Bool("list", false, "List previously generated entries")
	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show usage")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintf(app.Stderr, "❌ error parsing arguments: %v\n", err)
		app.Exit(1)
		return
	}

	// Handle global commands first
	if *showVersion {
		app.ShowVersion()
		return
	}

	if *showHelp {
		printUsage()
		return
	}

	dir := constants.ResolveArchiveDir(*archiveDir)

	if *listEntries {
		if err := app.ListEntries(dir); err != nil {
			fmt.Fprintf(app.Stderr, "❌ %v\n", err)
			app.Exit(exitCode(err))
		}
		return
	}

	opts := GenerateOptions{
		Content:    *content,
		Label:      *label,
		Type:       *contentType,
		ArchiveDir: dir,
		Size:       *size,
		Verify:     *verify,
	}
	if err := app.Generate(opts); err != nil {
		fmt.Fprintf(app.Stderr, "❌ %v\n", err)
		app.Exit(exitCode(err))
	}
}

// exitCode maps an error to the documented exit status so invoking
// workflows can branch on the failure kind.
func exitCode(err error) int {
	var (
		depErr      *pdf.DependencyError
		tooLargeErr *qr.ContentTooLargeError
		fsErr       *archive.FilesystemError
		verifyErr   *qr.VerificationError
	)
	switch {
	case errors.As(err, &depErr):
		return 2
	case errors.As(err, &tooLargeErr):
		return 3
	case errors.As(err, &fsErr):
		return 4
	case errors.As(err, &verifyErr):
		return 5
	default:
		return 1
	}
}

func printUsage() {
	fmt.Println("Usage: qrarchive [options]")
	fmt.Println("\nGenerate a QR code and save it as PNG + PDF in the archive.")
	fmt.Println("\nOptions:")
	fmt.Println("  --content, -content string      The data to encode (required)")
	fmt.Println("  --label, -label string          Label for the PDF title and filename (defaults to the content)")
	fmt.Println("  --type, -type string            Content type: url, text, email, phone, wifi, other (auto-detected if omitted)")
	fmt.Println("  --archive-dir, -archive-dir string  Archive directory (defaults to $QR_ARCHIVE_DIR, then ./archive)")
	fmt.Println("  --size, -size int               PNG edge length in pixels (default 512)")
	fmt.Println("  --verify, -verify               Decode the written PNG and confirm it round-trips")
	fmt.Println("  --list, -list                   List previously generated entries")
	fmt.Println("  --version, -version             Show version information")
	fmt.Println("  --help, -help                   Show usage")
	fmt.Println("\nExamples:")
	fmt.Println("  qrarchive --content \"https://example.com\" --label \"My Website\"")
	fmt.Println("  qrarchive --content \"paul@example.com\"")
	fmt.Println("  qrarchive --content \"+1-555-123-4567\" --label \"Office Phone\"")
	fmt.Println("  qrarchive --content \"WIFI:T:WPA;S:MyNetwork;P:MyPassword;;\" --label \"Home WiFi\"")
	fmt.Println("  qrarchive --content \"Hello World\" --type text")
	fmt.Println("  qrarchive --list")
}
