package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"qrarchive/internal/archive"
	"qrarchive/internal/classify"
	"qrarchive/internal/constants"
	"qrarchive/internal/pdf"
	"qrarchive/internal/qr"
)

// ExitFunc is a function type for exiting the program
type ExitFunc func(code int)

// MissingContentError reports an absent or empty --content argument.
type MissingContentError struct{}

func (e *MissingContentError) Error() string {
	return "no content to encode; pass --content with a non-empty value"
}

// App represents the main application
type App struct {
	Exit       ExitFunc
	Stdout     io.Writer
	Stderr     io.Writer
	Now        func() time.Time
	IsTerminal func() bool

	VersionInfo VersionInfo
}

// VersionInfo contains version information
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewDefaultApp creates a new App with default dependencies
func NewDefaultApp() *App {
	return &App{
		Exit:   os.Exit,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Now:    time.Now,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
		VersionInfo: VersionInfo{
			Version: version,
			Commit:  commit,
			Date:    date,
		},
	}
}

// GenerateOptions carries one generation request from the CLI.
type GenerateOptions struct {
	Content    string
	Label      string
	Type       string
	ArchiveDir string
	Size       int
	Verify     bool
}

// Generate runs the whole pipeline for one request: classify, normalize,
// resolve a collision-free filename, encode, write PNG and PDF, record the
// manifest entry, and report the paths.
func (a *App) Generate(opts GenerateOptions) error {
	content := strings.TrimSpace(opts.Content)
	if content == "" {
		return &MissingContentError{}
	}

	var contentType classify.Type
	if opts.Type != "" {
		t, err := classify.ParseType(opts.Type)
		if err != nil {
			return err
		}
		contentType = t
	} else {
		contentType = classify.Detect(content)
	}

	label := opts.Label
	if label == "" {
		label = content
	}

	encoded := classify.Normalize(content, contentType)

	// An otpauth URI that will not enroll is worth flagging, but the user
	// may still want the code printed, so this never aborts.
	otpInfo, otpErr := classify.InspectOTPAuth(encoded)
	if otpErr != nil {
		fmt.Fprintf(a.Stderr, "⚠️  %v\n", otpErr)
	}

	pngData, err := qr.Encode(encoded, opts.Size)
	if err != nil {
		return err
	}

	arch := archive.New(opts.ArchiveDir)
	if err := arch.EnsureDir(); err != nil {
		return err
	}

	now := a.Now()
	base := archive.ResolveBase(archive.BaseName(label, now), arch.Exists)

	pngPath, err := arch.WriteFile(base+".png", pngData)
	if err != nil {
		return err
	}

	pdfPath := arch.Path(base + ".pdf")
	sheet := pdf.Sheet{
		Label:   label,
		Type:    string(contentType),
		Content: encoded,
		QRPNG:   pngData,
		Created: now,
	}
	if err := pdf.Write(sheet, pdfPath); err != nil {
		a.rollback(arch, pngPath)
		return err
	}

	if opts.Verify {
		if err := qr.Verify(pngPath, encoded); err != nil {
			a.rollback(arch, pngPath, pdfPath)
			return err
		}
	}

	entry := archive.Entry{
		Label:     label,
		Type:      string(contentType),
		Content:   encoded,
		Date:      now.Format(constants.DateLayout),
		PNGPath:   pngPath,
		PDFPath:   pdfPath,
		CreatedAt: now,
	}
	if err := arch.AppendManifest(entry); err != nil {
		// Both artifacts are safely on disk; a broken index is a warning.
		fmt.Fprintf(a.Stderr, "⚠️  failed to update archive manifest: %v\n", err)
	}

	a.report(entry, otpInfo, opts.Verify)
	return nil
}

// rollback removes artifacts written during a failed invocation so the
// archive never gains partial entries.
func (a *App) rollback(arch *archive.Archive, paths ...string) {
	for _, p := range paths {
		if err := arch.Remove(p); err != nil {
			fmt.Fprintf(a.Stderr, "⚠️  %v\n", err)
		}
	}
}

func (a *App) report(entry archive.Entry, otpInfo *classify.OTPAuthInfo, verified bool) {
	if !a.IsTerminal() {
		// Plain key: value block so invoking workflows can parse the paths
		// and chain their version-control commit.
		fmt.Fprintf(a.Stdout, "label: %s\n", entry.Label)
		fmt.Fprintf(a.Stdout, "type: %s\n", entry.Type)
		fmt.Fprintf(a.Stdout, "content: %s\n", entry.Content)
		fmt.Fprintf(a.Stdout, "png: %s\n", entry.PNGPath)
		fmt.Fprintf(a.Stdout, "pdf: %s\n", entry.PDFPath)
		return
	}

	line := strings.Repeat("=", 50)
	fmt.Fprintf(a.Stdout, "\n%s\n", line)
	fmt.Fprintln(a.Stdout, "✅ QR CODE GENERATED!")
	fmt.Fprintln(a.Stdout, line)
	fmt.Fprintf(a.Stdout, "  Label:   %s\n", entry.Label)
	fmt.Fprintf(a.Stdout, "  Type:    %s\n", entry.Type)
	fmt.Fprintf(a.Stdout, "  Content: %s\n", entry.Content)
	if otpInfo != nil {
		fmt.Fprintf(a.Stdout, "  OTP:     %s (%s)\n", otpInfo.Issuer, otpInfo.Account)
	}
	fmt.Fprintf(a.Stdout, "  PNG:     %s\n", entry.PNGPath)
	fmt.Fprintf(a.Stdout, "  PDF:     %s\n", entry.PDFPath)
	if verified {
		fmt.Fprintln(a.Stdout, "  Scan:    verified")
	}
	fmt.Fprintf(a.Stdout, "%s\n\n", line)
}

// ListEntries prints every generation recorded in the archive manifest.
func (a *App) ListEntries(dir string) error {
	arch := archive.New(dir)

	entries, err := arch.LoadManifest()
	if err != nil {
		return fmt.Errorf("failed to list archive entries: %w", err)
	}

	fmt.Fprintf(a.Stdout, "Entries in %s:\n", dir)
	if len(entries) == 0 {
		fmt.Fprintln(a.Stdout, "  No entries found")
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(a.Stdout, "  %s  %-6s %-30s %s\n",
			entry.Date, entry.Type, truncate(entry.Label, 30), entry.PNGPath)
	}
	return nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// ShowVersion displays version information
func (a *App) ShowVersion() {
	fmt.Fprintf(a.Stdout, "qrarchive version %s (%s) built on %s\n",
		a.VersionInfo.Version, a.VersionInfo.Commit, a.VersionInfo.Date)
}
