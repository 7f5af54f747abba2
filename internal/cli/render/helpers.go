package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
	labelStyle         = color.New(color.Faint)
	localStyle         = color.New(color.FgYellow)
	deployableStyle    = color.New(color.FgCyan)
	okStyle            = color.New(color.FgGreen)
	violationStyle     = color.New(color.FgRed, color.Bold)

	numbers = message.NewPrinter(language.English)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon.
// Only the last element of a wrapped error chain is shown.
func FormatError(message string) string {
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// FormatBytes prints a byte count with thousands separators
func FormatBytes(n int) string {
	return numbers.Sprintf("%d B", n)
}

// RenderJSON writes v as indented JSON
func RenderJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return path
	}

	return relPath
}
