package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/prosechunk/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "5 chunks from 3 files (4 files scanned, 1 skipped)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	scanned := fmt.Sprintf("%d %s scanned", stats.FilesProcessed, pluralFile(stats.FilesProcessed))

	var extras []string
	extras = append(extras, scanned)
	if stats.FilesSkipped > 0 {
		extras = append(extras, fmt.Sprintf("%d skipped", stats.FilesSkipped))
	}
	if stats.FilesErrored > 0 {
		extras = append(extras, s.Failure.Render(fmt.Sprintf("%d errored", stats.FilesErrored)))
	}
	detail := s.Dim.Render(" (" + strings.Join(extras, ", ") + ")")

	if stats.ChunksTotal == 0 {
		return s.Success.Render("No checkable content found") + detail + "\n"
	}

	chunkWord := "chunks"
	if stats.ChunksTotal == 1 {
		chunkWord = "chunk"
	}

	head := fmt.Sprintf("%d %s from %d %s",
		stats.ChunksTotal, chunkWord,
		stats.FilesWithChunks, pluralFile(stats.FilesWithChunks),
	)

	return s.Bold.Render(head) + detail + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files discovered:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files scanned:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesSkipped > 0 {
		builder.WriteString("  Files skipped:     " +
			s.SummaryValue.Render(strconv.Itoa(stats.FilesSkipped)) + "\n")
	}

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:     " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Files with chunks: " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesWithChunks)) + "\n")
	builder.WriteString("  Total chunks:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.ChunksTotal)) + "\n")

	builder.WriteString("\n")

	// Overall status
	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Extraction completed with errors"))
	case stats.ChunksTotal == 0:
		builder.WriteString(s.Success.Render("No checkable content found"))
	default:
		builder.WriteString(s.Success.Render("Extraction complete"))
	}
	builder.WriteString("\n")

	return builder.String()
}

func pluralFile(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}
