// package formatter provides functions to export track listings to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/nycmg/nycmg-cli/internal/models"
	"github.com/nycmg/nycmg-cli/internal/shared"
)

// TrackListing bundles a fetched page of tracks with a title for export.
type TrackListing struct {
	Title  string
	Tracks []models.Track
	Page   models.Page
}

// ExportToCSV converts a TrackListing to CSV format with columns: ID, Title, Artist, Duration, Explicit
func ExportToCSV(listing *TrackListing) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Duration", "Explicit"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range listing.Tracks {
		record := []string{
			track.ID,
			track.Title,
			track.ArtistName,
			strconv.Itoa(track.Duration),
			strconv.FormatBool(track.IsExplicit),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a TrackListing to Markdown format
func ExportToMarkdown(listing *TrackListing) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", listing.Title))
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", len(listing.Tracks)))

	buf.WriteString("## Tracks\n\n")
	for i, track := range listing.Tracks {
		duration := shared.FormatDuration(track.Duration)
		explicit := ""
		if track.IsExplicit {
			explicit = " [E]"
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s [%s]\n", i+1, track.ArtistName, track.Title, explicit, duration))
	}

	if listing.Page.TotalCount > 0 {
		buf.WriteString(fmt.Sprintf("\nShowing %s of %d\n",
			PageRange(listing.Page.CurrentPage, listing.Page.Limit, listing.Page.TotalCount),
			listing.Page.TotalCount))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a TrackListing to plain text format
func ExportToText(listing *TrackListing) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Listing: %s\n", listing.Title))
	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", len(listing.Tracks)))

	for i, track := range listing.Tracks {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, track.ArtistName, track.Title))
	}

	return buf.Bytes(), nil
}

// PageRange renders the display range of a page as "start-end", clamped to
// the total. Page numbers are 1-based; a limit of 0 means everything fits
// on one page.
func PageRange(currentPage, limit, total int) string {
	if total <= 0 {
		return "0-0"
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if limit <= 0 {
		return fmt.Sprintf("1-%d", total)
	}

	start := (currentPage-1)*limit + 1
	if start > total {
		start = total
	}
	end := currentPage * limit
	if end > total {
		end = total
	}
	return fmt.Sprintf("%d-%d", start, end)
}
