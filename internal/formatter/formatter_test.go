package formatter

import (
	"strings"
	"testing"

	"github.com/nycmg/nycmg-cli/internal/models"
)

func sampleListing() *TrackListing {
	return &TrackListing{
		Title: "Brooklyn Drill",
		Tracks: []models.Track{
			{ID: "t1", Title: "First Song", ArtistName: "MC One", Duration: 180},
			{ID: "t2", Title: "Second Song", ArtistName: "MC Two", Duration: 245, IsExplicit: true},
		},
		Page: models.Page{TotalCount: 2, CurrentPage: 1, TotalPages: 1, Limit: 20},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(sampleListing())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		out := string(data)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected header plus 2 records, got %d lines", len(lines))
		}
		if lines[0] != "ID,Title,Artist,Duration,Explicit" {
			t.Errorf("unexpected header %q", lines[0])
		}
		if !strings.Contains(lines[2], "t2,Second Song,MC Two,245,true") {
			t.Errorf("unexpected record %q", lines[2])
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(sampleListing())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		out := string(data)
		if !strings.Contains(out, "# Brooklyn Drill") {
			t.Error("expected title heading")
		}
		if !strings.Contains(out, "1. MC One - First Song [3:00]") {
			t.Errorf("unexpected track line in:\n%s", out)
		}
		if !strings.Contains(out, "2. MC Two - Second Song [E] [4:05]") {
			t.Errorf("expected explicit marker in:\n%s", out)
		}
		if !strings.Contains(out, "Showing 1-2 of 2") {
			t.Errorf("expected page range footer in:\n%s", out)
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(sampleListing())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		out := string(data)
		if !strings.Contains(out, "Listing: Brooklyn Drill") {
			t.Error("expected listing title")
		}
		if !strings.Contains(out, "2. MC Two - Second Song") {
			t.Error("expected numbered track lines")
		}
	})
}

func TestPageRange(t *testing.T) {
	cases := []struct {
		name                 string
		page, limit, total   int
		want                 string
	}{
		{"last partial page", 5, 20, 95, "81-95"},
		{"full middle page", 2, 20, 95, "21-40"},
		{"first page", 1, 20, 95, "1-20"},
		{"single page fits everything", 1, 0, 7, "1-7"},
		{"empty collection", 1, 20, 0, "0-0"},
		{"page past the end clamps", 9, 20, 95, "95-95"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PageRange(tc.page, tc.limit, tc.total); got != tc.want {
				t.Errorf("PageRange(%d, %d, %d) = %q, want %q", tc.page, tc.limit, tc.total, got, tc.want)
			}
		})
	}
}
