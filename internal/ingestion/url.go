package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// URLResult carries both the raw HTML and the cleaned text of a fetched
// posting. Downstream segmentation prefers the HTML when present and
// falls back to the text.
type URLResult struct {
	HTML     string
	Text     string
	Metadata *Metadata
}

// IngestFromURL fetches a job posting, extracts the main text from its
// HTML, cleans it, and returns both forms with provenance metadata.
// If verbose is true, logs detailed information about the extraction.
func IngestFromURL(ctx context.Context, urlStr string, verbose bool) (*URLResult, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	textContent, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(textContent))
	}

	cleanedText := CleanText(textContent)
	if verbose {
		log.Printf("[VERBOSE] Cleaned text: %d chars", len(cleanedText))
	}

	return &URLResult{
		HTML:     result.HTML,
		Text:     cleanedText,
		Metadata: NewMetadata(cleanedText, urlStr),
	}, nil
}
