package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/jnelson/art-exhibits/internal/config"
	"github.com/jnelson/art-exhibits/internal/exhibition"
	"github.com/jnelson/art-exhibits/internal/logger"
)

const (
	// SearchURL is the DuckDuckGo HTML endpoint, which needs no API key.
	SearchURL = "https://html.duckduckgo.com/html/"
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"
	Timeout   = 30 * time.Second
)

// SearchResult is one raw web search hit.
type SearchResult struct {
	Title   string
	Snippet string
	URL     string
}

// Fetcher gathers candidate exhibitions from web sources.
type Fetcher struct {
	client    *http.Client
	cfg       *config.Config
	searchURL string
}

// New creates a new Fetcher instance
func New(cfg *config.Config) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: Timeout,
		},
		cfg:       cfg,
		searchURL: SearchURL,
	}
}

// FetchAll gathers exhibitions from every configured source: the
// listing-site search per location and neighborhood, then the known
// gallery exhibition pages. Source failures are logged and skipped;
// the combined result is deduplicated by identity key.
func (f *Fetcher) FetchAll() []*exhibition.Exhibition {
	all := make([]*exhibition.Exhibition, 0)

	all = append(all, f.searchListings()...)

	for gallery, pageURL := range f.cfg.GalleryExhibitionURLs {
		logger.Info("fetching gallery exhibitions", logger.Fields{"gallery": gallery})
		exhibitions, err := f.FetchGalleryPage(gallery, pageURL)
		if err != nil {
			logger.Error("failed to fetch gallery page", logger.Fields{
				"gallery": gallery,
				"url":     pageURL,
			}, err)
			continue
		}
		all = append(all, exhibitions...)
	}

	unique := exhibition.Dedupe(all)
	logger.Info("fetched exhibitions", logger.Fields{
		"candidates": len(all),
		"unique":     len(unique),
	})
	return unique
}

// searchListings runs one listing-site search per configured location
// and neighborhood and keeps the hits that point at show pages.
func (f *Fetcher) searchListings() []*exhibition.Exhibition {
	exhibitions := make([]*exhibition.Exhibition, 0)
	year := time.Now().Year()

	for _, location := range f.cfg.Locations {
		for _, neighborhood := range f.cfg.Neighborhoods {
			query := fmt.Sprintf("site:galleriesnow.net %s %s art exhibition %d", location, neighborhood, year)

			results, err := f.SearchWeb(query)
			if err != nil {
				logger.Error("search failed", logger.Fields{"query": query}, err)
				continue
			}

			for _, result := range results {
				if !strings.Contains(result.URL, "galleriesnow.net/shows/") {
					continue
				}
				logger.Info("found exhibition listing", logger.Fields{"title": result.Title})
				exhibitions = append(exhibitions, resultToExhibition(result))
			}
		}
	}

	return exhibitions
}

// resultToExhibition builds a candidate exhibition from a raw search
// hit. Listing titles usually read "Artist: Show Title"; dates, when
// present at all, live in the snippet.
func resultToExhibition(result SearchResult) *exhibition.Exhibition {
	artist, title := splitListingTitle(result.Title)

	ex := &exhibition.Exhibition{
		Title:       title,
		Artist:      artist,
		Description: result.Snippet,
		SourceURL:   result.URL,
	}
	if start, end, ok := exhibition.ParseDateRange(result.Snippet); ok {
		ex.StartDate = start
		ex.EndDate = end
	}
	return ex
}

// splitListingTitle splits "Artist: Show Title" into its parts. Titles
// without a separator are returned whole with an empty artist.
func splitListingTitle(s string) (artist, title string) {
	if i := strings.Index(s, ":"); i > 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
	}
	return "", strings.TrimSpace(s)
}

// SearchWeb posts a query to the search endpoint and parses the result
// blocks out of the returned HTML.
func (f *Fetcher) SearchWeb(query string) ([]SearchResult, error) {
	form := url.Values{"q": {query}}

	req, err := http.NewRequest("POST", f.searchURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return parseSearchResults(resp.Body)
}

// parseSearchResults extracts result blocks from search HTML
func parseSearchResults(r io.Reader) ([]SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	results := make([]SearchResult, 0)

	doc.Find(".result").Each(func(i int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Find(".result__title").Text())
		snippet := strings.TrimSpace(sel.Find(".result__snippet").Text())
		resultURL := strings.TrimSpace(sel.Find(".result__url").Text())

		if title == "" || resultURL == "" {
			return
		}

		results = append(results, SearchResult{
			Title:   title,
			Snippet: snippet,
			URL:     resultURL,
		})
	})

	return results, nil
}

// exhibitionBlockClass matches the container classes galleries commonly
// use for show listings.
var exhibitionBlockClass = regexp.MustCompile(`(?i)exhibition|show|event`)

// FetchGalleryPage fetches a gallery's current-exhibitions page and
// extracts candidate exhibitions from it.
func (f *Fetcher) FetchGalleryPage(gallery, pageURL string) ([]*exhibition.Exhibition, error) {
	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return parseGalleryDocument(resp.Body, gallery, pageURL)
}

// parseGalleryDocument extracts exhibition blocks from gallery HTML.
// Every gallery lays its page out differently, so this is a generic
// pass: any article or div whose class mentions exhibitions, with the
// first heading as the title and dates parsed from the block text.
func parseGalleryDocument(r io.Reader, gallery, pageURL string) ([]*exhibition.Exhibition, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	exhibitions := make([]*exhibition.Exhibition, 0)

	doc.Find("article, div").Each(func(i int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		if !exhibitionBlockClass.MatchString(class) {
			return
		}

		title := strings.TrimSpace(sel.Find("h1, h2, h3, h4").First().Text())
		if title == "" {
			return
		}

		ex := &exhibition.Exhibition{
			Title:     title,
			Gallery:   gallery,
			Location:  gallery,
			SourceURL: pageURL,
		}

		if href, exists := sel.Find("a").First().Attr("href"); exists {
			ex.ExhibitionURL = resolveLink(pageURL, href)
		}

		if start, end, ok := exhibition.ParseDateRange(sel.Text()); ok {
			ex.StartDate = start
			ex.EndDate = end
		}

		exhibitions = append(exhibitions, ex)
	})

	return exhibitions, nil
}

// resolveLink resolves a possibly-relative href against the page URL.
func resolveLink(pageURL, href string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
