package artwork

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

var (
	// ErrNotFound means the catalog does not know the artwork ID.
	ErrNotFound = errors.New("artwork not found in catalog")
	// ErrLookup means the catalog could not be reached or answered garbage.
	// Callers validating an artwork treat it the same as ErrNotFound.
	ErrLookup = errors.New("artwork lookup failed")
)

// Artwork is the subset of catalog metadata the backend keeps.
type Artwork struct {
	ID      int64   `json:"id"`
	Title   string  `json:"title"`
	ImageID *string `json:"image_id"`
}

// Client talks to the Art Institute of Chicago artworks API.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a catalog client. Requests time out after timeout and
// are rate limited so bulk operations stay polite to the public API.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(10), 10),
	}
}

type artworkEnvelope struct {
	Data struct {
		ID      int64   `json:"id"`
		Title   string  `json:"title"`
		ImageID *string `json:"image_id"`
	} `json:"data"`
}

// GetArtwork fetches one artwork record. It returns ErrNotFound for a 404
// and ErrLookup for every other failure mode (timeout, transport error,
// unexpected status, malformed body).
func (c *Client) GetArtwork(ctx context.Context, artworkID int64) (*Artwork, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookup, err)
	}

	reqURL := fmt.Sprintf("%s/artworks/%d", c.baseURL, artworkID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrLookup, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookup, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: catalog returned status %d", ErrLookup, resp.StatusCode)
	}

	var envelope artworkEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrLookup, err)
	}

	title := envelope.Data.Title
	if title == "" {
		title = "Unknown Title"
	}

	return &Artwork{
		ID:      envelope.Data.ID,
		Title:   title,
		ImageID: envelope.Data.ImageID,
	}, nil
}
