package pons

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultEndpoint is the dictionary lookup URL of the PONS API
const DefaultEndpoint = "https://api.pons.com/v1/dictionary"

var (
	// ErrNoResults is returned when the dictionary has no entries for a word
	ErrNoResults = errors.New("no results found")
	// ErrMalformed is returned when the response body can't be decoded
	ErrMalformed = errors.New("malformed response")
)

// StatusError is returned for any non-200 response
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unsuccessful API response %v", e.Code)
}

// Client implements integration with PONS dictionary API
// docs: https://en.pons.com/p/files/uploads/pons/api/api-documentation.pdf
type Client struct {
	apiToken   string
	dictionary string
	sourceLang string
	endpoint   string
	client     *http.Client
	context    context.Context
}

// Get looks up a word and returns decoded response blocks
func (c Client) Get(word string) ([]Response, error) {
	if strings.TrimSpace(word) == "" {
		return nil, ErrNoResults
	}
	req, err := http.NewRequest(http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.context != nil {
		req = req.WithContext(c.context)
	}
	query := req.URL.Query()
	query.Add("q", word)
	query.Add("l", c.dictionary)
	query.Add("in", c.sourceLang)
	query.Add("ref", "true")
	query.Add("fm", "1")
	req.URL.RawQuery = query.Encode()
	req.Header.Set("X-Secret", c.apiToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch pons dictionary: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Debug().
			Str("status", resp.Status).
			Str("body", string(body)).
			Msg("unsuccessful response from pons API")
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrNoResults
	}
	var items []Response
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %v", ErrMalformed, err)
	}
	if len(items) == 0 || len(items[0].Hits) == 0 {
		return nil, ErrNoResults
	}
	return items, nil
}

// WithEndpoint returns a copy of the client sending requests to endpoint
func (c Client) WithEndpoint(endpoint string) Client {
	c.endpoint = endpoint
	return c
}

// NewClient creates Client with default HTTP client
func NewClient(ctx context.Context, apiToken string, dictionary string, sourceLang string) Client {
	return Client{
		apiToken:   apiToken,
		dictionary: dictionary,
		sourceLang: sourceLang,
		endpoint:   DefaultEndpoint,
		client:     http.DefaultClient,
		context:    ctx,
	}
}
