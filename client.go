package cinemenu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/apex/log"
)

// DefaultBaseURL is the TMDB v3 API root
const DefaultBaseURL = "https://api.themoviedb.org/3"

type Client struct {
	HTTPClient  *http.Client
	BaseURL     string
	UserAgent   string
	Credentials Credentials
	TMDB        TMDBService
}

type ClientConfig struct {
	HTTPClient  *http.Client
	BaseURL     string
	Credentials Credentials
}

// auth picks how a request proves who it is. TMDB treats the public catalogue
// and the account scoped endpoints differently, so the two are kept apart.
type auth int

const (
	authAPIKey auth = iota
	authBearer
)

func NewClient(config *ClientConfig) (*Client, error) {
	if config == nil {
		config = &ClientConfig{
			HTTPClient: http.DefaultClient,
		}
	}

	if config.HTTPClient == nil {
		config.HTTPClient = http.DefaultClient
	}
	if err := config.Credentials.Validate(); err != nil {
		return nil, err
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		HTTPClient:  config.HTTPClient,
		BaseURL:     strings.TrimSuffix(baseURL, "/"),
		UserAgent:   "cinemenu",
		Credentials: config.Credentials,
	}
	c.TMDB = &TMDBServiceOp{client: c}
	return c, nil
}

// do sends one request and hands back the body of a 200 or 201 response.
// There is no retry.
func (c *Client) do(ctx context.Context, method, path string, a auth, params url.Values, payload interface{}) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	if a == authAPIKey {
		params.Set("api_key", c.Credentials.APIKey)
	}
	u := c.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json;charset=utf-8")
	}
	if a == authBearer {
		req.Header.Set("Authorization", "Bearer "+c.Credentials.AccessToken)
	}

	fields := log.Fields{
		"method": method,
		"path":   path,
	}
	log.WithFields(fields).Debug("Sending TMDB request")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.WithFields(fields).WithField("status", resp.StatusCode).Warn("TMDB request failed")
		return nil, &RemoteError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	log.WithFields(fields).WithField("status", resp.StatusCode).Debug("TMDB request done")
	return data, nil
}
