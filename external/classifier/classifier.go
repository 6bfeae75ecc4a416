package classifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultURL     = "http://localhost:8001/api/priority"
	defaultTimeout = 5 * time.Second
)

var errEmptyText = fmt.Errorf("empty text")

// Result - a priority label together with the per-label confidence the
// model reported. Scores is nil when the model cannot produce one.
type Result struct {
	Priority string             `json:"priority"`
	Scores   map[string]float64 `json:"scores,omitempty"`
}

// Classifier labels free-form help-request text with a priority
type Classifier interface {
	Classify(text string) (*Result, error)
}

type classifier struct {
	url    string
	client *http.Client
}

type classifyRequest struct {
	Text string `json:"text"`
}

func (c classifier) Classify(text string) (*Result, error) {
	if text == "" {
		return nil, errEmptyText
	}

	body, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Post(c.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier response status %d", resp.StatusCode)
	}

	var r Result
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, err
	}

	if r.Priority == "" {
		return nil, fmt.Errorf("classifier returned no priority")
	}

	return &r, nil
}

func New(url string) Classifier {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &classifier{
		url:    u,
		client: &http.Client{Timeout: defaultTimeout},
	}
}
