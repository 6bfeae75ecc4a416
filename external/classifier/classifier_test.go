package classifier_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solveme-app/solveme-api/external/classifier"
)

func TestClassify(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "flat tire on the highway", req.Text)

		resp := map[string]interface{}{
			"priority": "HIGH",
			"scores": map[string]float64{
				"HIGH":   0.91,
				"MEDIUM": 0.07,
				"LOW":    0.02,
			},
		}
		b, _ := json.Marshal(resp)
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	c := classifier.New(ts.URL)
	result, err := c.Classify("flat tire on the highway")
	assert.Nil(t, err, "wrong Classify")
	assert.Equal(t, "HIGH", result.Priority)
	assert.InDelta(t, 0.91, result.Scores["HIGH"], 0.001)
}

func TestClassifyEmptyText(t *testing.T) {
	c := classifier.New("")
	_, err := c.Classify("")
	assert.Error(t, err)
}

func TestClassifyServiceDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := classifier.New(ts.URL)
	_, err := c.Classify("anything")
	assert.Error(t, err)
}
