package watson

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	endpoint, err := url.Parse(srv.URL + "/v1/watson.runtime.nlp.v1/NlpService/EmotionPredict")
	require.NoError(t, err)
	return NewClient("", *endpoint, DefaultModelID, timeout)
}

func respondWith(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

func TestEmotionPredict(t *testing.T) {
	t.Run("sends the documented request envelope", func(t *testing.T) {
		var gotReq EmotionPredictRequest
		var gotHeaders http.Header
		var gotMethod, gotPath string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotHeaders = r.Header.Clone()
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &gotReq)
			io.WriteString(w, `{"emotionPredictions":[{"emotion":{"joy":0.9}}]}`)
		}, time.Second)

		_, err := client.EmotionPredict(context.TODO(), "I love this!")
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/v1/watson.runtime.nlp.v1/NlpService/EmotionPredict", gotPath)
		assert.Equal(t, DefaultModelID, gotHeaders.Get("grpc-metadata-mm-model-id"))
		assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
		assert.Empty(t, gotHeaders.Get("X-API-KEY"))
		assert.Equal(t, "I love this!", gotReq.RawDocument.Text)
	})

	t.Run("sends the api key when configured", func(t *testing.T) {
		var gotKey string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("X-API-KEY")
			io.WriteString(w, `{"emotionPredictions":[{"emotion":{"joy":0.9}}]}`)
		}, time.Second)
		client.apiKey = "sekrit"

		_, err := client.EmotionPredict(context.TODO(), "hello")
		require.NoError(t, err)
		assert.Equal(t, "sekrit", gotKey)
	})

	t.Run("returns the emotion object of the first prediction", func(t *testing.T) {
		client := newTestClient(t, respondWith(http.StatusOK,
			`{"emotionPredictions":[{"emotion":{"anger":0.2,"joy":0.9}},{"emotion":{"anger":1}}],"producerId":{"name":"x"}}`), time.Second)

		emotion, err := client.EmotionPredict(context.TODO(), "hello")
		require.NoError(t, err)
		assert.Equal(t, 0.2, emotion.Get("anger").Float())
		assert.Equal(t, 0.9, emotion.Get("joy").Float())
	})

	t.Run("a 400 is a rejection, not a failure", func(t *testing.T) {
		client := newTestClient(t, respondWith(http.StatusBadRequest, `{"code":3,"message":"bad text"}`), time.Second)

		_, err := client.EmotionPredict(context.TODO(), "???")
		assert.ErrorIs(t, err, ErrRejected)
	})

	t.Run("non-JSON bodies are format errors", func(t *testing.T) {
		client := newTestClient(t, respondWith(http.StatusOK, `<html>nope</html>`), time.Second)

		_, err := client.EmotionPredict(context.TODO(), "hello")
		var formatErr *ResponseFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, http.StatusOK, formatErr.StatusCode)
		assert.Equal(t, "<html>nope</html>", formatErr.Body)
	})

	t.Run("empty bodies are format errors", func(t *testing.T) {
		client := newTestClient(t, respondWith(http.StatusOK, ``), time.Second)

		_, err := client.EmotionPredict(context.TODO(), "hello")
		var formatErr *ResponseFormatError
		assert.ErrorAs(t, err, &formatErr)
	})

	t.Run("other error statuses still go through body parsing", func(t *testing.T) {
		client := newTestClient(t, respondWith(http.StatusInternalServerError, `{"error":"boom"}`), time.Second)

		_, err := client.EmotionPredict(context.TODO(), "hello")
		assert.ErrorIs(t, err, ErrNoPrediction)
	})

	t.Run("timeouts are request errors", func(t *testing.T) {
		release := make(chan struct{})
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}, 50*time.Millisecond)
		defer close(release)

		_, err := client.EmotionPredict(context.TODO(), "hello")
		var requestErr *RequestError
		require.ErrorAs(t, err, &requestErr)
		assert.Error(t, errors.Unwrap(requestErr))
	})

	t.Run("connection failures are request errors", func(t *testing.T) {
		srv := httptest.NewServer(respondWith(http.StatusOK, `{}`))
		endpoint, err := url.Parse(srv.URL)
		require.NoError(t, err)
		srv.Close()
		client := NewClient("", *endpoint, DefaultModelID, time.Second)

		_, err = client.EmotionPredict(context.TODO(), "hello")
		var requestErr *RequestError
		assert.ErrorAs(t, err, &requestErr)
	})
}

func TestParsePrediction(t *testing.T) {
	testCases := []struct {
		description string
		body        string
	}{
		{"missing emotionPredictions", `{"something":"else"}`},
		{"emotionPredictions is not an array", `{"emotionPredictions":{"0":{"emotion":{"joy":1}}}}`},
		{"empty emotionPredictions", `{"emotionPredictions":[]}`},
		{"first prediction has no emotion", `{"emotionPredictions":[{"target":"x"}]}`},
		{"emotion is not an object", `{"emotionPredictions":[{"emotion":[0.1,0.2]}]}`},
		{"document is null", `null`},
		{"document is an array", `[1,2,3]`},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			_, err := parsePrediction(http.StatusOK, []byte(testCase.body))
			assert.ErrorIs(t, err, ErrNoPrediction)
		})
	}

	t.Run("long bodies are truncated in format errors", func(t *testing.T) {
		body := make([]byte, maxLoggedBody*2)
		for i := range body {
			body[i] = 'x'
		}
		_, err := parsePrediction(http.StatusOK, body)
		var formatErr *ResponseFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Len(t, formatErr.Body, maxLoggedBody+3)
	})
}

func TestFindTextAttribute(t *testing.T) {
	testCases := []struct {
		description string
		document    string
		expected    string
		found       bool
	}{
		{"top level text", `{"text":"hi","nested":{"text":"no"}}`, "hi", true},
		{"nested object", `{"a":{"b":{"text":"deep"}}}`, "deep", true},
		{"inside an array", `{"items":[{"id":1},{"text":"second"}]}`, "second", true},
		{"first match depth first", `{"a":{"b":{"text":"first"}},"c":{"text":"second"}}`, "first", true},
		{"non-string text is skipped", `{"text":5,"inner":{"text":"string"}}`, "string", true},
		{"top level array", `[{"x":1},[{"text":"in list"}]]`, "in list", true},
		{"no text anywhere", `{"emotionPredictions":[{"emotion":{"joy":1}}]}`, "", false},
		{"scalar document", `"text"`, "", false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			text, ok := FindTextAttribute(gjson.Parse(testCase.document))
			assert.Equal(t, testCase.found, ok)
			assert.Equal(t, testCase.expected, text)
		})
	}
}
