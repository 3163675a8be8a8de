package watson

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/truemediaorg/emotiondetector/metrics"
)

type Client struct {
	endpoint   string
	modelID    string
	apiKey     string
	HTTPClient *http.Client
}

// NewClient builds a client for the EmotionPredict endpoint. apiKey may be
// empty, in which case no key header is sent.
func NewClient(apiKey string, endpoint url.URL, modelID string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint.String(),
		modelID:    modelID,
		apiKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

/*
EmotionPredict sends text to the remote service and returns the emotion object
of the first prediction.

The error tells the caller how the call went:

	*RequestError        the request never completed
	ErrRejected          the service answered 400
	*ResponseFormatError the body wasn't JSON
	ErrNoPrediction      the body was JSON but had no emotionPredictions[0].emotion object
*/
func (c Client) EmotionPredict(ctx context.Context, text string) (gjson.Result, error) {
	reqBody, err := json.Marshal(EmotionPredictRequest{RawDocument: RawDocument{Text: text}})
	if err != nil {
		return gjson.Result{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return gjson.Result{}, err
	}
	req.Header.Set(modelIDHeader, c.modelID)
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Add("X-API-KEY", c.apiKey)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		metrics.EmotionAPIDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return gjson.Result{}, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.EmotionAPIDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return gjson.Result{}, &RequestError{Err: err}
	}
	metrics.EmotionAPIDuration.WithLabelValues(strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode == http.StatusBadRequest {
		log.WithField("body", truncate(respBody)).Debug("emotion service rejected text")
		return gjson.Result{}, ErrRejected
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Not fatal on its own, the body still decides the outcome
		log.WithField("statusCode", resp.StatusCode).Warn("unexpected status from emotion service")
	}

	return parsePrediction(resp.StatusCode, respBody)
}

func parsePrediction(statusCode int, body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, &ResponseFormatError{StatusCode: statusCode, Body: truncate(body)}
	}
	doc := gjson.ParseBytes(body)

	predictions := doc.Get("emotionPredictions")
	if predictions.IsArray() {
		if emotion := predictions.Get("0.emotion"); emotion.IsObject() {
			return emotion, nil
		}
	}

	if text, ok := FindTextAttribute(doc); ok {
		log.WithField("text", text).Debug("response carried text but no emotion prediction")
	}
	return gjson.Result{}, ErrNoPrediction
}

const maxLoggedBody = 512

func truncate(body []byte) string {
	if len(body) > maxLoggedBody {
		return string(body[:maxLoggedBody]) + "..."
	}
	return string(body)
}
