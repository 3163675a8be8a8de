package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/truemediaorg/emotiondetector/metrics"
	"github.com/truemediaorg/emotiondetector/model"
	"github.com/truemediaorg/emotiondetector/watson"

	log "github.com/sirupsen/logrus"
)

type EmotionPredictor interface {
	EmotionPredict(ctx context.Context, text string) (gjson.Result, error)
}

// EmotionService turns raw EmotionPredict responses into EmotionResults.
// It keeps no per-call state and is safe for concurrent use.
type EmotionService struct {
	client EmotionPredictor
}

func NewEmotionService(client EmotionPredictor) *EmotionService {
	return &EmotionService{
		client: client,
	}
}

/*
Classify scores text against the five emotions.

Blank text, a rejection from the remote service, and a response without a
usable prediction all produce a null result with no error. Only a failed
round trip (*watson.RequestError) or a non-JSON body (*watson.ResponseFormatError)
come back as errors.
*/
func (s *EmotionService) Classify(ctx context.Context, text string) (model.EmotionResult, error) {
	if strings.TrimSpace(text) == "" {
		log.Debug("blank text, skipping emotion service")
		metrics.ClassificationsTotal.WithLabelValues(metrics.OutcomeBlankInput).Inc()
		return model.NullResult(), nil
	}

	emotion, err := s.client.EmotionPredict(ctx, text)
	if err != nil {
		return s.handlePredictError(err)
	}

	scores, err := scoresFromPrediction(emotion)
	if err != nil {
		log.WithField("emotion", emotion.Raw).Warnf("unusable emotion prediction: %v", err)
		metrics.ClassificationsTotal.WithLabelValues(metrics.OutcomeUnusablePrediction).Inc()
		return model.NullResult(), nil
	}

	result := model.ResultFromScores(scores)
	log.WithField("dominantEmotion", *result.DominantEmotion).Debug("classified text")
	metrics.ClassificationsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.DominantEmotionTotal.WithLabelValues(string(*result.DominantEmotion)).Inc()
	return result, nil
}

func (s *EmotionService) handlePredictError(err error) (model.EmotionResult, error) {
	var requestErr *watson.RequestError
	var formatErr *watson.ResponseFormatError
	switch {
	case errors.Is(err, watson.ErrRejected):
		log.Info("emotion service rejected text")
		metrics.ClassificationsTotal.WithLabelValues(metrics.OutcomeRemoteRejected).Inc()
		return model.NullResult(), nil
	case errors.Is(err, watson.ErrNoPrediction):
		log.Warn("emotion service returned no usable prediction")
		metrics.ClassificationsTotal.WithLabelValues(metrics.OutcomeUnusablePrediction).Inc()
		return model.NullResult(), nil
	case errors.As(err, &requestErr):
		metrics.ClassificationsTotal.WithLabelValues(metrics.OutcomeRequestError).Inc()
	case errors.As(err, &formatErr):
		log.WithField("body", formatErr.Body).Error("emotion service returned a non-JSON body")
		metrics.ClassificationsTotal.WithLabelValues(metrics.OutcomeResponseFormatError).Inc()
	}
	return model.NullResult(), err
}

// Scores missing from the prediction count as 0. A score that is present but
// not a number makes the whole prediction unusable.
func scoresFromPrediction(emotion gjson.Result) (model.EmotionScores, error) {
	var scores model.EmotionScores
	for _, e := range model.Emotions {
		value := emotion.Get(string(e))
		if !value.Exists() {
			continue
		}
		if value.Type != gjson.Number {
			return model.EmotionScores{}, fmt.Errorf("%s score is not a number: %s", e, value.Raw)
		}
		scores.Set(e, value.Num)
	}
	return scores, nil
}
