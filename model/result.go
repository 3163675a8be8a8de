package model

// EmotionScores holds one score per emotion as reported by the remote service.
type EmotionScores struct {
	Anger   float64
	Disgust float64
	Fear    float64
	Joy     float64
	Sadness float64
}

func (s EmotionScores) Score(e Emotion) float64 {
	switch e {
	case EmotionAnger:
		return s.Anger
	case EmotionDisgust:
		return s.Disgust
	case EmotionFear:
		return s.Fear
	case EmotionJoy:
		return s.Joy
	case EmotionSadness:
		return s.Sadness
	default:
		return 0
	}
}

func (s *EmotionScores) Set(e Emotion, score float64) {
	switch e {
	case EmotionAnger:
		s.Anger = score
	case EmotionDisgust:
		s.Disgust = score
	case EmotionFear:
		s.Fear = score
	case EmotionJoy:
		s.Joy = score
	case EmotionSadness:
		s.Sadness = score
	}
}

// Dominant returns the highest scoring emotion. Only a strictly greater score
// displaces the current pick, so the earliest emotion in Emotions wins a tie.
func (s EmotionScores) Dominant() Emotion {
	dominant := Emotions[0]
	for _, e := range Emotions[1:] {
		if s.Score(e) > s.Score(dominant) {
			dominant = e
		}
	}
	return dominant
}

/*
EmotionResult is what gets handed back to callers and serialized over HTTP.
Either every field is set, or every field is nil. The all-nil form means the
text could not be analyzed: it was blank, the remote service rejected it, or
the response didn't contain a usable prediction.
*/
type EmotionResult struct {
	Anger           *float64 `json:"anger"`
	Disgust         *float64 `json:"disgust"`
	Fear            *float64 `json:"fear"`
	Joy             *float64 `json:"joy"`
	Sadness         *float64 `json:"sadness"`
	DominantEmotion *Emotion `json:"dominant_emotion"`
}

func NullResult() EmotionResult {
	return EmotionResult{}
}

func ResultFromScores(scores EmotionScores) EmotionResult {
	dominant := scores.Dominant()
	return EmotionResult{
		Anger:           &scores.Anger,
		Disgust:         &scores.Disgust,
		Fear:            &scores.Fear,
		Joy:             &scores.Joy,
		Sadness:         &scores.Sadness,
		DominantEmotion: &dominant,
	}
}

func (r EmotionResult) IsNull() bool {
	return r.DominantEmotion == nil
}

// Scores returns the populated scores, or false for a null result.
func (r EmotionResult) Scores() (EmotionScores, bool) {
	if r.IsNull() || r.Anger == nil || r.Disgust == nil || r.Fear == nil || r.Joy == nil || r.Sadness == nil {
		return EmotionScores{}, false
	}
	return EmotionScores{
		Anger:   *r.Anger,
		Disgust: *r.Disgust,
		Fear:    *r.Fear,
		Joy:     *r.Joy,
		Sadness: *r.Sadness,
	}, true
}
