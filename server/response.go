package server

import (
	"fmt"

	"github.com/truemediaorg/emotiondetector/model"
)

const (
	invalidTextMsg      = "Invalid text! Please try again!"
	notFoundMsg         = "Endpoint not found"
	methodNotAllowedMsg = "Method not allowed"
	internalErrorMsg    = "Internal server error"

	// anger, disgust, fear, joy, sadness, then the dominant emotion
	emotionResponseFmt = "For the given statement, the system response is " +
		"'anger': %v, 'disgust': %v, 'fear': %v, 'joy': %v, 'sadness': %v. " +
		"The dominant emotion is %s."
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Response string `json:"response"`
}

type EmotionResponse struct {
	Response string              `json:"response"`
	Emotions model.EmotionResult `json:"emotions"`
}

// formatEmotionResponse renders a populated result as a sentence. Callers
// must not pass a null result.
func formatEmotionResponse(result model.EmotionResult) string {
	scores, _ := result.Scores()
	return fmt.Sprintf(emotionResponseFmt,
		scores.Anger,
		scores.Disgust,
		scores.Fear,
		scores.Joy,
		scores.Sadness,
		*result.DominantEmotion,
	)
}
