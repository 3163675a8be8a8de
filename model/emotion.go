package model

import (
	"fmt"
	"strings"
)

type Emotion string

const (
	EmotionAnger   Emotion = "anger"
	EmotionDisgust Emotion = "disgust"
	EmotionFear    Emotion = "fear"
	EmotionJoy     Emotion = "joy"
	EmotionSadness Emotion = "sadness"
)

// Emotions lists every emotion in priority order. Dominant emotion ties are
// resolved in favor of whichever comes first here.
var Emotions = []Emotion{
	EmotionAnger,
	EmotionDisgust,
	EmotionFear,
	EmotionJoy,
	EmotionSadness,
}

func ParseEmotion(s string) (Emotion, error) {
	switch strings.ToLower(s) {
	case string(EmotionAnger):
		return EmotionAnger, nil
	case string(EmotionDisgust):
		return EmotionDisgust, nil
	case string(EmotionFear):
		return EmotionFear, nil
	case string(EmotionJoy):
		return EmotionJoy, nil
	case string(EmotionSadness):
		return EmotionSadness, nil
	default:
		return "", fmt.Errorf("unknown emotion: %s", s)
	}
}
