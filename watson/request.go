package watson

type RawDocument struct {
	Text string `json:"text"`
}

type EmotionPredictRequest struct {
	RawDocument RawDocument `json:"raw_document"`
}

const (
	DefaultEmotionPredictURL = "https://sn-watson-emotion.labs.skills.network/v1/watson.runtime.nlp.v1/NlpService/EmotionPredict"
	DefaultModelID           = "emotion_aggregated-workflow_lang_en_stock"

	// Header the NLP runtime reads to pick the model serving the request
	modelIDHeader = "grpc-metadata-mm-model-id"
)
