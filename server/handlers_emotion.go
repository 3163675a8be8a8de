package server

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"
)

func (s *Server) handleEmotionDetector(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}

	text, ok := textFromBody(body)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidTextMsg})
	}

	result, err := s.classifier.Classify(c.Request().Context(), text)
	if err != nil {
		// Left to the error handler, which answers 500
		return err
	}
	if result.IsNull() {
		return c.JSON(http.StatusBadRequest, MessageResponse{Response: invalidTextMsg})
	}

	return c.JSON(http.StatusOK, EmotionResponse{
		Response: formatEmotionResponse(result),
		Emotions: result,
	})
}

// textFromBody pulls the "text" field out of a JSON object body. Anything
// other than an object whose "text" is a string is rejected.
func textFromBody(body []byte) (string, bool) {
	if !gjson.ValidBytes(body) {
		return "", false
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return "", false
	}
	text := doc.Get("text")
	if text.Type != gjson.String {
		return "", false
	}
	return text.Str, true
}
