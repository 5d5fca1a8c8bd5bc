package types

// TranslateRequest is the inbound body of POST /api/translate.
// Text is a pointer so a missing field can be told apart from an empty one.
type TranslateRequest struct {
	Text           *string `json:"text"`
	SourceLanguage string  `json:"sourceLanguage"`
	TargetLanguage string  `json:"targetLanguage"`
}

const (
	DefaultSourceLanguage = "en-US"
	DefaultTargetLanguage = "es-ES"
)

type TranslateResponse struct {
	TranslatedText string `json:"translatedText"`
	SourceLang     string `json:"sourceLang"`
	TargetLang     string `json:"targetLang"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
