package text_translator

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"translation-relay/internal/chunker"
	"translation-relay/internal/language"
	"translation-relay/internal/third_party/mymemory"
	"translation-relay/pkg/types"

	"go.uber.org/zap"
)

// ErrNoText is returned when the request carries no text field.
var ErrNoText = errors.New("No text provided")

// TranslatorProviderInterface translates a single chunk of text
type TranslatorProviderInterface interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// TextTranslatorService chunks text, translates each chunk in order and
// returns the joined, HTML-escaped result.
type TextTranslatorService struct {
	logger    *zap.Logger
	provider  TranslatorProviderInterface
	chunkSize int
}

// NewTextTranslatorService creates a new instance of TextTranslatorService
func NewTextTranslatorService(logger *zap.Logger, provider TranslatorProviderInterface) *TextTranslatorService {
	return &TextTranslatorService{
		logger:    logger,
		provider:  provider,
		chunkSize: chunker.DefaultSize,
	}
}

// Translate runs the whole pipeline for one request. The first failing chunk
// aborts the request and nothing translated so far is returned.
func (s *TextTranslatorService) Translate(ctx context.Context, req types.TranslateRequest) (*types.TranslateResponse, error) {
	if req.Text == nil {
		return nil, ErrNoText
	}
	text := *req.Text

	sourceLang := language.Normalize(withDefault(req.SourceLanguage, types.DefaultSourceLanguage))
	targetLang := language.Normalize(withDefault(req.TargetLanguage, types.DefaultTargetLanguage))

	s.logger.Info("translating text",
		zap.String("source_language", sourceLang),
		zap.String("target_language", targetLang),
		zap.Int("text_length", len(text)),
		zap.Int("chunks", chunkCount(text, s.chunkSize)),
	)

	translated := make([]string, 0)
	i := 0
	for chunk := range chunker.Chunks(text, s.chunkSize) {
		if mymemory.ExceedsQueryLimit(chunk) {
			s.logger.Warn("chunk exceeds translation service query limit",
				zap.Int("chunk", i),
				zap.Int("chunk_bytes", len(chunk)),
				zap.Int("limit", mymemory.MaxQueryBytes),
			)
		}

		s.logger.Debug("translating chunk", zap.Int("chunk", i), zap.Int("chunk_size", len(chunk)))
		out, err := s.provider.Translate(ctx, chunk, sourceLang, targetLang)
		if err != nil {
			s.logger.Error("chunk translation failed", zap.Int("chunk", i), zap.Error(err))
			return nil, err
		}
		translated = append(translated, out)
		i++
	}

	s.logger.Info("text translation completed", zap.Int("chunks", len(translated)))

	return &types.TranslateResponse{
		TranslatedText: EscapeHTML(strings.Join(translated, " ")),
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
	}, nil
}

func chunkCount(text string, size int) int {
	return (utf8.RuneCountInString(text) + size - 1) / size
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// EscapeHTML escapes &, <, >, " and ' so the text is safe to drop into markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
