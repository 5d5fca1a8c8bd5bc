package services

import "translation-relay/internal/text_translator"

// Services holds all application services
type Services struct {
	TextTranslatorService *text_translator.TextTranslatorService
}

// NewServices creates and initializes all services
func NewServices(translatorService *text_translator.TextTranslatorService) *Services {
	return &Services{
		TextTranslatorService: translatorService,
	}
}
