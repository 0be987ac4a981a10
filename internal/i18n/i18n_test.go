//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	translator1 := GetTranslator()
	translator2 := GetTranslator()
	assert.NotNil(t, translator1)
	assert.NotNil(t, translator2)
	assert.Equal(t, translator1, translator2)
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{
			name:     "english message",
			key:      "error.product_not_found",
			locale:   "en",
			expected: "Product not found",
		},
		{
			name:     "german message",
			key:      "error.product_not_found",
			locale:   "de",
			expected: "Produkt nicht gefunden",
		},
		{
			name:     "french message",
			key:      "error.product_not_found",
			locale:   "fr",
			expected: "Produit introuvable",
		},
		{
			name:     "empty locale defaults to english",
			key:      "error.empty_cart",
			locale:   "",
			expected: "Cart is empty",
		},
		{
			name:     "unsupported locale falls back to english",
			key:      "error.invalid_discount",
			locale:   "pt",
			expected: "Invalid discount code",
		},
		{
			name:     "unknown key returns key",
			key:      "unknown.key",
			locale:   "en",
			expected: "unknown.key",
		},
		{
			name:     "unknown key in unsupported locale falls back",
			key:      "unknown.key",
			locale:   "pt",
			expected: "unknown.key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := translator.Translate(tt.key, tt.locale)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{
			name:           "no header returns default",
			acceptLanguage: "",
			expected:       DefaultLocale,
		},
		{
			name:           "english header",
			acceptLanguage: "en",
			expected:       "en",
		},
		{
			name:           "german header",
			acceptLanguage: "de",
			expected:       "de",
		},
		{
			name:           "french header",
			acceptLanguage: "fr",
			expected:       "fr",
		},
		{
			name:           "full locale with region",
			acceptLanguage: "de-AT",
			expected:       "de",
		},
		{
			name:           "multiple languages",
			acceptLanguage: "en-US,en;q=0.9,de;q=0.8",
			expected:       "en",
		},
		{
			name:           "unsupported language defaults",
			acceptLanguage: "pt",
			expected:       DefaultLocale,
		},
		{
			name:           "case insensitive",
			acceptLanguage: "FR",
			expected:       "fr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set(AcceptLanguageHeader, tt.acceptLanguage)
			}
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			result := GetLocale(c)
			assert.Equal(t, tt.expected, result)
		})
	}
}
