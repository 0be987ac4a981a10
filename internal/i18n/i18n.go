// Package i18n provides internationalization support for the cart service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,de;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.invalid_credentials":  "Invalid email or password",
			"error.forbidden":            "Forbidden",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.conflict":             "Conflict",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
			"error.product_not_found":    "Product not found",
			"error.variant_not_found":    "Variant not found",
			"error.invalid_discount":     "Invalid discount code",
			"error.empty_cart":           "Cart is empty",

			// Success messages
			"success.item_added":       "Item added to cart",
			"success.discount_applied": "Discount applied",
			"success.order_placed":     "Order placed successfully",
		},
		"de": {
			// Error messages
			"error.invalid_request":      "Ungültige Anfrage",
			"error.invalid_request_body": "Ungültiger Anfragetext",
			"error.internal_error":       "Ein unerwarteter Fehler ist aufgetreten",
			"error.unauthorized":         "Nicht autorisiert",
			"error.invalid_credentials":  "Ungültige E-Mail oder Passwort",
			"error.forbidden":            "Verboten",
			"error.not_found":            "Nicht gefunden",
			"error.rate_limit_exceeded":  "Zu viele Anfragen, bitte später erneut versuchen",
			"error.conflict":             "Konflikt",
			"error.invalid_token":        "Ungültiges oder abgelaufenes Token",
			"error.token_required":       "Authentifizierungstoken ist erforderlich",
			"error.product_not_found":    "Produkt nicht gefunden",
			"error.variant_not_found":    "Variante nicht gefunden",
			"error.invalid_discount":     "Ungültiger Rabattcode",
			"error.empty_cart":           "Warenkorb ist leer",

			// Success messages
			"success.item_added":       "Artikel zum Warenkorb hinzugefügt",
			"success.discount_applied": "Rabatt angewendet",
			"success.order_placed":     "Bestellung erfolgreich aufgegeben",
		},
		"fr": {
			// Error messages
			"error.invalid_request":      "Requête invalide",
			"error.invalid_request_body": "Corps de requête invalide",
			"error.internal_error":       "Une erreur inattendue s'est produite",
			"error.unauthorized":         "Non autorisé",
			"error.invalid_credentials":  "E-mail ou mot de passe invalide",
			"error.forbidden":            "Interdit",
			"error.not_found":            "Introuvable",
			"error.rate_limit_exceeded":  "Trop de requêtes, veuillez réessayer plus tard",
			"error.conflict":             "Conflit",
			"error.invalid_token":        "Jeton invalide ou expiré",
			"error.token_required":       "Un jeton d'authentification est requis",
			"error.product_not_found":    "Produit introuvable",
			"error.variant_not_found":    "Variante introuvable",
			"error.invalid_discount":     "Code de réduction invalide",
			"error.empty_cart":           "Le panier est vide",

			// Success messages
			"success.item_added":       "Article ajouté au panier",
			"success.discount_applied": "Réduction appliquée",
			"success.order_placed":     "Commande passée avec succès",
		},
	}
}
