// Package i18n holds the localized user-facing messages. Italian is the
// primary language of the product; English is the fallback for API clients.
package i18n

import (
	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.Italian, // default
	language.English,
}

var matcher = language.NewMatcher(supported)

type catalog map[string]string

var messages = map[language.Tag]catalog{
	language.Italian: {
		"ticket.create_failed":   "Impossibile creare il ticket",
		"ticket.update_failed":   "Impossibile aggiornare il ticket",
		"ticket.delete_failed":   "Impossibile eliminare il ticket",
		"ticket.fetch_failed":    "Impossibile recuperare il ticket",
		"ticket.not_found":       "Ticket non trovato",
		"ticket.invalid_status":  "Stato del ticket non valido",
		"setting.save_failed":    "Impossibile salvare l'impostazione",
		"setting.fetch_failed":   "Impossibile caricare le impostazioni",
		"auth.required":          "Autenticazione richiesta",
		"auth.invalid_login":     "Email o password non validi",
		"upload.invalid_type":    "Solo immagini (JPG, PNG, GIF, WebP) e video (MP4, MOV, WebM) sono supportati",
		"upload.too_large":       "I file devono essere inferiori a 10MB",
		"old_tickets.run_failed": "Impossibile controllare i ticket vecchi",
	},
	language.English: {
		"ticket.create_failed":   "Unable to create the ticket",
		"ticket.update_failed":   "Unable to update the ticket",
		"ticket.delete_failed":   "Unable to delete the ticket",
		"ticket.fetch_failed":    "Unable to fetch the ticket",
		"ticket.not_found":       "Ticket not found",
		"ticket.invalid_status":  "Invalid ticket status",
		"setting.save_failed":    "Unable to save the setting",
		"setting.fetch_failed":   "Unable to load settings",
		"auth.required":          "Authentication required",
		"auth.invalid_login":     "Invalid email or password",
		"upload.invalid_type":    "Only images (JPG, PNG, GIF, WebP) and videos (MP4, MOV, WebM) are supported",
		"upload.too_large":       "Files must be smaller than 10MB",
		"old_tickets.run_failed": "Unable to check old tickets",
	},
}

// Match resolves an Accept-Language header value to a supported language.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return supported[0]
	}
	_, index, _ := matcher.Match(tags...)
	return supported[index]
}

// T returns the message for key in the given language, falling back to the
// default language and finally to the key itself.
func T(tag language.Tag, key string) string {
	if c, ok := messages[tag]; ok {
		if msg, ok := c[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[supported[0]][key]; ok {
		return msg
	}
	return key
}
