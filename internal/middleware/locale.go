package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKeyLang is the context key for the resolved language
const ContextKeyLang = "lang"

// Locale resolves the request language and stores it in the request context.
// Resolution order: explicit ?lang query parameter, then Accept-Language
// with quality values, then the configured default. Only languages in
// supported are ever resolved; everything else falls through to the default.
func Locale(supported []string, defaultLang string) gin.HandlerFunc {
	supportedMap := make(map[string]bool, len(supported))
	for _, lang := range supported {
		supportedMap[strings.ToLower(lang)] = true
	}

	return func(c *gin.Context) {
		lang := defaultLang

		if q := strings.ToLower(c.Query("lang")); supportedMap[q] {
			lang = q
		} else if header := c.GetHeader("Accept-Language"); header != "" {
			if match := negotiateLanguage(header, supportedMap); match != "" {
				lang = match
			}
		}

		c.Set(ContextKeyLang, lang)
		c.Next()
	}
}

// GetLang extracts the resolved language from context
func GetLang(c *gin.Context) string {
	if langVal, exists := c.Get(ContextKeyLang); exists {
		if lang, ok := langVal.(string); ok {
			return lang
		}
	}
	return ""
}

// negotiateLanguage picks the highest-quality supported language from an
// Accept-Language header value. Region subtags are reduced to their primary
// tag, so "pt-BR" matches "pt".
func negotiateLanguage(header string, supported map[string]bool) string {
	type candidate struct {
		lang    string
		quality float64
		order   int
	}

	var candidates []candidate
	for i, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lang := part
		quality := 1.0
		if idx := strings.Index(part, ";"); idx >= 0 {
			lang = strings.TrimSpace(part[:idx])
			params := part[idx+1:]
			if qIdx := strings.Index(params, "q="); qIdx >= 0 {
				if q, err := strconv.ParseFloat(strings.TrimSpace(params[qIdx+2:]), 64); err == nil {
					quality = q
				}
			}
		}

		lang = strings.ToLower(lang)
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}

		if supported[lang] && quality > 0 {
			candidates = append(candidates, candidate{lang, quality, i})
		}
	}

	if len(candidates) == 0 {
		return ""
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].quality != candidates[j].quality {
			return candidates[i].quality > candidates[j].quality
		}
		return candidates[i].order < candidates[j].order
	})

	return candidates[0].lang
}
