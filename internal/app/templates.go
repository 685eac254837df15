package app

import (
	"errors"
	"html/template"

	domain "github.com/Denise-hub/DenModa-Manufacturer/internal/core"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
)

// InitTemplates initializes the HTML templates with custom functions.
func InitTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"dict": func(values ...any) (map[string]any, error) {
			if len(values)%2 != 0 {
				return nil, errors.New("invalid dict call")
			}
			dict := make(map[string]any, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, errors.New("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"formatMoney": func(val any) string {
			return humanize.Commaf(cast.ToFloat64(val))
		},
		// formatKES renders the fixed-rate shilling equivalent of a base
		// price, e.g. 15 -> "1,950".
		"formatKES": func(val any) string {
			return humanize.Commaf(cast.ToFloat64(val) * domain.USDToKESRate)
		},
		"categoryLabel": domain.CategoryLabel,
		"sub": func(a, b float64) float64 {
			return a - b
		},
		"mul": func(a, b float64) float64 {
			return a * b
		},
		"div": func(a, b float64) float64 {
			if b == 0 {
				return 0
			}
			return a / b
		},
		"substr": func(start, length int, s string) string {
			if start < 0 {
				start = 0
			}
			if start >= len(s) {
				return ""
			}
			end := start + length
			if end > len(s) {
				end = len(s)
			}
			return s[start:end]
		},
	}

	t := template.New("").Funcs(funcMap)

	// Pages are parsed per request in RenderPage; only the shared layouts
	// are loaded up front.
	if _, err := t.ParseGlob("views/layouts/*.html"); err != nil {
		log.Warn().Err(err).Msg("layout templates")
	}

	return t, nil
}
