package vanilla

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

type themeView struct {
	Name         string `json:"name"`
	Variant      string `json:"variant"`
	CSSVarsStyle string `json:"css_vars_style"`
}

func themeContext(cfg *theme.RendererConfig) themeView {
	if cfg == nil {
		return themeView{}
	}
	vars := make(map[string]string, len(cfg.Tokens)+len(cfg.CSSVars))
	for key, value := range cfg.Tokens {
		vars["--pf-"+strings.TrimPrefix(key, "--")] = value
	}
	for key, value := range cfg.CSSVars {
		vars[key] = value
	}
	return themeView{
		Name:         cfg.Theme,
		Variant:      cfg.Variant,
		CSSVarsStyle: cssVarsStyle(vars),
	}
}

// cssVarsStyle renders vars as "--a: 1; --b: 2;" in key order. Keys without
// the "--" prefix are skipped.
func cssVarsStyle(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for key := range vars {
		if strings.HasPrefix(key, "--") {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(strings.TrimSpace(vars[key]))
		b.WriteByte(';')
	}
	return b.String()
}
