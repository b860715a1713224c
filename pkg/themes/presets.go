package themes

import theme "github.com/goliatone/go-theme"

func builtinManifests() []*theme.Manifest {
	return []*theme.Manifest{
		preset("paper",
			palette("#ffffff", "#111827", "#1d4ed8"),
			map[string]map[string]string{
				"dark": palette("#111827", "#f9fafb", "#60a5fa"),
			}),
		preset("slate",
			palette("#f8fafc", "#0f172a", "#334155"),
			map[string]map[string]string{
				"dark": palette("#0f172a", "#e2e8f0", "#94a3b8"),
			}),
		preset("emerald",
			palette("#ffffff", "#1f2937", "#047857"),
			map[string]map[string]string{
				"dark":  palette("#022c22", "#ecfdf5", "#34d399"),
				"print": palette("#ffffff", "#000000", "#065f46"),
			}),
		preset("mono",
			palette("#ffffff", "#000000", "#000000"),
			nil),
	}
}

func preset(name string, tokens map[string]string, variants map[string]map[string]string) *theme.Manifest {
	manifest := &theme.Manifest{
		Name:    name,
		Version: presetVersion,
		Tokens:  tokens,
	}
	if len(variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(variants))
		for key, overrides := range variants {
			manifest.Variants[key] = theme.Variant{Tokens: overrides}
		}
	}
	return manifest
}

func palette(background, text, primary string) map[string]string {
	return map[string]string{
		TokenBackground: background,
		TokenText:       text,
		TokenPrimary:    primary,
	}
}
