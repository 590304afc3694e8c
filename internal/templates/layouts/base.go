package layouts

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/codr1/designtokens/internal/hexcolor"
)

const defaultAccent = "#2563EB"

// Base wraps content in the page shell. accent tints links and buttons; an
// invalid value falls back to the default.
func Base(title string, accent string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><link rel="stylesheet" href="/static/css/main.css"><script src="/static/js/htmx.min.js" defer></script><style>%s</style></head><body><main id="content">`,
			templ.EscapeString(title), accentCSSVars(accent)); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main><div id="feedback" aria-live="polite"></div></body></html>`)
		return err
	})
}

func accentCSSVars(accent string) string {
	return fmt.Sprintf(":root{--accent:%s;}", accentOrDefault(accent))
}

func accentOrDefault(value string) string {
	trimmed := strings.TrimSpace(value)
	if !hexcolor.IsValid(trimmed) {
		return defaultAccent
	}
	return hexcolor.Decode(trimmed).Hex()
}
