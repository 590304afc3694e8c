// Package palette renders catalog, group and color fragments for htmx
// targets.
package palette

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/codr1/designtokens/internal/models"
)

// CatalogList renders the fixed category catalog. Every category drills down
// into the color groups.
func CatalogList(categories []models.Category) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.printf(`<ul class="catalog" id="catalog">`)
		for _, category := range categories {
			p.printf(`<li class="catalog-item" data-icon="%s">`, category.Icon)
			p.printf(`<a href="#" hx-get="/api/v1/groups?category=%d" hx-target="#content">%s</a>`, category.ID, category.Name)
			p.printf(`<p>%s</p></li>`, category.Description)
		}
		p.printf(`</ul>`)
		return p.err
	})
}

// GroupList renders the color groups with a create form and per-group delete.
func GroupList(groups []Group) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.printf(`<section id="groups" hx-get="/api/v1/groups" hx-trigger="refreshGroupsList from:body" hx-swap="outerHTML">`)
		p.printf(`<form hx-post="/api/v1/groups" hx-target="#feedback"><input type="text" name="name" required maxlength="100"><button type="submit">Add group</button></form>`)
		if len(groups) == 0 {
			p.printf(`<p class="empty">No color groups yet.</p>`)
		}
		p.printf(`<ul class="groups">`)
		for _, group := range groups {
			id := group.ID.String()
			class := "group"
			if group.IsSelected {
				class += " selected"
			}
			p.printf(`<li class="%s" id="group-%s">`, class, id)
			p.printf(`<a href="#" hx-get="/api/v1/groups/%s/colors" hx-target="#content">%s</a>`, id, group.Name)
			p.printf(`<button hx-delete="/api/v1/groups/%s" hx-target="#feedback">Delete</button></li>`, id)
		}
		p.printf(`</ul></section>`)
		return p.err
	})
}

// ColorList renders a group's swatches in position order with add, import
// and remove controls.
func ColorList(data ColorListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		id := data.Group.ID.String()
		p.printf(`<section id="colors" hx-get="/api/v1/groups/%s/colors" hx-trigger="refreshColorsList from:body" hx-swap="outerHTML">`, id)
		p.printf(`<h2>%s</h2>`, data.Group.Name)
		p.printf(`<form hx-post="/api/v1/groups/%s/colors" hx-target="#feedback"><input type="text" name="name" maxlength="100"><input type="text" name="hex" required placeholder="#RRGGBB"><button type="submit">Add color</button></form>`, id)
		p.printf(`<form hx-post="/api/v1/groups/%s/colors/import" hx-target="#feedback"><textarea name="payload"></textarea><button type="submit">Import JSON</button></form>`, id)
		p.printf(`<form hx-post="/api/v1/groups/%s/colors/remove" hx-target="#feedback"><ol class="swatches">`, id)
		for _, swatch := range data.Swatches {
			if err := Swatch(swatch).Render(ctx, w); err != nil {
				return err
			}
		}
		p.printf(`</ol><button type="submit">Remove selected</button></form></section>`)
		return p.err
	})
}

func Swatch(swatch models.Swatch) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.printf(`<li class="swatch" style="background-color: %s; color: %s">`, swatch.CSS, swatch.TextColor)
		p.printf(`<input type="checkbox" name="positions" value="%s">`, strconv.Itoa(swatch.Entry.Position))
		p.printf(`<span class="swatch-name">%s</span> <code>%s</code></li>`, swatch.Entry.Name, swatch.Hex)
		return p.err
	})
}

// DecodedColor renders the preview for a single decoded value.
func DecodedColor(input string, swatch models.Swatch, valid bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.printf(`<div class="decoded" style="background-color: %s; color: %s">`, swatch.CSS, swatch.TextColor)
		p.printf(`<code>%s</code> → <code>%s</code>`, input, swatch.Hex)
		if !valid {
			p.printf(` <span class="warning">not a 6 or 8 digit hex color</span>`)
		}
		p.printf(`</div>`)
		return p.err
	})
}

// printer keeps the first write error so components can emit markup without
// checking every call. The format string is trusted markup; every string
// argument is HTML-escaped.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	escaped := make([]any, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case string:
			escaped[i] = templ.EscapeString(v)
		case fmt.Stringer:
			escaped[i] = templ.EscapeString(v.String())
		default:
			escaped[i] = arg
		}
	}
	_, p.err = fmt.Fprintf(p.w, format, escaped...)
}
