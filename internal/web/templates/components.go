package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Page renders the full console document.
func Page(p ConsolePage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>Experiments</title>`+
			`<link rel="stylesheet" href="/static/console.css">`+
			`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`+
			`</head><body><main><h1>Experiments</h1>`); err != nil {
			return err
		}
		if err := Console(p).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// Console renders the swappable part of the page: toasts, form and table.
func Console(p ConsolePage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="console">`); err != nil {
			return err
		}
		if err := Toasts(p.Toasts).Render(ctx, w); err != nil {
			return err
		}
		if err := CreateForm(p.Name).Render(ctx, w); err != nil {
			return err
		}
		if err := Table(p.Table).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func Toasts(toasts []Toast) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(toasts) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, `<div class="toasts">`); err != nil {
			return err
		}
		for _, t := range toasts {
			if _, err := io.WriteString(w, `<div class="`+templ.EscapeString(t.Class)+`" role="alert">`+
				`<strong>`+templ.EscapeString(t.Title)+`</strong>`+
				`<p>`+templ.EscapeString(t.Body)+`</p></div>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func CreateForm(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<form method="post" action="/experiments" hx-post="/experiments" hx-target="#console" hx-swap="outerHTML">`+
			`<input type="text" name="name" placeholder="Experiment name" value="`+templ.EscapeString(name)+`">`+
			`<button type="submit">Create token</button>`+
			`<button type="submit" formaction="/experiments/refresh" hx-post="/experiments/refresh">Refresh</button>`+
			`</form>`)
		return err
	})
}

// Table renders the experiment list. It is also served alone as a fragment.
func Table(t ExperimentTable) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(t.Rows) == 0 {
			_, err := io.WriteString(w, `<p id="experiments" class="empty">No experiments yet.</p>`)
			return err
		}
		if _, err := io.WriteString(w, `<table id="experiments"><thead><tr>`); err != nil {
			return err
		}
		for _, c := range t.Columns {
			if _, err := io.WriteString(w, `<th>`+templ.EscapeString(columnLabel(c))+`</th>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tr></thead><tbody>`); err != nil {
			return err
		}
		for _, row := range t.Rows {
			if _, err := io.WriteString(w, `<tr>`); err != nil {
				return err
			}
			for _, cell := range row {
				if _, err := io.WriteString(w, `<td>`+templ.EscapeString(cell)+`</td>`); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</tr>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}
