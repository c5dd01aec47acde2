package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const htmxScript = `<script src="https://unpkg.com/htmx.org@2.0.4" crossorigin="anonymous"></script>`

// wizard:history-back приходит в HX-Trigger, когда "Voltar" нажат на первом шаге
const historyBackScript = `<script>document.addEventListener("wizard:history-back", function () { history.back(); });</script>`

// Page полная HTML страница с содержимым body
func Page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="pt-BR"><head><meta charset="utf-8"/>`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		b.WriteString(`<title>`)
		b.WriteString(templ.EscapeString(title))
		b.WriteString(` | Lobeca</title>`)
		b.WriteString(htmxScript)
		b.WriteString(historyBackScript)
		b.WriteString(`</head><body class="min-h-screen bg-neutral-50 text-neutral-900"><main class="mx-auto max-w-lg p-4">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// NotFound экран "não encontrado"
func NotFound(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section id="not-found" class="py-16 text-center"><h1 class="text-xl font-semibold">Não encontrado</h1><p class="mt-2 text-sm text-neutral-500">`+
			templ.EscapeString(message)+`</p></section>`)
		return err
	})
}

// Error экран общей ошибки
func Error(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section id="error" class="py-16 text-center"><h1 class="text-xl font-semibold">Algo deu errado</h1><p class="mt-2 text-sm text-neutral-500">`+
			templ.EscapeString(message)+`</p></section>`)
		return err
	})
}
