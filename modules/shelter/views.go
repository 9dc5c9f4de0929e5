package shelter

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/petadopt/handler"
	"github.com/dmitrymomot/petadopt/pkg/i18n"
	"github.com/dmitrymomot/petadopt/svc/animals"
	"github.com/dmitrymomot/petadopt/svc/suggestions"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

// Element IDs targeted by SSE patches.
const (
	suggestionsID = "suggestedAnimals"
	toastID       = "toast-container"
	formStatusID  = "formStatus"
)

// Views renders the site pages. Text is resolved against the request
// language at render time.
type Views struct {
	tr *i18n.Translator
}

func NewViews(tr *i18n.Translator) *Views {
	return &Views{tr: tr}
}

func (v *Views) t(ctx context.Context, key string, params map[string]any) string {
	return v.tr.T(i18n.Locale(ctx), key, params)
}

// htmlWriter keeps the first write error so components can write
// unconditionally and check once.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err == nil {
		h.err = c.Render(ctx, h.w)
	}
}

func component(fn func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		fn(ctx, h)
		return h.err
	})
}

func (v *Views) layout(title string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="`, templ.EscapeString(i18n.Locale(ctx)), `"><head>`,
			`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`)
		h.text(title + " | " + v.t(ctx, "app.title", nil))
		h.raw(`</title><script type="module" src="`, datastarScript, `"></script></head><body>`)

		h.raw(`<nav class="navbar"><a class="navbar-brand" href="/">`)
		h.text(v.t(ctx, "app.title", nil))
		h.raw(`</a><ul class="nav">`)
		for _, link := range [][2]string{
			{"/", "nav.home"},
			{"/animals", "nav.animals"},
			{"/search", "nav.search"},
			{"/add-animal", "nav.add"},
			{"/contact", "nav.contact"},
		} {
			h.raw(`<li class="nav-item"><a class="nav-link" href="`, link[0], `">`)
			h.text(v.t(ctx, link[1], nil))
			h.raw(`</a></li>`)
		}
		h.raw(`</ul><div class="lang"><a href="?lang=en">EN</a> <a href="?lang=fr">FR</a></div></nav>`)

		h.raw(`<div id="`, toastID, `"></div><main class="container">`)
		h.render(ctx, body)
		h.raw(`</main></body></html>`)
	})
}

// fallback translates the card placeholders; real values pass through.
func (v *Views) fallback(ctx context.Context, value, placeholder, key string) string {
	if value == placeholder {
		return v.t(ctx, key, nil)
	}
	return value
}

func (v *Views) ageLabel(ctx context.Context, age int) string {
	if age > 1 {
		return v.t(ctx, "age.many", map[string]any{"count": age})
	}
	return v.t(ctx, "age.one", map[string]any{"count": age})
}

func (v *Views) location(ctx context.Context, c animals.Card) string {
	if c.City != animals.FallbackCity {
		return c.Location
	}
	city := v.t(ctx, "fallbacks.city", nil)
	if c.PostalCode != "" {
		return city + ", " + c.PostalCode
	}
	return city
}

// Card renders one animal card. A query longer than two characters is
// highlighted in the name and description.
func (v *Views) Card(c animals.Card, query string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		name := v.fallback(ctx, c.Name, animals.FallbackName, "fallbacks.name")
		desc := v.fallback(ctx, c.Description, animals.FallbackDescription, "fallbacks.description")

		h.raw(`<div class="col-lg-4 col-md-6 mb-4"><div class="animal-card"><div class="animal-image">`)
		h.raw(`<img src="`, templ.EscapeString(c.ImageURL), `" alt="`, templ.EscapeString(name), `" loading="lazy">`)
		h.raw(`<div class="animal-badge">`)
		h.text(v.fallback(ctx, c.Species, animals.FallbackSpecies, "fallbacks.species"))
		h.raw(`</div></div><div class="animal-info"><h4 class="animal-name">`, animals.Highlight(name, query), `</h4>`)
		h.raw(`<div class="animal-details"><strong>`)
		h.text(v.fallback(ctx, c.Breed, animals.FallbackBreed, "fallbacks.breed"))
		h.raw(`</strong> • `)
		h.text(v.ageLabel(ctx, c.Age))
		h.raw(`</div><p class="animal-description">`, animals.Highlight(desc, query), `</p>`)
		h.raw(`<div class="animal-location">`)
		h.text(v.location(ctx, c))
		h.raw(`</div><a href="/animal/`, strconv.FormatInt(c.ID, 10), `" class="contact-btn">`)
		h.text(v.t(ctx, "card.view", nil))
		h.raw(`</a></div></div></div>`)
	})
}

func (v *Views) cardGrid(id string, cards []animals.Card, query string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="row" id="`, id, `">`)
		for _, c := range cards {
			h.render(ctx, v.Card(c, query))
		}
		h.raw(`</div>`)
	})
}

func (v *Views) HomePage(featured []animals.Card) templ.Component {
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="hero"><h1>`)
		h.text(v.t(ctx, "home.heading", nil))
		h.raw(`</h1></section><section id="featured"><h2>`)
		h.text(v.t(ctx, "home.featured", nil))
		h.raw(`</h2>`)
		h.render(ctx, v.cardGrid("animalsContainer", featured, ""))
		h.raw(`<a class="btn" href="/animals">`)
		h.text(v.t(ctx, "home.see_all", nil))
		h.raw(`</a></section>`)
	})
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return v.layout(v.t(ctx, "nav.home", nil), body).Render(ctx, w)
	})
}

func (v *Views) ListingPage(p animals.Page) templ.Component {
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>`)
		h.text(v.t(ctx, "animals.heading", nil))
		h.raw(`</h1>`)
		if len(p.Animals) == 0 {
			h.raw(`<p class="text-muted">`)
			h.text(v.t(ctx, "animals.empty", nil))
			h.raw(`</p>`)
			return
		}
		h.render(ctx, v.cardGrid("animalsContainer", animals.NewCards(p.Animals), ""))

		h.raw(`<nav class="pagination">`)
		if p.HasPrev() {
			h.raw(`<a rel="prev" href="/animals?page=`, strconv.Itoa(p.Page-1), `">`)
			h.text(v.t(ctx, "animals.prev", nil))
			h.raw(`</a>`)
		}
		h.raw(`<span>`)
		h.text(v.t(ctx, "animals.page", map[string]any{"page": p.Page, "total": p.TotalPages}))
		h.raw(`</span>`)
		if p.HasNext() {
			h.raw(`<a rel="next" href="/animals?page=`, strconv.Itoa(p.Page+1), `">`)
			h.text(v.t(ctx, "animals.next", nil))
			h.raw(`</a>`)
		}
		h.raw(`</nav>`)
	})
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return v.layout(v.t(ctx, "nav.animals", nil), body).Render(ctx, w)
	})
}

// DetailPage shows one listing. Suggestions load after the page through
// a DataStar GET that patches the suggestion block.
func (v *Views) DetailPage(c animals.Card, a animals.Animal) templ.Component {
	body := component(func(ctx context.Context, h *htmlWriter) {
		name := v.fallback(ctx, c.Name, animals.FallbackName, "fallbacks.name")
		id := strconv.FormatInt(c.ID, 10)

		h.raw(`<article class="animal-detail" data-animal-id="`, id, `">`)
		h.raw(`<img src="`, templ.EscapeString(c.ImageURL), `" alt="`, templ.EscapeString(name), `">`)
		h.raw(`<h1>`)
		h.text(name)
		h.raw(`</h1><dl>`)
		for _, row := range [][2]string{
			{"animal.breed", v.fallback(ctx, c.Breed, animals.FallbackBreed, "fallbacks.breed")},
			{"animal.age", v.ageLabel(ctx, c.Age)},
			{"animal.location", v.location(ctx, c)},
		} {
			h.raw(`<dt>`)
			h.text(v.t(ctx, row[0], nil))
			h.raw(`</dt><dd>`)
			h.text(row[1])
			h.raw(`</dd>`)
		}
		h.raw(`</dl><p class="animal-description">`)
		h.text(orFallback(a.Description, v.t(ctx, "fallbacks.description", nil)))
		h.raw(`</p>`)
		if c.OwnerEmail != "" {
			h.raw(`<a class="contact-btn" href="mailto:`, templ.EscapeString(c.OwnerEmail), `">`)
			h.text(v.t(ctx, "animal.contact", nil))
			h.raw(`</a>`)
		}
		h.raw(`</article><section><h2>`)
		h.text(v.t(ctx, "animal.suggestions", nil))
		h.raw(`</h2><div id="`, suggestionsID, `" class="row" data-init="@get('/animal/`, id, `/suggestions')">`)
		h.raw(`<p class="text-muted">`)
		h.text(v.t(ctx, "animal.loading", nil))
		h.raw(`</p></div></section><a href="/animals">`)
		h.text(v.t(ctx, "animal.back", nil))
		h.raw(`</a>`)
	})
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return v.layout(v.fallback(ctx, c.Name, animals.FallbackName, "fallbacks.name"), body).Render(ctx, w)
	})
}

// SuggestionBlock replaces the suggestion container with cards or the
// outcome message.
func (v *Views) SuggestionBlock(s suggestions.Suggestions) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div id="`, suggestionsID, `" class="row">`)
		if s.Message != "" {
			msg := s.Message
			if s.MessageKey != "" {
				msg = v.t(ctx, s.MessageKey, nil)
			}
			h.raw(`<div class="col-12 text-center"><p class="text-muted">`)
			h.text(msg)
			h.raw(`</p></div>`)
		}
		for _, c := range animals.NewCards(s.Animals) {
			h.render(ctx, v.Card(c, ""))
		}
		h.raw(`</div>`)
	})
}

func (v *Views) SearchPage(query string, cards []animals.Card) templ.Component {
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>`)
		h.text(v.t(ctx, "search.heading", nil))
		h.raw(`</h1><form class="search" method="get" action="/search">`)
		h.raw(`<input id="searchInput" type="search" name="q" value="`, templ.EscapeString(query), `" placeholder="`,
			templ.EscapeString(v.t(ctx, "search.placeholder", nil)), `">`)
		h.raw(`<button type="submit">`)
		h.text(v.t(ctx, "search.button", nil))
		h.raw(`</button></form><section id="searchResults">`)
		if query != "" {
			h.raw(`<p class="results-count">`)
			h.text(v.t(ctx, "search.results", map[string]any{"count": len(cards), "query": query}))
			h.raw(`</p>`)
		}
		if len(cards) == 0 {
			h.raw(`<p class="text-muted">`)
			h.text(v.t(ctx, "search.none", nil))
			h.raw(`</p>`)
		}
		h.render(ctx, v.cardGrid("searchContainer", cards, query))
		h.raw(`</section>`)
	})
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return v.layout(v.t(ctx, "search.heading", nil), body).Render(ctx, w)
	})
}

// FieldFeedback is the message slot under one form input. An empty
// message renders the slot hidden.
func (v *Views) FieldFeedback(f formField, msg string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		if msg == "" {
			h.raw(`<div id="`, f.feedbackID(), `" class="error-message" style="display:none"></div>`)
			return
		}
		h.raw(`<div id="`, f.feedbackID(), `" class="error-message text-danger small mt-1">`)
		h.text(msg)
		h.raw(`</div>`)
	})
}

// FormStatus is the banner above the form, empty when there is nothing to say.
func (v *Views) FormStatus(msg string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div id="`, formStatusID, `">`)
		if msg != "" {
			h.raw(`<div class="alert alert-danger">`)
			h.text(msg)
			h.raw(`</div>`)
		}
		h.raw(`</div>`)
	})
}

// AddForm renders the listing form with values and errors keyed by form
// name. Inputs bind DataStar signals of the same name and ask the server to
// validate on input and blur.
func (v *Views) AddForm(values map[string]string, errs handler.ValidationError) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		status := ""
		if !errs.IsEmpty() {
			status = v.t(ctx, "form.invalid", nil)
		}
		h.render(ctx, v.FormStatus(status))

		h.raw(`<form id="adoptionForm" method="post" action="/add-animal" novalidate>`)
		for _, f := range formFields {
			validate := fmt.Sprintf("@post('/add-animal/validate?field=%s')", f.ID)
			msg := errs.Get(f.Name)
			class := "form-control"
			if msg != "" {
				class += " is-invalid"
			}

			h.raw(`<div class="mb-3"><label class="form-label" for="`, f.DOMID, `">`)
			h.text(v.t(ctx, "labels."+string(f.ID), nil))
			h.raw(`</label>`)
			attrs := ` id="` + f.DOMID + `" name="` + f.Name + `" class="` + class + `" data-bind="` + f.Name +
				`" data-on:input__debounce.300ms="` + validate + `" data-on:blur="` + validate + `"`
			if f.Multiline {
				h.raw(`<textarea`, attrs, ` rows="4">`)
				h.text(values[f.Name])
				h.raw(`</textarea>`)
			} else {
				h.raw(`<input type="`, f.InputType, `"`, attrs, ` value="`, templ.EscapeString(values[f.Name]), `">`)
			}
			h.render(ctx, v.FieldFeedback(f, msg))
			h.raw(`</div>`)
		}
		h.raw(`<button type="submit" class="btn btn-primary">`)
		h.text(v.t(ctx, "form.submit", nil))
		h.raw(`</button></form>`)
	})
}

func (v *Views) AddPage(values map[string]string, errs handler.ValidationError) templ.Component {
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>`)
		h.text(v.t(ctx, "form.heading", nil))
		h.raw(`</h1>`)
		h.render(ctx, v.AddForm(values, errs))
	})
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return v.layout(v.t(ctx, "nav.add", nil), body).Render(ctx, w)
	})
}

func (v *Views) ContactPage() templ.Component {
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>`)
		h.text(v.t(ctx, "contact.heading", nil))
		h.raw(`</h1><p>`)
		h.text(v.t(ctx, "contact.body", nil))
		h.raw(`</p>`)
	})
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return v.layout(v.t(ctx, "contact.heading", nil), body).Render(ctx, w)
	})
}

func (v *Views) ErrorPage(p handler.ErrorPageParams) templ.Component {
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="error-page"><h1>`)
		h.text(v.t(ctx, "errors.heading", map[string]any{"status": p.StatusCode}))
		h.raw(`</h1><p>`)
		h.text(p.Error)
		h.raw(`</p>`)
		if p.RequestID != "" {
			h.raw(`<p class="text-muted small">`)
			h.text(p.RequestID)
			h.raw(`</p>`)
		}
		if p.StatusCode >= 500 && p.RetryURL != "" {
			h.raw(`<a href="`, templ.EscapeString(p.RetryURL), `">`)
			h.text(v.t(ctx, "errors.retry", nil))
			h.raw(`</a> `)
		}
		h.raw(`<a href="/">`)
		h.text(v.t(ctx, "errors.home", nil))
		h.raw(`</a></section>`)
	})
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return v.layout(v.t(ctx, "errors.heading", map[string]any{"status": p.StatusCode}), body).Render(ctx, w)
	})
}

func (v *Views) ErrorToast(p handler.ErrorToastParams) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="toast toast-`, templ.EscapeString(p.Type), `" role="alert">`)
		h.text(p.Message)
		h.raw(`</div>`)
	})
}

func orFallback(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
