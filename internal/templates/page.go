// Package templates renders the translator page.
package templates

//go:generate templ generate

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/valpere/rapidtran/internal/catalog"
	"github.com/valpere/rapidtran/internal/session"
)

// PageData is everything the page shows for one session.
type PageData struct {
	State       session.State
	Languages   []catalog.LanguageOption
	Suggestions []string
	// Flash is a one-shot notice, such as the copy result.
	Flash string
}

// NewPageData fills the static lists around a state snapshot.
func NewPageData(state session.State, flash string) PageData {
	return PageData{
		State:       state,
		Languages:   catalog.Languages(),
		Suggestions: catalog.Suggestions(),
		Flash:       flash,
	}
}

// suggestURL is the form action that applies suggestion i.
func suggestURL(i int) templ.SafeURL {
	return templ.SafeURL("/suggest/" + strconv.Itoa(i))
}

const stylesheet = `body{font-family:system-ui,sans-serif;background:#0f172a;color:#f8fafc;margin:0}
main{max-width:960px;margin:0 auto;padding:2rem}
textarea,select{width:100%;background:#1e293b;color:inherit;border:1px solid #334155;border-radius:.75rem;padding:.75rem}
button{background:#6366f1;color:#fff;border:0;border-radius:.75rem;padding:.5rem 1rem;margin:.25rem 0;cursor:pointer}
button[disabled]{opacity:.5;cursor:not-allowed}
.suggestions form{display:inline}
.suggestions button{background:#1e293b;border:1px solid #334155}
.meta,.empty,.langs{color:#94a3b8;font-size:.85rem}
.error{color:#fca5a5}
.flash{background:#065f46;padding:.5rem 1rem;border-radius:.75rem}
.history article{border-top:1px solid #334155;padding:.5rem 0}`
