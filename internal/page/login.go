package page

import (
	"context"
	"log/slog"

	"github.com/roland/portfolio/internal/login"
)

// CheckLogin fetches the session state and renders the matching view.
// A failed check is logged and shown as logged out without a link.
func CheckLogin(ctx context.Context, api API, b *Bindings) *login.Status {
	status, err := api.LoginStatus(ctx)
	if err != nil {
		slog.Warn("checking login status", "error", err)
		SetAuthenticatedView(b, false)
		return nil
	}

	SetAuthenticatedView(b, status.IsLoggedIn)
	renderLogLink(b, status, resolveLink(api, status.LogURL))
	return status
}

// SetAuthenticatedView shows or hides the comment form and the comment
// controls together.
func SetAuthenticatedView(b *Bindings, loggedIn bool) {
	if b.CommentForm != nil {
		b.CommentForm.SetHidden(!loggedIn)
	}
	if b.DisplayComments != nil {
		b.DisplayComments.SetHidden(!loggedIn)
	}
}

// resolveLink makes a backend-relative login or logout URL absolute when the
// API can resolve it, and returns it unchanged otherwise.
func resolveLink(api API, href string) string {
	r, ok := api.(URLResolver)
	if !ok || href == "" {
		return href
	}
	resolved, err := r.ResolveURL(href)
	if err != nil {
		slog.Warn("resolving login URL", "url", href, "error", err)
		return href
	}
	return resolved
}

func renderLogLink(b *Bindings, status *login.Status, href string) {
	if b.LogInLogOut == nil {
		return
	}
	b.LogInLogOut.ClearChildren()

	if email := status.Email(); email != "" {
		span := b.Doc.CreateElement("span")
		span.SetAttr("class", "user-email")
		span.SetText(email)
		b.LogInLogOut.AppendChild(span)
	}

	a := b.Doc.CreateElement("a")
	a.SetAttr("href", href)
	a.SetText(status.LinkText())
	b.LogInLogOut.AppendChild(a)
}
