// Package page implements the portfolio page's on-load behavior against a
// dom.Document and the backend API.
package page

import (
	"context"

	"github.com/roland/portfolio/internal/comment"
	"github.com/roland/portfolio/internal/dom"
	"github.com/roland/portfolio/internal/login"
)

// Element ids the page markup must provide.
const (
	IDWelcomeNote     = "welcome-note"
	IDUserComments    = "user-comments"
	IDCommentForm     = "comment-form"
	IDLogInLogOut     = "logInLogOut"
	IDDisplayComments = "display-comments"
	IDNumComments     = "numComments"
	IDTooltipText     = "tooltipText"
	IDCommentSubmit   = "comment-submit"
)

// API is the backend the page talks to.
type API interface {
	Comments(ctx context.Context, n int) ([]comment.Comment, error)
	LoginStatus(ctx context.Context) (*login.Status, error)
	DeleteComments(ctx context.Context) error
	UploadURL(ctx context.Context) (string, error)
}

// URLResolver maps backend-relative references to absolute URLs.
// APIs that implement it get their image references resolved.
type URLResolver interface {
	ResolveURL(ref string) (string, error)
}

// Bindings are the page elements, resolved once. A nil field means the page
// has no such element and routines skip it.
type Bindings struct {
	Doc             dom.Document
	WelcomeNote     dom.Element
	UserComments    dom.Element
	CommentForm     dom.Element
	LogInLogOut     dom.Element
	DisplayComments dom.Element
	NumComments     dom.Element
	TooltipText     dom.Element
	CommentSubmit   dom.Element
}

// Bind resolves the page elements from doc.
func Bind(doc dom.Document) *Bindings {
	lookup := func(id string) dom.Element {
		el, ok := doc.ElementByID(id)
		if !ok {
			return nil
		}
		return el
	}
	return &Bindings{
		Doc:             doc,
		WelcomeNote:     lookup(IDWelcomeNote),
		UserComments:    lookup(IDUserComments),
		CommentForm:     lookup(IDCommentForm),
		LogInLogOut:     lookup(IDLogInLogOut),
		DisplayComments: lookup(IDDisplayComments),
		NumComments:     lookup(IDNumComments),
		TooltipText:     lookup(IDTooltipText),
		CommentSubmit:   lookup(IDCommentSubmit),
	}
}

// Missing lists the ids of required elements the page lacks.
func (b *Bindings) Missing() []string {
	required := []struct {
		id string
		el dom.Element
	}{
		{IDWelcomeNote, b.WelcomeNote},
		{IDUserComments, b.UserComments},
		{IDCommentForm, b.CommentForm},
		{IDLogInLogOut, b.LogInLogOut},
		{IDDisplayComments, b.DisplayComments},
		{IDNumComments, b.NumComments},
		{IDTooltipText, b.TooltipText},
	}
	var missing []string
	for _, r := range required {
		if r.el == nil {
			missing = append(missing, r.id)
		}
	}
	return missing
}
