package page

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/roland/portfolio/internal/comment"
	"github.com/roland/portfolio/internal/dom"
)

// Alerter shows a blocking message to the visitor.
type Alerter func(msg string)

// DeleteFailedMessage is shown when the backend refuses to delete comments.
const DeleteFailedMessage = "There was an error deleting comments!"

// LoadComments fetches up to limit comments and replaces the rendered list.
// On failure the container keeps its previous contents and the error is logged.
func LoadComments(ctx context.Context, api API, b *Bindings, limit int) {
	limit = comment.ClampMaxComments(limit)
	showLimit(b, limit)

	comments, err := api.Comments(ctx, limit)
	if err != nil {
		slog.Warn("loading comments", "limit", limit, "error", err)
		return
	}

	if b.UserComments == nil {
		return
	}
	b.UserComments.ClearChildren()
	for _, c := range comments {
		b.UserComments.AppendChild(renderComment(b.Doc, resolveImage(api, c)))
	}
	b.UserComments.SetHidden(false)
	slog.Debug("comments rendered", "count", len(comments))
}

// DeleteComments asks the backend to drop every comment, alerting on failure,
// and then reloads the list whatever the outcome.
func DeleteComments(ctx context.Context, api API, b *Bindings, limit int, alert Alerter) {
	defer LoadComments(ctx, api, b, limit)

	if err := api.DeleteComments(ctx); err != nil {
		slog.Error("deleting comments", "error", err)
		if alert != nil {
			alert(DeleteFailedMessage)
		}
	}
}

func showLimit(b *Bindings, limit int) {
	if b.NumComments != nil {
		b.NumComments.SetAttr("value", strconv.Itoa(limit))
	}
	if b.TooltipText != nil {
		b.TooltipText.SetText(fmt.Sprintf("Showing up to %d comments", limit))
	}
}

func resolveImage(api API, c comment.Comment) comment.Comment {
	r, ok := api.(URLResolver)
	if !ok || !c.HasImage() {
		return c
	}
	resolved, err := r.ResolveURL(c.ImageURL)
	if err != nil {
		slog.Warn("resolving image URL", "url", c.ImageURL, "error", err)
		c.ImageURL = ""
		return c
	}
	c.ImageURL = resolved
	return c
}

// renderComment builds one entry: the "name: comment" line and, if present, the image.
func renderComment(doc dom.Document, c comment.Comment) dom.Element {
	entry := doc.CreateElement("div")
	entry.SetAttr("class", "comment")

	p := doc.CreateElement("p")
	p.SetText(c.Line())
	entry.AppendChild(p)

	if c.HasImage() {
		img := doc.CreateElement("img")
		img.SetAttr("src", c.ImageURL)
		img.SetAttr("alt", "Image from "+c.Name)
		entry.AppendChild(img)
	}
	return entry
}
