package page

import (
	"context"
	"log/slog"
)

// PrepareUpload points the comment form at a fresh upload URL. Submission
// stays disabled until the URL is assigned, and stays disabled if it cannot be.
func PrepareUpload(ctx context.Context, api API, b *Bindings) bool {
	if b.CommentForm == nil {
		return false
	}
	if b.CommentSubmit != nil {
		b.CommentSubmit.SetAttr("disabled", "")
	}
	b.CommentForm.RemoveAttr("action")

	uploadURL, err := api.UploadURL(ctx)
	if err != nil {
		slog.Warn("fetching upload URL", "error", err)
		lockUpload(b)
		return false
	}

	b.CommentForm.SetAttr("action", uploadURL)
	if b.CommentSubmit != nil {
		b.CommentSubmit.RemoveAttr("disabled")
	}
	return true
}

// lockUpload keeps a form without an upload URL from being posted. Without a
// submit control to disable, the only way is to hide the form.
func lockUpload(b *Bindings) {
	if b.CommentForm == nil || b.CommentSubmit != nil {
		return
	}
	if !b.CommentForm.Hidden() {
		slog.Warn("hiding comment form with no upload URL", "missing", IDCommentSubmit)
	}
	b.CommentForm.SetHidden(true)
}
