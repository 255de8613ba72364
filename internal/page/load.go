package page

import (
	"context"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/roland/portfolio/internal/greeting"
	"github.com/roland/portfolio/internal/login"
)

// Options tune a page load.
type Options struct {
	Owner string

	// MaxComments is used as given; callers default it to comment.DefaultMaxComments.
	MaxComments int
	Rand        *rand.Rand
}

// Result reports what a page load found.
type Result struct {
	Login       *login.Status
	UploadReady bool
}

// OnLoad renders the greeting, then checks login, loads comments, and
// prepares the upload form concurrently, returning once all three finish.
func OnLoad(ctx context.Context, api API, b *Bindings, opts Options) Result {
	return run(ctx, api, b, opts, func() {
		LoadComments(ctx, api, b, opts.MaxComments)
	})
}

// OnDelete is OnLoad with the comment load replaced by a deletion followed by
// the reload DeleteComments always performs.
func OnDelete(ctx context.Context, api API, b *Bindings, opts Options, alert Alerter) Result {
	return run(ctx, api, b, opts, func() {
		DeleteComments(ctx, api, b, opts.MaxComments, alert)
	})
}

func run(ctx context.Context, api API, b *Bindings, opts Options, comments func()) Result {
	RenderGreeting(b, greeting.Random(opts.Rand), opts.Owner)

	var res Result
	var g errgroup.Group
	g.Go(func() error {
		res.Login = CheckLogin(ctx, api, b)
		return nil
	})
	g.Go(func() error {
		comments()
		return nil
	})
	g.Go(func() error {
		res.UploadReady = PrepareUpload(ctx, api, b)
		return nil
	})
	_ = g.Wait()

	// The login check may have shown the form after the upload failed.
	if !res.UploadReady {
		lockUpload(b)
	}

	return res
}
