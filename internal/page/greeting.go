package page

import "github.com/roland/portfolio/internal/greeting"

// RenderGreeting writes the welcome line and its language into the welcome note.
func RenderGreeting(b *Bindings, g greeting.Greeting, owner string) {
	if b.WelcomeNote == nil {
		return
	}
	b.WelcomeNote.SetText(greeting.Welcome(g, owner))
	b.WelcomeNote.SetAttr("lang", g.Lang.String())
}
