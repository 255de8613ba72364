// Package greeting picks the localized welcome shown at the top of the page.
package greeting

import (
	"math/rand/v2"

	"golang.org/x/text/language"
)

// Greeting is a welcome string and the language it is written in.
type Greeting struct {
	Text string
	Lang language.Tag
}

var greetings = []Greeting{
	{Text: "Hello world!", Lang: language.English},
	{Text: "¡Hola Mundo!", Lang: language.Spanish},
	{Text: "你好，世界！", Lang: language.Chinese},
	{Text: "Bonjour le monde!", Lang: language.French},
}

// All returns every greeting Random can produce.
func All() []Greeting {
	out := make([]Greeting, len(greetings))
	copy(out, greetings)
	return out
}

// Random returns one of the fixed greetings chosen uniformly.
// A nil r uses the global source.
func Random(r *rand.Rand) Greeting {
	if r == nil {
		return greetings[rand.IntN(len(greetings))]
	}
	return greetings[r.IntN(len(greetings))]
}

// Welcome formats the greeting followed by the site owner's introduction.
func Welcome(g Greeting, owner string) string {
	if owner == "" {
		return g.Text
	}
	return g.Text + " My name is " + owner
}
