package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// AboutContent is the static about page body, authored as a templ component.
// The handler bridges it into the gomponents layout through the view adapters.
func AboutContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="about-page">`+
			`<h2>About Warbler.</h2>`+
			`<p>Warbler is a small place to share what is happening in 140 characters or less. `+
			`Sign up, follow the people you like and keep your timeline singing.</p>`+
			`</div>`)
		return err
	})
}
