package rendering_test

import (
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/warblerhq/warbler/internal/rendering"
)

func TestRenderComponent_Gomponents(t *testing.T) {
	r := rendering.NewUniversalRenderer()

	out, err := r.RenderComponent(context.Background(), g.P(cmp.Text("hi")))

	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(out))
}

func TestRenderComponent_Templ(t *testing.T) {
	r := rendering.NewUniversalRenderer()
	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>hi</p>")
		return err
	})

	out, err := r.RenderComponent(context.Background(), component)

	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(out))
}

func TestRenderComponent_UnsupportedType(t *testing.T) {
	r := rendering.NewUniversalRenderer()

	_, err := r.RenderComponent(context.Background(), 42)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported component type")
}
