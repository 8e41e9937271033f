package sanitize_test

import (
	"testing"

	"electric-system-backend/pkg/sanitize"

	"github.com/stretchr/testify/assert"
)

func TestHTML(t *testing.T) {
	t.Run("Should escape all five HTML-significant characters", func(t *testing.T) {
		assert.Equal(t, "&lt;b&gt;&quot;hi&quot;&lt;/b&gt;", sanitize.HTML(`<b>"hi"</b>`))
		assert.Equal(t, "&amp;&lt;&gt;&quot;&#039;", sanitize.HTML(`&<>"'`))
	})

	t.Run("Should not double-escape ampersands in entities", func(t *testing.T) {
		// A literal ampersand always becomes &amp;, even if the input
		// already looks like an entity.
		assert.Equal(t, "&amp;lt;", sanitize.HTML("&lt;"))
	})

	t.Run("Should pass plain text through unchanged", func(t *testing.T) {
		assert.Equal(t, "Jean Dupont", sanitize.HTML("Jean Dupont"))
		assert.Equal(t, "+352 661 22 44 09", sanitize.HTML("+352 661 22 44 09"))
	})

	t.Run("Should neutralize script injection", func(t *testing.T) {
		out := sanitize.HTML(`<script>alert('xss')</script>`)
		assert.NotContains(t, out, "<script>")
		assert.Equal(t, "&lt;script&gt;alert(&#039;xss&#039;)&lt;/script&gt;", out)
	})
}

func TestMultiline(t *testing.T) {
	t.Run("Should convert newlines to br tags", func(t *testing.T) {
		assert.Equal(t, "ligne 1<br>ligne 2", sanitize.Multiline("ligne 1\nligne 2"))
		assert.Equal(t, "a<br>b", sanitize.Multiline("a\r\nb"))
	})

	t.Run("Should escape before inserting markup", func(t *testing.T) {
		// User-provided <br> must be escaped; only the inserted tags are raw.
		assert.Equal(t, "&lt;br&gt;<br>x", sanitize.Multiline("<br>\nx"))
	})
}
