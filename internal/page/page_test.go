package page

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<!DOCTYPE html>
<html><body>
<div class="input main">
  <form id="linkForm" action="/shortify" method="post">
    <input class="shortify" type="text" name="url" value="old">
    <input type="hidden" name="lang" value="en">
    <input type="checkbox" name="track" checked>
    <input type="checkbox" name="private" value="yes">
    <input type="text" name="ignored" value="x" disabled>
    <textarea name="note">hello</textarea>
    <select name="ttl"><option value="1h">hour</option><option value="1d" selected>day</option></select>
    <button type="submit" name="go">Shortify</button>
  </form>
</div>
<div id="result" style="display: none; color: red">
  <h3 class="result">previous</h3>
  <button id="copyButton" style="display:none">Copy</button>
</div>
<h3 class="result">outside</h3>
</body></html>`

func parseTestPage(t *testing.T) *Document {
	t.Helper()
	base, err := url.Parse("http://localhost:8080/index")
	require.NoError(t, err)
	doc, err := Parse(strings.NewReader(testPage), base)
	require.NoError(t, err)
	return doc
}

func TestDocument_QuerySelector(t *testing.T) {
	doc := parseTestPage(t)
	tests := []struct {
		sel   string
		found bool
		tag   string
	}{
		{sel: ".shortify", found: true, tag: "input"},
		{sel: "#linkForm", found: true, tag: "form"},
		{sel: ".input", found: true, tag: "div"},
		{sel: "div.main.input", found: true, tag: "div"},
		{sel: "#result", found: true, tag: "div"},
		{sel: "h3.result", found: true, tag: "h3"},
		{sel: "#result h3.result", found: true, tag: "h3"},
		{sel: "button#copyButton", found: true, tag: "button"},
		{sel: "span.result", found: false},
		{sel: "#missing", found: false},
		{sel: "", found: false},
		{sel: "div..x", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.sel, func(t *testing.T) {
			el := doc.QuerySelector(tt.sel)
			if !tt.found {
				assert.Nil(t, el)
				return
			}
			require.NotNil(t, el)
			assert.Equal(t, tt.tag, el.Tag())
		})
	}
}

func TestElement_ScopedQuerySelector(t *testing.T) {
	doc := parseTestPage(t)
	result := doc.QuerySelector("#result")
	require.NotNil(t, result)
	heading := result.QuerySelector("h3.result")
	require.NotNil(t, heading)
	assert.Equal(t, "previous", heading.Text())
	assert.Nil(t, result.QuerySelector(".shortify"))
}

func TestElement_ValueAndText(t *testing.T) {
	doc := parseTestPage(t)
	input := doc.QuerySelector(".shortify")
	assert.Equal(t, "old", input.Value())
	input.SetValue("")
	assert.Equal(t, "", input.Value())

	heading := doc.QuerySelector("#result h3.result")
	heading.SetText("https://short.ly/abc")
	assert.Equal(t, "https://short.ly/abc", heading.Text())

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.Contains(t, buf.String(), `<h3 class="result">https://short.ly/abc</h3>`)
}

func TestElement_Visibility(t *testing.T) {
	doc := parseTestPage(t)
	result := doc.QuerySelector("#result")
	input := doc.QuerySelector(".input")
	assert.False(t, result.Visible())
	assert.True(t, input.Visible())

	result.Show()
	input.Hide()
	assert.True(t, result.Visible())
	assert.False(t, input.Visible())
	style, _ := result.Attr("style")
	assert.Equal(t, "display: block; color: red", style)
	style, _ = input.Attr("style")
	assert.Equal(t, "display: none", style)
}

func TestElement_Form(t *testing.T) {
	doc := parseTestPage(t)
	form := doc.QuerySelector("#linkForm")
	assert.Equal(t, "http://localhost:8080/shortify", form.Action())
	assert.Equal(t, "POST", form.Method())
	assert.Equal(t, url.Values{
		"url":   {"old"},
		"lang":  {"en"},
		"track": {"on"},
		"note":  {"hello"},
		"ttl":   {"1d"},
	}, form.Values())
}

func TestElement_FormDefaults(t *testing.T) {
	base, _ := url.Parse("http://localhost:8080/page")
	doc, err := Parse(strings.NewReader(`<form id="f"><input name="q" value="go"></form>`), base)
	require.NoError(t, err)
	form := doc.QuerySelector("#f")
	assert.Equal(t, "http://localhost:8080/page", form.Action())
	assert.Equal(t, "GET", form.Method())
	assert.Equal(t, "q=go", form.Values().Encode())
}

func TestSetStyleProperty(t *testing.T) {
	assert.Equal(t, "display: none", setStyleProperty("", "display", "none"))
	assert.Equal(t, "color: red; display: block", setStyleProperty("color: red;", "display", "block"))
	assert.Equal(t, "display: block", setStyleProperty("DISPLAY:none; display: inline", "display", "block"))
}
