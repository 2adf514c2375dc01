package frontend

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilovkiri/dk_go_shortify/internal/page"
)

const testMarkup = `<!DOCTYPE html>
<html><body>
<div class="input">
  <form id="linkForm" action="%s" method="post">
    <input class="shortify" type="text" name="url" value="old">
    <button type="submit">Shortify</button>
  </form>
</div>
<div id="result" style="display: none">
  <h3 class="result"></h3>
  <button id="copyButton" type="button" style="display: none">Copy</button>
</div>
</body></html>`

func parsePage(t *testing.T, action string) *page.Document {
	t.Helper()
	doc, err := page.Parse(strings.NewReader(fmt.Sprintf(testMarkup, action)), nil)
	require.NoError(t, err)
	return doc
}

func TestBind(t *testing.T) {
	v := Bind(parsePage(t, "/shortify"))
	assert.NotNil(t, v.Input)
	assert.NotNil(t, v.Form)
	assert.NotNil(t, v.InputView)
	assert.NotNil(t, v.ResultView)
	assert.NotNil(t, v.ResultHeading)
	assert.NotNil(t, v.CopyButton)
	assert.Equal(t, "POST", v.Form.Method())
	assert.Equal(t, "/shortify", v.Form.Action())
}

func TestBind_MissingElements(t *testing.T) {
	doc, err := page.Parse(strings.NewReader(`<html><body><h3 class="result">outside</h3></body></html>`), nil)
	require.NoError(t, err)
	v := Bind(doc)
	assert.Nil(t, v.Input)
	assert.Nil(t, v.Form)
	assert.Nil(t, v.InputView)
	assert.Nil(t, v.ResultView)
	assert.Nil(t, v.ResultHeading)
	assert.Nil(t, v.CopyButton)
}

func TestResetInput(t *testing.T) {
	doc := parsePage(t, "/shortify")
	input := doc.QuerySelector(InputSelector)
	require.NotNil(t, input)
	require.Equal(t, "old", input.Value())

	ResetInput(input)
	assert.Equal(t, "", input.Value())
	assert.NotPanics(t, func() { ResetInput(nil) })
}

func TestShowResult(t *testing.T) {
	doc := parsePage(t, "/shortify")
	v := Bind(doc)
	ShowResult(v, "http://localhost:8080/abc")

	assert.False(t, doc.QuerySelector(InputViewSelector).Visible())
	assert.True(t, doc.QuerySelector(ResultViewSelector).Visible())
	assert.True(t, doc.QuerySelector(CopyButtonSelector).Visible())
	assert.Equal(t, "http://localhost:8080/abc", doc.QuerySelector("#result h3.result").Text())
}

func TestShowResult_NoHeading(t *testing.T) {
	doc, err := page.Parse(strings.NewReader(`<div class="input"></div><div id="result" style="display: none"></div><h3 class="result"></h3>`), nil)
	require.NoError(t, err)
	v := Bind(doc)
	ShowResult(v, "http://localhost:8080/abc")

	assert.True(t, doc.QuerySelector(ResultViewSelector).Visible())
	assert.Equal(t, "", doc.QuerySelector("h3.result").Text())
}
