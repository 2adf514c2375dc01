// Package frontend implements the behaviors of the shortify page: clearing the input when the
// page is ready, submitting the link form and showing the short URL, and copying the short URL
// to the clipboard. Handlers receive the elements they act on explicitly through View.
package frontend

import (
	"net/url"

	"github.com/danilovkiri/dk_go_shortify/internal/page"
)

// Selectors the page markup has to provide.
const (
	InputSelector         = ".shortify"
	FormSelector          = "#linkForm"
	InputViewSelector     = ".input"
	ResultViewSelector    = "#result"
	ResultHeadingSelector = "h3.result"
	CopyButtonSelector    = "#copyButton"
)

// ValueSetter is a form control whose value can be replaced.
type ValueSetter interface {
	SetValue(v string)
}

// Toggler is a region that can be shown or hidden.
type Toggler interface {
	Show()
	Hide()
}

// TextReader exposes the text content of an element.
type TextReader interface {
	Text() string
}

// TextWriter replaces the text content of an element.
type TextWriter interface {
	SetText(s string)
}

// Label is an element whose text is both read and written.
type Label interface {
	TextReader
	TextWriter
}

// CopyButton is the button triggering the copy action.
type CopyButton interface {
	Label
	Toggler
}

// Form is the submission source: destination, method and encoded fields.
type Form interface {
	Action() string
	Method() string
	Values() url.Values
}

// View holds the page elements the handlers act on. Any field may be nil when the page lacks it.
type View struct {
	Input         ValueSetter
	Form          Form
	InputView     Toggler
	ResultView    Toggler
	ResultHeading Label
	CopyButton    CopyButton
}

// Bind resolves the fixed selectors in doc. The heading is looked up inside the result view only.
func Bind(doc *page.Document) *View {
	v := &View{}
	if el := doc.QuerySelector(InputSelector); el != nil {
		v.Input = el
	}
	if el := doc.QuerySelector(FormSelector); el != nil {
		v.Form = el
	}
	if el := doc.QuerySelector(InputViewSelector); el != nil {
		v.InputView = el
	}
	if result := doc.QuerySelector(ResultViewSelector); result != nil {
		v.ResultView = result
		if el := result.QuerySelector(ResultHeadingSelector); el != nil {
			v.ResultHeading = el
		}
	}
	if el := doc.QuerySelector(CopyButtonSelector); el != nil {
		v.CopyButton = el
	}
	return v
}

// ResetInput clears the input field; a missing field is tolerated.
func ResetInput(field ValueSetter) {
	if field == nil {
		return
	}
	field.SetValue("")
}

// ShowResult swaps the input view for the result view, shows shortURL and reveals the copy button.
func ShowResult(v *View, shortURL string) {
	if v.InputView != nil {
		v.InputView.Hide()
	}
	if v.ResultView != nil {
		v.ResultView.Show()
	}
	if v.ResultHeading != nil {
		v.ResultHeading.SetText(shortURL)
	}
	if v.CopyButton != nil {
		v.CopyButton.Show()
	}
}
