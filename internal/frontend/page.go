package frontend

import "context"

// Page attaches the three handlers to one bound view.
type Page struct {
	View      *View
	submitter *Submitter
	copier    *Copier
}

// NewPage returns a Page dispatching events for view.
func NewPage(view *View, submitter *Submitter, copier *Copier) *Page {
	return &Page{
		View:      view,
		submitter: submitter,
		copier:    copier,
	}
}

// Ready runs once the page is loaded.
func (p *Page) Ready() {
	ResetInput(p.View.Input)
}

// Submit handles a submission of the link form.
func (p *Page) Submit(ctx context.Context) bool {
	return p.submitter.Submit(ctx, p.View.Form, p.View)
}

// CopyClicked handles an activation of the copy button.
func (p *Page) CopyClicked(ctx context.Context) error {
	var button Label
	if p.View.CopyButton != nil {
		button = p.View.CopyButton
	}
	return p.copier.Copy(ctx, p.View.ResultHeading, button)
}

// Close cancels scheduled work of the page.
func (p *Page) Close() {
	p.copier.Stop()
}
