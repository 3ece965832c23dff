// Package templates renders the account emails embedded in this directory.
// Every template comes as <name>.html and optionally <name>.txt and is
// executed against the job's string map (user_name, expires_in and a link).
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

//go:embed *.html *.txt
var files embed.FS

// Message is a rendered email body. Text is empty when no .txt template exists.
type Message struct {
	HTML string
	Text string
}

// Renderer executes the embedded templates.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

func NewRenderer() (*Renderer, error) {
	html, err := htmltemplate.New("").Option("missingkey=zero").ParseFS(files, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	text, err := texttemplate.New("").Option("missingkey=zero").ParseFS(files, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	return &Renderer{html: html, text: text}, nil
}

// Render produces both bodies of kind. Unknown kinds fail with domainerror.ErrInvalidTemplate.
func (r *Renderer) Render(kind entity.EmailTemplateType, data map[string]string) (Message, error) {
	name := string(kind)
	if r.html.Lookup(name+".html") == nil {
		return Message{}, fmt.Errorf("%w: %q", domainerror.ErrInvalidTemplate, name)
	}

	var msg Message
	var buf bytes.Buffer
	if err := r.html.ExecuteTemplate(&buf, name+".html", data); err != nil {
		return Message{}, fmt.Errorf("%w: %s.html: %v", domainerror.ErrTemplateRenderFailed, name, err)
	}
	msg.HTML = buf.String()

	if r.text.Lookup(name+".txt") != nil {
		buf.Reset()
		if err := r.text.ExecuteTemplate(&buf, name+".txt", data); err != nil {
			return Message{}, fmt.Errorf("%w: %s.txt: %v", domainerror.ErrTemplateRenderFailed, name, err)
		}
		msg.Text = buf.String()
	}
	return msg, nil
}
