package content

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var detailTemplate = template.Must(template.New("detail").Funcs(template.FuncMap{
	"code": func(items []string) string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, "`"+it+"`")
		}
		return strings.Join(out, " ")
	},
}).Parse(`## {{.Title}}

{{.Description}}

### Key Features
{{range .Features}}
- {{.}}
{{- end}}

### Technologies Used

{{code .Tech}}

### Challenges & Solutions

{{.Challenges}}
{{if or .LiveURL .GithubURL}}
{{if .LiveURL}}[View Live Demo]({{.LiveURL}}){{end}}{{if and .LiveURL .GithubURL}} · {{end}}{{if .GithubURL}}[View on GitHub]({{.GithubURL}}){{end}}
{{end}}`))

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Markdown renders the project-detail body as Markdown.
func Markdown(p Project) (string, error) {
	var buf bytes.Buffer
	if err := detailTemplate.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("content: render %s: %w", p.ID, err)
	}
	return buf.String(), nil
}

// HTML renders the project-detail modal body.
func HTML(p Project) (string, error) {
	md, err := Markdown(p)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("content: convert %s: %w", p.ID, err)
	}
	return buf.String(), nil
}
