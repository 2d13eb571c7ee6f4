package cep

import (
	"embed"
	"html/template"

	"consulta-cep/cep/domain"
)

//go:embed templates/index.html
var templatesFS embed.FS

const pageTemplate = "index.html"

func loadTemplate() *template.Template {
	return template.Must(template.New(pageTemplate).ParseFS(templatesFS, "templates/"+pageTemplate))
}

// page é o que a página renderiza. No GET inicial ambos ficam vazios.
type page struct {
	Data  *domain.AddressRecord
	Error string
}

func pageFor(out domain.Outcome) page {
	if out.Error != nil {
		return page{Error: out.Error.Message}
	}
	return page{Data: out.Address}
}
