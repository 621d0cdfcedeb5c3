package http

import (
	"embed"
	"html/template"

	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/service"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pagePayees       = "payees"
	pageTransactions = "transactions"
)

type Handler struct {
	services *service.ClientServices
	pages    map[string]*template.Template

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		pages:    parsePages(),
		logger:   logger,
	}
}

var templateFuncs = template.FuncMap{
	"milliunits": models.FormatMilliunits,
	"orNull": func(s *string) string {
		if s == nil {
			return "null"
		}
		return *s
	},
	"orEmpty": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

// parsePages builds one template set per page, each sharing the layout.
func parsePages() map[string]*template.Template {
	pages := make(map[string]*template.Template, 2)
	for _, name := range []string{pagePayees, pageTransactions} {
		pages[name] = template.Must(
			template.New("layout.html").
				Funcs(templateFuncs).
				ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html"),
		)
	}
	return pages
}
