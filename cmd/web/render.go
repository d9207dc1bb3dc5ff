package main

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"turfdesk/internal/form"
	"turfdesk/internal/turf"
)

//go:embed "templates"
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// imageSlot is one thumbnail on the form: a retained reference resolved to
// its hosted URL, or a pending file shown through its data-URL preview. URL
// is template.URL because previews use the data scheme.
type imageSlot struct {
	Kind    string // retained or pending, names the list the index points into
	Index   int
	URL     template.URL
	Name    string
	Primary bool
}

type formPage struct {
	FormID     string
	Edit       bool
	TurfID     int64
	Fields     form.FormFields
	Sports     []turf.SportType
	Images     []imageSlot
	TotalCount int
	Busy       bool
	Flash      []string
}

type successPage struct {
	Created bool
	Turf    *turf.Turf
	Images  []string
}

type errorPage struct {
	Status  int
	Message string
}

// formPageOf snapshots an instance into the template's view of it.
func (app *application) formPageOf(in *form.Instance) formPage {
	state := in.Snapshot()

	slots := make([]imageSlot, 0, state.Images.TotalCount())
	for i, ref := range state.Images.Retained {
		slots = append(slots, imageSlot{
			Kind:    "retained",
			Index:   i,
			URL:     template.URL(app.resolver.Resolve(ref)),
			Primary: len(slots) == 0,
		})
	}
	for i, f := range state.Images.Pending {
		preview, _ := in.Previews().Lookup(f.ID)
		slots = append(slots, imageSlot{
			Kind:    "pending",
			Index:   i,
			URL:     template.URL(preview),
			Name:    f.Name,
			Primary: len(slots) == 0,
		})
	}

	return formPage{
		FormID:     in.ID,
		Edit:       in.Mode == form.ModeEdit,
		TurfID:     in.TurfID,
		Fields:     state.Fields,
		Sports:     turf.Sports(),
		Images:     slots,
		TotalCount: state.Images.TotalCount(),
		Busy:       in.Busy(),
		Flash:      in.PopFlash(),
	}
}

// render executes into a buffer first so a template failure can still
// become a clean error response.
func (app *application) render(w http.ResponseWriter, status int, name string, data any) {
	buf := new(bytes.Buffer)
	if err := pages.ExecuteTemplate(buf, name, data); err != nil {
		app.logger.Errorw("template render failed", "template", name, "error", err.Error())
		writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (app *application) renderForm(w http.ResponseWriter, page formPage) {
	app.render(w, http.StatusOK, "form.tmpl", page)
}

func (app *application) renderSuccess(w http.ResponseWriter, mode form.Mode, t *turf.Turf) {
	app.render(w, http.StatusOK, "success.tmpl", successPage{
		Created: mode == form.ModeCreate,
		Turf:    t,
		Images:  app.resolver.ResolveAll(t.ImageURLs),
	})
}

func (app *application) renderError(w http.ResponseWriter, status int, message string) {
	app.render(w, status, "error.tmpl", errorPage{Status: status, Message: message})
}
