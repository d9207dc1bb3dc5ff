package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"turfdesk/internal/form"
	"turfdesk/internal/staging"
	"turfdesk/internal/turf"
)

// memoryThreshold is how much of a multipart body ParseMultipartForm keeps
// in memory before spilling to temp files.
const memoryThreshold = 32 << 20

func (app *application) instanceFromRequest(w http.ResponseWriter, r *http.Request) (*form.Instance, bool) {
	id := chi.URLParam(r, "formID")
	in, ok := app.forms.Lookup(id)
	if !ok {
		app.notFoundResponse(w, r, fmt.Errorf("form %s is not open", id))
		return nil, false
	}
	return in, true
}

// formFieldsFromRequest lifts the posted values into the field struct. Raw
// strings only; the validation rules decide what is acceptable.
func formFieldsFromRequest(r *http.Request) form.FormFields {
	return form.FormFields{
		Name:               r.FormValue("name"),
		Phone:              r.FormValue("phone"),
		Location:           r.FormValue("location"),
		PricePerSlot:       r.FormValue("pricePerSlot"),
		OperatingStartTime: r.FormValue("operatingStartTime"),
		OperatingEndTime:   r.FormValue("operatingEndTime"),
		Type:               turf.SportType(r.FormValue("type")),
		Description:        r.FormValue("description"),
	}
}

// showFormHandler godoc
//
//	@Summary		Render an open form
//	@Description	Shows the listing form with its staged images and any queued messages
//	@Tags			forms
//	@Produce		html
//	@Param			formID	path		string	true	"Form ID"
//	@Failure		404		{object}	error	"Form not open"
//	@Router			/forms/{formID} [get]
func (app *application) showFormHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := app.instanceFromRequest(w, r)
	if !ok {
		return
	}

	if wantsJSON(r) {
		state := in.Snapshot()
		if err := app.jsonResponse(w, http.StatusOK, map[string]any{
			"formId":      in.ID,
			"mode":        in.Mode,
			"totalImages": state.Images.TotalCount(),
			"busy":        in.Busy(),
		}); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	app.renderForm(w, app.formPageOf(in))
}

// attachImagesHandler godoc
//
//	@Summary		Stage images
//	@Description	Adds the posted files to the form's pending set; unsuitable files turn into warnings
//	@Tags			forms
//	@Accept			mpfd
//	@Produce		json
//	@Param			formID	path		string	true	"Form ID"
//	@Param			images	formData	file	true	"Image files"
//	@Success		200		{object}	map[string]any	"staged, warnings, totalImages"
//	@Failure		400		{object}	error			"Unreadable multipart body"
//	@Failure		404		{object}	error			"Form not open"
//	@Router			/forms/{formID}/images [post]
func (app *application) attachImagesHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := app.instanceFromRequest(w, r)
	if !ok {
		return
	}

	// Cap the whole body well above the per-file limit so oversized files
	// reach the staging check and come back as a warning, not a transport
	// error.
	r.Body = http.MaxBytesReader(w, r.Body, app.config.upload.maxBodyBytes)
	if err := r.ParseMultipartForm(memoryThreshold); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("unable to read upload: %w", err))
		return
	}

	fields := formFieldsFromRequest(r)

	var candidates []staging.Candidate
	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["images"] {
			candidates = append(candidates, staging.Candidate{
				Name:        fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Size:        fh.Size,
				Open:        func() (io.ReadCloser, error) { return fh.Open() },
			})
		}
	}

	files, warnings := staging.Select(candidates)

	state := in.Apply(func(s form.State) form.State {
		return s.WithFields(fields).WithImagesAdded(files...)
	})
	for _, f := range files {
		in.Previews().Generate(f)
	}

	msgs := make([]string, 0, len(warnings))
	for _, warning := range warnings {
		msgs = append(msgs, warning.Message())
	}
	in.AddFlash(msgs...)

	app.logger.Infow("images staged",
		"form_id", in.ID, "picked", len(candidates), "staged", len(files), "warnings", len(msgs))

	if wantsJSON(r) {
		if err := app.jsonResponse(w, http.StatusOK, map[string]any{
			"staged":      len(files),
			"warnings":    msgs,
			"totalImages": state.Images.TotalCount(),
		}); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}
	http.Redirect(w, r, "/forms/"+in.ID, http.StatusSeeOther)
}

// removeImageHandler godoc
//
//	@Summary		Remove a staged image
//	@Description	Drops one image from the retained or pending list by its position
//	@Tags			forms
//	@Produce		json
//	@Param			formID	path		string	true	"Form ID"
//	@Param			list	formData	string	true	"retained or pending"
//	@Param			index	formData	int		true	"Position within the list"
//	@Success		200		{object}	map[string]any	"totalImages"
//	@Failure		400		{object}	error			"Unknown list or index"
//	@Failure		404		{object}	error			"Form not open"
//	@Router			/forms/{formID}/images/remove [post]
func (app *application) removeImageHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := app.instanceFromRequest(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	list := r.FormValue("list")
	indexValue := r.FormValue("index")
	// The form's remove buttons carry both values in one pair, list:index.
	if combined := r.FormValue("remove"); combined != "" && list == "" {
		if l, i, ok := strings.Cut(combined, ":"); ok {
			list, indexValue = l, i
		}
	}
	if list != "retained" && list != "pending" {
		app.badRequestResponse(w, r, fmt.Errorf("unknown image list %q", list))
		return
	}
	index, err := strconv.Atoi(indexValue)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid image index"))
		return
	}

	fields := formFieldsFromRequest(r)

	var dropped *staging.File
	state := in.Apply(func(s form.State) form.State {
		s = s.WithFields(fields)
		if list == "pending" {
			if index >= 0 && index < len(s.Images.Pending) {
				dropped = s.Images.Pending[index]
			}
			return s.WithPendingRemoved(index)
		}
		return s.WithRetainedRemoved(index)
	})
	if dropped != nil {
		in.Previews().Drop(dropped.ID)
	}

	app.logger.Infow("image removed", "form_id", in.ID, "list", list, "index", index)

	if wantsJSON(r) {
		if err := app.jsonResponse(w, http.StatusOK, map[string]any{
			"totalImages": state.Images.TotalCount(),
		}); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}
	http.Redirect(w, r, "/forms/"+in.ID, http.StatusSeeOther)
}

// submitFormHandler godoc
//
//	@Summary		Submit the form
//	@Description	Validates, uploads pending images, then creates or updates the listing
//	@Tags			forms
//	@Produce		json
//	@Param			formID	path		string	true	"Form ID"
//	@Success		200		{object}	turf.Turf
//	@Failure		404		{object}	error	"Form not open"
//	@Failure		409		{object}	error	"Submission already in progress"
//	@Failure		422		{object}	error	"Validation failed"
//	@Failure		502		{object}	error	"Upload or save failed"
//	@Router			/forms/{formID}/submit [post]
func (app *application) submitFormHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := app.instanceFromRequest(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	fields := formFieldsFromRequest(r)
	in.Apply(func(s form.State) form.State { return s.WithFields(fields) })

	saved, err := app.submitter.Submit(r.Context(), in)
	if err != nil {
		app.submitFailed(w, r, in, err)
		return
	}

	app.forms.Discard(in.ID)
	app.logger.Infow("listing saved", "form_id", in.ID, "mode", in.Mode, "turf_id", saved.ID)

	if wantsJSON(r) {
		if err := app.jsonResponse(w, http.StatusOK, saved); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}
	app.renderSuccess(w, in.Mode, saved)
}

// submitFailed routes each failure kind to its status, or back onto the
// form as a flash message for the browser flow.
func (app *application) submitFailed(w http.ResponseWriter, r *http.Request, in *form.Instance, err error) {
	var submitErr *form.SubmitError

	switch {
	case errors.Is(err, form.ErrSubmitInFlight):
		if wantsJSON(r) {
			app.conflictResponse(w, r, err)
			return
		}
		in.AddFlash(err.Error())

	case form.IsValidationError(err):
		app.logger.Infow("submission rejected", "form_id", in.ID, "reason", err.Error())
		if wantsJSON(r) {
			writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		in.AddFlash(err.Error())

	case errors.As(err, &submitErr):
		app.logger.Errorw("submission failed",
			"form_id", in.ID, "stage", submitErr.Stage, "error", submitErr.Cause.Error())
		if wantsJSON(r) {
			writeJSONError(w, http.StatusBadGateway, submitErr.Error())
			return
		}
		in.AddFlash(submitErr.Error())

	default:
		app.internalServerError(w, r, err)
		return
	}

	http.Redirect(w, r, "/forms/"+in.ID, http.StatusSeeOther)
}
