package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"turfdesk/internal/form"
	"turfdesk/internal/turfapi"
)

func (app *application) indexHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/turfs/new", http.StatusFound)
}

// newTurfFormHandler godoc
//
//	@Summary		Open a create form
//	@Description	Opens a blank listing form and redirects to it
//	@Tags			forms
//	@Produce		json
//	@Success		201	{object}	map[string]string	"formId"
//	@Router			/turfs/new [get]
func (app *application) newTurfFormHandler(w http.ResponseWriter, r *http.Request) {
	in := app.forms.Open(form.ModeCreate, 0, form.NewState())

	app.logger.Infow("form opened", "form_id", in.ID, "mode", in.Mode)

	if wantsJSON(r) {
		if err := app.jsonResponse(w, http.StatusCreated, map[string]string{"formId": in.ID}); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}
	http.Redirect(w, r, "/forms/"+in.ID, http.StatusSeeOther)
}

// editTurfFormHandler godoc
//
//	@Summary		Open an edit form
//	@Description	Fetches the listing from the backend, seeds a form with it and redirects to it
//	@Tags			forms
//	@Produce		json
//	@Param			turfID	path		int					true	"Turf ID"
//	@Success		201		{object}	map[string]string	"formId"
//	@Failure		400		{object}	error				"Invalid turf ID"
//	@Failure		404		{object}	error				"Turf not found"
//	@Failure		502		{object}	error				"Backend unreachable"
//	@Router			/turfs/{turfID}/edit [get]
func (app *application) editTurfFormHandler(w http.ResponseWriter, r *http.Request) {
	turfID, err := strconv.ParseInt(chi.URLParam(r, "turfID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid turf id"))
		return
	}

	t, err := app.backend.Get(r.Context(), turfID)
	if err != nil {
		var apiErr *turfapi.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			app.notFoundResponse(w, r, err)
			return
		}
		app.upstreamErrorResponse(w, r, err)
		return
	}

	in := app.forms.Open(form.ModeEdit, turfID, form.SeedState(t))

	app.logger.Infow("form opened", "form_id", in.ID, "mode", in.Mode, "turf_id", turfID)

	if wantsJSON(r) {
		if err := app.jsonResponse(w, http.StatusCreated, map[string]string{"formId": in.ID}); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}
	http.Redirect(w, r, "/forms/"+in.ID, http.StatusSeeOther)
}
