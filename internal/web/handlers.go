package web

import (
	"net/http"
	"strconv"

	"profilebook/internal/core"

	"github.com/go-chi/chi/v5"
)

// maxPictureSize bounds the multipart form, picture included (5MB). The
// picture is only previewed client-side, never stored.
const maxPictureSize = 5 * 1024 * 1024

// maxPageSize caps the per_page override accepted from the query string.
const maxPageSize = 500

// handleHome renders the create form plus the paginated table.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	cfg := s.parseViewConfig(r, s.cfg.View.HomePageSize)
	s.renderHome(w, http.StatusOK, cfg, core.Record{Country: core.DefaultCountry}, nil)
}

// handleProfiles renders the full listing surface.
func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	cfg := s.parseViewConfig(r, s.cfg.View.FullPageSize)
	page, cfg := s.queryClamped(cfg)

	view := profilesView{
		Table: buildTableView("/profiles", cfg, page, s.service.Countries(), "/", "Back to home"),
	}
	s.templates.render(w, http.StatusOK, "profiles", view)
}

// handleCreateForm processes the create form, including the optional PNG
// profile picture. Validation failures re-render the form with inline
// messages; nothing is stored.
func (s *Server) handleCreateForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPictureSize); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	rec := recordFromForm(r)
	pictureType := pictureMediaType(r)

	_, fieldErrs, err := s.service.Create(rec, pictureType)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	if !fieldErrs.OK() {
		cfg := s.parseViewConfig(r, s.cfg.View.HomePageSize)
		s.renderHome(w, http.StatusUnprocessableEntity, cfg, rec, fieldErrs)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleEditForm renders the edit form pre-filled with the record. An
// unknown id silently returns to the table, matching the forgiving
// not-found semantics of the store.
func (s *Server) handleEditForm(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.service.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.renderEdit(w, http.StatusOK, rec, nil)
}

// handleUpdateForm processes the edit form as a full replacement of the
// target record.
func (s *Server) handleUpdateForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	rec := recordFromForm(r)
	fieldErrs, err := s.service.Update(id, rec)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	if !fieldErrs.OK() {
		rec.ID = id
		s.renderEdit(w, http.StatusUnprocessableEntity, rec, fieldErrs)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleDeleteForm deletes the record and returns to the table.
func (s *Server) handleDeleteForm(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Delete(chi.URLParam(r, "id")); err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderHome queries the table (clamping the page for navigation) and
// renders the home surface.
func (s *Server) renderHome(w http.ResponseWriter, status int, cfg core.ViewConfig, form core.Record, fieldErrs core.FieldErrors) {
	page, cfg := s.queryClamped(cfg)
	countries := s.service.Countries()

	view := homeView{
		Form:      form,
		Errors:    fieldErrs,
		Countries: countries,
		Provinces: core.ProvinceOptions,
		Table:     buildTableView("/", cfg, page, countries, "/profiles", "Show All Users"),
	}
	s.templates.render(w, status, "home", view)
}

func (s *Server) renderEdit(w http.ResponseWriter, status int, form core.Record, fieldErrs core.FieldErrors) {
	view := editView{
		Form:      form,
		Errors:    fieldErrs,
		Countries: s.service.Countries(),
		Provinces: core.ProvinceOptions,
	}
	s.templates.render(w, status, "edit", view)
}

// queryClamped runs the view pipeline, clamping the page number into the
// valid range when the user navigated past the end.
func (s *Server) queryClamped(cfg core.ViewConfig) (core.ViewPage, core.ViewConfig) {
	page := s.service.QueryView(cfg)
	if clamped := core.ClampPage(cfg.PageNumber, page.TotalPages); clamped != cfg.PageNumber {
		cfg.PageNumber = clamped
		page = s.service.QueryView(cfg)
	}
	return page, cfg
}

// parseViewConfig reads the view configuration from the query string.
func (s *Server) parseViewConfig(r *http.Request, defaultPageSize int) core.ViewConfig {
	q := r.URL.Query()

	cfg := core.ViewConfig{
		SearchTerm:    q.Get("q"),
		FilterCountry: q.Get("country"),
		SortKey:       q.Get("sort"),
		SortDir:       core.SortAsc,
		PageSize:      defaultPageSize,
		PageNumber:    1,
	}
	if q.Get("dir") == string(core.SortDesc) {
		cfg.SortDir = core.SortDesc
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil {
		cfg.PageNumber = n
	}
	if n, err := strconv.Atoi(q.Get("per_page")); err == nil && n > 0 && n <= maxPageSize {
		cfg.PageSize = n
	}
	return cfg
}

// recordFromForm builds a candidate record from posted form values.
func recordFromForm(r *http.Request) core.Record {
	return core.Record{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Phone:    r.FormValue("phone"),
		DOB:      r.FormValue("dob"),
		City:     r.FormValue("city"),
		District: r.FormValue("district"),
		Province: r.FormValue("province"),
		Country:  r.FormValue("country"),
	}
}

// pictureMediaType returns the declared media type of the uploaded profile
// picture, or empty when no picture was attached. Browsers submit an empty
// file part when nothing is selected; that counts as no picture.
func pictureMediaType(r *http.Request) string {
	file, header, err := r.FormFile("profilePicture")
	if err != nil {
		// http.ErrMissingFile and friends all mean "no picture".
		return ""
	}
	defer file.Close()

	if header.Filename == "" || header.Size == 0 {
		return ""
	}
	return header.Header.Get("Content-Type")
}
