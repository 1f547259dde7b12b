package core

// service.go is the boundary the presentation layer is allowed to use:
// Validate, Create, Update, Delete, and QueryView, plus read access to the
// country list. The service is owned by main and passed by handle to the
// web layer; there is no package-level singleton.

// CountryProvider supplies the externally fetched country-name list.
// Implementations must return an empty list while the fetch is pending or
// has failed, never block.
type CountryProvider interface {
	Names() []string
}

// Service owns the record store and its collaborators.
type Service struct {
	store     *Store
	countries CountryProvider
}

// NewService creates the service around an already-hydrated store.
func NewService(store *Store, countries CountryProvider) *Service {
	return &Service{store: store, countries: countries}
}

// Validate checks a candidate record for the update path.
func (s *Service) Validate(rec Record) FieldErrors {
	return Validate(rec)
}

// Create validates the candidate (create path, including the profile
// picture rule) and, on success, stores it with a fresh id. The country
// defaults when unset. Non-empty FieldErrors means nothing was stored.
func (s *Service) Create(rec Record, pictureType string) (Record, FieldErrors, error) {
	if rec.Country == "" {
		rec.Country = DefaultCountry
	}

	if errs := ValidateCreate(rec, pictureType); !errs.OK() {
		return Record{}, errs, nil
	}

	stored, err := s.store.Create(rec)
	if err != nil {
		return Record{}, nil, err
	}
	return stored, nil, nil
}

// Update validates the full replacement and, on success, replaces the
// record with the given id. An unknown id is a silent no-op.
func (s *Service) Update(id string, replacement Record) (FieldErrors, error) {
	if errs := Validate(replacement); !errs.OK() {
		return errs, nil
	}
	return nil, s.store.Update(id, replacement)
}

// Get returns the record with the given id, for pre-filling the edit form.
func (s *Service) Get(id string) (Record, bool) {
	return s.store.Get(id)
}

// Delete removes the record with the given id; unknown ids are a no-op.
func (s *Service) Delete(id string) error {
	return s.store.Delete(id)
}

// QueryView runs the view pipeline over the full collection.
func (s *Service) QueryView(cfg ViewConfig) ViewPage {
	return QueryView(s.store.All(), cfg)
}

// Countries returns the fetched country-name list, or an empty list while
// the fetch is pending or has failed.
func (s *Service) Countries() []string {
	return s.countries.Names()
}
