// Package core provides the business logic for the profile record manager.
// This package has no UI dependencies and can be used by any frontend.
package core

// DefaultCountry is used when a candidate record has no country set.
const DefaultCountry = "Nepal"

// PNGMediaType is the only media type accepted for profile pictures.
const PNGMediaType = "image/png"

// ProvinceOptions is the fixed set of selectable provinces.
// Provinces are stored as strings on the record.
var ProvinceOptions = []string{"1", "2", "3", "4", "5", "6", "7"}

// Record is one managed profile.
//
// The id is assigned by the store at creation time and is immutable
// thereafter. The profile picture is never part of the record: it is only
// used transiently for a client-side preview, so only its declared media
// type flows through validation (see ValidateCreate).
type Record struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	DOB      string `json:"dob"`
	City     string `json:"city"`
	District string `json:"district"`
	Province string `json:"province"`
	Country  string `json:"country"`
}
