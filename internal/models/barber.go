package models

// Barber is the static provider catalog entry. Barbers are not persisted;
// the catalog is fixed and served as-is by the barbers endpoint.
type Barber struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
	Rating      float64  `json:"rating"`
}
