package models

// Barber is the directory entry returned by GET /barbers. Description is
// only populated by the detail endpoint.
type Barber struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Location           string   `json:"location"`
	ContactInformation string   `json:"contactInformation"`
	Rating             float64  `json:"rating"`
	Specialties        []string `json:"specialties"`
	ServicesOffered    []string `json:"servicesOffered"`
	Image              string   `json:"image"`
	Description        string   `json:"description,omitempty"`
}

// BarberUpdate is the editable subset of the profile.
type BarberUpdate struct {
	Name               string `json:"name"`
	Location           string `json:"location"`
	ContactInformation string `json:"contactInformation"`
}
