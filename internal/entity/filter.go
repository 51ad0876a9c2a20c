package entity

// Filter holds the optional predicates of the filter panel. Empty fields are ignored.
type Filter struct {
	Names          string `json:"names"`
	Lastnames      string `json:"lastnames"`
	Identification string `json:"identification"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Role           string `json:"rol"`
	// State is "1" for active and "0" for inactive.
	State string `json:"state"`
}

func (f Filter) Empty() bool {
	return f == Filter{}
}
