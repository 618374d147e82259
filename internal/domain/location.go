package domain

// Location is a saved place with its administrative hierarchy and, when the
// persistence layer has data for it, the attached weather aggregate.
type Location struct {
	ID          string
	Latitude    float64
	Longitude   float64
	Timezone    string
	Country     string
	CountryCode *string
	Admin1      *string
	Admin1Code  *string
	Admin2      *string
	Admin2Code  *string
	Admin3      *string
	Admin3Code  *string
	Admin4      *string
	Admin4Code  *string
	City        string
	District    *string

	// Parameters are per-source settings (station ids, grid points). Loaded
	// only on request since most callers never look at them.
	Parameters map[string]string

	Weather *Weather
}
