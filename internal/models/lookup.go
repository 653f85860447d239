package models

// Food is a single hit from the nutrition lookup.
type Food struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
}

// Location is a geocoding result for a free-text query.
type Location struct {
	FormattedQuery string  `json:"formatted_query"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	ShortName      string  `json:"short_name"`
}
