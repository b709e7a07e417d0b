package models

// AgeResponse is the body of a successful name lookup.
type AgeResponse struct {
	Name string `json:"name"`
	Age  string `json:"age"`
}

// MaxAgeResponse reports the highest resolved age. The winning name is not
// part of the body.
type MaxAgeResponse struct {
	Age int `json:"age"`
}

// StatsRow is one line of the stats table on the UI page.
type StatsRow struct {
	Name     string
	Requests int
}
