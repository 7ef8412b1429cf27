package domain

// City is a serviceable location as shown in the city selector.
type City struct {
	Code             string   `json:"code" yaml:"code"`
	Name             string   `json:"name" yaml:"name"`
	Aliases          []string `json:"aliases" yaml:"aliases"`
	IsTopCity        bool     `json:"isTopCity" yaml:"-"`
	ServiceableCard  bool     `json:"serviceableCard" yaml:"-"`
	ServiceableNotes bool     `json:"serviceableNotes" yaml:"-"`
}

// FallbackCities is served when the city catalog cannot be produced.
func FallbackCities() []City {
	return []City{
		{Code: "DEL", Name: "Delhi", Aliases: []string{"New Delhi"}, IsTopCity: true},
		{Code: "MUM", Name: "Mumbai", Aliases: []string{"Bombay"}, IsTopCity: true},
		{Code: "BNG", Name: "Bengaluru", Aliases: []string{"Bangalore"}, IsTopCity: true},
	}
}
