package country

import (
	_ "embed"
	"encoding/json"
	"errors"
	"strings"
)

// ErrInvalidCountry is returned when an identifier matches no entry in the
// reference dataset.
var ErrInvalidCountry = errors.New("Invalid country")

type Country struct {
	Name   string `json:"name"`
	Alpha2 string `json:"alpha2"`
	Alpha3 string `json:"alpha3"`
}

//go:embed data.json
var rawData []byte

// Validator answers lookups against the ISO 3166 reference dataset embedded
// in the binary. The dataset is parsed once at construction.
type Validator struct {
	countries []Country
	index     map[string]*Country
}

func NewValidator() (*Validator, error) {
	var countries []Country
	if err := json.Unmarshal(rawData, &countries); err != nil {
		return nil, err
	}

	v := &Validator{
		countries: countries,
		index:     make(map[string]*Country, 3*len(countries)),
	}
	for i := range v.countries {
		c := &v.countries[i]
		v.index[strings.ToLower(c.Name)] = c
		v.index[strings.ToLower(c.Alpha2)] = c
		v.index[strings.ToLower(c.Alpha3)] = c
	}
	return v, nil
}

// All returns the full reference dataset in dataset order.
func (v *Validator) All() []Country {
	return v.countries
}

// Lookup matches a country by name, alpha-2 or alpha-3 code, ignoring case.
func (v *Validator) Lookup(identifier string) (*Country, bool) {
	c, ok := v.index[strings.ToLower(strings.TrimSpace(identifier))]
	return c, ok
}

// Validate reports ErrInvalidCountry when the identifier matches nothing.
func (v *Validator) Validate(identifier string) error {
	if _, ok := v.Lookup(identifier); !ok {
		return ErrInvalidCountry
	}
	return nil
}
