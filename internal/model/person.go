package model

import (
	"encoding/json"
	"strings"
)

// ActivityLevel selects the TDEE multiplier for a person.
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "SEDENTARY"
	Light      ActivityLevel = "LIGHT"
	Moderate   ActivityLevel = "MODERATE"
	Active     ActivityLevel = "ACTIVE"
	VeryActive ActivityLevel = "VERY_ACTIVE"
)

// ActivityLevels lists the known levels from least to most active.
var ActivityLevels = []ActivityLevel{Sedentary, Light, Moderate, Active, VeryActive}

// Weight and height units.
const (
	UnitKg = "kg"
	UnitLb = "lb"
	UnitCm = "cm"
	UnitIn = "in"
)

// Person is one household member.
type Person struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Gender        string        `json:"gender"`
	Age           int           `json:"age"`
	Weight        float64       `json:"weight"`
	WeightUnit    string        `json:"weightUnit"`
	Height        float64       `json:"height"`
	HeightUnit    string        `json:"heightUnit"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
}

// IsMale reports whether the person's gender is "male", ignoring case.
func (p Person) IsMale() bool {
	return strings.EqualFold(strings.TrimSpace(p.Gender), "male")
}

// DisplayName returns the name, falling back to the id.
func (p Person) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// UnmarshalJSON accepts age, weight, and height stored as numeric strings,
// which is how form inputs persist them.
func (p *Person) UnmarshalJSON(b []byte) error {
	type alias Person
	aux := struct {
		*alias
		Age    json.RawMessage `json:"age"`
		Weight json.RawMessage `json:"weight"`
		Height json.RawMessage `json:"height"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	age, _ := flexNumber(aux.Age)
	p.Age = int(age)
	p.Weight, _ = flexNumber(aux.Weight)
	p.Height, _ = flexNumber(aux.Height)
	return nil
}

// AllPeople selects every household member in reports and projections.
const AllPeople = "all"

// PersonIDs resolves a selector to the ids it covers. AllPeople and the
// empty selector cover everyone in people; any other value is a single id.
func PersonIDs(selector string, people []Person) []string {
	if selector != "" && selector != AllPeople {
		return []string{selector}
	}
	ids := make([]string, 0, len(people))
	for _, p := range people {
		ids = append(ids, p.ID)
	}
	return ids
}

// FindPerson returns the person with the given id.
func FindPerson(people []Person, id string) (Person, bool) {
	for _, p := range people {
		if p.ID == id {
			return p, true
		}
	}
	return Person{}, false
}
