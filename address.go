package faker

import (
	"fmt"

	"github.com/kironimmanuel/faker/random"
)

// City returns a city name like "Stonemouth" or "Port Willowburg".
func (f *Faker) City() string {
	name := f.pick(cityStems) + f.pick(citySuffixes)
	name = string(name[0]-'a'+'A') + name[1:]
	if coin, _ := f.gen.IntN(2); coin == 1 {
		return fmt.Sprintf("%s %s", f.pick(cityPrefixes), name)
	}
	return name
}

// StreetAddress returns a street address like "1407 Cedar Lane".
func (f *Faker) StreetAddress() string {
	number, _ := f.gen.Int(1, 9999)
	return fmt.Sprintf("%d %s %s", number, f.pick(streetNames), f.pick(streetSuffixes))
}

// Country returns a country name like "Portugal".
func (f *Faker) Country() string {
	return f.pick(countries)
}

// ZipCode returns a five digit postal code. Leading zeros are allowed,
// so "04913" is a valid result.
func (f *Faker) ZipCode() string {
	code, _ := f.gen.Numeric(random.NumericRequest{Length: 5, AllowLeadingZeros: true})
	return code
}

// Latitude returns a latitude in [-90, 90] with six decimal places.
func (f *Faker) Latitude() float64 {
	v, _ := f.gen.Float(-90, 90, 6)
	return v
}

// Longitude returns a longitude in [-180, 180] with six decimal places.
func (f *Faker) Longitude() float64 {
	v, _ := f.gen.Float(-180, 180, 6)
	return v
}
