package faker

import "fmt"

// FirstName returns a given name like "Clara".
func (f *Faker) FirstName() string {
	return f.pick(firstNames)
}

// LastName returns a family name like "Kowalski".
func (f *Faker) LastName() string {
	return f.pick(lastNames)
}

// Name returns a full name like "Mateo Fontaine".
func (f *Faker) Name() string {
	return fmt.Sprintf("%s %s", f.pick(firstNames), f.pick(lastNames))
}

// NameWithHonorific returns a full name with a title, like "Dr. Nora Ibarra".
func (f *Faker) NameWithHonorific() string {
	return fmt.Sprintf("%s %s %s", f.pick(honorifics), f.pick(firstNames), f.pick(lastNames))
}
