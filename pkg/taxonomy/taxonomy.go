package taxonomy

// All is the sentinel meaning "no property type restriction". It is
// mutually exclusive with every other selection key.
const All = "All"

type PropertyType struct {
	Name     string
	Subtypes []string
}

// Tree is the fixed two-level property type taxonomy. Composite selection
// keys are built with Key ("Retail - Bank").
var Tree = []PropertyType{
	{Name: "Retail", Subtypes: []string{
		"Bank", "Restaurant", "Convenience Store", "Pharmacy", "Grocery",
		"Auto Parts", "Dollar Store", "Gas Station", "Gym", "Strip Center",
		"Big Box", "Car Wash",
	}},
	{Name: "Office", Subtypes: []string{"Medical Office", "Professional", "Creative", "Executive Suites"}},
	{Name: "Industrial", Subtypes: []string{"Warehouse", "Distribution", "Flex", "Manufacturing", "Cold Storage"}},
	{Name: "Multifamily", Subtypes: []string{"Garden", "Mid-Rise", "High-Rise", "Student Housing"}},
	{Name: "Hospitality", Subtypes: []string{"Full Service", "Limited Service", "Extended Stay"}},
	{Name: "Land", Subtypes: []string{"Commercial", "Residential", "Agricultural"}},
	{Name: "Medical", Subtypes: []string{"Hospital", "Urgent Care", "Dialysis", "Veterinary"}},
	{Name: "Mixed Use"},
	{Name: "Self Storage"},
	{Name: "Mobile Home Park"},
	{Name: "Senior Living", Subtypes: []string{"Assisted Living", "Independent Living", "Memory Care"}},
	{Name: "Special Purpose", Subtypes: []string{"Church", "School", "Marina"}},
}

// Key builds the composite selection key for a subtype.
func Key(typeName, subtype string) string {
	return typeName + " - " + subtype
}

// Subtypes returns the subtype list for a top level type, nil for unknown
// types and for types without subtypes.
func Subtypes(typeName string) []string {
	for _, t := range Tree {
		if t.Name == typeName {
			return t.Subtypes
		}
	}
	return nil
}

// IsKnownType reports whether name is a top level type in the tree.
func IsKnownType(name string) bool {
	for _, t := range Tree {
		if t.Name == name {
			return true
		}
	}
	return false
}

// IsKnownKey reports whether key is the All sentinel, a top level type or
// a composite subtype key present in the tree.
func IsKnownKey(key string) bool {
	if key == All || IsKnownType(key) {
		return true
	}
	for _, t := range Tree {
		for _, s := range t.Subtypes {
			if key == Key(t.Name, s) {
				return true
			}
		}
	}
	return false
}
