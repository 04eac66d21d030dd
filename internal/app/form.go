package app

import "github.com/Faultbox/drawshape/pkg/geometry"

// Form is the dimension entry state for the chosen shape.
type Form struct {
	kind    geometry.Kind
	text    [fieldCount]string
	enabled [fieldCount]bool
}

// Select chooses a shape and enables only the fields it uses. Text typed
// earlier is kept.
func (f *Form) Select(kind geometry.Kind) {
	f.kind = kind
	f.enabled = [fieldCount]bool{}
	for _, field := range FieldsFor(kind) {
		f.enabled[field] = true
	}
}

// Kind returns the chosen shape.
func (f *Form) Kind() geometry.Kind {
	return f.kind
}

// Enabled reports whether the field accepts input.
func (f *Form) Enabled(field Field) bool {
	return field >= 0 && field < fieldCount && f.enabled[field]
}

// Set stores text for an enabled field. It reports false and changes
// nothing when the field is disabled.
func (f *Form) Set(field Field, text string) bool {
	if !f.Enabled(field) {
		return false
	}
	f.text[field] = text
	return true
}

// Text returns the stored text of a field.
func (f *Form) Text(field Field) string {
	if field < 0 || field >= fieldCount {
		return ""
	}
	return f.text[field]
}

// Clear empties every field.
func (f *Form) Clear() {
	f.text = [fieldCount]string{}
}

// Raw returns the parsed but not normalized values. Malformed or empty
// text reads as 0.
func (f *Form) Raw() geometry.Params {
	return geometry.Params{
		Length:      ParseField(f.text[FieldLength]),
		Width:       ParseField(f.text[FieldWidth]),
		Radius:      ParseField(f.text[FieldRadius]),
		Height:      ParseField(f.text[FieldHeight]),
		MinorRadius: ParseField(f.text[FieldMinorRadius]),
	}
}

// Params returns the normalized dimensions.
func (f *Form) Params() geometry.Params {
	return NormalizeParams(f.Raw())
}
