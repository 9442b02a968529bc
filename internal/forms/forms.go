// Package forms provides the form model shared by handlers and templates: an
// ordered set of field descriptors carrying a label, input type, bound value
// and per-field validation error messages.
package forms

import "net/url"

// Input type constants for form fields.
const (
	TypeText     = "text"
	TypeEmail    = "email"
	TypeURL      = "url"
	TypePassword = "password"
	TypeTextarea = "textarea"
	TypeHidden   = "hidden"
)

// Field represents a single form field.
type Field struct {
	// Name is the submission key, e.g. "image_url".
	Name string
	// Label is the human-readable field name, rendered as the placeholder.
	Label string
	// Type selects the input widget (one of the Type* constants).
	Type string
	// Value holds the currently bound data.
	Value string
	// Errors is the ordered list of validation messages for this field.
	Errors []string
}

// Form is an ordered collection of fields keyed by name. The zero value is
// not usable; construct with New.
type Form struct {
	fields []*Field
	byName map[string]*Field
}

// New builds a form from the given fields, preserving their order.
func New(fields ...Field) *Form {
	f := &Form{byName: make(map[string]*Field, len(fields))}
	for i := range fields {
		fld := fields[i]
		f.fields = append(f.fields, &fld)
		f.byName[fld.Name] = &fld
	}
	return f
}

// Fields returns the fields in declaration order.
func (f *Form) Fields() []*Field {
	return f.fields
}

// Field returns the named field, or nil if the form has no such field.
func (f *Form) Field(name string) *Field {
	return f.byName[name]
}

// Bind overwrites field values from submitted form data. Fields absent from
// the submission keep their current value.
func (f *Form) Bind(values url.Values) {
	for _, fld := range f.fields {
		if _, ok := values[fld.Name]; ok {
			fld.Value = values.Get(fld.Name)
		}
	}
}

// AddError appends a validation message to the named field. Unknown names
// are ignored so callers can map validator output without pre-checking.
func (f *Form) AddError(name, message string) {
	if fld := f.byName[name]; fld != nil {
		fld.Errors = append(fld.Errors, message)
	}
}

// Valid reports whether no field carries an error.
func (f *Form) Valid() bool {
	for _, fld := range f.fields {
		if len(fld.Errors) > 0 {
			return false
		}
	}
	return true
}
