package unitdoc

import (
	"path/filepath"
	"strings"
)

// Defaults applied when a field is absent from the source document.
// Every fallback used by the normalizer and the renderers comes from here.
const (
	DefaultTypeName      = "Unknown"
	DefaultReturnType    = "void"
	DefaultParameterKind = "val"
)

// Visibility is the access level of a member.
type Visibility string

// Visibility constants. VisibilityNone marks members declared outside any
// visibility block, e.g. interface methods.
const (
	VisibilityNone      Visibility = ""
	VisibilityPublic    Visibility = "public"
	VisibilityPublished Visibility = "published"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
)

// Label returns the upper-case label shown next to a member.
func (v Visibility) Label() string {
	return strings.ToUpper(string(v))
}

// Type kinds routed to the complex type lists of a Unit.
const (
	KindClass     = "class"
	KindInterface = "interface"
	KindRecord    = "record"
)

// Unit is the documentation record of one compilation unit.
// Optional string fields are empty when absent.
type Unit struct {
	Name       string         `json:"name"`
	Uses       []string       `json:"uses"`
	Classes    []*ComplexType `json:"classes"`
	Interfaces []*ComplexType `json:"interfaces"`
	Records    []*ComplexType `json:"records"`
	Types      []TypeDecl     `json:"types"`
}

// Validate returns an error if the unit contains invalid fields.
// The name becomes a page file name, so it must be a single local path
// element.
func (u *Unit) Validate() error {
	if u.Name == "" {
		return Errorf(EINVALID, "unit name required")
	}
	if strings.ContainsAny(u.Name, `/\`) || !filepath.IsLocal(u.Name) {
		return Errorf(EINVALID, "invalid unit name %q", u.Name)
	}
	return nil
}

// HasComplexTypes reports whether the unit declares any class, interface or record.
func (u *Unit) HasComplexTypes() bool {
	return len(u.Classes) > 0 || len(u.Interfaces) > 0 || len(u.Records) > 0
}

// ComplexType is a class, interface or record declaration with members.
type ComplexType struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Ancestor    string     `json:"ancestor,omitempty"`
	GUID        string     `json:"guid,omitempty"`
	Methods     []Method   `json:"methods"`
	Properties  []Property `json:"properties"`
}

// TypeDecl is any other type declaration. Only its name and kind are kept.
type TypeDecl struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Description string `json:"description,omitempty"`
}

// Method is a procedure, function, constructor or destructor.
type Method struct {
	Name        string      `json:"name"`
	Kind        string      `json:"kind"`
	Visibility  Visibility  `json:"visibility"`
	Description string      `json:"description,omitempty"`
	Parameters  []Parameter `json:"parameters"`
	ReturnType  string      `json:"returnType,omitempty"`
}

// Signature formats the method as "<kind> <name>(<param>: <type>, ...): <return>".
func (m Method) Signature() string {
	params := make([]string, 0, len(m.Parameters))
	for _, p := range m.Parameters {
		params = append(params, p.Name+": "+p.Type)
	}
	ret := m.ReturnType
	if ret == "" {
		ret = DefaultReturnType
	}
	return m.Kind + " " + m.Name + "(" + strings.Join(params, ", ") + "): " + ret
}

// Property is a property declaration.
type Property struct {
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Visibility  Visibility `json:"visibility"`
	Description string     `json:"description,omitempty"`
}

// Signature formats the property as "<name>: <type>".
func (p Property) Signature() string {
	return p.Name + ": " + p.Type
}

// Parameter is a single method parameter.
type Parameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Kind string `json:"kind"`
}
