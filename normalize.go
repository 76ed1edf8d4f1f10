package unitdoc

// Element and attribute names of the unit XML dialect.
const (
	unitKey        = "UNIT"
	interfaceKey   = "INTERFACE"
	usesKey        = "USES"
	typeSectionKey = "TYPESECTION"
	typeDeclKey    = "TYPEDECL"
	typeKey        = "TYPE"
	guidKey        = "GUID"
	literalKey     = "LITERAL"
	methodKey      = "METHOD"
	propertyKey    = "PROPERTY"
	parametersKey  = "PARAMETERS"
	parameterKey   = "PARAMETER"
	nameKey        = "NAME"
	returnTypeKey  = "RETURNTYPE"
)

// visibilityBlocks lists the visibility block elements in the order their
// members are appended to a complex type. Members declared directly inside
// the type node come first.
var visibilityBlocks = []struct {
	tag        string
	visibility Visibility
}{
	{"PUBLIC", VisibilityPublic},
	{"PUBLISHED", VisibilityPublished},
	{"PROTECTED", VisibilityProtected},
	{"PRIVATE", VisibilityPrivate},
}

// Normalize converts the tree of one unit document into a Unit.
// It returns nil when the tree has no UNIT root element. Missing optional
// fields resolve to their defaults; they are never reported as errors.
func Normalize(tree Node) *Unit {
	root := tree.Child(unitKey)
	if root == nil {
		return nil
	}

	u := &Unit{
		Name:       root.Attr("name"),
		Uses:       []string{},
		Classes:    []*ComplexType{},
		Interfaces: []*ComplexType{},
		Records:    []*ComplexType{},
		Types:      []TypeDecl{},
	}

	for _, iface := range root.Children(interfaceKey) {
		for _, uses := range iface.Children(usesKey) {
			for _, dep := range uses.Children(unitKey) {
				u.Uses = append(u.Uses, dep.Attr("name"))
			}
		}
		for _, section := range iface.Children(typeSectionKey) {
			for _, decl := range section.Children(typeDeclKey) {
				normalizeTypeDecl(u, decl)
			}
		}
	}

	return u
}

func normalizeTypeDecl(u *Unit, decl Node) {
	typeNode := decl.Child(typeKey)
	if typeNode == nil {
		return
	}

	name := decl.Attr("name")
	kind := typeNode.Attr("type")
	description := ExtractComment(decl)

	switch kind {
	case KindClass:
		u.Classes = append(u.Classes, normalizeComplexType(name, typeNode, description))
	case KindInterface:
		u.Interfaces = append(u.Interfaces, normalizeComplexType(name, typeNode, description))
	case KindRecord:
		u.Records = append(u.Records, normalizeComplexType(name, typeNode, description))
	default:
		u.Types = append(u.Types, TypeDecl{Name: name, Kind: kind, Description: description})
	}
}

func normalizeComplexType(name string, node Node, description string) *ComplexType {
	t := &ComplexType{
		Name:        name,
		Description: description,
		Ancestor:    node.Attr("ancestor"),
		GUID:        node.Child(guidKey).Child(literalKey).Attr("value"),
		Methods:     []Method{},
		Properties:  []Property{},
	}

	extractMembers(t, node, VisibilityNone)
	for _, block := range visibilityBlocks {
		for _, container := range node.Children(block.tag) {
			extractMembers(t, container, block.visibility)
		}
	}

	return t
}

func extractMembers(t *ComplexType, container Node, visibility Visibility) {
	for _, m := range container.Children(methodKey) {
		t.Methods = append(t.Methods, Method{
			Name:        m.Attr("name"),
			Kind:        m.Attr("kind"),
			Visibility:  visibility,
			Description: ExtractComment(m),
			Parameters:  normalizeParameters(m.Child(parametersKey)),
			ReturnType:  m.Child(returnTypeKey).Child(typeKey).Attr("name"),
		})
	}

	for _, p := range container.Children(propertyKey) {
		t.Properties = append(t.Properties, Property{
			Name:        p.Attr("name"),
			Type:        orDefault(p.Child(typeKey).Attr("name"), DefaultTypeName),
			Visibility:  visibility,
			Description: ExtractComment(p),
		})
	}
}

func normalizeParameters(params Node) []Parameter {
	results := []Parameter{}
	for _, p := range params.Children(parameterKey) {
		name := p.Attr("name")
		if nameNode := p.Child(nameKey); nameNode != nil {
			name = nameNode.Attr("value")
		}

		typ := p.Attr("param_type")
		if typeNode := p.Child(typeKey); typeNode != nil {
			typ = typeNode.Attr("name")
		}

		results = append(results, Parameter{
			Name: name,
			Type: orDefault(typ, DefaultTypeName),
			Kind: orDefault(p.Attr("kind"), DefaultParameterKind),
		})
	}
	return results
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
