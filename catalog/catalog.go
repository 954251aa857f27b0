package catalog

// AttributeType is the semantic type tag carried by a field mapping.
type AttributeType int

const (
	TypeText AttributeType = iota
	TypeBoolean
	TypeInteger
	TypeNumber
)

// ParseAttributeType maps a catalog type tag to its AttributeType.
// Unrecognized tags (and the empty string) degrade to TypeText; the
// fallback is a policy, not an error.
func ParseAttributeType(tag string) AttributeType {
	switch tag {
	case "boolean":
		return TypeBoolean
	case "integer":
		return TypeInteger
	case "number":
		return TypeNumber
	default:
		return TypeText
	}
}

func (t AttributeType) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeNumber:
		return "number"
	default:
		return "text"
	}
}

// FieldMapping pairs an attribute in the source document with a column
// in the generated schema.
type FieldMapping struct {
	SourceAttribute string `yaml:"source" json:"sourceAttribute"`
	TargetAttribute string `yaml:"target" json:"targetAttribute"`
	Type            string `yaml:"type,omitempty" json:"type,omitempty"`
	Label           string `yaml:"label,omitempty" json:"label,omitempty"`
	Description     string `yaml:"description,omitempty" json:"description,omitempty"`
}

// AttributeType resolves the mapping's type tag.
func (m FieldMapping) AttributeType() AttributeType {
	return ParseAttributeType(m.Type)
}

// LookupDefinition describes the indirect lookup column appended to every
// generated table, pointing at a field on the owning entity.
type LookupDefinition struct {
	Column       string `yaml:"column" json:"column"`
	Label        string `yaml:"label,omitempty" json:"label,omitempty"`
	Description  string `yaml:"description,omitempty" json:"description,omitempty"`
	TargetEntity string `yaml:"targetEntity" json:"targetEntity"`
	TargetField  string `yaml:"targetField" json:"targetField"`
}

// EntityDefinition is one external entity in the catalog.
type EntityDefinition struct {
	Name          string           `yaml:"name" json:"name"`
	LabelSingular string           `yaml:"labelSingular,omitempty" json:"labelSingular,omitempty"`
	LabelPlural   string           `yaml:"labelPlural,omitempty" json:"labelPlural,omitempty"`
	Description   string           `yaml:"description,omitempty" json:"description,omitempty"`
	Lookup        LookupDefinition `yaml:"lookup" json:"lookup"`
	Fields        []FieldMapping   `yaml:"fields" json:"fields"`
}

// Catalog is the full set of external entity definitions.
type Catalog struct {
	Entities []EntityDefinition `yaml:"entities" json:"entities"`
}

// Entity returns the definition with the given name.
func (c *Catalog) Entity(name string) (*EntityDefinition, bool) {
	for i := range c.Entities {
		if c.Entities[i].Name == name {
			return &c.Entities[i], true
		}
	}
	return nil, false
}

// Names lists the entity names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Entities))
	for i, e := range c.Entities {
		names[i] = e.Name
	}
	return names
}
