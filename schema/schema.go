package schema

import (
	"encoding/json"

	"github.com/nordcart/mcp-commerce/catalog"
)

// Names of the infrastructure columns every generated table carries.
const (
	ExternalIDColumn = "ExternalId"
	DisplayURLColumn = "DisplayUrl"
)

// Defaults applied by the type dispatch.
const (
	IntegerPrecision = 10
	NumberPrecision  = 10
	NumberScale      = 2
	TextLength       = 255
)

// ColumnKind identifies the constructed column variant.
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindBoolean
	KindInteger
	KindNumber
	KindURL
	KindIndirectLookup
)

func (k ColumnKind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindURL:
		return "url"
	case KindIndirectLookup:
		return "indirectLookup"
	default:
		return "text"
	}
}

// MarshalJSON renders the kind as its tag name.
func (k ColumnKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// ColumnDefinition is a single column of a generated virtual table.
// Precision, Scale and Length are populated per kind; Target* only for
// indirect lookup columns.
type ColumnDefinition struct {
	Name         string     `json:"name"`
	Label        string     `json:"label,omitempty"`
	Description  string     `json:"description,omitempty"`
	Kind         ColumnKind `json:"type"`
	Precision    int        `json:"precision,omitempty"`
	Scale        int        `json:"scale,omitempty"`
	Length       int        `json:"length,omitempty"`
	TargetEntity string     `json:"targetEntity,omitempty"`
	TargetField  string     `json:"targetField,omitempty"`
}

// TableDescriptor is the virtual table schema for one external entity.
type TableDescriptor struct {
	Name             string             `json:"name"`
	LabelSingular    string             `json:"labelSingular,omitempty"`
	LabelPlural      string             `json:"labelPlural,omitempty"`
	Description      string             `json:"description,omitempty"`
	PrimaryKeyColumn string             `json:"primaryKeyColumn"`
	Columns          []ColumnDefinition `json:"columns"`
}

func booleanColumn(name, label, description string) ColumnDefinition {
	return ColumnDefinition{
		Name:        name,
		Label:       label,
		Description: description,
		Kind:        KindBoolean,
	}
}

func integerColumn(name, label, description string) ColumnDefinition {
	return ColumnDefinition{
		Name:        name,
		Label:       label,
		Description: description,
		Kind:        KindInteger,
		Precision:   IntegerPrecision,
	}
}

func numberColumn(name, label, description string) ColumnDefinition {
	return ColumnDefinition{
		Name:        name,
		Label:       label,
		Description: description,
		Kind:        KindNumber,
		Precision:   NumberPrecision,
		Scale:       NumberScale,
	}
}

func textColumn(name, label, description string) ColumnDefinition {
	return ColumnDefinition{
		Name:        name,
		Label:       label,
		Description: description,
		Kind:        KindText,
		Length:      TextLength,
	}
}

func urlColumn(name, label, description string) ColumnDefinition {
	return ColumnDefinition{
		Name:        name,
		Label:       label,
		Description: description,
		Kind:        KindURL,
	}
}

func lookupColumn(def catalog.LookupDefinition) ColumnDefinition {
	return ColumnDefinition{
		Name:         def.Column,
		Label:        def.Label,
		Description:  def.Description,
		Kind:         KindIndirectLookup,
		TargetEntity: def.TargetEntity,
		TargetField:  def.TargetField,
	}
}

// BuildColumns turns a list of field mappings into column definitions,
// one per mapping, in input order. Unrecognized attribute types build a
// text column.
func BuildColumns(mappings []catalog.FieldMapping) []ColumnDefinition {
	columns := make([]ColumnDefinition, 0, len(mappings))
	for _, m := range mappings {
		switch m.AttributeType() {
		case catalog.TypeBoolean:
			columns = append(columns, booleanColumn(m.TargetAttribute, m.Label, m.Description))
		case catalog.TypeInteger:
			columns = append(columns, integerColumn(m.TargetAttribute, m.Label, m.Description))
		case catalog.TypeNumber:
			columns = append(columns, numberColumn(m.TargetAttribute, m.Label, m.Description))
		default:
			columns = append(columns, textColumn(m.TargetAttribute, m.Label, m.Description))
		}
	}
	return columns
}

// BuildTableDescriptor assembles the full virtual table schema for an
// entity definition. Column order is deterministic: mapped columns in
// catalog order, then ExternalId, then DisplayUrl, then the indirect
// lookup. ExternalId is always the primary key.
func BuildTableDescriptor(entity catalog.EntityDefinition) TableDescriptor {
	columns := BuildColumns(entity.Fields)

	columns = append(columns, textColumn(ExternalIDColumn, "External ID",
		"Unique identifier of the record in the source system"))
	columns = append(columns, urlColumn(DisplayURLColumn, "Display URL",
		"Link to the record in the source system"))
	columns = append(columns, lookupColumn(entity.Lookup))

	return TableDescriptor{
		Name:             entity.Name,
		LabelSingular:    entity.LabelSingular,
		LabelPlural:      entity.LabelPlural,
		Description:      entity.Description,
		PrimaryKeyColumn: ExternalIDColumn,
		Columns:          columns,
	}
}
