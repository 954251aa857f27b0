package schema

import (
	"testing"

	"github.com/nordcart/mcp-commerce/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addressEntity(fields []catalog.FieldMapping) catalog.EntityDefinition {
	return catalog.EntityDefinition{
		Name:          "B2C_Address",
		LabelSingular: "Address",
		LabelPlural:   "Addresses",
		Description:   "Customer addresses from the commerce system",
		Lookup: catalog.LookupDefinition{
			Column:       "Contact__c",
			Label:        "Contact",
			Description:  "Owning contact",
			TargetEntity: "Contact",
			TargetField:  "CustomerId__c",
		},
		Fields: fields,
	}
}

func TestBuildColumnsTypeDispatch(t *testing.T) {
	tests := []struct {
		tag       string
		kind      ColumnKind
		precision int
		scale     int
		length    int
	}{
		{"boolean", KindBoolean, 0, 0, 0},
		{"integer", KindInteger, 10, 0, 0},
		{"number", KindNumber, 10, 2, 0},
		{"text", KindText, 0, 0, 255},
		{"", KindText, 0, 0, 255},
		{"date", KindText, 0, 0, 255},
		{"geo_point", KindText, 0, 0, 255},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			cols := BuildColumns([]catalog.FieldMapping{{
				SourceAttribute: "src",
				TargetAttribute: "Target__c",
				Type:            tt.tag,
				Label:           "A label",
				Description:     "A description",
			}})
			require.Len(t, cols, 1)

			col := cols[0]
			assert.Equal(t, "Target__c", col.Name)
			assert.Equal(t, tt.kind, col.Kind)
			assert.Equal(t, tt.precision, col.Precision)
			assert.Equal(t, tt.scale, col.Scale)
			assert.Equal(t, tt.length, col.Length)
			assert.Equal(t, "A label", col.Label)
			assert.Equal(t, "A description", col.Description)
		})
	}
}

func TestBuildColumnsPreservesOrder(t *testing.T) {
	cols := BuildColumns([]catalog.FieldMapping{
		{SourceAttribute: "a", TargetAttribute: "A__c", Type: "integer"},
		{SourceAttribute: "b", TargetAttribute: "B__c", Type: "boolean"},
		{SourceAttribute: "c", TargetAttribute: "C__c"},
	})

	require.Len(t, cols, 3)
	assert.Equal(t, "A__c", cols[0].Name)
	assert.Equal(t, "B__c", cols[1].Name)
	assert.Equal(t, "C__c", cols[2].Name)
}

func TestBuildTableDescriptorTrailingColumns(t *testing.T) {
	entity := addressEntity([]catalog.FieldMapping{
		{SourceAttribute: "city", TargetAttribute: "City__c", Type: "text"},
	})

	descriptor := BuildTableDescriptor(entity)

	assert.Equal(t, "B2C_Address", descriptor.Name)
	assert.Equal(t, "ExternalId", descriptor.PrimaryKeyColumn)
	require.Len(t, descriptor.Columns, 4)

	city := descriptor.Columns[0]
	assert.Equal(t, "City__c", city.Name)
	assert.Equal(t, KindText, city.Kind)
	assert.Equal(t, 255, city.Length)

	externalID := descriptor.Columns[1]
	assert.Equal(t, "ExternalId", externalID.Name)
	assert.Equal(t, KindText, externalID.Kind)
	assert.Equal(t, 255, externalID.Length)

	displayURL := descriptor.Columns[2]
	assert.Equal(t, "DisplayUrl", displayURL.Name)
	assert.Equal(t, KindURL, displayURL.Kind)

	lookup := descriptor.Columns[3]
	assert.Equal(t, "Contact__c", lookup.Name)
	assert.Equal(t, KindIndirectLookup, lookup.Kind)
	assert.Equal(t, "Contact", lookup.TargetEntity)
	assert.Equal(t, "CustomerId__c", lookup.TargetField)
}

func TestBuildTableDescriptorDeterministic(t *testing.T) {
	entity := addressEntity([]catalog.FieldMapping{
		{SourceAttribute: "city", TargetAttribute: "City__c", Type: "text"},
		{SourceAttribute: "zip", TargetAttribute: "Zip__c", Type: "integer"},
		{SourceAttribute: "primary", TargetAttribute: "Primary__c", Type: "boolean"},
	})

	first := BuildTableDescriptor(entity)
	second := BuildTableDescriptor(entity)

	assert.Equal(t, first, second)
}

func TestBuildTableDescriptorEmptyMappings(t *testing.T) {
	descriptor := BuildTableDescriptor(addressEntity(nil))

	require.Len(t, descriptor.Columns, 3)
	assert.Equal(t, "ExternalId", descriptor.Columns[0].Name)
	assert.Equal(t, "DisplayUrl", descriptor.Columns[1].Name)
	assert.Equal(t, KindIndirectLookup, descriptor.Columns[2].Kind)
	assert.Equal(t, "ExternalId", descriptor.PrimaryKeyColumn)
}
