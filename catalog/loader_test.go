package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
entities:
  - name: B2C_Address
    labelSingular: Address
    labelPlural: Addresses
    description: Customer addresses
    lookup:
      column: Contact__c
      label: Contact
      targetEntity: Contact
      targetField: CustomerId__c
    fields:
      - source: city
        target: City__c
        type: text
        label: City
      - source: zip
        target: Zip__c
        type: integer
      - source: primary
        target: Primary__c
        type: boolean
`

	cat, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, cat)

	require.Len(t, cat.Entities, 1)
	assert.Equal(t, []string{"B2C_Address"}, cat.Names())

	entity, ok := cat.Entity("B2C_Address")
	require.True(t, ok)
	assert.Equal(t, "Address", entity.LabelSingular)
	assert.Equal(t, "Contact", entity.Lookup.TargetEntity)
	assert.Equal(t, "CustomerId__c", entity.Lookup.TargetField)

	require.Len(t, entity.Fields, 3)
	assert.Equal(t, "city", entity.Fields[0].SourceAttribute)
	assert.Equal(t, "City__c", entity.Fields[0].TargetAttribute)
	assert.Equal(t, TypeText, entity.Fields[0].AttributeType())
	assert.Equal(t, TypeInteger, entity.Fields[1].AttributeType())
	assert.Equal(t, TypeBoolean, entity.Fields[2].AttributeType())

	_, ok = cat.Entity("B2C_Order")
	assert.False(t, ok)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing entity name",
			yaml: `
entities:
  - lookup: {column: C__c, targetEntity: Contact, targetField: Id__c}
`,
		},
		{
			name: "duplicate entity",
			yaml: `
entities:
  - name: A
    lookup: {column: C__c, targetEntity: Contact, targetField: Id__c}
  - name: A
    lookup: {column: C__c, targetEntity: Contact, targetField: Id__c}
`,
		},
		{
			name: "lookup without target",
			yaml: `
entities:
  - name: A
    lookup: {column: C__c}
`,
		},
		{
			name: "field without target",
			yaml: `
entities:
  - name: A
    lookup: {column: C__c, targetEntity: Contact, targetField: Id__c}
    fields:
      - source: city
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseAttributeType(t *testing.T) {
	assert.Equal(t, TypeBoolean, ParseAttributeType("boolean"))
	assert.Equal(t, TypeInteger, ParseAttributeType("integer"))
	assert.Equal(t, TypeNumber, ParseAttributeType("number"))
	assert.Equal(t, TypeText, ParseAttributeType("text"))
	assert.Equal(t, TypeText, ParseAttributeType(""))
	assert.Equal(t, TypeText, ParseAttributeType("geo_point"))
}
