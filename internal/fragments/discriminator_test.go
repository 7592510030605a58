package fragments

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/viant/kitgen/codegen"
	"github.com/viant/kitgen/node"
)

func u8Array(values ...float64) *node.ArrayValue {
	result := &node.ArrayValue{}
	for _, value := range values {
		result.Items = append(result.Items, &node.NumberValue{Number: value})
	}
	return result
}

func TestScope_DiscriminatorCondition(t *testing.T) {
	var testCases = []struct {
		description    string
		discriminators []node.Discriminator
		structType     *node.StructType
		expect         string
		expectErr      error
	}{
		{
			description: "size and constant",
			discriminators: []node.Discriminator{
				&node.SizeDiscriminator{Size: 165},
				&node.ConstantDiscriminator{Constant: node.ConstantValueFromBytes("base16", "01"), Offset: 0},
			},
			expect: `if (data.length === 165 && containsBytes(data, getBase16Encoder().encode("01"), 0)) { return TokenAccount.Mint; }`,
		},
		{
			description:    "fixed u8 array field",
			discriminators: []node.Discriminator{&node.FieldDiscriminator{Name: "discriminator"}},
			structType: &node.StructType{Fields: []*node.StructField{
				{Name: "discriminator", Type: &node.ArrayType{Item: node.NewNumberType("u8"), Count: &node.FixedCount{Value: 8}}, DefaultValue: u8Array(1, 2, 3, 4, 5, 6, 7, 8)},
			}},
			expect: `if (containsBytes(data, getBase64Encoder().encode("AQIDBAUGBwg="), 0)) { return TokenAccount.Mint; }`,
		},
		{
			description:    "number field at offset",
			discriminators: []node.Discriminator{&node.FieldDiscriminator{Name: "kind", Offset: 4}},
			structType: &node.StructType{Fields: []*node.StructField{
				{Name: "kind", Type: node.NewNumberType("u8"), DefaultValue: &node.NumberValue{Number: 3}},
			}},
			expect: `if (containsBytes(data, getU8Encoder().encode(3), 4)) { return TokenAccount.Mint; }`,
		},
		{
			description:    "field without default value",
			discriminators: []node.Discriminator{&node.FieldDiscriminator{Name: "kind"}},
			structType:     &node.StructType{Fields: []*node.StructField{{Name: "kind", Type: node.NewNumberType("u8")}}},
			expectErr:      ErrFieldDiscriminator,
		},
		{
			description:    "fixed u8 array value out of byte range",
			discriminators: []node.Discriminator{&node.FieldDiscriminator{Name: "discriminator"}},
			structType: &node.StructType{Fields: []*node.StructField{
				{Name: "discriminator", Type: &node.ArrayType{Item: node.NewNumberType("u8"), Count: &node.FixedCount{Value: 2}}, DefaultValue: u8Array(1, 256)},
			}},
			expectErr: ErrInvalidByte,
		},
		{
			description:    "fixed u8 array negative value",
			discriminators: []node.Discriminator{&node.FieldDiscriminator{Name: "discriminator"}},
			structType: &node.StructType{Fields: []*node.StructField{
				{Name: "discriminator", Type: &node.ArrayType{Item: node.NewNumberType("u8"), Count: &node.FixedCount{Value: 1}}, DefaultValue: u8Array(-1)},
			}},
			expectErr: ErrInvalidByte,
		},
		{
			description:    "missing field",
			discriminators: []node.Discriminator{&node.FieldDiscriminator{Name: "kind"}},
			expectErr:      ErrFieldDiscriminator,
		},
	}

	scope := NewScope()
	for _, testCase := range testCases {
		actual, err := scope.DiscriminatorCondition("data", testCase.discriminators, testCase.structType, "return TokenAccount.Mint;")
		if testCase.expectErr != nil {
			assert.True(t, errors.Is(err, testCase.expectErr), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual.Content, testCase.description)
		assert.True(t, actual.Imports.Has(codegen.ModuleSolanaCodecsCore, "containsBytes") || len(testCase.discriminators) == 0, testCase.description)
	}
}
