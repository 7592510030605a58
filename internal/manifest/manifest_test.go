package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/kitgen/codegen"
	"github.com/viant/kitgen/naming"
	"github.com/viant/kitgen/node"
)

func newTestManifest() *Manifest {
	return New(naming.Default(), func(link node.Link) string { return codegen.ModuleGeneratedTypes })
}

func TestManifest_Encoder(t *testing.T) {
	var testCases = []struct {
		description string
		typeNode    node.TypeNode
		expect      string
		module      string
		symbol      string
	}{
		{description: "u8", typeNode: node.NewNumberType("u8"), expect: "getU8Encoder()", module: codegen.ModuleSolanaCodecsNumbers, symbol: "getU8Encoder"},
		{description: "big endian", typeNode: &node.NumberType{Format: "u64", Endian: "be"}, expect: "getU64Encoder({ endian: Endian.Big })", module: codegen.ModuleSolanaCodecsNumbers, symbol: "Endian"},
		{description: "public key", typeNode: &node.PublicKeyType{}, expect: "getAddressEncoder()", module: codegen.ModuleSolanaAddresses, symbol: "getAddressEncoder"},
		{description: "string", typeNode: &node.StringType{Encoding: "utf8"}, expect: "getUtf8Encoder()", module: codegen.ModuleSolanaCodecsStrings, symbol: "getUtf8Encoder"},
		{description: "fixed size", typeNode: &node.FixedSizeType{Type: &node.StringType{Encoding: "base58"}, Size: 32}, expect: "fixEncoderSize(getBase58Encoder(), 32)", module: codegen.ModuleSolanaCodecsCore, symbol: "fixEncoderSize"},
		{description: "fixed array", typeNode: &node.ArrayType{Item: node.NewNumberType("u8"), Count: &node.FixedCount{Value: 8}}, expect: "getArrayEncoder(getU8Encoder(), { size: 8 })", module: codegen.ModuleSolanaCodecsDataStructures, symbol: "getArrayEncoder"},
		{description: "default prefixed array", typeNode: &node.ArrayType{Item: &node.PublicKeyType{}, Count: &node.PrefixedCount{Prefix: node.NewNumberType("u32")}}, expect: "getArrayEncoder(getAddressEncoder())", module: codegen.ModuleSolanaAddresses, symbol: "getAddressEncoder"},
		{description: "u16 prefixed array", typeNode: &node.ArrayType{Item: &node.PublicKeyType{}, Count: &node.PrefixedCount{Prefix: node.NewNumberType("u16")}}, expect: "getArrayEncoder(getAddressEncoder(), { size: getU16Encoder() })", module: codegen.ModuleSolanaCodecsNumbers, symbol: "getU16Encoder"},
		{description: "option", typeNode: &node.OptionType{Item: &node.PublicKeyType{}, Prefix: node.NewNumberType("u32"), Fixed: true}, expect: "getOptionEncoder(getAddressEncoder(), { prefix: getU32Encoder(), noneValue: 'zeroes' })", module: codegen.ModuleSolanaOptions, symbol: "getOptionEncoder"},
		{description: "defined type", typeNode: &node.DefinedTypeLink{Name: "tokenStandard"}, expect: "getTokenStandardEncoder()", module: codegen.ModuleGeneratedTypes, symbol: "getTokenStandardEncoder"},
		{description: "boolean", typeNode: &node.BooleanType{Size: node.NewNumberType("u32")}, expect: "getBooleanEncoder({ size: getU32Encoder() })", module: codegen.ModuleSolanaCodecsDataStructures, symbol: "getBooleanEncoder"},
	}
	manifest := newTestManifest()
	for _, testCase := range testCases {
		actual, err := manifest.Encoder(testCase.typeNode)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual.Content, testCase.description)
		assert.True(t, actual.Imports.Has(testCase.module, testCase.symbol), testCase.description)
	}
}

func TestManifest_Value(t *testing.T) {
	var testCases = []struct {
		description string
		value       node.Value
		expect      string
	}{
		{description: "number", value: &node.NumberValue{Number: 42}, expect: "42"},
		{description: "fraction", value: &node.NumberValue{Number: 1.5}, expect: "1.5"},
		{description: "boolean", value: &node.BooleanValue{Boolean: true}, expect: "true"},
		{description: "string", value: &node.StringValue{String: `say "hi"`}, expect: `"say \"hi\""`},
		{description: "public key", value: &node.PublicKeyValue{PublicKey: "11111111111111111111111111111111"}, expect: `address("11111111111111111111111111111111")`},
		{description: "bytes", value: &node.BytesValue{Encoding: "base16", Data: "ff00"}, expect: `getBase16Encoder().encode("ff00")`},
		{description: "none", value: &node.NoneValue{}, expect: "none()"},
		{description: "some", value: &node.SomeValue{Value: &node.NumberValue{Number: 7}}, expect: "some(7)"},
		{description: "enum", value: &node.EnumValue{Enum: &node.DefinedTypeLink{Name: "tokenStandard"}, Variant: "nonFungible"}, expect: "TokenStandard.NonFungible"},
		{description: "array", value: &node.ArrayValue{Items: []node.Value{&node.NumberValue{Number: 1}, &node.NumberValue{Number: 2}}}, expect: "[1, 2]"},
		{description: "empty array", value: &node.ArrayValue{}, expect: "[]"},
		{description: "constant", value: &node.ConstantValue{Type: &node.StringType{Encoding: "utf8"}, Value: &node.StringValue{String: "metadata"}}, expect: `getUtf8Encoder().encode("metadata")`},
		{description: "bytes constant", value: node.ConstantValueFromBytes("base64", "AQI="), expect: `getBase64Encoder().encode("AQI=")`},
	}
	manifest := newTestManifest()
	for _, testCase := range testCases {
		actual, err := manifest.Value(testCase.value)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual.Content, testCase.description)
	}
}

func TestManifest_Errors(t *testing.T) {
	manifest := newTestManifest()
	_, err := manifest.Encoder(&node.StringType{Encoding: "utf16"})
	assert.NotNil(t, err)
	_, err = manifest.Value(&node.BytesValue{Encoding: "base32", Data: "x"})
	assert.NotNil(t, err)
}
