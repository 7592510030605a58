package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/kitgen/codegen"
	"github.com/viant/kitgen/naming"
	"github.com/viant/kitgen/node"
)

//Manifest renders encoders of type nodes and literals of value nodes
type Manifest struct {
	naming     *naming.API
	importFrom func(link node.Link) string
}

//Encoder returns an expression creating an encoder for typeNode
func (m *Manifest) Encoder(typeNode node.TypeNode) (*codegen.Fragment, error) {
	switch actual := typeNode.(type) {
	case *node.NumberType:
		return m.numberEncoder(actual), nil
	case *node.BooleanType:
		if actual.Size == nil || actual.Size.Format == "u8" {
			return codegen.Fragmentf("%v()", codegen.Use("getBooleanEncoder", codegen.ModuleSolanaCodecsDataStructures)), nil
		}
		return codegen.Fragmentf("%v({ size: %v })", codegen.Use("getBooleanEncoder", codegen.ModuleSolanaCodecsDataStructures), m.numberEncoder(actual.Size)), nil
	case *node.StringType:
		return m.stringEncoder(actual.Encoding)
	case *node.BytesType:
		return codegen.Fragmentf("%v()", codegen.Use("getBytesEncoder", codegen.ModuleSolanaCodecsDataStructures)), nil
	case *node.PublicKeyType:
		return codegen.Fragmentf("%v()", codegen.Use("getAddressEncoder", codegen.ModuleSolanaAddresses)), nil
	case *node.FixedSizeType:
		inner, err := m.Encoder(actual.Type)
		if err != nil {
			return nil, err
		}
		return codegen.Fragmentf("%v(%v, %d)", codegen.Use("fixEncoderSize", codegen.ModuleSolanaCodecsCore), inner, actual.Size), nil
	case *node.SizePrefixType:
		inner, err := m.Encoder(actual.Type)
		if err != nil {
			return nil, err
		}
		return codegen.Fragmentf("%v(%v, %v)", codegen.Use("addEncoderSizePrefix", codegen.ModuleSolanaCodecsCore), inner, m.numberEncoder(actual.Prefix)), nil
	case *node.ArrayType:
		return m.arrayEncoder(actual)
	case *node.OptionType:
		item, err := m.Encoder(actual.Item)
		if err != nil {
			return nil, err
		}
		var options []string
		var prefix *codegen.Fragment
		if actual.Prefix != nil && actual.Prefix.Format != "u8" {
			prefix = m.numberEncoder(actual.Prefix)
			options = append(options, "prefix: %v")
		}
		if actual.Fixed {
			options = append(options, "noneValue: 'zeroes'")
		}
		encoder := codegen.Use("getOptionEncoder", codegen.ModuleSolanaOptions)
		if len(options) == 0 {
			return codegen.Fragmentf("%v(%v)", encoder, item), nil
		}
		format := "%v(%v, { " + strings.Join(options, ", ") + " })"
		if prefix == nil {
			return codegen.Fragmentf(format, encoder, item), nil
		}
		return codegen.Fragmentf(format, encoder, item, prefix), nil
	case *node.DefinedTypeLink:
		encoder := codegen.Use(m.naming.EncoderFunction(actual.Name), m.importFrom(actual))
		return codegen.Fragmentf("%v()", encoder), nil
	}
	return nil, fmt.Errorf("unsupported type node: %T", typeNode)
}

func (m *Manifest) numberEncoder(number *node.NumberType) *codegen.Fragment {
	encoder := codegen.Use("get"+capitalize(number.Format)+"Encoder", codegen.ModuleSolanaCodecsNumbers)
	if number.Endian != node.EndianBig {
		return codegen.Fragmentf("%v()", encoder)
	}
	return codegen.Fragmentf("%v({ endian: %v.Big })", encoder, codegen.Use("Endian", codegen.ModuleSolanaCodecsNumbers))
}

func (m *Manifest) stringEncoder(encoding string) (*codegen.Fragment, error) {
	switch encoding {
	case "", "utf8":
		return codegen.Fragmentf("%v()", codegen.Use("getUtf8Encoder", codegen.ModuleSolanaCodecsStrings)), nil
	case "base16", "base58", "base64":
		return codegen.Fragmentf("%v()", codegen.Use("get"+capitalize(encoding)+"Encoder", codegen.ModuleSolanaCodecsStrings)), nil
	}
	return nil, fmt.Errorf("unsupported string encoding: %v", encoding)
}

func (m *Manifest) arrayEncoder(array *node.ArrayType) (*codegen.Fragment, error) {
	item, err := m.Encoder(array.Item)
	if err != nil {
		return nil, err
	}
	encoder := codegen.Use("getArrayEncoder", codegen.ModuleSolanaCodecsDataStructures)
	switch count := array.Count.(type) {
	case *node.FixedCount:
		return codegen.Fragmentf("%v(%v, { size: %d })", encoder, item, count.Value), nil
	case *node.RemainderCount:
		return codegen.Fragmentf("%v(%v, { size: 'remainder' })", encoder, item), nil
	case *node.PrefixedCount:
		if count.Prefix == nil || (count.Prefix.Format == "u32" && count.Prefix.Endian != node.EndianBig) {
			return codegen.Fragmentf("%v(%v)", encoder, item), nil
		}
		return codegen.Fragmentf("%v(%v, { size: %v })", encoder, item, m.numberEncoder(count.Prefix)), nil
	}
	return nil, fmt.Errorf("unsupported array count: %T", array.Count)
}

//Value returns a literal expression of value
func (m *Manifest) Value(value node.Value) (*codegen.Fragment, error) {
	switch actual := value.(type) {
	case *node.NumberValue:
		return codegen.NewFragment(strconv.FormatFloat(actual.Number, 'f', -1, 64)), nil
	case *node.BooleanValue:
		return codegen.NewFragment(strconv.FormatBool(actual.Boolean)), nil
	case *node.StringValue:
		return codegen.NewFragment(strconv.Quote(actual.String)), nil
	case *node.PublicKeyValue:
		return codegen.Fragmentf("%v(%q)", codegen.Use("address", codegen.ModuleSolanaAddresses), actual.PublicKey), nil
	case *node.BytesValue:
		encoder, err := m.stringEncoder(actual.Encoding)
		if err != nil {
			return nil, err
		}
		return codegen.Fragmentf("%v.encode(%q)", encoder, actual.Data), nil
	case *node.NoneValue:
		return codegen.Fragmentf("%v()", codegen.Use("none", codegen.ModuleSolanaOptions)), nil
	case *node.SomeValue:
		inner, err := m.Value(actual.Value)
		if err != nil {
			return nil, err
		}
		return codegen.Fragmentf("%v(%v)", codegen.Use("some", codegen.ModuleSolanaOptions), inner), nil
	case *node.EnumValue:
		enum := codegen.Use(m.naming.DataType(actual.Enum.Name), m.importFrom(actual.Enum))
		return codegen.Fragmentf("%v.%v", enum, naming.Pascal(actual.Variant)), nil
	case *node.ArrayValue:
		var items = make([]*codegen.Fragment, 0, len(actual.Items))
		for _, item := range actual.Items {
			fragment, err := m.Value(item)
			if err != nil {
				return nil, err
			}
			items = append(items, fragment)
		}
		merged := codegen.MergeFragments(items, codegen.Join(", "))
		return codegen.Fragmentf("[%v]", merged), nil
	case *node.ConstantValue:
		return m.constant(actual)
	}
	return nil, fmt.Errorf("unsupported value node: %T", value)
}

func (m *Manifest) constant(constant *node.ConstantValue) (*codegen.Fragment, error) {
	_, isBytesType := constant.Type.(*node.BytesType)
	if _, isBytes := constant.Value.(*node.BytesValue); isBytes && isBytesType {
		return m.Value(constant.Value)
	}
	encoder, err := m.Encoder(constant.Type)
	if err != nil {
		return nil, err
	}
	value, err := m.Value(constant.Value)
	if err != nil {
		return nil, err
	}
	return codegen.Fragmentf("%v.encode(%v)", encoder, value), nil
}

//New creates a manifest, importFrom resolves the module of linked nodes
func New(api *naming.API, importFrom func(link node.Link) string) *Manifest {
	return &Manifest{naming: api, importFrom: importFrom}
}

func capitalize(text string) string {
	if text == "" {
		return text
	}
	return strings.ToUpper(text[:1]) + text[1:]
}
