package fragments

import (
	"encoding/base64"
	"fmt"

	"github.com/pkg/errors"
	"github.com/viant/kitgen/codegen"
	"github.com/viant/kitgen/node"
)

//ErrFieldDiscriminator is returned when a field discriminator has no matching field with a default value
var ErrFieldDiscriminator = errors.New("field discriminator does not have a matching field with default value")

//ErrInvalidByte is returned when a fixed u8 array default value holds a number outside of the byte range
var ErrInvalidByte = errors.New("invalid byte value")

//DiscriminatorCondition renders a guard executing ifTrue when all discriminators match dataName
func (s *Scope) DiscriminatorCondition(dataName string, discriminators []node.Discriminator, structType *node.StructType, ifTrue string) (*codegen.Fragment, error) {
	var conditions []*codegen.Fragment
	for _, discriminator := range discriminators {
		var condition *codegen.Fragment
		var err error
		switch actual := discriminator.(type) {
		case *node.SizeDiscriminator:
			condition = codegen.Fragmentf("%v.length === %d", dataName, actual.Size)
		case *node.ConstantDiscriminator:
			condition, err = s.byteCondition(dataName, actual.Constant, actual.Offset)
		case *node.FieldDiscriminator:
			condition, err = s.fieldCondition(dataName, actual, structType)
		default:
			err = fmt.Errorf("unsupported discriminator: %T", discriminator)
		}
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, condition)
	}
	merged := codegen.MergeFragments(conditions, codegen.Join(" && "))
	if merged == nil {
		return nil, nil
	}
	return merged.MapContent(func(content string) string {
		return "if (" + content + ") { " + ifTrue + " }"
	}), nil
}

func (s *Scope) byteCondition(dataName string, constant *node.ConstantValue, offset int) (*codegen.Fragment, error) {
	value, err := s.Manifest.Value(constant)
	if err != nil {
		return nil, err
	}
	return codegen.Fragmentf("%v(%v, %v, %d)", codegen.Use("containsBytes", codegen.ModuleSolanaCodecsCore), dataName, value, offset), nil
}

func (s *Scope) fieldCondition(dataName string, discriminator *node.FieldDiscriminator, structType *node.StructType) (*codegen.Fragment, error) {
	field := structType.Field(discriminator.Name)
	if field == nil || field.DefaultValue == nil {
		return nil, errors.Wrapf(ErrFieldDiscriminator, "field: %v", discriminator.Name)
	}
	data, ok, err := fixedBytes(field)
	if err != nil {
		return nil, errors.Wrapf(err, "field: %v", discriminator.Name)
	}
	if ok {
		return s.byteCondition(dataName, node.ConstantValueFromBytes("base64", base64.StdEncoding.EncodeToString(data)), discriminator.Offset)
	}
	return s.byteCondition(dataName, &node.ConstantValue{Type: field.Type, Value: field.DefaultValue}, discriminator.Offset)
}

//fixedBytes returns the default value of a fixed u8 array field as bytes
func fixedBytes(field *node.StructField) ([]byte, bool, error) {
	if !node.IsFixedU8Array(field.Type) {
		return nil, false, nil
	}
	array, ok := field.DefaultValue.(*node.ArrayValue)
	if !ok {
		return nil, false, nil
	}
	var result = make([]byte, 0, len(array.Items))
	for i, item := range array.Items {
		number, ok := item.(*node.NumberValue)
		if !ok {
			return nil, false, nil
		}
		if number.Number < 0 || number.Number > 255 || number.Number != float64(int(number.Number)) {
			return nil, false, errors.Wrapf(ErrInvalidByte, "%v at index %d", number.Number, i)
		}
		result = append(result, byte(number.Number))
	}
	return result, true, nil
}
