package node

type (
	//Value is a literal value, every value can also be used as a default value
	Value interface {
		DefaultValue
		value()
	}

	NumberValue struct {
		Number float64 `yaml:"number"`
	}

	BooleanValue struct {
		Boolean bool `yaml:"boolean"`
	}

	StringValue struct {
		String string `yaml:"string"`
	}

	PublicKeyValue struct {
		PublicKey  string `yaml:"publicKey"`
		Identifier string `yaml:"identifier,omitempty"`
	}

	BytesValue struct {
		Encoding string `yaml:"encoding"`
		Data     string `yaml:"data"`
	}

	NoneValue struct{}

	SomeValue struct {
		Value Value
	}

	EnumValue struct {
		Enum    *DefinedTypeLink
		Variant string
	}

	ArrayValue struct {
		Items []Value
	}

	ConstantValue struct {
		Type  TypeNode
		Value Value
	}
)

func (n *NumberValue) Kind() string    { return KindNumberValue }
func (n *BooleanValue) Kind() string   { return KindBooleanValue }
func (n *StringValue) Kind() string    { return KindStringValue }
func (n *PublicKeyValue) Kind() string { return KindPublicKeyValue }
func (n *BytesValue) Kind() string     { return KindBytesValue }
func (n *NoneValue) Kind() string      { return KindNoneValue }
func (n *SomeValue) Kind() string      { return KindSomeValue }
func (n *EnumValue) Kind() string      { return KindEnumValue }
func (n *ArrayValue) Kind() string     { return KindArrayValue }
func (n *ConstantValue) Kind() string  { return KindConstantValue }

func (n *NumberValue) value()    {}
func (n *BooleanValue) value()   {}
func (n *StringValue) value()    {}
func (n *PublicKeyValue) value() {}
func (n *BytesValue) value()     {}
func (n *NoneValue) value()      {}
func (n *SomeValue) value()      {}
func (n *EnumValue) value()      {}
func (n *ArrayValue) value()     {}
func (n *ConstantValue) value()  {}

func (n *NumberValue) defaultValue()    {}
func (n *BooleanValue) defaultValue()   {}
func (n *StringValue) defaultValue()    {}
func (n *PublicKeyValue) defaultValue() {}
func (n *BytesValue) defaultValue()     {}
func (n *NoneValue) defaultValue()      {}
func (n *SomeValue) defaultValue()      {}
func (n *EnumValue) defaultValue()      {}
func (n *ArrayValue) defaultValue()     {}
func (n *ConstantValue) defaultValue()  {}

//ConstantValueFromBytes returns a bytes constant with the given encoding
func ConstantValueFromBytes(encoding, data string) *ConstantValue {
	return &ConstantValue{Type: &BytesType{}, Value: &BytesValue{Encoding: encoding, Data: data}}
}
