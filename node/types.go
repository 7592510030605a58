package node

type (
	NumberType struct {
		Format string `yaml:"format"`
		Endian string `yaml:"endian,omitempty"`
	}

	BooleanType struct {
		Size *NumberType `yaml:"size,omitempty"`
	}

	StringType struct {
		Encoding string `yaml:"encoding"`
	}

	BytesType struct{}

	PublicKeyType struct{}

	FixedSizeType struct {
		Type TypeNode
		Size int
	}

	SizePrefixType struct {
		Type   TypeNode
		Prefix *NumberType
	}

	ArrayType struct {
		Item  TypeNode
		Count CountNode
	}

	FixedCount struct {
		Value int `yaml:"value"`
	}

	PrefixedCount struct {
		Prefix *NumberType
	}

	RemainderCount struct{}

	OptionType struct {
		Item   TypeNode
		Prefix *NumberType
		Fixed  bool
	}

	StructType struct {
		Fields []*StructField
	}

	StructField struct {
		Name                 string
		Type                 TypeNode
		DefaultValue         Value
		DefaultValueStrategy string
	}

	DefinedTypeLink struct {
		Name string `yaml:"name"`
	}
)

const (
	EndianBig = "be"

	DefaultValueStrategyOmitted = "omitted"
)

func (n *NumberType) Kind() string      { return KindNumberType }
func (n *BooleanType) Kind() string     { return KindBooleanType }
func (n *StringType) Kind() string      { return KindStringType }
func (n *BytesType) Kind() string       { return KindBytesType }
func (n *PublicKeyType) Kind() string   { return KindPublicKeyType }
func (n *FixedSizeType) Kind() string   { return KindFixedSizeType }
func (n *SizePrefixType) Kind() string  { return KindSizePrefixType }
func (n *ArrayType) Kind() string       { return KindArrayType }
func (n *OptionType) Kind() string      { return KindOptionType }
func (n *StructType) Kind() string      { return KindStructType }
func (n *StructField) Kind() string     { return KindStructField }
func (n *DefinedTypeLink) Kind() string { return KindDefinedTypeLink }
func (n *FixedCount) Kind() string      { return KindFixedCount }
func (n *PrefixedCount) Kind() string   { return KindPrefixedCount }
func (n *RemainderCount) Kind() string  { return KindRemainderCount }

func (n *NumberType) typeNode()      {}
func (n *BooleanType) typeNode()     {}
func (n *StringType) typeNode()      {}
func (n *BytesType) typeNode()       {}
func (n *PublicKeyType) typeNode()   {}
func (n *FixedSizeType) typeNode()   {}
func (n *SizePrefixType) typeNode()  {}
func (n *ArrayType) typeNode()       {}
func (n *OptionType) typeNode()      {}
func (n *StructType) typeNode()      {}
func (n *DefinedTypeLink) typeNode() {}

func (n *FixedCount) countNode()     {}
func (n *PrefixedCount) countNode()  {}
func (n *RemainderCount) countNode() {}

func (n *DefinedTypeLink) LinkName() string { return n.Name }

//Field returns a field by name or nil
func (n *StructType) Field(name string) *StructField {
	if n == nil {
		return nil
	}
	for _, field := range n.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

//IsFixedU8Array reports whether the type is a fixed size array of u8 numbers
func IsFixedU8Array(typeNode TypeNode) bool {
	array, ok := typeNode.(*ArrayType)
	if !ok {
		return false
	}
	item, ok := array.Item.(*NumberType)
	if !ok || item.Format != "u8" {
		return false
	}
	_, ok = array.Count.(*FixedCount)
	return ok
}

func NewNumberType(format string) *NumberType {
	return &NumberType{Format: format}
}
