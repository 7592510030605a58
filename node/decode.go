package node

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//ErrUnknownKind is returned when a decoded node kind is not supported in its position
var ErrUnknownKind = errors.New("unknown node kind")

type header struct {
	Kind string `yaml:"kind"`
}

//Decode decodes a rootNode or a programNode from YAML or JSON data
func Decode(data []byte) (*Root, error) {
	document := &yaml.Node{}
	if err := yaml.Unmarshal(data, document); err != nil {
		return nil, errors.Wrap(err, "failed to parse program description")
	}
	if document.Kind == yaml.DocumentNode && len(document.Content) > 0 {
		document = document.Content[0]
	}
	kind, err := kindOf(document)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindRoot:
		var raw struct {
			Program            yaml.Node   `yaml:"program"`
			AdditionalPrograms []yaml.Node `yaml:"additionalPrograms"`
		}
		if err = document.Decode(&raw); err != nil {
			return nil, err
		}
		root := &Root{}
		if root.Program, err = decodeProgram(&raw.Program); err != nil {
			return nil, err
		}
		for i := range raw.AdditionalPrograms {
			program, err := decodeProgram(&raw.AdditionalPrograms[i])
			if err != nil {
				return nil, err
			}
			root.AdditionalPrograms = append(root.AdditionalPrograms, program)
		}
		return root, nil
	case KindProgram:
		program, err := decodeProgram(document)
		if err != nil {
			return nil, err
		}
		return &Root{Program: program}, nil
	}
	return nil, errors.Wrapf(ErrUnknownKind, "expected %v or %v but had %q", KindRoot, KindProgram, kind)
}

func kindOf(value *yaml.Node) (string, error) {
	h := header{}
	if err := value.Decode(&h); err != nil {
		return "", errors.Wrapf(err, "failed to decode node at line %v", value.Line)
	}
	return h.Kind, nil
}

func isEmpty(value *yaml.Node) bool {
	return value == nil || value.Kind == 0 || value.Tag == "!!null"
}

func unknownKind(kind string, value *yaml.Node) error {
	return errors.Wrapf(ErrUnknownKind, "%q at line %v", kind, value.Line)
}

func decodeProgram(value *yaml.Node) (*Program, error) {
	if err := expectKind(value, KindProgram); err != nil {
		return nil, err
	}
	var raw struct {
		Name         string      `yaml:"name"`
		PublicKey    string      `yaml:"publicKey"`
		Version      string      `yaml:"version"`
		Accounts     []yaml.Node `yaml:"accounts"`
		Instructions []yaml.Node `yaml:"instructions"`
		Pdas         []yaml.Node `yaml:"pdas"`
	}
	if err := value.Decode(&raw); err != nil {
		return nil, err
	}
	program := &Program{Name: raw.Name, PublicKey: raw.PublicKey, Version: raw.Version}
	for i := range raw.Accounts {
		account, err := decodeAccount(&raw.Accounts[i])
		if err != nil {
			return nil, errors.Wrapf(err, "program %v", raw.Name)
		}
		program.Accounts = append(program.Accounts, account)
	}
	for i := range raw.Instructions {
		instruction, err := decodeInstruction(&raw.Instructions[i])
		if err != nil {
			return nil, errors.Wrapf(err, "program %v", raw.Name)
		}
		program.Instructions = append(program.Instructions, instruction)
	}
	for i := range raw.Pdas {
		pda, err := decodePda(&raw.Pdas[i])
		if err != nil {
			return nil, errors.Wrapf(err, "program %v", raw.Name)
		}
		program.Pdas = append(program.Pdas, pda)
	}
	return program, nil
}

func expectKind(value *yaml.Node, expected string) error {
	kind, err := kindOf(value)
	if err != nil {
		return err
	}
	if kind != expected {
		return errors.Wrapf(ErrUnknownKind, "expected %v but had %q at line %v", expected, kind, value.Line)
	}
	return nil
}

func decodeAccount(value *yaml.Node) (*Account, error) {
	if err := expectKind(value, KindAccount); err != nil {
		return nil, err
	}
	var raw struct {
		Name           string      `yaml:"name"`
		Data           yaml.Node   `yaml:"data"`
		Discriminators []yaml.Node `yaml:"discriminators"`
	}
	if err := value.Decode(&raw); err != nil {
		return nil, err
	}
	account := &Account{Name: raw.Name}
	var err error
	if !isEmpty(&raw.Data) {
		if account.Data, err = decodeStruct(&raw.Data); err != nil {
			return nil, errors.Wrapf(err, "account %v", raw.Name)
		}
	}
	if account.Discriminators, err = decodeDiscriminators(raw.Discriminators); err != nil {
		return nil, errors.Wrapf(err, "account %v", raw.Name)
	}
	return account, nil
}

func decodeInstruction(value *yaml.Node) (*Instruction, error) {
	if err := expectKind(value, KindInstruction); err != nil {
		return nil, err
	}
	var raw struct {
		Name                    string      `yaml:"name"`
		Accounts                []yaml.Node `yaml:"accounts"`
		Arguments               []yaml.Node `yaml:"arguments"`
		ExtraArguments          []yaml.Node `yaml:"extraArguments"`
		ByteDeltas              []yaml.Node `yaml:"byteDeltas"`
		RemainingAccounts       []yaml.Node `yaml:"remainingAccounts"`
		Discriminators          []yaml.Node `yaml:"discriminators"`
		SubInstructions         []yaml.Node `yaml:"subInstructions"`
		OptionalAccountStrategy string      `yaml:"optionalAccountStrategy"`
	}
	if err := value.Decode(&raw); err != nil {
		return nil, err
	}
	instruction := &Instruction{Name: raw.Name, OptionalAccountStrategy: raw.OptionalAccountStrategy}
	for i := range raw.Accounts {
		account, err := decodeInstructionAccount(&raw.Accounts[i])
		if err != nil {
			return nil, errors.Wrapf(err, "instruction %v", raw.Name)
		}
		instruction.Accounts = append(instruction.Accounts, account)
	}
	for i := range raw.Arguments {
		argument, err := decodeInstructionArgument(&raw.Arguments[i])
		if err != nil {
			return nil, errors.Wrapf(err, "instruction %v", raw.Name)
		}
		instruction.Arguments = append(instruction.Arguments, argument)
	}
	for i := range raw.ExtraArguments {
		argument, err := decodeInstructionArgument(&raw.ExtraArguments[i])
		if err != nil {
			return nil, errors.Wrapf(err, "instruction %v", raw.Name)
		}
		instruction.ExtraArguments = append(instruction.ExtraArguments, argument)
	}
	for i := range raw.ByteDeltas {
		delta, err := decodeByteDelta(&raw.ByteDeltas[i])
		if err != nil {
			return nil, errors.Wrapf(err, "instruction %v", raw.Name)
		}
		instruction.ByteDeltas = append(instruction.ByteDeltas, delta)
	}
	for i := range raw.RemainingAccounts {
		remaining, err := decodeRemainingAccounts(&raw.RemainingAccounts[i])
		if err != nil {
			return nil, errors.Wrapf(err, "instruction %v", raw.Name)
		}
		instruction.RemainingAccounts = append(instruction.RemainingAccounts, remaining)
	}
	var err error
	if instruction.Discriminators, err = decodeDiscriminators(raw.Discriminators); err != nil {
		return nil, errors.Wrapf(err, "instruction %v", raw.Name)
	}
	for i := range raw.SubInstructions {
		sub, err := decodeInstruction(&raw.SubInstructions[i])
		if err != nil {
			return nil, errors.Wrapf(err, "instruction %v", raw.Name)
		}
		instruction.SubInstructions = append(instruction.SubInstructions, sub)
	}
	return instruction, nil
}

func decodeInstructionAccount(value *yaml.Node) (*InstructionAccount, error) {
	if err := expectKind(value, KindInstructionAccount); err != nil {
		return nil, err
	}
	var raw struct {
		Name         string    `yaml:"name"`
		IsWritable   bool      `yaml:"isWritable"`
		IsSigner     yaml.Node `yaml:"isSigner"`
		IsOptional   bool      `yaml:"isOptional"`
		DefaultValue yaml.Node `yaml:"defaultValue"`
	}
	if err := value.Decode(&raw); err != nil {
		return nil, err
	}
	account := &InstructionAccount{Name: raw.Name, IsWritable: raw.IsWritable, IsOptional: raw.IsOptional}
	var err error
	if !isEmpty(&raw.IsSigner) {
		if account.IsSigner, err = ParseSignerStatus(raw.IsSigner.Value); err != nil {
			return nil, errors.Wrapf(err, "account %v", raw.Name)
		}
	}
	if account.DefaultValue, err = decodeDefaultValue(&raw.DefaultValue); err != nil {
		return nil, errors.Wrapf(err, "account %v", raw.Name)
	}
	return account, nil
}

func decodeByteDelta(value *yaml.Node) (*ByteDelta, error) {
	if err := expectKind(value, KindByteDelta); err != nil {
		return nil, err
	}
	var raw struct {
		Value      yaml.Node `yaml:"value"`
		WithHeader bool      `yaml:"withHeader"`
		Subtract   bool      `yaml:"subtract"`
	}
	if err := value.Decode(&raw); err != nil {
		return nil, err
	}
	delta := &ByteDelta{WithHeader: raw.WithHeader, Subtract: raw.Subtract}
	if isEmpty(&raw.Value) {
		return delta, nil
	}
	kind, err := kindOf(&raw.Value)
	if err != nil {
		return nil, errors.Wrap(err, "byte delta")
	}
	if kind == KindAccountLink {
		var link struct {
			Name string `yaml:"name"`
		}
		if err = raw.Value.Decode(&link); err != nil {
			return nil, err
		}
		delta.AccountLink = link.Name
		return delta, nil
	}
	if delta.Value, err = decodeDefaultValue(&raw.Value); err != nil {
		return nil, errors.Wrap(err, "byte delta")
	}
	return delta, nil
}

func decodeRemainingAccounts(value *yaml.Node) (*RemainingAccounts, error) {
	if err := expectKind(value, KindRemainingAccounts); err != nil {
		return nil, err
	}
	var raw struct {
		Value      yaml.Node `yaml:"value"`
		IsOptional bool      `yaml:"isOptional"`
		IsSigner   yaml.Node `yaml:"isSigner"`
		IsWritable bool      `yaml:"isWritable"`
	}
	if err := value.Decode(&raw); err != nil {
		return nil, err
	}
	remaining := &RemainingAccounts{IsOptional: raw.IsOptional, IsWritable: raw.IsWritable}
	var err error
	if !isEmpty(&raw.IsSigner) {
		if remaining.IsSigner, err = ParseSignerStatus(raw.IsSigner.Value); err != nil {
			return nil, errors.Wrap(err, "remaining accounts")
		}
	}
	if remaining.Value, err = decodeDefaultValue(&raw.Value); err != nil {
		return nil, errors.Wrap(err, "remaining accounts")
	}
	return remaining, nil
}

func decodeInstructionArgument(value *yaml.Node) (*InstructionArgument, error) {
	if err := expectKind(value, KindInstructionArgument); err != nil {
		return nil, err
	}
	var raw struct {
		Name                 string    `yaml:"name"`
		Type                 yaml.Node `yaml:"type"`
		DefaultValue         yaml.Node `yaml:"defaultValue"`
		DefaultValueStrategy string    `yaml:"defaultValueStrategy"`
	}
	if err := value.Decode(&raw); err != nil {
		return nil, err
	}
	argument := &InstructionArgument{Name: raw.Name, DefaultValueStrategy: raw.DefaultValueStrategy}
	var err error
	if argument.Type, err = decodeType(&raw.Type); err != nil {
		return nil, errors.Wrapf(err, "argument %v", raw.Name)
	}
	if argument.DefaultValue, err = decodeDefaultValue(&raw.DefaultValue); err != nil {
		return nil, errors.Wrapf(err, "argument %v", raw.Name)
	}
	return argument, nil
}

func decodePda(value *yaml.Node) (*Pda, error) {
	if err := expectKind(value, KindPda); err != nil {
		return nil, err
	}
	var raw struct {
		Name      string      `yaml:"name"`
		ProgramID string      `yaml:"programId"`
		Seeds     []yaml.Node `yaml:"seeds"`
	}
	if err := value.Decode(&raw); err != nil {
		return nil, err
	}
	pda := &Pda{Name: raw.Name, ProgramID: raw.ProgramID}
	for i := range raw.Seeds {
		seed, err := decodePdaSeed(&raw.Seeds[i])
		if err != nil {
			return nil, errors.Wrapf(err, "pda %v", raw.Name)
		}
		pda.Seeds = append(pda.Seeds, seed)
	}
	return pda, nil
}

func decodePdaSeed(value *yaml.Node) (PdaSeed, error) {
	kind, err := kindOf(value)
	if err != nil {
		return nil, err
	}
	var raw struct {
		Name  string    `yaml:"name"`
		Type  yaml.Node `yaml:"type"`
		Value yaml.Node `yaml:"value"`
	}
	if err = value.Decode(&raw); err != nil {
		return nil, err
	}
	typeNode, err := decodeType(&raw.Type)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindVariablePdaSeed:
		return &VariablePdaSeed{Name: raw.Name, Type: typeNode}, nil
	case KindConstantPdaSeed:
		seed := &ConstantPdaSeed{Type: typeNode}
		if seed.Value, err = decodeDefaultValue(&raw.Value); err != nil {
			return nil, err
		}
		return seed, nil
	}
	return nil, unknownKind(kind, value)
}

func decodeDiscriminators(values []yaml.Node) ([]Discriminator, error) {
	var result []Discriminator
	for i := range values {
		value := &values[i]
		kind, err := kindOf(value)
		if err != nil {
			return nil, err
		}
		switch kind {
		case KindSizeDiscriminator:
			discriminator := &SizeDiscriminator{}
			if err = value.Decode(discriminator); err != nil {
				return nil, err
			}
			result = append(result, discriminator)
		case KindFieldDiscriminator:
			discriminator := &FieldDiscriminator{}
			if err = value.Decode(discriminator); err != nil {
				return nil, err
			}
			result = append(result, discriminator)
		case KindConstantDiscriminator:
			var raw struct {
				Constant yaml.Node `yaml:"constant"`
				Offset   int       `yaml:"offset"`
			}
			if err = value.Decode(&raw); err != nil {
				return nil, err
			}
			constant, err := decodeValue(&raw.Constant)
			if err != nil {
				return nil, err
			}
			constantValue, ok := constant.(*ConstantValue)
			if !ok {
				return nil, unknownKind(constant.Kind(), &raw.Constant)
			}
			result = append(result, &ConstantDiscriminator{Constant: constantValue, Offset: raw.Offset})
		default:
			return nil, unknownKind(kind, value)
		}
	}
	return result, nil
}

func decodeStruct(value *yaml.Node) (*StructType, error) {
	typeNode, err := decodeType(value)
	if err != nil {
		return nil, err
	}
	result, ok := typeNode.(*StructType)
	if !ok {
		return nil, unknownKind(typeNode.Kind(), value)
	}
	return result, nil
}

func decodeNumber(value *yaml.Node) (*NumberType, error) {
	if isEmpty(value) {
		return nil, nil
	}
	if err := expectKind(value, KindNumberType); err != nil {
		return nil, err
	}
	result := &NumberType{}
	return result, value.Decode(result)
}

func decodeType(value *yaml.Node) (TypeNode, error) {
	if isEmpty(value) {
		return nil, nil
	}
	kind, err := kindOf(value)
	if err != nil {
		return nil, err
	}
	var raw struct {
		Type   yaml.Node   `yaml:"type"`
		Item   yaml.Node   `yaml:"item"`
		Count  yaml.Node   `yaml:"count"`
		Prefix yaml.Node   `yaml:"prefix"`
		Size   yaml.Node   `yaml:"size"`
		Fixed  bool        `yaml:"fixed"`
		Fields []yaml.Node `yaml:"fields"`
	}
	switch kind {
	case KindNumberType:
		return decodeNumber(value)
	case KindStringType:
		result := &StringType{}
		return result, value.Decode(result)
	case KindBytesType:
		return &BytesType{}, nil
	case KindPublicKeyType:
		return &PublicKeyType{}, nil
	case KindDefinedTypeLink:
		result := &DefinedTypeLink{}
		return result, value.Decode(result)
	}
	if err = value.Decode(&raw); err != nil {
		return nil, err
	}
	switch kind {
	case KindBooleanType:
		size, err := decodeNumber(&raw.Size)
		return &BooleanType{Size: size}, err
	case KindFixedSizeType:
		result := &FixedSizeType{}
		if err = raw.Size.Decode(&result.Size); err != nil {
			return nil, err
		}
		result.Type, err = decodeType(&raw.Type)
		return result, err
	case KindSizePrefixType:
		result := &SizePrefixType{}
		if result.Prefix, err = decodeNumber(&raw.Prefix); err != nil {
			return nil, err
		}
		result.Type, err = decodeType(&raw.Type)
		return result, err
	case KindArrayType:
		result := &ArrayType{}
		if result.Item, err = decodeType(&raw.Item); err != nil {
			return nil, err
		}
		result.Count, err = decodeCount(&raw.Count)
		return result, err
	case KindOptionType:
		result := &OptionType{Fixed: raw.Fixed}
		if result.Prefix, err = decodeNumber(&raw.Prefix); err != nil {
			return nil, err
		}
		result.Item, err = decodeType(&raw.Item)
		return result, err
	case KindStructType:
		result := &StructType{}
		for i := range raw.Fields {
			field, err := decodeStructField(&raw.Fields[i])
			if err != nil {
				return nil, err
			}
			result.Fields = append(result.Fields, field)
		}
		return result, nil
	}
	return nil, unknownKind(kind, value)
}

func decodeStructField(value *yaml.Node) (*StructField, error) {
	if err := expectKind(value, KindStructField); err != nil {
		return nil, err
	}
	var raw struct {
		Name                 string    `yaml:"name"`
		Type                 yaml.Node `yaml:"type"`
		DefaultValue         yaml.Node `yaml:"defaultValue"`
		DefaultValueStrategy string    `yaml:"defaultValueStrategy"`
	}
	if err := value.Decode(&raw); err != nil {
		return nil, err
	}
	field := &StructField{Name: raw.Name, DefaultValueStrategy: raw.DefaultValueStrategy}
	var err error
	if field.Type, err = decodeType(&raw.Type); err != nil {
		return nil, errors.Wrapf(err, "field %v", raw.Name)
	}
	if !isEmpty(&raw.DefaultValue) {
		if field.DefaultValue, err = decodeValue(&raw.DefaultValue); err != nil {
			return nil, errors.Wrapf(err, "field %v", raw.Name)
		}
	}
	return field, nil
}

func decodeCount(value *yaml.Node) (CountNode, error) {
	kind, err := kindOf(value)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindFixedCount:
		result := &FixedCount{}
		return result, value.Decode(result)
	case KindRemainderCount:
		return &RemainderCount{}, nil
	case KindPrefixedCount:
		var raw struct {
			Prefix yaml.Node `yaml:"prefix"`
		}
		if err = value.Decode(&raw); err != nil {
			return nil, err
		}
		prefix, err := decodeNumber(&raw.Prefix)
		return &PrefixedCount{Prefix: prefix}, err
	}
	return nil, unknownKind(kind, value)
}

func decodeValue(value *yaml.Node) (Value, error) {
	defaultValue, err := decodeDefaultValue(value)
	if err != nil || defaultValue == nil {
		return nil, err
	}
	result, ok := defaultValue.(Value)
	if !ok {
		return nil, unknownKind(defaultValue.Kind(), value)
	}
	return result, nil
}

func decodeDefaultValue(value *yaml.Node) (DefaultValue, error) {
	if isEmpty(value) {
		return nil, nil
	}
	kind, err := kindOf(value)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindNumberValue:
		result := &NumberValue{}
		return result, value.Decode(result)
	case KindBooleanValue:
		result := &BooleanValue{}
		return result, value.Decode(result)
	case KindStringValue:
		result := &StringValue{}
		return result, value.Decode(result)
	case KindPublicKeyValue:
		result := &PublicKeyValue{}
		return result, value.Decode(result)
	case KindBytesValue:
		result := &BytesValue{}
		return result, value.Decode(result)
	case KindNoneValue:
		return &NoneValue{}, nil
	case KindAccountValue:
		result := &AccountValue{}
		return result, value.Decode(result)
	case KindArgumentValue:
		result := &ArgumentValue{}
		return result, value.Decode(result)
	case KindAccountBumpValue:
		result := &AccountBumpValue{}
		return result, value.Decode(result)
	case KindProgramLink:
		result := &ProgramLink{}
		return result, value.Decode(result)
	case KindProgramIdValue:
		return &ProgramIdValue{}, nil
	case KindIdentityValue:
		return &IdentityValue{}, nil
	case KindPayerValue:
		return &PayerValue{}, nil
	}

	var raw struct {
		Name      string      `yaml:"name"`
		Variant   string      `yaml:"variant"`
		Enum      yaml.Node   `yaml:"enum"`
		Type      yaml.Node   `yaml:"type"`
		Value     yaml.Node   `yaml:"value"`
		Items     []yaml.Node `yaml:"items"`
		Pda       yaml.Node   `yaml:"pda"`
		Seeds     []yaml.Node `yaml:"seeds"`
		ProgramID yaml.Node   `yaml:"programId"`
		DependsOn []yaml.Node `yaml:"dependsOn"`
		Condition yaml.Node   `yaml:"condition"`
		IfTrue    yaml.Node   `yaml:"ifTrue"`
		IfFalse   yaml.Node   `yaml:"ifFalse"`
	}
	if err = value.Decode(&raw); err != nil {
		return nil, err
	}
	switch kind {
	case KindSomeValue:
		result := &SomeValue{}
		result.Value, err = decodeValue(&raw.Value)
		return result, err
	case KindEnumValue:
		result := &EnumValue{Variant: raw.Variant, Enum: &DefinedTypeLink{}}
		return result, raw.Enum.Decode(result.Enum)
	case KindArrayValue:
		result := &ArrayValue{}
		for i := range raw.Items {
			item, err := decodeValue(&raw.Items[i])
			if err != nil {
				return nil, err
			}
			result.Items = append(result.Items, item)
		}
		return result, nil
	case KindConstantValue:
		result := &ConstantValue{}
		if result.Type, err = decodeType(&raw.Type); err != nil {
			return nil, err
		}
		result.Value, err = decodeValue(&raw.Value)
		return result, err
	case KindResolverValue:
		result := &ResolverValue{Name: raw.Name}
		for i := range raw.DependsOn {
			dependency, err := decodeDefaultValue(&raw.DependsOn[i])
			if err != nil {
				return nil, err
			}
			result.DependsOn = append(result.DependsOn, dependency)
		}
		return result, nil
	case KindConditionalValue:
		result := &ConditionalValue{}
		if result.Condition, err = decodeDefaultValue(&raw.Condition); err != nil {
			return nil, err
		}
		if !isEmpty(&raw.Value) {
			if result.Value, err = decodeValue(&raw.Value); err != nil {
				return nil, err
			}
		}
		if result.IfTrue, err = decodeDefaultValue(&raw.IfTrue); err != nil {
			return nil, err
		}
		result.IfFalse, err = decodeDefaultValue(&raw.IfFalse)
		return result, err
	case KindPdaValue:
		return decodePdaValue(value, &raw.Pda, raw.Seeds, &raw.ProgramID)
	}
	return nil, unknownKind(kind, value)
}

func decodePdaValue(value *yaml.Node, pdaNode *yaml.Node, seeds []yaml.Node, programID *yaml.Node) (*PdaValue, error) {
	result := &PdaValue{}
	kind, err := kindOf(pdaNode)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindPdaLink:
		var raw struct {
			Name    string    `yaml:"name"`
			Program yaml.Node `yaml:"program"`
		}
		if err = pdaNode.Decode(&raw); err != nil {
			return nil, err
		}
		link := &PdaLink{Name: raw.Name}
		if !isEmpty(&raw.Program) {
			link.Program = &ProgramLink{}
			if err = raw.Program.Decode(link.Program); err != nil {
				return nil, err
			}
		}
		result.Pda = link
	case KindPda:
		if result.Pda, err = decodePda(pdaNode); err != nil {
			return nil, err
		}
	default:
		return nil, unknownKind(kind, value)
	}
	for i := range seeds {
		if err = expectKind(&seeds[i], KindPdaSeedValue); err != nil {
			return nil, err
		}
		var raw struct {
			Name  string    `yaml:"name"`
			Value yaml.Node `yaml:"value"`
		}
		if err = seeds[i].Decode(&raw); err != nil {
			return nil, err
		}
		seed := &PdaSeedValue{Name: raw.Name}
		if seed.Value, err = decodeDefaultValue(&raw.Value); err != nil {
			return nil, err
		}
		result.Seeds = append(result.Seeds, seed)
	}
	if result.ProgramID, err = decodeDefaultValue(programID); err != nil {
		return nil, err
	}
	return result, nil
}
