package node

import (
	"fmt"
	"strconv"
)

type (
	Root struct {
		Program            *Program
		AdditionalPrograms []*Program
	}

	Program struct {
		Name         string
		PublicKey    string
		Version      string
		Accounts     []*Account
		Instructions []*Instruction
		Pdas         []*Pda
	}

	Account struct {
		Name           string
		Data           *StructType
		Discriminators []Discriminator
	}

	Instruction struct {
		Name                    string
		Accounts                []*InstructionAccount
		Arguments               []*InstructionArgument
		ExtraArguments          []*InstructionArgument
		ByteDeltas              []*ByteDelta
		RemainingAccounts       []*RemainingAccounts
		Discriminators          []Discriminator
		SubInstructions         []*Instruction
		OptionalAccountStrategy string
	}

	InstructionAccount struct {
		Name         string
		IsWritable   bool
		IsSigner     SignerStatus
		IsOptional   bool
		DefaultValue DefaultValue
	}

	InstructionArgument struct {
		Name                 string
		Type                 TypeNode
		DefaultValue         DefaultValue
		DefaultValueStrategy string
	}

	//ByteDelta adds or subtracts bytes from the instruction account space,
	//Value is nil when the delta is linked to an account size
	ByteDelta struct {
		Value       DefaultValue
		AccountLink string
		WithHeader  bool
		Subtract    bool
	}

	//RemainingAccounts value is either an *ArgumentValue or a *ResolverValue
	RemainingAccounts struct {
		Value      DefaultValue
		IsOptional bool
		IsSigner   SignerStatus
		IsWritable bool
	}

	Pda struct {
		Name      string
		ProgramID string
		Seeds     []PdaSeed
	}

	ConstantPdaSeed struct {
		Type TypeNode
		//Value is a Value or a *ProgramIdValue
		Value DefaultValue
	}

	VariablePdaSeed struct {
		Name string
		Type TypeNode
	}

	ConstantDiscriminator struct {
		Constant *ConstantValue
		Offset   int
	}

	FieldDiscriminator struct {
		Name   string `yaml:"name"`
		Offset int    `yaml:"offset"`
	}

	SizeDiscriminator struct {
		Size int `yaml:"size"`
	}

	//SignerStatus is either true, false or "either"
	SignerStatus int
)

const (
	SignerFalse SignerStatus = iota
	SignerTrue
	SignerEither
)

const (
	OptionalAccountStrategyOmitted   = "omitted"
	OptionalAccountStrategyProgramID = "programId"
)

func (n *Root) Kind() string                  { return KindRoot }
func (n *Program) Kind() string               { return KindProgram }
func (n *Account) Kind() string               { return KindAccount }
func (n *Instruction) Kind() string           { return KindInstruction }
func (n *InstructionAccount) Kind() string    { return KindInstructionAccount }
func (n *InstructionArgument) Kind() string   { return KindInstructionArgument }
func (n *ByteDelta) Kind() string             { return KindByteDelta }
func (n *RemainingAccounts) Kind() string     { return KindRemainingAccounts }
func (n *Pda) Kind() string                   { return KindPda }
func (n *ConstantPdaSeed) Kind() string       { return KindConstantPdaSeed }
func (n *VariablePdaSeed) Kind() string       { return KindVariablePdaSeed }
func (n *ConstantDiscriminator) Kind() string { return KindConstantDiscriminator }
func (n *FieldDiscriminator) Kind() string    { return KindFieldDiscriminator }
func (n *SizeDiscriminator) Kind() string     { return KindSizeDiscriminator }

func (n *Program) LinkName() string     { return n.Name }
func (n *Account) LinkName() string     { return n.Name }
func (n *Instruction) LinkName() string { return n.Name }
func (n *Pda) LinkName() string         { return n.Name }

func (n *ConstantPdaSeed) pdaSeed() {}
func (n *VariablePdaSeed) pdaSeed() {}

func (n *ConstantDiscriminator) discriminator() {}
func (n *FieldDiscriminator) discriminator()    {}
func (n *SizeDiscriminator) discriminator()     {}

//Programs returns the main program followed by additional programs
func (r *Root) Programs() []*Program {
	var result []*Program
	if r.Program != nil {
		result = append(result, r.Program)
	}
	return append(result, r.AdditionalPrograms...)
}

//AllInstructions returns instructions with their sub instructions listed first,
//leavesOnly skips instructions that have sub instructions
func (p *Program) AllInstructions(leavesOnly bool) []*Instruction {
	var result []*Instruction
	for _, instruction := range p.Instructions {
		result = append(result, instruction.flatten(leavesOnly)...)
	}
	return result
}

func (i *Instruction) flatten(leavesOnly bool) []*Instruction {
	var result []*Instruction
	for _, sub := range i.SubInstructions {
		result = append(result, sub.flatten(leavesOnly)...)
	}
	if leavesOnly && len(i.SubInstructions) > 0 {
		return result
	}
	return append(result, i)
}

func (p *Program) Pda(name string) *Pda {
	for _, pda := range p.Pdas {
		if pda.Name == name {
			return pda
		}
	}
	return nil
}

//Account returns an instruction account by name or nil
func (i *Instruction) Account(name string) *InstructionAccount {
	for _, account := range i.Accounts {
		if account.Name == name {
			return account
		}
	}
	return nil
}

//Argument returns an instruction argument by name or nil
func (i *Instruction) Argument(name string) *InstructionArgument {
	for _, argument := range i.Arguments {
		if argument.Name == name {
			return argument
		}
	}
	return nil
}

//ArgumentsStruct returns instruction arguments as a struct type
func (i *Instruction) ArgumentsStruct() *StructType {
	result := &StructType{}
	for _, argument := range i.Arguments {
		field := &StructField{Name: argument.Name, Type: argument.Type, DefaultValueStrategy: argument.DefaultValueStrategy}
		if value, ok := argument.DefaultValue.(Value); ok {
			field.DefaultValue = value
		}
		result.Fields = append(result.Fields, field)
	}
	return result
}

//Strategy returns the optional account strategy, programId unless set
func (i *Instruction) Strategy() string {
	if i.OptionalAccountStrategy == "" {
		return OptionalAccountStrategyProgramID
	}
	return i.OptionalAccountStrategy
}

func (s SignerStatus) String() string {
	switch s {
	case SignerTrue:
		return "true"
	case SignerEither:
		return "either"
	}
	return "false"
}

//ParseSignerStatus parses true, false or either
func ParseSignerStatus(text string) (SignerStatus, error) {
	if text == SignerEither.String() {
		return SignerEither, nil
	}
	value, err := strconv.ParseBool(text)
	if err != nil {
		return SignerFalse, fmt.Errorf("invalid signer status: %v", text)
	}
	if value {
		return SignerTrue, nil
	}
	return SignerFalse, nil
}
