package naming

import (
	"github.com/viant/tagly/format/text"
)

type (
	//Transformer maps a node name to the identifier used in generated code
	Transformer func(name string) string

	//API represents naming conventions of generated identifiers
	API struct {
		ProgramAddressConstant Transformer

		ProgramAccountsEnum               Transformer
		ProgramAccountsEnumVariant        Transformer
		ProgramAccountsIdentifierFunction Transformer

		ProgramInstructionsEnum               Transformer
		ProgramInstructionsEnumVariant        Transformer
		ProgramInstructionsIdentifierFunction Transformer
		ProgramInstructionsParsedUnionType    Transformer
		ProgramInstructionsParseFunction      Transformer

		ProgramPluginType             Transformer
		ProgramPluginAccountsType     Transformer
		ProgramPluginInstructionsType Transformer
		ProgramPluginRequirementsType Transformer
		ProgramPluginFunction         Transformer
		ProgramPluginKey              Transformer
		ProgramPluginAccountKey       Transformer
		ProgramPluginInstructionKey   Transformer
		ProgramDefaultsFunction       Transformer
		ProgramDefaultsAsyncFunction  Transformer

		CodecFunction Transformer
		DataType      Transformer
		DataArgsType  Transformer

		InstructionType           Transformer
		InstructionSyncInputType  Transformer
		InstructionAsyncInputType Transformer
		InstructionSyncFunction   Transformer
		InstructionAsyncFunction  Transformer
		InstructionParsedType     Transformer
		InstructionParseFunction  Transformer

		EncoderFunction  Transformer
		PdaFindFunction  Transformer
		ResolverFunction Transformer
		FileName         Transformer
	}
)

func Pascal(name string) string {
	return text.DetectCaseFormat(name).Format(name, text.CaseFormatUpperCamel)
}

func Camel(name string) string {
	return text.DetectCaseFormat(name).Format(name, text.CaseFormatLowerCamel)
}

func Snake(name string) string {
	return text.DetectCaseFormat(name).Format(name, text.CaseFormatUpperUnderscore)
}

func affix(prefix string, transform Transformer, suffix string) Transformer {
	return func(name string) string {
		return prefix + transform(name) + suffix
	}
}

//Default returns default naming conventions
func Default() *API {
	return &API{
		ProgramAddressConstant: affix("", Snake, "_PROGRAM_ADDRESS"),

		ProgramAccountsEnum:               affix("", Pascal, "Account"),
		ProgramAccountsEnumVariant:        Pascal,
		ProgramAccountsIdentifierFunction: affix("identify", Pascal, "Account"),

		ProgramInstructionsEnum:               affix("", Pascal, "Instruction"),
		ProgramInstructionsEnumVariant:        Pascal,
		ProgramInstructionsIdentifierFunction: affix("identify", Pascal, "Instruction"),
		ProgramInstructionsParsedUnionType:    affix("Parsed", Pascal, "Instruction"),
		ProgramInstructionsParseFunction:      affix("parse", Pascal, "Instruction"),

		ProgramPluginType:             affix("", Pascal, "Plugin"),
		ProgramPluginAccountsType:     affix("", Pascal, "PluginAccounts"),
		ProgramPluginInstructionsType: affix("", Pascal, "PluginInstructions"),
		ProgramPluginRequirementsType: affix("", Pascal, "PluginRequirements"),
		ProgramPluginFunction:         affix("", Camel, "Program"),
		ProgramPluginKey:              Camel,
		ProgramPluginAccountKey:       Camel,
		ProgramPluginInstructionKey:   Camel,
		ProgramDefaultsFunction:       affix("resolve", Pascal, "Defaults"),
		ProgramDefaultsAsyncFunction:  affix("resolve", Pascal, "DefaultsAsync"),

		CodecFunction: affix("get", Pascal, "Codec"),
		DataType:      Pascal,
		DataArgsType:  affix("", Pascal, "Args"),

		InstructionType:           affix("", Pascal, "Instruction"),
		InstructionSyncInputType:  affix("", Pascal, "Input"),
		InstructionAsyncInputType: affix("", Pascal, "AsyncInput"),
		InstructionSyncFunction:   affix("get", Pascal, "Instruction"),
		InstructionAsyncFunction:  affix("get", Pascal, "InstructionAsync"),
		InstructionParsedType:     affix("Parsed", Pascal, "Instruction"),
		InstructionParseFunction:  affix("parse", Pascal, "Instruction"),

		EncoderFunction:  affix("get", Pascal, "Encoder"),
		PdaFindFunction:  affix("find", Pascal, "Pda"),
		ResolverFunction: Camel,
		FileName:         Camel,
	}
}
