package node

const (
	KindRoot                  = "rootNode"
	KindProgram               = "programNode"
	KindAccount               = "accountNode"
	KindInstruction           = "instructionNode"
	KindInstructionAccount    = "instructionAccountNode"
	KindInstructionArgument   = "instructionArgumentNode"
	KindPda                   = "pdaNode"
	KindConstantPdaSeed       = "constantPdaSeedNode"
	KindVariablePdaSeed       = "variablePdaSeedNode"
	KindConstantDiscriminator = "constantDiscriminatorNode"
	KindFieldDiscriminator    = "fieldDiscriminatorNode"
	KindSizeDiscriminator     = "sizeDiscriminatorNode"
	KindByteDelta             = "instructionByteDeltaNode"
	KindRemainingAccounts     = "instructionRemainingAccountsNode"
	KindAccountLink           = "accountLinkNode"

	KindNumberType     = "numberTypeNode"
	KindBooleanType    = "booleanTypeNode"
	KindStringType     = "stringTypeNode"
	KindBytesType      = "bytesTypeNode"
	KindPublicKeyType  = "publicKeyTypeNode"
	KindFixedSizeType  = "fixedSizeTypeNode"
	KindSizePrefixType = "sizePrefixTypeNode"
	KindArrayType      = "arrayTypeNode"
	KindOptionType     = "optionTypeNode"
	KindStructType     = "structTypeNode"
	KindStructField    = "structFieldTypeNode"
	KindFixedCount     = "fixedCountNode"
	KindPrefixedCount  = "prefixedCountNode"
	KindRemainderCount = "remainderCountNode"

	KindDefinedTypeLink = "definedTypeLinkNode"
	KindPdaLink         = "pdaLinkNode"
	KindProgramLink     = "programLinkNode"

	KindNumberValue    = "numberValueNode"
	KindBooleanValue   = "booleanValueNode"
	KindStringValue    = "stringValueNode"
	KindPublicKeyValue = "publicKeyValueNode"
	KindBytesValue     = "bytesValueNode"
	KindNoneValue      = "noneValueNode"
	KindSomeValue      = "someValueNode"
	KindEnumValue      = "enumValueNode"
	KindArrayValue     = "arrayValueNode"
	KindConstantValue  = "constantValueNode"

	KindAccountValue     = "accountValueNode"
	KindArgumentValue    = "argumentValueNode"
	KindProgramIdValue   = "programIdValueNode"
	KindIdentityValue    = "identityValueNode"
	KindPayerValue       = "payerValueNode"
	KindPdaValue         = "pdaValueNode"
	KindPdaSeedValue     = "pdaSeedValueNode"
	KindAccountBumpValue = "accountBumpValueNode"
	KindResolverValue    = "resolverValueNode"
	KindConditionalValue = "conditionalValueNode"
)

type (
	//Node represents any element of a program description
	Node interface {
		Kind() string
	}

	//TypeNode describes how a value is encoded
	TypeNode interface {
		Node
		typeNode()
	}

	//CountNode describes an array length strategy
	CountNode interface {
		Node
		countNode()
	}

	//Link references a node declared elsewhere by name
	Link interface {
		Node
		LinkName() string
	}

	//Discriminator identifies an account or instruction within binary data
	Discriminator interface {
		Node
		discriminator()
	}

	//PdaSeed is a seed declared on a derived address
	PdaSeed interface {
		Node
		pdaSeed()
	}
)
