package fragments

import (
	"fmt"

	"github.com/viant/kitgen/codegen"
	"github.com/viant/kitgen/codegen/ast"
	"github.com/viant/kitgen/naming"
	"github.com/viant/kitgen/node"
)

//FeatureResolverScope marks fragments referencing the resolverScope variable
const FeatureResolverScope codegen.Feature = "instruction:resolverScopeVariable"

const programAddressVariable = "programAddress"

type defaultVisitor struct {
	scope *DefaultScope
}

//InstructionInputDefault renders statements initializing the scope input from its default value,
//nil fragment means no initialization code is needed
func InstructionInputDefault(scope *DefaultScope) (*codegen.Fragment, error) {
	value := scope.Input.DefaultValue
	if value == nil {
		return nil, nil
	}
	if !scope.UseAsync && scope.IsAsyncDefaultValue(value) {
		return nil, nil
	}
	return node.VisitDefaultValue[*codegen.Fragment](value, &defaultVisitor{scope: scope})
}

func (v *defaultVisitor) VisitAccountValue(value *node.AccountValue) (*codegen.Fragment, error) {
	name := naming.Camel(value.Name)
	input := v.scope.Input
	if input.IsAccount() && input.ResolvedIsSigner != node.SignerFalse && input.IsSigner == node.SignerFalse {
		return v.assign(codegen.Fragmentf("%v(accounts.%v.value).address", codegen.Use("expectTransactionSigner", codegen.ModuleShared), name), false)
	}
	if input.IsAccount() {
		return v.assign(codegen.Fragmentf("%v(accounts.%v.value)", codegen.Use("expectSome", codegen.ModuleShared), name), false)
	}
	return v.assign(codegen.Fragmentf("%v(accounts.%v.value)", codegen.Use("expectAddress", codegen.ModuleShared), name), false)
}

func (v *defaultVisitor) VisitArgumentValue(value *node.ArgumentValue) (*codegen.Fragment, error) {
	return v.assign(codegen.Fragmentf("%v(args.%v)", codegen.Use("expectSome", codegen.ModuleShared), naming.Camel(value.Name)), false)
}

func (v *defaultVisitor) VisitValue(value node.Value) (*codegen.Fragment, error) {
	if publicKey, ok := value.(*node.PublicKeyValue); ok {
		return v.assign(addressLiteral(publicKey.PublicKey), false)
	}
	fragment, err := v.scope.Manifest.Value(value)
	if err != nil {
		return nil, err
	}
	return v.assign(fragment, false)
}

func (v *defaultVisitor) VisitProgramIdValue(value *node.ProgramIdValue) (*codegen.Fragment, error) {
	input := v.scope.Input
	if v.scope.OptionalAccountStrategy == node.OptionalAccountStrategyProgramID && input.IsAccount() && input.IsOptional {
		return nil, nil
	}
	return v.assign(codegen.NewFragment(programAddressVariable), true)
}

func (v *defaultVisitor) VisitProgramLink(value *node.ProgramLink) (*codegen.Fragment, error) {
	constant := codegen.Use(v.scope.Naming.ProgramAddressConstant(value.Name), v.scope.ImportFrom(value))
	return v.assign(constant, true)
}

func (v *defaultVisitor) VisitIdentityValue(value *node.IdentityValue) (*codegen.Fragment, error) {
	return nil, nil
}

func (v *defaultVisitor) VisitPayerValue(value *node.PayerValue) (*codegen.Fragment, error) {
	return nil, nil
}

func (v *defaultVisitor) VisitAccountBumpValue(value *node.AccountBumpValue) (*codegen.Fragment, error) {
	expect := codegen.Use("expectProgramDerivedAddress", codegen.ModuleShared)
	return v.assign(codegen.Fragmentf("%v(accounts.%v.value)[1]", expect, naming.Camel(value.Name)), false)
}

func (v *defaultVisitor) VisitResolverValue(value *node.ResolverValue) (*codegen.Fragment, error) {
	resolver := codegen.Use(v.scope.Naming.ResolverFunction(value.Name), v.scope.ImportFrom(value))
	await := ""
	if v.scope.UseAsync && v.scope.IsAsyncResolver(value.Name) {
		await = "await "
	}
	fragment, err := v.assign(codegen.Fragmentf("%v%v(resolverScope)", await, resolver), false)
	if err != nil {
		return nil, err
	}
	return fragment.AddFeatures(FeatureResolverScope), nil
}

func (v *defaultVisitor) VisitPdaValue(value *node.PdaValue) (*codegen.Fragment, error) {
	var programValue *codegen.Fragment
	expectAddress := codegen.Use("expectAddress", codegen.ModuleShared)
	switch actual := value.ProgramID.(type) {
	case *node.AccountValue:
		programValue = codegen.Fragmentf("%v(accounts.%v.value)", expectAddress, naming.Camel(actual.Name))
	case *node.ArgumentValue:
		programValue = codegen.Fragmentf("%v(args.%v)", expectAddress, naming.Camel(actual.Name))
	}
	switch pda := value.Pda.(type) {
	case *node.Pda:
		return v.inlinePda(value, pda, programValue)
	case *node.PdaLink:
		return v.linkedPda(value, pda, programValue)
	}
	return nil, fmt.Errorf("unsupported pda reference: %T", value.Pda)
}

func (v *defaultVisitor) inlinePda(value *node.PdaValue, pda *node.Pda, programValue *codegen.Fragment) (*codegen.Fragment, error) {
	pdaProgram := codegen.NewFragment(programAddressVariable)
	if programValue != nil {
		pdaProgram = programValue
	} else if pda.ProgramID != "" {
		pdaProgram = addressLiteral(pda.ProgramID)
	}
	var seeds []*codegen.Fragment
	for _, seed := range pda.Seeds {
		fragment, err := v.inlineSeed(value, seed, pdaProgram)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, fragment)
	}
	programAddress := pdaProgram
	if pdaProgram.Content != programAddressVariable {
		programAddress = codegen.Fragmentf("programAddress: %v", pdaProgram)
	}
	derive := codegen.Use("getProgramDerivedAddress", codegen.ModuleSolanaAddresses)
	seedList := codegen.MergeFragments(seeds, codegen.Join(", "))
	return v.assign(codegen.Fragmentf("await %v({ %v, seeds: [%v] })", derive, programAddress, seedList), false)
}

//inlineSeed returns nil for a variable seed without a value
func (v *defaultVisitor) inlineSeed(value *node.PdaValue, seed node.PdaSeed, pdaProgram *codegen.Fragment) (*codegen.Fragment, error) {
	switch actual := seed.(type) {
	case *node.ConstantPdaSeed:
		if _, ok := actual.Value.(*node.ProgramIdValue); ok {
			return codegen.Fragmentf("%v().encode(%v)", codegen.Use("getAddressEncoder", codegen.ModuleSolanaAddresses), pdaProgram), nil
		}
		literal, ok := actual.Value.(node.Value)
		if !ok {
			return nil, fmt.Errorf("pda %v: unsupported constant seed value: %T", value.PdaName(), actual.Value)
		}
		return v.encode(actual.Type, literal)
	case *node.VariablePdaSeed:
		seedValue := value.Seed(actual.Name)
		if seedValue == nil || seedValue.Value == nil {
			return nil, nil
		}
		encoder, err := v.scope.Manifest.Encoder(actual.Type)
		if err != nil {
			return nil, err
		}
		switch input := seedValue.Value.(type) {
		case *node.AccountValue:
			return codegen.Fragmentf("%v.encode(%v(accounts.%v.value))", encoder, codegen.Use("expectAddress", codegen.ModuleShared), naming.Camel(input.Name)), nil
		case *node.ArgumentValue:
			return codegen.Fragmentf("%v.encode(%v(args.%v))", encoder, codegen.Use("expectSome", codegen.ModuleShared), naming.Camel(input.Name)), nil
		case node.Value:
			return v.encode(actual.Type, input)
		}
		return nil, fmt.Errorf("pda %v: unsupported seed %v value: %T", value.PdaName(), actual.Name, seedValue.Value)
	}
	return nil, fmt.Errorf("pda %v: unsupported seed: %T", value.PdaName(), seed)
}

func (v *defaultVisitor) encode(typeNode node.TypeNode, value node.Value) (*codegen.Fragment, error) {
	encoder, err := v.scope.Manifest.Encoder(typeNode)
	if err != nil {
		return nil, err
	}
	literal, err := v.scope.Manifest.Value(value)
	if err != nil {
		return nil, err
	}
	return codegen.Fragmentf("%v.encode(%v)", encoder, literal), nil
}

func (v *defaultVisitor) linkedPda(value *node.PdaValue, pda *node.PdaLink, programValue *codegen.Fragment) (*codegen.Fragment, error) {
	find := codegen.Use(v.scope.Naming.PdaFindFunction(pda.Name), v.scope.ImportFrom(pda))
	var seeds []*codegen.Fragment
	for _, seed := range value.Seeds {
		switch actual := seed.Value.(type) {
		case *node.AccountValue:
			seeds = append(seeds, codegen.Fragmentf("%v: %v(accounts.%v.value)", naming.Camel(seed.Name), codegen.Use("expectAddress", codegen.ModuleShared), naming.Camel(actual.Name)))
		case *node.ArgumentValue:
			seeds = append(seeds, codegen.Fragmentf("%v: %v(args.%v)", naming.Camel(seed.Name), codegen.Use("expectSome", codegen.ModuleShared), naming.Camel(actual.Name)))
		case node.Value:
			literal, err := v.scope.Manifest.Value(actual)
			if err != nil {
				return nil, err
			}
			seeds = append(seeds, codegen.Fragmentf("%v: %v", naming.Camel(seed.Name), literal))
		default:
			return nil, fmt.Errorf("pda %v: unsupported seed %v value: %T", pda.Name, seed.Name, seed.Value)
		}
	}
	var args []*codegen.Fragment
	if len(seeds) > 0 {
		args = append(args, codegen.Fragmentf("{ %v }", codegen.MergeFragments(seeds, codegen.Join(", "))))
	}
	if programValue != nil {
		args = append(args, codegen.Fragmentf("{ programAddress: %v }", programValue))
	}
	return v.assign(codegen.Fragmentf("await %v(%v)", find, codegen.MergeFragments(args, codegen.Join(", "))), false)
}

func (v *defaultVisitor) VisitConditionalValue(value *node.ConditionalValue) (*codegen.Fragment, error) {
	ifTrue, err := v.nested(value.IfTrue)
	if err != nil {
		return nil, err
	}
	ifFalse, err := v.nested(value.IfFalse)
	if err != nil {
		return nil, err
	}
	if ifTrue == nil && ifFalse == nil {
		return nil, nil
	}
	first := func(contents []string) string { return contents[0] }
	conditional := codegen.MergeFragments([]*codegen.Fragment{ifTrue, ifFalse}, first)
	negated := ifTrue == nil

	var condition ast.Expression
	switch actual := value.Condition.(type) {
	case *node.ResolverValue:
		resolver := v.scope.Naming.ResolverFunction(actual.Name)
		conditional = conditional.AddImports(v.scope.ImportFrom(actual), resolver).AddFeatures(FeatureResolverScope)
		var call ast.Expression = ast.NewCallExpr(nil, resolver, ast.NewIdent("resolverScope"))
		if v.scope.UseAsync && v.scope.IsAsyncResolver(actual.Name) {
			call = ast.NewAwait(call)
		}
		if negated {
			call = ast.NewNot(call)
		}
		condition = call
	case *node.AccountValue, *node.ArgumentValue:
		compared := comparedInput(actual)
		if value.Value != nil {
			comparedValue, err := v.scope.Manifest.Value(value.Value)
			if err != nil {
				return nil, err
			}
			conditional = codegen.MergeFragments([]*codegen.Fragment{conditional, comparedValue}, first)
			operator := "==="
			if negated {
				operator = "!=="
			}
			condition = ast.NewBinaryExpr(compared, operator, ast.NewLiteral(comparedValue.Content))
		} else if negated {
			condition = ast.NewNot(compared)
		} else {
			condition = compared
		}
	default:
		return nil, fmt.Errorf("input %v: unsupported condition: %T", v.scope.Input.Name, value.Condition)
	}

	var ifBlock, elseBlock ast.Block
	if ifTrue != nil && ifFalse != nil {
		ifBlock.Append(ast.NewLiteral(ifTrue.Content))
		elseBlock.Append(ast.NewLiteral(ifFalse.Content))
	} else if ifTrue != nil {
		ifBlock.Append(ast.NewLiteral(ifTrue.Content))
	} else {
		ifBlock.Append(ast.NewLiteral(ifFalse.Content))
	}
	code, err := ast.Generate(ast.NewCondition(condition, ifBlock, elseBlock), ast.Options{Lang: ast.LangTS})
	if err != nil {
		return nil, err
	}
	return conditional.SetContent(code), nil
}

func (v *defaultVisitor) nested(value node.DefaultValue) (*codegen.Fragment, error) {
	if value == nil {
		return nil, nil
	}
	return InstructionInputDefault(v.scope.WithDefaultValue(value))
}

//assign wraps rendered value into the assignment of the scope input, pinWritable marks the account read-only
func (v *defaultVisitor) assign(value *codegen.Fragment, pinWritable bool) (*codegen.Fragment, error) {
	input := v.scope.Input
	name := naming.Camel(input.Name)
	var block ast.Block
	rendered := ast.NewLiteral(value.Content)
	switch {
	case !input.IsAccount():
		block.Append(ast.NewAssign(ast.NewIdent("args."+name), rendered))
	case isResolverValue(input.DefaultValue):
		holder := ast.NewIdent("accounts." + name)
		block.Append(ast.NewAssign(holder, ast.NewObjectExpr(ast.NewSpreadExpr(holder), ast.NewSpreadExpr(rendered))))
	default:
		block.Append(ast.NewAssign(ast.NewIdent("accounts."+name+".value"), rendered))
		if pinWritable {
			block.Append(ast.NewAssign(ast.NewIdent("accounts."+name+".isWritable"), ast.NewLiteral("false")))
		}
	}
	code, err := ast.Generate(block, ast.Options{Lang: ast.LangTS})
	if err != nil {
		return nil, err
	}
	return value.SetContent(code), nil
}

func comparedInput(value node.DefaultValue) *ast.Ident {
	if account, ok := value.(*node.AccountValue); ok {
		return ast.NewIdent("accounts." + naming.Camel(account.Name) + ".value")
	}
	return ast.NewIdent("args." + naming.Camel(value.(*node.ArgumentValue).Name))
}

func isResolverValue(value node.DefaultValue) bool {
	_, ok := value.(*node.ResolverValue)
	return ok
}

func addressLiteral(publicKey string) *codegen.Fragment {
	return codegen.Fragmentf("'%v' as %v<'%v'>", publicKey, codegen.Use("type Address", codegen.ModuleSolanaAddresses), publicKey)
}
