package codegen

import "fmt"

//KitImportStrategy controls whether kit symbols are imported from the root package or from granular packages
type KitImportStrategy string

const (
	KitImportGranular   KitImportStrategy = "granular"
	KitImportPreferRoot KitImportStrategy = "preferRoot"
	KitImportRootOnly   KitImportStrategy = "rootOnly"

	DefaultKitImportStrategy = KitImportPreferRoot
)

//Logical module names used by fragments
const (
	ModuleSolanaAccounts               = "solanaAccounts"
	ModuleSolanaAddresses              = "solanaAddresses"
	ModuleSolanaCodecsCore             = "solanaCodecsCore"
	ModuleSolanaCodecsDataStructures   = "solanaCodecsDataStructures"
	ModuleSolanaCodecsNumbers          = "solanaCodecsNumbers"
	ModuleSolanaCodecsStrings          = "solanaCodecsStrings"
	ModuleSolanaErrors                 = "solanaErrors"
	ModuleSolanaInstructionPlans       = "solanaInstructionPlans"
	ModuleSolanaInstructions           = "solanaInstructions"
	ModuleSolanaOptions                = "solanaOptions"
	ModuleSolanaPluginCore             = "solanaPluginCore"
	ModuleSolanaPluginInterfaces       = "solanaPluginInterfaces"
	ModuleSolanaProgramClientCore      = "solanaProgramClientCore"
	ModuleSolanaPrograms               = "solanaPrograms"
	ModuleSolanaRpcApi                 = "solanaRpcApi"
	ModuleSolanaRpcTypes               = "solanaRpcTypes"
	ModuleSolanaSigners                = "solanaSigners"
	ModuleErrors                       = "errors"
	ModuleGenerated                    = "generated"
	ModuleGeneratedAccounts            = "generatedAccounts"
	ModuleGeneratedErrors              = "generatedErrors"
	ModuleGeneratedInstructions        = "generatedInstructions"
	ModuleGeneratedPdas                = "generatedPdas"
	ModuleGeneratedPrograms            = "generatedPrograms"
	ModuleGeneratedTypes               = "generatedTypes"
	ModuleHooked                       = "hooked"
	ModuleShared                       = "shared"
	ModuleTypes                        = "types"
	kitRootModule                      = "@solana/kit"
	programClientCorePackage           = "@solana/program-client-core"
	programClientCoreKitSubpathPackage = kitRootModule + "/program-client-core"
)

var granularModules = map[string]string{
	ModuleSolanaAccounts:             "@solana/accounts",
	ModuleSolanaAddresses:            "@solana/addresses",
	ModuleSolanaCodecsCore:           "@solana/codecs",
	ModuleSolanaCodecsDataStructures: "@solana/codecs",
	ModuleSolanaCodecsNumbers:        "@solana/codecs",
	ModuleSolanaCodecsStrings:        "@solana/codecs",
	ModuleSolanaErrors:               "@solana/errors",
	ModuleSolanaInstructionPlans:     "@solana/instruction-plans",
	ModuleSolanaInstructions:         "@solana/instructions",
	ModuleSolanaOptions:              "@solana/codecs",
	ModuleSolanaPluginCore:           "@solana/plugin-core",
	ModuleSolanaPluginInterfaces:     "@solana/plugin-interfaces",
	ModuleSolanaProgramClientCore:    programClientCorePackage,
	ModuleSolanaPrograms:             "@solana/programs",
	ModuleSolanaRpcApi:               "@solana/rpc-api",
	ModuleSolanaRpcTypes:             "@solana/rpc-types",
	ModuleSolanaSigners:              "@solana/signers",
}

var internalModules = map[string]string{
	ModuleErrors:                "../errors",
	ModuleGenerated:             "..",
	ModuleGeneratedAccounts:     "../accounts",
	ModuleGeneratedErrors:       "../errors",
	ModuleGeneratedInstructions: "../instructions",
	ModuleGeneratedPdas:         "../pdas",
	ModuleGeneratedPrograms:     "../programs",
	ModuleGeneratedTypes:        "../types",
	ModuleHooked:                "../../hooked",
	ModuleShared:                "../shared",
	ModuleTypes:                 "../types",
}

//ParseKitImportStrategy returns the strategy for the text, empty text yields the default
func ParseKitImportStrategy(text string) (KitImportStrategy, error) {
	switch strategy := KitImportStrategy(text); strategy {
	case "":
		return DefaultKitImportStrategy, nil
	case KitImportGranular, KitImportPreferRoot, KitImportRootOnly:
		return strategy, nil
	}
	return "", fmt.Errorf("unsupported kit import strategy: %v", text)
}

func externalModules(strategy KitImportStrategy) map[string]string {
	if strategy == KitImportGranular {
		return granularModules
	}
	var result = make(map[string]string, len(granularModules))
	for module := range granularModules {
		result[module] = kitRootModule
	}
	result[ModuleSolanaProgramClientCore] = programClientCorePackage
	if strategy == KitImportRootOnly {
		result[ModuleSolanaProgramClientCore] = programClientCoreKitSubpathPackage
	}
	return result
}

//ModuleAliases builds the alias table used to resolve logical modules, dependencyMap entries take precedence
func ModuleAliases(strategy KitImportStrategy, dependencyMap map[string]string) map[string]string {
	external := externalModules(strategy)
	var result = make(map[string]string, len(external)+len(internalModules)+len(dependencyMap))
	for k, v := range external {
		result[k] = v
	}
	for k, v := range internalModules {
		result[k] = v
	}
	for k, v := range dependencyMap {
		result[k] = v
	}
	return result
}
