package codegen

import (
	"sort"
	"strings"
)

type (
	//ImportInfo describes a single imported symbol
	ImportInfo struct {
		Imported string
		IsType   bool
		Used     string
	}

	moduleImports map[string]ImportInfo

	//ImportMap tracks symbols required from each module, keyed by the identifier used in code.
	//ImportMap is immutable, every operation returns a new map.
	ImportMap struct {
		modules map[string]moduleImports
	}
)

func (i ImportInfo) String() string {
	builder := strings.Builder{}
	if i.IsType {
		builder.WriteString("type ")
	}
	builder.WriteString(i.Imported)
	if i.Used != i.Imported {
		builder.WriteString(" as ")
		builder.WriteString(i.Used)
	}
	return builder.String()
}

func (m ImportMap) Len() int {
	return len(m.modules)
}

func (m ImportMap) IsEmpty() bool {
	return len(m.modules) == 0
}

//Modules returns sorted module names
func (m ImportMap) Modules() []string {
	var result = make([]string, 0, len(m.modules))
	for module := range m.modules {
		result = append(result, module)
	}
	sort.Strings(result)
	return result
}

//Imports returns module imports sorted by used identifier
func (m ImportMap) Imports(module string) []ImportInfo {
	imports := m.modules[module]
	var result = make([]ImportInfo, 0, len(imports))
	for _, info := range imports {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Used < result[j].Used
	})
	return result
}

func (m ImportMap) Lookup(module, used string) (ImportInfo, bool) {
	info, ok := m.modules[module][used]
	return info, ok
}

func (m ImportMap) Has(module, used string) bool {
	_, ok := m.Lookup(module, used)
	return ok
}

//Add returns a new map with parsed import inputs ("name", "type Name", "name as alias") added to module
func (m ImportMap) Add(module string, inputs ...string) ImportMap {
	if len(inputs) == 0 {
		return m
	}
	imports := moduleImports{}
	for _, input := range inputs {
		info := ParseImportInput(input)
		imports[info.Used] = info
	}
	return MergeImportMaps(m, ImportMap{modules: map[string]moduleImports{module: imports}})
}

//Remove returns a new map without given used identifiers, module is dropped once empty
func (m ImportMap) Remove(module string, used ...string) ImportMap {
	result := m.clone()
	imports, ok := result.modules[module]
	if !ok {
		return result
	}
	imports = imports.clone()
	for _, identifier := range used {
		delete(imports, identifier)
	}
	if len(imports) == 0 {
		delete(result.modules, module)
	} else {
		result.modules[module] = imports
	}
	return result
}

//ResolveModules substitutes logical module names with aliases, unmapped modules are kept as is
func (m ImportMap) ResolveModules(aliases map[string]string) ImportMap {
	var resolved = make([]ImportMap, 0, len(m.modules))
	for _, module := range m.Modules() {
		target := module
		if alias, ok := aliases[module]; ok {
			target = alias
		}
		resolved = append(resolved, ImportMap{modules: map[string]moduleImports{target: m.modules[module]}})
	}
	return MergeImportMaps(resolved...)
}

//Render renders import statements, external modules go first, relative ones last
func (m ImportMap) Render(aliases map[string]string) string {
	resolved := m.ResolveModules(aliases)
	modules := resolved.Modules()
	sort.SliceStable(modules, func(i, j int) bool {
		iRelative, jRelative := isRelative(modules[i]), isRelative(modules[j])
		if iRelative != jRelative {
			return jRelative
		}
		return compareText(modules[i], modules[j]) < 0
	})
	var lines = make([]string, 0, len(modules))
	for _, module := range modules {
		imports := resolved.Imports(module)
		var symbols = make([]string, 0, len(imports))
		for _, info := range imports {
			symbols = append(symbols, info.String())
		}
		sort.SliceStable(symbols, func(i, j int) bool {
			return compareText(symbols[i], symbols[j]) < 0
		})
		lines = append(lines, "import { "+strings.Join(symbols, ", ")+" } from '"+module+"';")
	}
	return strings.Join(lines, "\n")
}

//ExternalDependencies returns sorted root package names of non relative modules
func (m ImportMap) ExternalDependencies(aliases map[string]string) []string {
	resolved := m.ResolveModules(aliases)
	unique := map[string]bool{}
	var result []string
	for _, module := range resolved.Modules() {
		if isRelative(module) {
			continue
		}
		pkg := rootPackage(module)
		if unique[pkg] {
			continue
		}
		unique[pkg] = true
		result = append(result, pkg)
	}
	sort.Strings(result)
	return result
}

//MergeImportMaps merges maps, the first entry for a used identifier wins unless
//a later value import replaces a type only import of the same symbol
func MergeImportMaps(maps ...ImportMap) ImportMap {
	switch len(maps) {
	case 0:
		return NewImportMap()
	case 1:
		return maps[0]
	}
	result := maps[0].clone()
	for _, next := range maps[1:] {
		for module, imports := range next.modules {
			merged, ok := result.modules[module]
			if ok {
				merged = merged.clone()
			} else {
				merged = moduleImports{}
			}
			for used, info := range imports {
				existing, ok := merged[used]
				overrideTypeOnly := ok && existing.Imported == info.Imported && existing.IsType && !info.IsType
				if !ok || overrideTypeOnly {
					merged[used] = info
				}
			}
			result.modules[module] = merged
		}
	}
	return result
}

func (m ImportMap) clone() ImportMap {
	result := ImportMap{modules: make(map[string]moduleImports, len(m.modules))}
	for module, imports := range m.modules {
		result.modules[module] = imports
	}
	return result
}

func (m moduleImports) clone() moduleImports {
	result := make(moduleImports, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

func isRelative(module string) bool {
	return strings.HasPrefix(module, ".")
}

func rootPackage(module string) string {
	segments := strings.Split(module, "/")
	count := 1
	if strings.HasPrefix(module, "@") {
		count = 2
	}
	if len(segments) < count {
		count = len(segments)
	}
	return strings.Join(segments[:count], "/")
}

//compareText orders case insensitively first, then by raw bytes so the order stays total
func compareText(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func NewImportMap() ImportMap {
	return ImportMap{modules: map[string]moduleImports{}}
}
