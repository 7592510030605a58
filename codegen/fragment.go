package codegen

import (
	"fmt"
	"strings"
)

//Fragment represents generated code with its import requirements and features
type Fragment struct {
	Content  string
	Imports  ImportMap
	Features Features
}

func NewFragment(content string) *Fragment {
	return &Fragment{Content: content, Imports: NewImportMap()}
}

//Fragmentf formats fragment content; *Fragment arguments contribute their content, imports and features
func Fragmentf(format string, args ...interface{}) *Fragment {
	var values = make([]interface{}, len(args))
	var imports = []ImportMap{NewImportMap()}
	var features Features
	for i, arg := range args {
		fragment, ok := arg.(*Fragment)
		if !ok {
			values[i] = arg
			continue
		}
		if fragment == nil {
			values[i] = ""
			continue
		}
		values[i] = fragment.Content
		imports = append(imports, fragment.Imports)
		features = features.Union(fragment.Features)
	}
	return &Fragment{
		Content:  fmt.Sprintf(format, values...),
		Imports:  MergeImportMaps(imports...),
		Features: features,
	}
}

//Use returns a fragment referencing the used identifier of importInput from module
func Use(importInput string, module string) *Fragment {
	info := ParseImportInput(importInput)
	return &Fragment{Content: info.Used, Imports: NewImportMap().Add(module, importInput)}
}

//MergeFragments combines non nil fragment contents, imports and features are always unioned
func MergeFragments(fragments []*Fragment, combine func(contents []string) string) *Fragment {
	var contents []string
	var imports []ImportMap
	var features Features
	for _, fragment := range fragments {
		if fragment == nil {
			continue
		}
		contents = append(contents, fragment.Content)
		imports = append(imports, fragment.Imports)
		features = features.Union(fragment.Features)
	}
	if len(contents) == 0 {
		return nil
	}
	return &Fragment{Content: combine(contents), Imports: MergeImportMaps(imports...), Features: features}
}

//Join returns a combine function joining contents with separator
func Join(separator string) func(contents []string) string {
	return func(contents []string) string {
		return strings.Join(contents, separator)
	}
}

func (f *Fragment) String() string {
	if f == nil {
		return ""
	}
	return f.Content
}

func (f *Fragment) Has(feature Feature) bool {
	return f != nil && f.Features.Has(feature)
}

func (f *Fragment) SetContent(content string) *Fragment {
	result := *f
	result.Content = content
	return &result
}

func (f *Fragment) MapContent(fn func(content string) string) *Fragment {
	return f.SetContent(fn(f.Content))
}

func (f *Fragment) AddImports(module string, inputs ...string) *Fragment {
	result := *f
	result.Imports = f.Imports.Add(module, inputs...)
	return &result
}

func (f *Fragment) RemoveImports(module string, used ...string) *Fragment {
	result := *f
	result.Imports = f.Imports.Remove(module, used...)
	return &result
}

func (f *Fragment) MergeImports(imports ...ImportMap) *Fragment {
	result := *f
	result.Imports = MergeImportMaps(append([]ImportMap{f.Imports}, imports...)...)
	return &result
}

func (f *Fragment) AddFeatures(features ...Feature) *Fragment {
	result := *f
	result.Features = f.Features.Add(features...)
	return &result
}
