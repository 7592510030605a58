package fragments

import (
	"sort"
	"strings"

	"github.com/viant/kitgen/codegen"
	"github.com/viant/kitgen/naming"
)

//IndexPage renders exports of all named modules sorted by name, nil when names is empty
func IndexPage(names []string) *codegen.Fragment {
	if len(names) == 0 {
		return nil
	}
	var modules = make([]string, 0, len(names))
	for _, name := range names {
		modules = append(modules, naming.Camel(name))
	}
	sort.SliceStable(modules, func(i, j int) bool {
		left, right := strings.ToLower(modules[i]), strings.ToLower(modules[j])
		if left != right {
			return left < right
		}
		return modules[i] < modules[j]
	})
	var exports = make([]*codegen.Fragment, 0, len(modules))
	for _, module := range modules {
		exports = append(exports, codegen.Fragmentf("export * from './%v';", module))
	}
	return codegen.MergeFragments(exports, codegen.Join("\n"))
}
