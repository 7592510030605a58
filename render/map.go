package render

import (
	"sort"
	"sync"

	"github.com/viant/kitgen/codegen"
)

//Map collects page fragments keyed by the page path relative to the output folder
type Map struct {
	mux   sync.RWMutex
	pages map[string]*codegen.Fragment
}

//Add adds page fragment, nil fragments are skipped
func (m *Map) Add(path string, fragment *codegen.Fragment) {
	if fragment == nil {
		return
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	m.pages[path] = fragment
}

func (m *Map) Get(path string) (*codegen.Fragment, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	fragment, ok := m.pages[path]
	return fragment, ok
}

func (m *Map) Len() int {
	m.mux.RLock()
	defer m.mux.RUnlock()
	return len(m.pages)
}

//Paths returns sorted page paths
func (m *Map) Paths() []string {
	m.mux.RLock()
	defer m.mux.RUnlock()
	var result = make([]string, 0, len(m.pages))
	for path := range m.pages {
		result = append(result, path)
	}
	sort.Strings(result)
	return result
}

//Imports returns imports of all pages
func (m *Map) Imports() codegen.ImportMap {
	var imports []codegen.ImportMap
	for _, path := range m.Paths() {
		fragment, _ := m.Get(path)
		imports = append(imports, fragment.Imports)
	}
	return codegen.MergeImportMaps(imports...)
}

//Render returns page text keyed by path, import statements precede page content
func (m *Map) Render(aliases map[string]string) map[string]string {
	var result = map[string]string{}
	for _, path := range m.Paths() {
		fragment, _ := m.Get(path)
		result[path] = Page(fragment, aliases)
	}
	return result
}

//Page renders fragment imports followed by its content
func Page(fragment *codegen.Fragment, aliases map[string]string) string {
	content := fragment.Content + "\n"
	if fragment.Imports.IsEmpty() {
		return content
	}
	return fragment.Imports.Render(aliases) + "\n\n" + content
}

func NewMap() *Map {
	return &Map{pages: map[string]*codegen.Fragment{}}
}
