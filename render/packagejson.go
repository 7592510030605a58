package render

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/francoispqt/gojay"
	"github.com/pkg/errors"
	"github.com/viant/kitgen/codegen"
	"github.com/viant/kitgen/shared/logging"
)

//ErrMissingDependencyVersions is returned when a used package has no known version range
var ErrMissingDependencyVersions = errors.New("missing dependency versions")

const (
	dependenciesKey     = "dependencies"
	peerDependenciesKey = "peerDependencies"
	devDependenciesKey  = "devDependencies"
	kitPackage          = "@solana/kit"
	packageJSONFile     = "package.json"
)

//DefaultDependencyVersions holds version ranges of packages the generated code may import
var DefaultDependencyVersions = map[string]string{
	"@solana/accounts":            "^5.0.0",
	"@solana/addresses":           "^5.0.0",
	"@solana/codecs":              "^5.0.0",
	"@solana/errors":              "^5.0.0",
	"@solana/instruction-plans":   "^5.0.0",
	"@solana/instructions":        "^5.0.0",
	"@solana/kit":                 "^5.0.0",
	"@solana/plugin-core":         "^5.0.0",
	"@solana/plugin-interfaces":   "^5.0.0",
	"@solana/program-client-core": "^5.0.0",
	"@solana/programs":            "^5.0.0",
	"@solana/rpc-api":             "^5.0.0",
	"@solana/rpc-types":           "^5.0.0",
	"@solana/signers":             "^5.0.0",
}

type (
	//StringMap is an insertion ordered string map, used for dependency groups and scripts
	StringMap struct {
		keys   []string
		values map[string]string
	}

	//PackageJSON represents a package.json document, unknown keys are kept verbatim in their original order
	PackageJSON struct {
		keys   []string
		values map[string]gojay.EmbeddedJSON
	}
)

func NewStringMap() *StringMap {
	return &StringMap{values: map[string]string{}}
}

func (m *StringMap) Len() int {
	return len(m.keys)
}

func (m *StringMap) Keys() []string {
	return m.keys
}

func (m *StringMap) Get(key string) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}

//Set sets the value, new keys go last
func (m *StringMap) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *StringMap) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	value := ""
	if err := dec.String(&value); err != nil {
		return err
	}
	m.Set(key, value)
	return nil
}

func (m *StringMap) NKeys() int {
	return 0
}

func (m *StringMap) MarshalJSONObject(enc *gojay.Encoder) {
	for _, key := range m.keys {
		enc.StringKey(key, m.values[key])
	}
}

func (m *StringMap) IsNil() bool {
	return m == nil
}

func NewPackageJSON() *PackageJSON {
	return &PackageJSON{values: map[string]gojay.EmbeddedJSON{}}
}

//DecodePackageJSON decodes package.json content
func DecodePackageJSON(data []byte) (*PackageJSON, error) {
	ret := NewPackageJSON()
	if err := gojay.UnmarshalJSONObject(data, ret); err != nil {
		return nil, errors.Wrap(err, "failed to decode package.json")
	}
	return ret, nil
}

//CreatePackageJSON creates a package.json of a new client with dependencies
func CreatePackageJSON(logger logging.Logger, versions map[string]string) (*PackageJSON, error) {
	ret := NewPackageJSON()
	scripts := NewStringMap()
	scripts.Set("test", `echo "Error: no test specified" && exit 1`)
	for _, field := range []struct {
		key   string
		value interface{}
	}{
		{key: "name", value: "js-client"},
		{key: "version", value: "1.0.0"},
		{key: "description", value: ""},
		{key: "main", value: "src/index.ts"},
		{key: "scripts", value: scripts},
		{key: "keywords", value: gojay.EmbeddedJSON("[]")},
		{key: "author", value: ""},
	} {
		if err := ret.SetValue(field.key, field.value); err != nil {
			return nil, err
		}
	}
	return ret, ret.Update(logger, versions)
}

func (p *PackageJSON) Keys() []string {
	return p.keys
}

//SetValue sets a JSON encoded value, new keys go last
func (p *PackageJSON) SetValue(key string, value interface{}) error {
	var raw gojay.EmbeddedJSON
	switch actual := value.(type) {
	case gojay.EmbeddedJSON:
		raw = actual
	case gojay.MarshalerJSONObject:
		data, err := gojay.MarshalJSONObject(actual)
		if err != nil {
			return errors.Wrapf(err, "failed to encode %v", key)
		}
		raw = data
	default:
		data, err := gojay.Marshal(value)
		if err != nil {
			return errors.Wrapf(err, "failed to encode %v", key)
		}
		raw = data
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = raw
	return nil
}

//StringMap returns the object stored under key, empty when absent
func (p *PackageJSON) StringMap(key string) (*StringMap, error) {
	ret := NewStringMap()
	raw, ok := p.values[key]
	if !ok || strings.TrimSpace(string(raw)) == "null" {
		return ret, nil
	}
	if err := gojay.UnmarshalJSONObject(raw, ret); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %v", key)
	}
	return ret, nil
}

func (p *PackageJSON) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	raw := gojay.EmbeddedJSON{}
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return err
	}
	return p.SetValue(key, raw)
}

func (p *PackageJSON) NKeys() int {
	return 0
}

func (p *PackageJSON) MarshalJSONObject(enc *gojay.Encoder) {
	for _, key := range p.keys {
		raw := p.values[key]
		enc.AddEmbeddedJSONKey(key, &raw)
	}
}

func (p *PackageJSON) IsNil() bool {
	return p == nil
}

//Marshal returns document indented with two spaces and terminated with a new line
func (p *PackageJSON) Marshal() ([]byte, error) {
	data, err := gojay.MarshalJSONObject(p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode package.json")
	}
	buffer := bytes.Buffer{}
	if err = json.Indent(&buffer, data, "", "  "); err != nil {
		return nil, errors.Wrap(err, "failed to indent package.json")
	}
	buffer.WriteString("\n")
	return buffer.Bytes(), nil
}

//Update adds missing dependencies and raises outdated ranges; @solana/kit is added as a peer dependency
func (p *PackageJSON) Update(logger logging.Logger, versions map[string]string) error {
	groups := map[string]*StringMap{}
	for _, key := range []string{peerDependenciesKey, dependenciesKey, devDependenciesKey} {
		group, err := p.StringMap(key)
		if err != nil {
			return err
		}
		groups[key] = group
	}
	for _, dependency := range sortedKeys(versions) {
		required := versions[dependency]
		found := false
		for _, key := range []string{dependenciesKey, peerDependenciesKey, devDependenciesKey} {
			group := groups[key]
			current, ok := group.Get(dependency)
			if !ok || current == "" {
				continue
			}
			found = true
			if shouldUpdateRange(logger, dependency, current, required) {
				group.Set(dependency, required)
			}
		}
		if found {
			continue
		}
		if dependency == kitPackage {
			groups[peerDependenciesKey].Set(dependency, required)
		} else {
			groups[dependenciesKey].Set(dependency, required)
		}
	}
	for _, key := range []string{peerDependenciesKey, dependenciesKey, devDependenciesKey} {
		if groups[key].Len() == 0 {
			continue
		}
		if err := p.SetValue(key, groups[key]); err != nil {
			return err
		}
	}
	return nil
}

//Outdated returns a line per missing or outdated dependency
func (p *PackageJSON) Outdated(logger logging.Logger, versions map[string]string) ([]string, error) {
	existing := NewStringMap()
	for _, key := range []string{devDependenciesKey, peerDependenciesKey, dependenciesKey} {
		group, err := p.StringMap(key)
		if err != nil {
			return nil, err
		}
		for _, dependency := range group.Keys() {
			version, _ := group.Get(dependency)
			existing.Set(dependency, version)
		}
	}
	var missing, outdated []string
	for _, dependency := range sortedKeys(versions) {
		required := versions[dependency]
		current, ok := existing.Get(dependency)
		switch {
		case !ok || current == "":
			missing = append(missing, "- "+dependency+" missing: "+required)
		case shouldUpdateRange(logger, dependency, current, required):
			outdated = append(outdated, "- "+dependency+" outdated: "+current+" -> "+required)
		}
	}
	return append(missing, outdated...), nil
}

//UsedDependencyVersions returns version ranges of external packages imported by the rendered pages
func UsedDependencyVersions(imports codegen.ImportMap, aliases map[string]string, versions map[string]string) (map[string]string, error) {
	known := make(map[string]string, len(DefaultDependencyVersions)+len(versions))
	for k, v := range DefaultDependencyVersions {
		known[k] = v
	}
	for k, v := range versions {
		known[k] = v
	}
	var missing []string
	var result = map[string]string{}
	for _, dependency := range imports.ExternalDependencies(aliases) {
		version, ok := known[dependency]
		if !ok || version == "" {
			missing = append(missing, dependency)
			continue
		}
		result[dependency] = version
	}
	if len(missing) > 0 {
		return nil, errors.Wrapf(ErrMissingDependencyVersions, "%v, add them to DependencyVersions", strings.Join(missing, ", "))
	}
	return result, nil
}

func sortedKeys(aMap map[string]string) []string {
	var result = make([]string, 0, len(aMap))
	for k := range aMap {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}
