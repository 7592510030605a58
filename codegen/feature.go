package codegen

import "sort"

type (
	//Feature is an opaque tag carried by a fragment
	Feature string

	//Features represents a sorted set of features
	Features []Feature
)

func NewFeatures(features ...Feature) Features {
	return Features(nil).Add(features...)
}

func (f Features) Has(feature Feature) bool {
	index := sort.Search(len(f), func(i int) bool { return f[i] >= feature })
	return index < len(f) && f[index] == feature
}

//Add returns a new set with given features
func (f Features) Add(features ...Feature) Features {
	if len(features) == 0 {
		return f
	}
	var result = make(Features, 0, len(f)+len(features))
	result = append(result, f...)
	for _, feature := range features {
		if result.Has(feature) {
			continue
		}
		result = append(result, feature)
		sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	}
	return result
}

func (f Features) Union(other Features) Features {
	return f.Add(other...)
}
