package setter

func SetStringIfEmpty(dest *string, src string) {
	if dest != nil && *dest == "" {
		*dest = src
	}
}

//SetBoolPtrIfNil allocates dest with src when it was not set
func SetBoolPtrIfNil(dest **bool, src bool) {
	if dest != nil && *dest == nil {
		*dest = &src
	}
}

func SetMapIfNil[K comparable, V any](dest *map[K]V) {
	if dest != nil && *dest == nil {
		*dest = map[K]V{}
	}
}
