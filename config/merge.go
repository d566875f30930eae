package config

import "reflect"

func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

// merge copies every non-zero leaf of src onto dst, descending into nested
// structs so that a partially filled group does not wipe its siblings. A false
// bool is zero, so src can switch a bool on but never off.
func merge(dst, src reflect.Value) {
	if !src.IsValid() {
		return
	}

	if src.Kind() == reflect.Struct {
		for i, n := 0, dst.NumField(); i < n; i++ {
			merge(dst.Field(i), src.Field(i))
		}
		return
	}

	if dst.CanSet() && !isZero(src) {
		dst.Set(src)
	}
}
