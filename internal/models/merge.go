package models

// set overwrites *dst when a patch supplied the field.
func set[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}

func copyPtr[V any](p *V) *V {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
