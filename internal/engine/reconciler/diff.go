package reconciler

import "go.trai.ch/attune/internal/core/domain"

// diffKeys computes the minimal change set that brings a remembered mapping
// in line with a freshly computed desired key set. Keys present on both sides
// are never touched, so unchanged workspace registrations survive the cycle.
// toAdd preserves the order of desired (duplicates collapsed), toRemove
// preserves the remembered insertion order.
func diffKeys[H any](remembered *domain.OrderedMap[H], desired []string) (toAdd, toRemove []string) {
	stale := make(map[string]struct{}, remembered.Len())
	for _, k := range remembered.Keys() {
		stale[k] = struct{}{}
	}

	seen := make(map[string]struct{}, len(desired))
	for _, k := range desired {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}

		if remembered.Has(k) {
			delete(stale, k)
			continue
		}
		toAdd = append(toAdd, k)
	}

	for _, k := range remembered.Keys() {
		if _, ok := stale[k]; ok {
			toRemove = append(toRemove, k)
		}
	}
	return toAdd, toRemove
}
