// Package refcheck validates order product references against the catalog.
package refcheck

// Missing returns the requested product ids that are absent from existing,
// preserving request order. An empty result means every reference is valid.
func Missing(requested []string, existing []string) []string {
	known := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		known[id] = struct{}{}
	}

	missing := make([]string, 0)
	seen := make(map[string]struct{})
	for _, id := range requested {
		if _, ok := known[id]; ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		missing = append(missing, id)
	}

	return missing
}
