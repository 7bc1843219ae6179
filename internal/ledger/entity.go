package ledger

// Entity is any record addressable by id within a document array.
type Entity interface {
	EntityID() string
}

// updateByID applies a mutation to the record with the given id and
// reports whether it was found.
func updateByID[T Entity](items []T, id string, apply func(*T)) bool {
	for i := range items {
		if items[i].EntityID() == id {
			apply(&items[i])
			return true
		}
	}
	return false
}

// removeByID filters out the record with the given id.
func removeByID[T Entity](items []T, id string) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if item.EntityID() != id {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// merge overwrites dst with src when src is set. Partial updates use
// pointer fields so zero values remain expressible.
func merge[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
