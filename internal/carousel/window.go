package carousel

// BuildDisplay returns the sequence that is actually windowed for rendering.
//
// In finite mode the items are returned unchanged. In infinite mode the result is
// a tail clone of perPage items, the items themselves, and a head clone of
// 2*perPage items. Clones are taken cyclically, so the result is periodic with
// period len(items) even when there are fewer items than perPage.
func BuildDisplay[T any](items []T, perPage int, infinite bool) []T {
	if !infinite {
		return items
	}
	total := len(items)
	if total == 0 {
		return []T{}
	}
	if perPage < 1 {
		perPage = 1
	}

	out := make([]T, 0, DisplayLength(total, perPage, true))
	for i := 0; i < perPage; i++ {
		out = append(out, items[wrap(total-perPage+i, total)])
	}
	out = append(out, items...)
	for i := 0; i < 2*perPage; i++ {
		out = append(out, items[i%total])
	}
	return out
}

// DisplayLength returns len(BuildDisplay(...)) without building it
func DisplayLength(total, perPage int, infinite bool) int {
	if !infinite || total == 0 {
		return total
	}
	if perPage < 1 {
		perPage = 1
	}
	return total + 3*perPage
}

// RealIndex maps an index into the display sequence back to the item it shows.
func RealIndex(displayIndex, total, perPage int, infinite bool) int {
	if total == 0 {
		return 0
	}
	if !infinite {
		return clamp(displayIndex, 0, total-1)
	}
	return wrap(displayIndex-perPage, total)
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
