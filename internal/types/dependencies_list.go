package types

// DependenciesList is a persistent, ordered set of package names still
// needing resolution. Every mutator returns a new value; the receiver is
// left untouched, so a caller holding an older DependenciesList keeps
// seeing the state it started with. Built for small N (a handful of
// pending dependencies per search state), so a full copy per operation is
// the right tradeoff over a persistent tree.
type DependenciesList struct {
	order []string
	index map[string]int
}

// NewDependenciesList builds a DependenciesList from names, ignoring any
// duplicates (first occurrence wins).
func NewDependenciesList(names ...string) DependenciesList {
	var d DependenciesList
	for _, n := range names {
		d = d.Push(n)
	}
	return d
}

func (d DependenciesList) Len() int { return len(d.order) }

func (d DependenciesList) IsEmpty() bool { return len(d.order) == 0 }

// Peek returns the first pending name, in registration order, or ("",
// false) if empty.
func (d DependenciesList) Peek() (string, bool) {
	if len(d.order) == 0 {
		return "", false
	}
	return d.order[0], true
}

func (d DependenciesList) Contains(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Push returns a new list with name added, or the receiver unchanged if
// name is already present.
func (d DependenciesList) Push(name string) DependenciesList {
	if d.Contains(name) {
		return d
	}
	order := make([]string, len(d.order)+1)
	copy(order, d.order)
	order[len(d.order)] = name
	return DependenciesList{order: order, index: buildIndex(order)}
}

// Remove returns a new list with name absent, or the receiver unchanged if
// name was not present.
func (d DependenciesList) Remove(name string) DependenciesList {
	if !d.Contains(name) {
		return d
	}
	order := make([]string, 0, len(d.order)-1)
	for _, v := range d.order {
		if v != name {
			order = append(order, v)
		}
	}
	return DependenciesList{order: order, index: buildIndex(order)}
}

// Union returns a new list containing every name in d and other, in d's
// order followed by other's new names.
func (d DependenciesList) Union(other DependenciesList) DependenciesList {
	result := d
	for _, name := range other.order {
		result = result.Push(name)
	}
	return result
}

func (d DependenciesList) Each(fn func(name string)) {
	for _, v := range d.order {
		fn(v)
	}
}

func (d DependenciesList) Names() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

func buildIndex(order []string) map[string]int {
	idx := make(map[string]int, len(order))
	for i, v := range order {
		idx[v] = i
	}
	return idx
}
