package types

// ChoiceList is a persistent, ordered set of UnitVersions chosen so far
// during a search, unique by package name. Pushing a unit version whose
// name is already present is a no-op, which makes propagation's repeated
// "append to choices" steps safely idempotent.
type ChoiceList struct {
	order []*UnitVersion
	index map[string]int
}

func (c ChoiceList) Len() int { return len(c.order) }

func (c ChoiceList) IsEmpty() bool { return len(c.order) == 0 }

func (c ChoiceList) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

func (c ChoiceList) Push(uv *UnitVersion) ChoiceList {
	if c.Contains(uv.Name) {
		return c
	}
	order := make([]*UnitVersion, len(c.order)+1)
	copy(order, c.order)
	order[len(c.order)] = uv
	idx := make(map[string]int, len(order))
	for i, v := range order {
		idx[v.Name] = i
	}
	return ChoiceList{order: order, index: idx}
}

func (c ChoiceList) Remove(name string) ChoiceList {
	if !c.Contains(name) {
		return c
	}
	order := make([]*UnitVersion, 0, len(c.order)-1)
	for _, v := range c.order {
		if v.Name != name {
			order = append(order, v)
		}
	}
	idx := make(map[string]int, len(order))
	for i, v := range order {
		idx[v.Name] = i
	}
	return ChoiceList{order: order, index: idx}
}

func (c ChoiceList) Each(fn func(*UnitVersion)) {
	for _, v := range c.order {
		fn(v)
	}
}

func (c ChoiceList) Values() []*UnitVersion {
	out := make([]*UnitVersion, len(c.order))
	copy(out, c.order)
	return out
}
