package types

// SearchState is one node of the resolve search: the packages still
// needing a version chosen, the constraints in force, and the versions
// chosen so far. A state is terminal once Dependencies is empty — every
// named package has a chosen, constraint-satisfying version.
type SearchState struct {
	Dependencies DependenciesList
	Constraints  ConstraintsList
	Choices      ChoiceList
}

func (s SearchState) IsTerminal() bool {
	return s.Dependencies.IsEmpty()
}
