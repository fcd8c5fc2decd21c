package sortable

// String is a sortable wrapper type for the built-in string type, for use
// as a key in a container that orders by the Sortable method set (e.g.
// sortedset.Set[sortable.String] or redblackset.Tree[sortable.String]).
// triemap keys directly on plain string, bypassing Sortable entirely.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
