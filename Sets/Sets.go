package Sets

// Set of unique elements. Receivers returning a bool report whether the
// operation changed the set.
type Set[E any] interface {
	//Put e in the set. Returning false if an equal element was already present.
	Put(E) bool
	//Has e in the set.
	Has(E) bool
	//Remove e from the set. Returning false if no equal element was present.
	Remove(E) bool
	//Size of the set.
	Size() uint
}
