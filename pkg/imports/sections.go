package imports

// sectionSet holds the seven ordered buckets of one scope (regular or
// TYPE_CHECKING). Future imports have a single slot; every other
// category splits into direct and from buckets. Buckets are append-only
// during collection; the final emission order is decided by the
// formatter, not by insertion order.
type sectionSet struct {
	future           []Statement
	stdlibDirect     []Statement
	stdlibFrom       []Statement
	thirdPartyDirect []Statement
	thirdPartyFrom   []Statement
	localDirect      []Statement
	localFrom        []Statement
}

// add appends st to the bucket matching its category and kind.
func (s *sectionSet) add(st Statement) {
	switch st.Category {
	case CategoryFuture:
		s.future = append(s.future, st)
	case CategoryStandardLibrary:
		if st.Kind == KindDirect {
			s.stdlibDirect = append(s.stdlibDirect, st)
		} else {
			s.stdlibFrom = append(s.stdlibFrom, st)
		}
	case CategoryThirdParty:
		if st.Kind == KindDirect {
			s.thirdPartyDirect = append(s.thirdPartyDirect, st)
		} else {
			s.thirdPartyFrom = append(s.thirdPartyFrom, st)
		}
	case CategoryLocal:
		if st.Kind == KindDirect {
			s.localDirect = append(s.localDirect, st)
		} else {
			s.localFrom = append(s.localFrom, st)
		}
	}
}

// isEmpty reports whether all seven buckets are empty.
func (s *sectionSet) isEmpty() bool {
	return s.count() == 0
}

// count returns the total number of collected statements.
func (s *sectionSet) count() int {
	return len(s.future) +
		len(s.stdlibDirect) + len(s.stdlibFrom) +
		len(s.thirdPartyDirect) + len(s.thirdPartyFrom) +
		len(s.localDirect) + len(s.localFrom)
}

// clear empties every bucket.
func (s *sectionSet) clear() {
	*s = sectionSet{}
}
