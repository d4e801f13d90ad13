package lexer

// KindsForTest returns every known tag kind.
func KindsForTest() []Kind {
	ks := make([]Kind, 0, len(markers))
	for k := range markers {
		ks = append(ks, Kind(k))
	}

	return ks
}
