package core

// PrStr renders v as text. When readable is true, strings are quoted
// and escaped (the form the reader can parse back); when false,
// strings render as their raw characters (used by str/println).
func PrStr(v Value, readable bool) string {
	switch val := v.(type) {
	case String:
		if readable {
			return val.String()
		}
		return string(val)
	case *List:
		return seqPrStr("(", ")", val.Items(), readable)
	case *Vector:
		return seqPrStr("[", "]", val.Items(), readable)
	case *HashMap:
		s := "{"
		for i, k := range val.Keys() {
			if i > 0 {
				s += " "
			}
			s += PrStr(k, readable) + " " + PrStr(val.Get(k), readable)
		}
		return s + "}"
	case *Atom:
		return "(atom " + PrStr(val.Deref(), readable) + ")"
	default:
		return v.String()
	}
}

func seqPrStr(open, close string, items []Value, readable bool) string {
	s := open
	for i, it := range items {
		if i > 0 {
			s += " "
		}
		s += PrStr(it, readable)
	}
	return s + close
}
