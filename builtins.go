package autosheet

// registerBuiltins installs the standard function library into r: each
// function is a free function matching the registry's Function signature
// directly rather than a method dispatched through a second switch.
func registerBuiltins(r *registry) {
	r.register("SUM", biSUM)
	r.register("AVERAGE", biAVERAGE)
	r.register("MIN", biMIN)
	r.register("MAX", biMAX)
	r.register("COUNT", biCOUNT)
	r.register("COUNTA", biCOUNTA)

	r.register("IF", biIF)
	r.register("AND", biAND)
	r.register("OR", biOR)
	r.register("NOT", biNOT)
	r.register("EQ", biEQ)
	r.register("NE", biNE)
	r.register("GT", biGT)
	r.register("GTE", biGTE)
	r.register("LT", biLT)
	r.register("LTE", biLTE)

	r.register("CONCAT", biCONCAT)
	r.register("LEN", biLEN)
	r.register("UPPER", biUPPER)
	r.register("LOWER", biLOWER)

	r.register("COUNTIF", biCOUNTIF)
	r.register("SUMIF", biSUMIF)

	r.register("MATCH", biMATCH)
	r.register("INDEX", biINDEX)
	r.register("VLOOKUP", biVLOOKUP)
}
