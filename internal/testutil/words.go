package testutil

// TestWords returns a small sorted lexicon covering the words used by the
// board and search tests. INTERLIE is left out on purpose; tests rely on it
// being rejected.
func TestWords() []string {
	return []string{
		"AA", "AB", "ACE", "ACT", "AD", "ADD", "AE", "AG", "AGE", "AGO", "AH", "AI", "AID", "AIL", "AIM",
		"AIR", "AL", "ALE", "ALL", "AM", "AN", "AND", "ANT", "APE", "AR", "ARC", "ARE", "ARK", "ARM",
		"ART", "AS", "ASH", "AT", "ATE", "AW", "AX", "AXE", "AXLE", "AXLES", "AY", "BA", "BAD", "BAG",
		"BAT", "BE", "BED", "BEDEW", "BEE", "BET", "BI", "BIG", "BIT", "BO", "BOX", "BROW", "BROWS", "BY",
		"CAB", "CAT", "COS", "COT", "DA", "DE", "DECAL", "DEN", "DO", "DOE", "DOG", "DOT", "DOURER",
		"EAR", "EAT", "ED", "EEL", "EF", "EGG", "EH", "EL", "ELF", "ELL", "EM", "EN", "END", "ER", "ERA",
		"ES", "ET", "EVE", "EX", "EXALT", "EXALTS", "EXO", "FA", "FAX", "FE", "FEW", "FONDLY", "FOX",
		"GO", "HA", "HAET", "HALE", "HALL", "HALLO", "HALLOS", "HALO", "HAM", "HAME", "HAT", "HE", "HELL",
		"HELLO", "HELLS", "HELO", "HELOS", "HEX", "HI", "HID", "HM", "HO", "HOE", "HOLE", "HOLES",
		"HOLLA", "HOT", "HOX", "ID", "IF", "ILL", "IN", "IS", "IT", "JA", "JAB", "JAR", "JARS", "JINX",
		"JINXES", "JO", "JOB", "JOT", "JOW", "JOY", "JUBE", "JUBES", "KA", "KI", "LA", "LATE", "LATEX",
		"LATHE", "LATHES", "LAX", "LEAVE", "LEAVY", "LEFTIES", "LET", "LEVIGATE", "LI", "LO", "LOT",
		"LOTA", "LOX", "MA", "ME", "MI", "MO", "MU", "MY", "NA", "NE", "NEBS", "NO", "NONDAIRY", "NU",
		"OAT", "OATH", "OD", "ODE", "OE", "OF", "OFFS", "OH", "OI", "OK", "OLD", "OM", "ON", "ONE", "OP",
		"OR", "ORATION", "ORE", "OS", "OUTEATEN", "OVUM", "OW", "OX", "OXO", "OY", "PA", "PAY", "PE",
		"PEN", "PI", "PIT", "PO", "QAT", "QI", "QUA", "QUAT", "QUOTE", "RAT", "RAX", "RE", "SADDEN",
		"SAX", "SEX", "SH", "SHALE", "SHALT", "SHOAL", "SI", "SIX", "SLATE", "SO", "SOILURE", "SOILURES",
		"STALE", "STEAL", "TA", "TALE", "TALES", "TAX", "TEA", "TEAL", "TEE", "TEN", "TI", "TILE", "TO",
		"TOE", "TOG", "TOLES", "TON", "TONG", "TOO", "TOT", "TOX", "UH", "UM", "UN", "UP", "US", "UT",
		"VEX", "VUM", "WAGS", "WAX", "WE", "WINTER", "WO", "XI", "XU", "YA", "YE", "YO", "ZA", "ZAX",
		"ZEAL", "ZEALOT", "ZEALOTS", "ZED", "ZEE", "ZINGED", "ZINNIA", "ZINNIAS",
	}
}
