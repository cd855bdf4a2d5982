package wordsquare

// DefaultThreeLetterWords is the built-in word list used when solving
// 3x3 word squares without an explicit -dict file. Ported from the
// original solver's embedded dictionary.
var DefaultThreeLetterWords = []string{
	"ABA", "ABS", "ACE", "ACT", "ADD", "ADO", "AFT", "AGE", "AGO", "AHA", "AID", "AIM", "AIR", "ALA", "ALE", "ALL",
	"ALT", "AMP", "ANA", "AND", "ANT", "ANY", "APE", "APP", "APT", "ARC", "ARE", "ARK", "ARM", "ART", "ASH", "ASK",
	"ASP", "ASS", "ATE", "AVE", "AWE", "AXE", "AYE", "BAA", "BAD", "BAG", "BAN", "BAR", "BAT", "BAY", "BED", "BEE",
	"BEG", "BEL", "BEN", "BET", "BID", "BIG", "BIN", "BIO", "BIS", "BIT", "BIZ", "BOB", "BOG", "BOO", "BOW", "BOX",
	"BOY", "BRA", "BUD", "BUG", "BUM", "BUN", "BUS", "BUT", "BUY", "BYE", "CAB", "CAD", "CAM", "CAN", "CAP", "CAR",
	"CAT", "CHI", "COB", "COD", "COL", "CON", "COO", "COP", "COR", "COS", "COT", "COW", "COX", "COY", "CRY", "CUB",
	"CUE", "CUM", "CUP", "CUT", "DAB", "DAD", "DAL", "DAM", "DAN", "DAY", "DEE", "DEF", "DEL", "DEN", "DEW", "DID",
	"DIE", "DIG", "DIM", "DIN", "DIP", "DIS", "DOC", "DOE", "DOG", "DON", "DOT", "DRY", "DUB", "DUE", "DUG", "DUN",
	"DUO", "DYE", "EAR", "EAT", "EBB", "ECU", "EFT", "EGG", "EGO", "ELF", "ELM", "EMU", "END", "ERA", "ETA", "EVE",
	"EYE", "FAB", "FAD", "FAN", "FAR", "FAT", "FAX", "FAY", "FED", "FEE", "FEN", "FEW", "FIG", "FIN", "FIR", "FIT",
	"FIX", "FLU", "FLY", "FOE", "FOG", "FOR", "FOX", "FRY", "FUN", "FUR", "GAG", "GAL", "GAP", "GAS", "GAY", "GEE",
	"GEL", "GEM", "GET", "GIG", "GIN", "GOD", "GOT", "GUM", "GUN", "GUT", "GUY", "GYM", "HAD", "HAM", "HAS", "HAT",
	"HAY", "HEM", "HEN", "HER", "HEY", "HID", "HIM", "HIP", "HIS", "HIT", "HOG", "HON", "HOP", "HOT", "HOW", "HUB",
	"HUE", "HUG", "HUH", "HUM", "HUT", "ICE", "ICY", "IGG", "ILL", "IMP", "INK", "INN", "ION", "ITS", "IVY", "JAM",
	"JAR", "JAW", "JAY", "JET", "JEW", "JOB", "JOE", "JOG", "JOY", "JUG", "JUN", "KAY", "KEN", "KEY", "KID", "KIN",
	"KIT", "LAB", "LAC", "LAD", "LAG", "LAM", "LAP", "LAW", "LAX", "LAY", "LEA", "LED", "LEE", "LEG", "LES", "LET",
	"LIB", "LID", "LIE", "LIP", "LIT", "LOG", "LOT", "LOW", "MAC", "MAD", "MAG", "MAN", "MAP", "MAR", "MAS", "MAT",
	"MAX", "MAY", "MED", "MEG", "MEN", "MET", "MID", "MIL", "MIX", "MOB", "MOD", "MOL", "MOM", "MON", "MOP", "MOT",
	"MUD", "MUG", "MUM", "NAB", "NAH", "NAN", "NAP", "NAY", "NEB", "NEG", "NET", "NEW", "NIL", "NIP", "NOD", "NOR",
	"NOS", "NOT", "NOW", "NUN", "NUT", "OAK", "ODD", "OFF", "OFT", "OIL", "OLD", "OLE", "ONE", "OOH", "OPT", "ORB",
	"ORE", "OUR", "OUT", "OWE", "OWL", "OWN", "PAC", "PAD", "PAL", "PAM", "PAN", "PAP", "PAR", "PAS", "PAT", "PAW",
	"PAY", "PEA", "PEG", "PEN", "PEP", "PER", "PET", "PEW", "PHI", "PIC", "PIE", "PIG", "PIN", "PIP", "PIT", "PLY",
	"POD", "POL", "POP", "POT", "PRO", "PSI", "PUB", "PUP", "PUT", "RAD", "RAG", "RAJ", "RAM", "RAN", "RAP", "RAT",
	"RAW", "RAY", "RED", "REF", "REG", "REM", "REP", "REV", "RIB", "RID", "RIG", "RIM", "RIP", "ROB", "ROD", "ROE",
	"ROT", "ROW", "RUB", "RUE", "RUG", "RUM", "RUN", "RYE", "SAB", "SAC", "SAD", "SAE", "SAG", "SAL", "SAP", "SAT",
	"SAW", "SAY", "SEA", "SEC", "SEE", "SEN", "SET", "SEW", "SEX", "SHE", "SHY", "SIC", "SIM", "SIN", "SIP", "SIR",
	"SIS", "SIT", "SIX", "SKI", "SKY", "SLY", "SOD", "SOL", "SON", "SOW", "SOY", "SPA", "SPY", "SUB", "SUE", "SUM",
	"SUN", "SUP", "TAB", "TAD", "TAG", "TAM", "TAN", "TAP", "TAR", "TAT", "TAX", "TEA", "TED", "TEE", "TEN", "THE",
	"THY", "TIE", "TIN", "TIP", "TOD", "TOE", "TOM", "TON", "TOO", "TOP", "TOR", "TOT", "TOW", "TOY", "TRY", "TUB",
	"TUG", "TWO", "USE", "VAN", "VAT", "VET", "VIA", "VIE", "VOW", "WAN", "WAR", "WAS", "WAX", "WAY", "WEB", "WED",
	"WEE", "WET", "WHO", "WHY", "WIG", "WIN", "WIS", "WIT", "WON", "WOO", "WOW", "WRY", "WYE", "YEN", "YEP", "YES",
	"YET", "YOU", "ZIP", "ZOO",
}
