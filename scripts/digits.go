package scripts

// Digits returns the ten decimal digits of a script, 0 to 9. Both tag forms
// of Indic scripts are accepted, e.g. "deva" and "dev2". Latin digits are
// returned for "latn"; scripts without digits of their own yield false.
func Digits(scriptTag string) ([]rune, bool) {
	if base, ok := v2Tags[scriptTag]; ok {
		scriptTag = base
	}
	zero, ok := zeroDigits[scriptTag]
	if !ok {
		return nil, false
	}
	digits := make([]rune, 10)
	for i := range digits {
		digits[i] = zero + rune(i)
	}
	return digits, true
}

// UsesLakh is true for scripts whose numbers are conventionally grouped in
// lakhs and crores (12,34,567) instead of thousands.
func UsesLakh(scriptTag string) bool {
	if base, ok := v2Tags[scriptTag]; ok {
		scriptTag = base
	}
	return lakhScripts[scriptTag]
}

var v2Tags = map[string]string{
	"bng2": "beng",
	"dev2": "deva",
	"gjr2": "gujr",
	"gur2": "guru",
	"knd2": "knda",
	"mlm2": "mlym",
	"mym2": "mymr",
	"ory2": "orya",
	"tel2": "telu",
	"tml2": "taml",
}

var lakhScripts = map[string]bool{
	"beng": true,
	"deva": true,
	"gujr": true,
	"guru": true,
	"knda": true,
	"mlym": true,
	"orya": true,
	"taml": true,
	"telu": true,
}

// code point of digit zero; the other digits follow in order
var zeroDigits = map[string]rune{
	"ahom": 0x11730,
	"arab": 0x0660,
	"bali": 0x1B50,
	"beng": 0x09E6,
	"brah": 0x11066,
	"cakm": 0x11136,
	"cham": 0xAA50,
	"deva": 0x0966,
	"gujr": 0x0AE6,
	"guru": 0x0A66,
	"java": 0xA9D0,
	"kali": 0xA900,
	"khmr": 0x17E0,
	"knda": 0x0CE6,
	"lana": 0x1A80,
	"lao ": 0x0ED0,
	"latn": '0',
	"lepc": 0x1C40,
	"limb": 0x1946,
	"mlym": 0x0D66,
	"modi": 0x11650,
	"mong": 0x1810,
	"mtei": 0xABF0,
	"mymr": 0x1040,
	"newa": 0x11450,
	"nko ": 0x07C0,
	"olck": 0x1C50,
	"orya": 0x0B66,
	"osma": 0x104A0,
	"saur": 0xA8D0,
	"shrd": 0x111D0,
	"sinh": 0x0DE6,
	"sora": 0x110F0,
	"sund": 0x1BB0,
	"takr": 0x116C0,
	"talu": 0x19D0,
	"taml": 0x0BE6,
	"telu": 0x0C66,
	"thai": 0x0E50,
	"tibt": 0x0F20,
	"tirh": 0x114D0,
	"vai ": 0xA620,
}
