package scripts

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// ScriptName returns the name of an OpenType script tag, e.g. "Devanagari"
// for "deva". The version marker of v.2 tags is stripped, so "dev2" maps to
// "Devanagari" as well.
func ScriptName(tag string) (string, bool) {
	name, ok := scriptNames[tag]
	if !ok {
		return "", false
	}
	return strings.Replace(name, " v.2", "", 1), true
}

// LanguageName returns the name of an OpenType language system tag. Tags
// may be given with or without their trailing blanks.
func LanguageName(tag string) (string, bool) {
	name, ok := languageNames[strings.TrimSpace(tag)]
	return name, ok
}

// FromLanguageKeys resolves language system keys of the form
// "<script>_<language>" to script and language names. The key is split at the
// first underscore. Keys without an underscore and tags missing from the
// dictionaries contribute nothing. The default script ("DFLT") is not a
// writing system and is skipped.
//
// Both results are sorted and free of duplicates.
func FromLanguageKeys(keys []string) (scripts, languages []string) {
	scriptSet := make(map[string]bool)
	langSet := make(map[string]bool)
	for _, key := range keys {
		scriptCode, langCode, found := strings.Cut(key, "_")
		if !found {
			tracer().Debugf("language system key %q has no separator", key)
			continue
		}
		if scriptCode != "DFLT" {
			if name, ok := ScriptName(scriptCode); ok {
				scriptSet[name] = true
			}
		}
		if name, ok := LanguageName(langCode); ok {
			langSet[name] = true
		}
	}
	return sortedSet(scriptSet), sortedSet(langSet)
}

// Union concatenates lists, dropping entries already seen. The order of first
// appearance is kept.
func Union(lists ...[]string) []string {
	seen := make(map[string]bool)
	u := []string{}
	for _, l := range lists {
		for _, s := range l {
			if !seen[s] {
				seen[s] = true
				u = append(u, s)
			}
		}
	}
	return u
}

// Support is the result of classifying a font.
type Support struct {
	Scripts   []string // script names, coverage first, then declared
	Languages []string // language names, declared in layout tables
}

// Classify combines coverage-based and declaration-based script detection.
// languageKeys are the language system keys of the font's GPOS and GSUB
// tables; they may be nil if the font has no layout tables.
func Classify(coverage []rune, languageKeys []string) Support {
	covered := FromUnicodes(coverage)
	declared, langs := FromLanguageKeys(languageKeys)
	s := Support{
		Scripts:   Union(covered, declared),
		Languages: Union(langs),
	}
	tracer().Debugf("font supports scripts %v, languages %v", s.Scripts, s.Languages)
	return s
}

// DefaultLanguage returns the language a script's text is shaped with when
// the user did not ask for a specific one. Scripts used by many languages map
// to the most common one, e.g. Devanagari to Hindi. For unknown script tags,
// language.Und is returned.
func DefaultLanguage(scriptTag string) language.Tag {
	if tag, ok := defaultLanguages[scriptTag]; ok {
		return tag
	}
	return language.Und
}

var defaultLanguages = map[string]language.Tag{
	"bali": language.MustParse("ban"),
	"batk": language.MustParse("bbc"),
	"beng": language.Bengali,
	"brah": language.MustParse("sa"),
	"bugi": language.MustParse("bug"),
	"cakm": language.MustParse("ccp"),
	"cham": language.MustParse("cjm"),
	"deva": language.Hindi,
	"gran": language.MustParse("sa"),
	"gujr": language.Gujarati,
	"guru": language.Punjabi,
	"java": language.MustParse("jv"),
	"knda": language.Kannada,
	"khmr": language.Khmer,
	"lana": language.MustParse("nod"),
	"lao ": language.Lao,
	"maka": language.MustParse("mak"),
	"mlym": language.Malayalam,
	"mtei": language.MustParse("mni"),
	"mymr": language.Burmese,
	"nand": language.MustParse("sa"),
	"olck": language.MustParse("sat"),
	"orya": language.MustParse("or"),
	"rjng": language.MustParse("rej"),
	"saur": language.MustParse("saz"),
	"shrd": language.MustParse("ks"),
	"sidd": language.MustParse("sa"),
	"sinh": language.Sinhala,
	"sund": language.MustParse("su"),
	"taml": language.Tamil,
	"telu": language.Telugu,
	"thaa": language.MustParse("dv"),
	"thai": language.Thai,
	"tirh": language.MustParse("mai"),
}

func sortedSet(set map[string]bool) []string {
	l := make([]string, 0, len(set))
	for s := range set {
		l = append(l, s)
	}
	sort.Strings(l)
	return l
}

// --- Dictionaries ----------------------------------------------------------

// from https://docs.microsoft.com/en-us/typography/opentype/spec/scripttags
var scriptNames = map[string]string{
	"adlm": "Adlam",
	"aghb": "Caucasian Albanian",
	"ahom": "Ahom",
	"arab": "Arabic",
	"armi": "Imperial Aramaic",
	"armn": "Armenian",
	"avst": "Avestan",
	"bali": "Balinese",
	"bamu": "Bamum",
	"bass": "Bassa Vah",
	"batk": "Batak",
	"beng": "Bengali",
	"bhks": "Bhaiksuki",
	"bng2": "Bengali v.2",
	"bopo": "Bopomofo",
	"brah": "Brahmi",
	"brai": "Braille",
	"bugi": "Buginese",
	"buhd": "Buhid",
	"byzm": "Byzantine Music",
	"cakm": "Chakma",
	"cans": "Canadian Syllabics",
	"cari": "Carian",
	"cham": "Cham",
	"cher": "Cherokee",
	"chrs": "Chorasmian",
	"copt": "Coptic",
	"cprt": "Cypriot Syllabary",
	"cyrl": "Cyrillic",
	"dev2": "Devanagari v.2",
	"deva": "Devanagari",
	"DFLT": "Default",
	"diak": "Dives Akuru",
	"dogr": "Dogra",
	"dsrt": "Deseret",
	"dupl": "Duployan",
	"egyp": "Egyptian Hieroglyphs",
	"elba": "Elbasan",
	"elym": "Elymaic",
	"ethi": "Ethiopic",
	"geor": "Georgian",
	"gjr2": "Gujarati v.2",
	"glag": "Glagolitic",
	"gong": "Gunjala Gondi",
	"gonm": "Masaram Gondi",
	"goth": "Gothic",
	"gran": "Grantha",
	"grek": "Greek",
	"gujr": "Gujarati",
	"gur2": "Gurmukhi v.2",
	"guru": "Gurmukhi",
	"hang": "Hangul",
	"hani": "CJK Ideographic",
	"hano": "Hanunoo",
	"hatr": "Hatran",
	"hebr": "Hebrew",
	"hluw": "Anatolian Hieroglyphs",
	"hmng": "Pahawh Hmong",
	"hmnp": "Nyiakeng Puachue Hmong",
	"hung": "Old Hungarian",
	"ital": "Old Italic",
	"jamo": "Hangul Jamo",
	"java": "Javanese",
	"kali": "Kayah Li",
	"kana": "Katakana",
	"khar": "Kharosthi",
	"khmr": "Khmer",
	"khoj": "Khojki",
	"kits": "Khitan Small Script",
	"knd2": "Kannada v.2",
	"knda": "Kannada",
	"kthi": "Kaithi",
	"lana": "Tai Tham (Lanna)",
	"lao ": "Lao",
	"latn": "Latin",
	"lepc": "Lepcha",
	"limb": "Limbu",
	"lina": "Linear A",
	"linb": "Linear B",
	"lisu": "Lisu (Fraser)",
	"lyci": "Lycian",
	"lydi": "Lydian",
	"mahj": "Mahajani",
	"maka": "Makasar",
	"mand": "Mandaic, Mandaean",
	"mani": "Manichaean",
	"marc": "Marchen",
	"math": "Mathematical Alphanumeric Symbols",
	"medf": "Medefaidrin (Oberi Okaime, Oberi Ɔkaimɛ)",
	"mend": "Mende Kikakui",
	"merc": "Meroitic Cursive",
	"mero": "Meroitic Hieroglyphs",
	"mlm2": "Malayalam v.2",
	"mlym": "Malayalam",
	"modi": "Modi",
	"mong": "Mongolian",
	"mroo": "Mro",
	"mtei": "Meitei Mayek (Meithei, Meetei)",
	"mult": "Multani",
	"musc": "Musical Symbols",
	"mym2": "Myanmar v.2",
	"mymr": "Myanmar",
	"nand": "Nandinagari",
	"narb": "Old North Arabian",
	"nbat": "Nabataean",
	"newa": "Newa",
	"nko ": "N'Ko",
	"nshu": "Nüshu",
	"ogam": "Ogham",
	"olck": "Ol Chiki",
	"orkh": "Old Turkic, Orkhon Runic",
	"ory2": "Odia v.2 (formerly Oriya v.2)",
	"orya": "Odia (formerly Oriya)",
	"osge": "Osage",
	"osma": "Osmanya",
	"palm": "Palmyrene",
	"pauc": "Pau Cin Hau",
	"perm": "Old Permic",
	"phag": "Phags-pa",
	"phli": "Inscriptional Pahlavi",
	"phlp": "Psalter Pahlavi",
	"phnx": "Phoenician",
	"plrd": "Miao",
	"prti": "Inscriptional Parthian",
	"rjng": "Rejang",
	"rohg": "Hanifi Rohingya",
	"runr": "Runic",
	"samr": "Samaritan",
	"sarb": "Old South Arabian",
	"saur": "Saurashtra",
	"sgnw": "Sign Writing",
	"shaw": "Shavian",
	"shrd": "Sharada",
	"sidd": "Siddham",
	"sind": "Khudawadi",
	"sinh": "Sinhala",
	"sogd": "Sogdian",
	"sogo": "Old Sogdian",
	"sora": "Sora Sompeng",
	"soyo": "Soyombo",
	"sund": "Sundanese",
	"sylo": "Syloti Nagri",
	"syrc": "Syriac",
	"tagb": "Tagbanwa",
	"takr": "Takri",
	"tale": "Tai Le",
	"talu": "New Tai Lue",
	"taml": "Tamil",
	"tang": "Tangut",
	"tavt": "Tai Viet",
	"tel2": "Telugu v.2",
	"telu": "Telugu",
	"tfng": "Tifinagh",
	"tglg": "Tagalog",
	"thaa": "Thaana",
	"thai": "Thai",
	"tibt": "Tibetan",
	"tirh": "Tirhuta",
	"tml2": "Tamil v.2",
	"ugar": "Ugaritic Cuneiform",
	"vai ": "Vai",
	"wara": "Warang Citi",
	"wcho": "Wancho",
	"xpeo": "Old Persian Cuneiform",
	"xsux": "Sumero-Akkadian Cuneiform",
	"yezi": "Yezidi",
	"yi  ": "Yi",
}

// from https://docs.microsoft.com/en-us/typography/opentype/spec/languagetags,
// keys without trailing blanks
var languageNames = map[string]string{
	"ABA": "Abaza",
	"ABK": "Abkhazian",
	"ACH": "Acholi",
	"ACR": "Achi",
	"ADY": "Adyghe",
	"AFK": "Afrikaans",
	"AFR": "Afar",
	"AGW": "Agaw",
	"AIO": "Aiton",
	"AKA": "Akan",
	"ALS": "Alsatian",
	"ALT": "Altai",
	"AMH": "Amharic",
	"ANG": "Anglo-Saxon",
	"APPH": "Phonetic transcription, Americanist conventions",
	"ARA": "Arabic",
	"ARG": "Aragonese",
	"ARI": "Aari",
	"ARK": "Rakhine",
	"ASM": "Assamese",
	"AST": "Asturian",
	"ATH": "Athapaskan languages",
	"AVR": "Avar",
	"AWA": "Awadhi",
	"AYM": "Aymara",
	"AZB": "Torki",
	"AZE": "Azerbaijani",
	"BAD": "Badaga",
	"BAD0": "Banda",
	"BAG": "Baghelkhandi",
	"BAL": "Balkar",
	"BAN": "Balinese",
	"BAR": "Bavarian",
	"BAU": "Baulé",
	"BBC": "Batak Toba",
	"BBR": "Berber",
	"BCH": "Bench",
	"BCR": "Bible Cree",
	"BDY": "Bandjalang",
	"BEL": "Belarussian",
	"BEM": "Bemba",
	"BEN": "Bengali",
	"BGC": "Haryanvi",
	"BGQ": "Bagri",
	"BGR": "Bulgarian",
	"BHI": "Bhili",
	"BHO": "Bhojpuri",
	"BIK": "Bikol",
	"BIL": "Bilen",
	"BIS": "Bislama",
	"BJJ": "Kanauji",
	"BKF": "Blackfoot",
	"BLI": "Baluchi",
	"BLK": "Pa'o Karen",
	"BLN": "Balante",
	"BLT": "Balti",
	"BMB": "Bambara (Bamanankan)",
	"BML": "Bamileke",
	"BOS": "Bosnian",
	"BPY": "Bishnupriya Manipuri",
	"BRE": "Breton",
	"BRH": "Brahui",
	"BRI": "Braj Bhasha",
	"BRM": "Burmese",
	"BRX": "Bodo",
	"BSH": "Bashkir",
	"BSK": "Burushaski",
	"BTI": "Beti",
	"BTS": "Batak Simalungun",
	"BUG": "Bugis",
	"BYV": "Medumba",
	"CAK": "Kaqchikel",
	"CAT": "Catalan",
	"CBK": "Zamboanga Chavacano",
	"CCHN": "Chinantec",
	"CEB": "Cebuano",
	"CGG": "Chiga",
	"CHA": "Chamorro",
	"CHE": "Chechen",
	"CHG": "Chaha Gurage",
	"CHH": "Chattisgarhi",
	"CHI": "Chichewa (Chewa, Nyanja)",
	"CHK": "Chukchi",
	"CHK0": "Chuukese",
	"CHO": "Choctaw",
	"CHP": "Chipewyan",
	"CHR": "Cherokee",
	"CHU": "Chuvash",
	"CHY": "Cheyenne",
	"CJA": "Western Cham",
	"CJM": "Eastern Cham",
	"CMR": "Comorian",
	"COP": "Coptic",
	"COR": "Cornish",
	"COS": "Corsican",
	"CPP": "Creoles",
	"CRE": "Cree",
	"CRR": "Carrier",
	"CRT": "Crimean Tatar",
	"CSB": "Kashubian",
	"CSL": "Church Slavonic",
	"CSY": "Czech",
	"CTG": "Chittagonian",
	"CUK": "San Blas Kuna",
	"DAN": "Danish",
	"DAR": "Dargwa",
	"DAX": "Dayi",
	"DCR": "Woods Cree",
	"DEU": "German",
	"DGO": "Dogri",
	"DGR": "Dogri",
	"DHG": "Dhangu",
	"DHV": "Divehi (Dhivehi, Maldivian)",
	"DIQ": "Dimli",
	"DIV": "Divehi (Dhivehi, Maldivian)",
	"DJR": "Zarma",
	"DNG": "Dangme",
	"DNJ": "Dan",
	"DNK": "Dinka",
	"DRI": "Dari",
	"DUJ": "Dhuwal",
	"DUN": "Dungan",
	"DZN": "Dzongkha",
	"EBI": "Ebira",
	"ECR": "Eastern Cree",
	"EDO": "Edo",
	"EFI": "Efik",
	"ELL": "Greek",
	"EMK": "Eastern Maninkakan",
	"ENG": "English",
	"ERZ": "Erzya",
	"ESP": "Spanish",
	"ESU": "Central Yupik",
	"ETI": "Estonian",
	"EUQ": "Basque",
	"EVK": "Evenki",
	"EVN": "Even",
	"EWE": "Ewe",
	"FAN": "French Antillean",
	"FAN0": "Fang",
	"FAR": "Persian",
	"FAT": "Fanti",
	"FIN": "Finnish",
	"FJI": "Fijian",
	"FLE": "Dutch (Flemish)",
	"FMP": "Fe'fe'",
	"FNE": "Forest Enets",
	"FON": "Fon",
	"FOS": "Faroese",
	"FRA": "French",
	"FRC": "Cajun French",
	"FRI": "Frisian",
	"FRL": "Friulian",
	"FRP": "Arpitan",
	"FTA": "Futa",
	"FUL": "Fulah",
	"FUV": "Nigerian Fulfulde",
	"GAD": "Ga",
	"GAE": "Scottish Gaelic (Gaelic)",
	"GAG": "Gagauz",
	"GAL": "Galician",
	"GAR": "Garshuni",
	"GAW": "Garhwali",
	"GEZ": "Ge'ez",
	"GIH": "Githabul",
	"GIL": "Gilyak",
	"GIL0": "Kiribati (Gilbertese)",
	"GKP": "Kpelle (Guinea)",
	"GLK": "Gilaki",
	"GMZ": "Gumuz",
	"GNN": "Gumatj",
	"GOG": "Gogo",
	"GON": "Gondi",
	"GRN": "Greenlandic",
	"GRO": "Garo",
	"GUA": "Guarani",
	"GUC": "Wayuu",
	"GUF": "Gupapuyngu",
	"GUJ": "Gujarati",
	"GUZ": "Gusii",
	"HAI": "Haitian (Haitian Creole)",
	"HAL": "Halam (Falam Chin)",
	"HAR": "Harauti",
	"HAU": "Hausa",
	"HAW": "Hawaiian",
	"HAY": "Haya",
	"HAZ": "Hazaragi",
	"HBN": "Hammer-Banna",
	"HER": "Herero",
	"HIL": "Hiligaynon",
	"HIN": "Hindi",
	"HMA": "High Mari",
	"HMN": "Hmong",
	"HMO": "Hiri Motu",
	"HND": "Hindko",
	"HO": "Ho",
	"HRI": "Harari",
	"HRV": "Croatian",
	"HUN": "Hungarian",
	"HYE": "Armenian",
	"HYE0": "Armenian East",
	"IBA": "Iban",
	"IBB": "Ibibio",
	"IBO": "Igbo",
	"IDO": "Ido",
	"IJO": "Ijo languages",
	"ILE": "Interlingue",
	"ILO": "Ilokano",
	"INA": "Interlingua",
	"IND": "Indonesian",
	"ING": "Ingush",
	"INU": "Inuktitut",
	"IPK": "Inupiat",
	"IPPH": "Phonetic transcription, IPA conventions",
	"IRI": "Irish",
	"IRT": "Irish Traditional",
	"ISL": "Icelandic",
	"ISM": "Inari Sami",
	"ITA": "Italian",
	"IWR": "Hebrew",
	"JAM": "Jamaican Creole",
	"JAN": "Japanese",
	"JAV": "Javanese",
	"JBO": "Lojban",
	"JCT": "Krymchak",
	"JII": "Yiddish",
	"JUD": "Ladino",
	"JUL": "Jula",
	"KAB": "Kabardian",
	"KAB0": "Kabyle",
	"KAC": "Kachchi",
	"KAL": "Kalenjin",
	"KAN": "Kannada",
	"KAR": "Karachay",
	"KAT": "Georgian",
	"KAZ": "Kazakh",
	"KDE": "Makonde",
	"KEA": "Kabuverdianu (Crioulo)",
	"KEB": "Kebena",
	"KEK": "Kekchi",
	"KGE": "Khutsuri Georgian",
	"KHA": "Khakass",
	"KHK": "Khanty-Kazim",
	"KHM": "Khmer",
	"KHS": "Khanty-Shurishkar",
	"KHT": "Khamti Shan",
	"KHV": "Khanty-Vakhi",
	"KHW": "Khowar",
	"KIK": "Kikuyu (Gikuyu)",
	"KIR": "Kirghiz (Kyrgyz)",
	"KIS": "Kisii",
	"KIU": "Kirmanjki",
	"KJD": "Southern Kiwai",
	"KJP": "Eastern Pwo Karen",
	"KJZ": "Bumthangkha",
	"KKN": "Kokni",
	"KLM": "Kalmyk",
	"KMB": "Kamba",
	"KMN": "Kumaoni",
	"KMO": "Komo",
	"KMS": "Komso",
	"KMZ": "Khorasani Turkic",
	"KNR": "Kanuri",
	"KOD": "Kodagu",
	"KOH": "Korean Old Hangul",
	"KOK": "Konkani",
	"KOM": "Komi",
	"KON": "Kikongo",
	"KON0": "Kongo",
	"KOP": "Komi-Permyak",
	"KOR": "Korean",
	"KOS": "Kosraean",
	"KOZ": "Komi-Zyrian",
	"KPL": "Kpelle",
	"KRI": "Krio",
	"KRK": "Karakalpak",
	"KRL": "Karelian",
	"KRM": "Karaim",
	"KRN": "Karen",
	"KRT": "Koorete",
	"KSH": "Kashmiri",
	"KSH0": "Ripuarian",
	"KSI": "Khasi",
	"KSM": "Kildin Sami",
	"KSW": "S'gaw Karen",
	"KUA": "Kuanyama",
	"KUI": "Kui",
	"KUL": "Kulvi",
	"KUM": "Kumyk",
	"KUR": "Kurdish",
	"KUU": "Kurukh",
	"KUY": "Kuy",
	"KYK": "Koryak",
	"KYU": "Western Kayah",
	"LAD": "Ladin",
	"LAH": "Lahuli",
	"LAK": "Lak",
	"LAM": "Lambani",
	"LAO": "Lao",
	"LAT": "Latin",
	"LAZ": "Laz",
	"LCR": "L-Cree",
	"LDK": "Ladakhi",
	"LEZ": "Lezgi",
	"LIJ": "Ligurian",
	"LIM": "Limburgish",
	"LIN": "Lingala",
	"LIS": "Lisu",
	"LJP": "Lampung",
	"LKI": "Laki",
	"LMA": "Low Mari",
	"LMB": "Limbu",
	"LMO": "Lombard",
	"LMW": "Lomwe",
	"LOM": "Loma",
	"LRC": "Luri",
	"LSB": "Lower Sorbian",
	"LSM": "Lule Sami",
	"LTH": "Lithuanian",
	"LTZ": "Luxembourgish",
	"LUA": "Luba-Lulua",
	"LUB": "Luba-Katanga",
	"LUG": "Ganda",
	"LUH": "Luyia",
	"LUO": "Luo",
	"LVI": "Latvian",
	"MAD": "Madura",
	"MAG": "Magahi",
	"MAH": "Marshallese",
	"MAJ": "Majang",
	"MAK": "Makhuwa",
	"MAL": "Malayalam",
	"MAM": "Mam",
	"MAN": "Mansi",
	"MAP": "Mapudungun",
	"MAR": "Marathi",
	"MAW": "Marwari",
	"MBN": "Mbundu",
	"MBO": "Mbo",
	"MCH": "Manchu",
	"MCR": "Moose Cree",
	"MDE": "Mende",
	"MDR": "Mandar",
	"MEN": "Me'en",
	"MER": "Meru",
	"MFA": "Pattani Malay",
	"MFE": "Morisyen",
	"MIN": "Minangkabau",
	"MIZ": "Mizo",
	"MKD": "Macedonian",
	"MKR": "Makasar",
	"MKW": "Kituba",
	"MLE": "Male",
	"MLG": "Malagasy",
	"MLN": "Malinke",
	"MLR": "Malayalam Reformed",
	"MLY": "Malay",
	"MND": "Mandinka",
	"MNG": "Mongolian",
	"MNI": "Manipuri",
	"MNK": "Maninka",
	"MNX": "Manx",
	"MOH": "Mohawk",
	"MOK": "Moksha",
	"MOL": "Moldavian",
	"MON": "Mon",
	"MOR": "Moroccan",
	"MOS": "Mossi",
	"MRI": "Maori",
	"MTH": "Maithili",
	"MTS": "Maltese",
	"MUN": "Mundari",
	"MUS": "Muscogee",
	"MWL": "Mirandese",
	"MWW": "Hmong Daw",
	"MYN": "Mayan",
	"MZN": "Mazanderani",
	"NAG": "Naga-Assamese",
	"NAH": "Nahuatl",
	"NAN": "Nanai",
	"NAP": "Neapolitan",
	"NAS": "Naskapi",
	"NAU": "Nauruan",
	"NAV": "Navajo",
	"NCR": "N-Cree",
	"NDB": "Ndebele",
	"NDC": "Ndau",
	"NDG": "Ndonga",
	"NDS": "Low Saxon",
	"NEP": "Nepali",
	"NEW": "Newari",
	"NGA": "Ngbaka",
	"NGR": "Nagari",
	"NHC": "Norway House Cree",
	"NIS": "Nisi",
	"NIU": "Niuean",
	"NKL": "Nyankole",
	"NKO": "N'Ko",
	"NLD": "Dutch",
	"NOE": "Nimadi",
	"NOG": "Nogai",
	"NOR": "Norwegian",
	"NOV": "Novial",
	"NSM": "Northern Sami",
	"NSO": "Northern Sotho",
	"NTA": "Northern Tai",
	"NTO": "Esperanto",
	"NYM": "Nyamwezi",
	"NYN": "Norwegian Nynorsk (Nynorsk, Norwegian)",
	"NZA": "Mbembe Tigon",
	"OCI": "Occitan",
	"OCR": "Oji-Cree",
	"OJB": "Ojibway",
	"ORI": "Odia (formerly Oriya)",
	"ORO": "Oromo",
	"OSS": "Ossetian",
	"PAA": "Palestinian Aramaic",
	"PAG": "Pangasinan",
	"PAL": "Pali",
	"PAM": "Pampangan",
	"PAN": "Punjabi",
	"PAP": "Palpa",
	"PAP0": "Papiamentu",
	"PAS": "Pashto",
	"PAU": "Palauan",
	"PCC": "Bouyei",
	"PCD": "Picard",
	"PDC": "Pennsylvania German",
	"PGR": "Polytonic Greek",
	"PHK": "Phake",
	"PIH": "Norfolk",
	"PIL": "Filipino",
	"PLG": "Palaung",
	"PLK": "Polish",
	"PMS": "Piemontese",
	"PNB": "Western Panjabi",
	"POH": "Pocomchi",
	"PON": "Pohnpeian",
	"PRO": "Provençal / Old Provençal",
	"PTG": "Portuguese",
	"PWO": "Western Pwo Karen",
	"QIN": "Chin",
	"QUC": "K'iche'",
	"QUH": "Quechua (Bolivia)",
	"QUZ": "Quechua",
	"QVI": "Quechua (Ecuador)",
	"QWH": "Quechua (Peru)",
	"RAJ": "Rajasthani",
	"RAR": "Rarotongan",
	"RBU": "Russian Buriat",
	"RCR": "R-Cree",
	"REJ": "Rejang",
	"RIA": "Riang",
	"RHG": "Rohingya",
	"RIF": "Tarifit",
	"RIT": "Ritarungo",
	"RKW": "Arakwal",
	"RMS": "Romansh",
	"RMY": "Vlax Romani",
	"ROM": "Romanian",
	"ROY": "Romany",
	"RSY": "Rusyn",
	"RTM": "Rotuman",
	"RUA": "Kinyarwanda",
	"RUN": "Rundi",
	"RUP": "Aromanian",
	"RUS": "Russian",
	"SAD": "Sadri",
	"SAN": "Sanskrit",
	"SAS": "Sasak",
	"SAT": "Santali",
	"SAY": "Sayisi",
	"SCN": "Sicilian",
	"SCO": "Scots",
	"SEK": "Sekota",
	"SEL": "Selkup",
	"SGA": "Old Irish",
	"SGO": "Sango",
	"SGS": "Samogitian",
	"SHI": "Tachelhit",
	"SHN": "Shan",
	"SIB": "Sibe",
	"SID": "Sidamo",
	"SIG": "Silte Gurage",
	"SKS": "Skolt Sami",
	"SKY": "Slovak",
	"SLA": "Slavey",
	"SLV": "Slovenian",
	"SML": "Somali",
	"SMO": "Samoan",
	"SNA": "Sena",
	"SNA0": "Shona",
	"SND": "Sindhi",
	"SNH": "Sinhala (Sinhalese)",
	"SNK": "Soninke",
	"SOG": "Sodo Gurage",
	"SOP": "Songe",
	"SOT": "Southern Sotho",
	"SQI": "Albanian",
	"SRB": "Serbian",
	"SRD": "Sardinian",
	"SRK": "Saraiki",
	"SRR": "Serer",
	"SSL": "South Slavey",
	"SSM": "Southern Sami",
	"STQ": "Saterland Frisian",
	"SUK": "Sukuma",
	"SUN": "Sundanese",
	"SUR": "Suri",
	"SVA": "Svan",
	"SVE": "Swedish",
	"SWA": "Swadaya Aramaic",
	"SWK": "Swahili",
	"SWZ": "Swati",
	"SXT": "Sutu",
	"SXU": "Upper Saxon",
	"SYL": "Sylheti",
	"SYR": "Syriac",
	"SYRE": "Syriac, Estrangela script-variant",
	"SYRJ": "Syriac, Western script-variant",
	"SYRN": "Syriac, Eastern script-variant",
	"SZL": "Silesian",
	"TAB": "Tabasaran",
	"TAJ": "Tajiki",
	"TAM": "Tamil",
	"TAT": "Tatar",
	"TCR": "TH-Cree",
	"TDD": "Dehong Dai",
	"TEL": "Telugu",
	"TET": "Tetum",
	"TGL": "Tagalog",
	"TGN": "Tongan",
	"TGR": "Tigre",
	"TGY": "Tigrinya",
	"THA": "Thai",
	"THT": "Tahitian",
	"TIB": "Tibetan",
	"TIV": "Tiv",
	"TKM": "Turkmen",
	"TMH": "Tamashek",
	"TMN": "Temne",
	"TNA": "Tswana",
	"TNE": "Tundra Enets",
	"TNG": "Tonga",
	"TOD": "Todo",
	"TOD0": "Toma",
	"TPI": "Tok Pisin",
	"TRK": "Turkish",
	"TSG": "Tsonga",
	"TSJ": "Tshangla",
	"TUA": "Turoyo Aramaic",
	"TUL": "Tulu",
	"TUM": "Tumbuka",
	"TUV": "Tuvin",
	"TVL": "Tuvalu",
	"TWI": "Twi",
	"TYZ": "Tày",
	"TZM": "Tamazight",
	"TZO": "Tzotzil",
	"UDM": "Udmurt",
	"UKR": "Ukrainian",
	"UMB": "Umbundu",
	"URD": "Urdu",
	"USB": "Upper Sorbian",
	"UYG": "Uyghur",
	"UZB": "Uzbek",
	"VEC": "Venetian",
	"VEN": "Venda",
	"VIT": "Vietnamese",
	"VOL": "Volapük",
	"VRO": "Võro",
	"WA": "Wa",
	"WAG": "Wagdi",
	"WAR": "Waray-Waray",
	"WCR": "West-Cree",
	"WEL": "Welsh",
	"WLF": "Wolof",
	"WLN": "Walloon",
	"WTM": "Mewati",
	"XBD": "Lü",
	"XHS": "Xhosa",
	"XJB": "Minjangbal",
	"XKF": "Khengkha",
	"XOG": "Soga",
	"XPE": "Kpelle (Liberia)",
	"YAK": "Sakha",
	"YAO": "Yao",
	"YAP": "Yapese",
	"YBA": "Yoruba",
	"YCR": "Y-Cree",
	"YIC": "Yi Classic",
	"YIM": "Yi Modern",
	"ZEA": "Zealandic",
	"ZGH": "Standard Moroccan Tamazight",
	"ZHA": "Zhuang",
	"ZHH": "Chinese, Traditional, Hong Kong SAR",
	"ZHP": "Chinese, Phonetic",
	"ZHS": "Chinese, Simplified",
	"ZHT": "Chinese, Traditional",
	"ZHTM": "Chinese, Traditional, Macao SAR",
	"ZND": "Zande",
	"ZUL": "Zulu",
	"ZZA": "Zazaki",
}
