package units

// rawUnit is one row of a unit table: singular name, plural name (empty
// defaults to singular), and a definition string in the small rule
// language described in units.go ("l@", "s@", "lp@", "sp@", "=", "!").
type rawUnit struct {
	Singular, Plural, Definition string
}

var baseUnits = []rawUnit{
	{"unitless", "", "=1"},
	{"second", "seconds", "l@!"},
	{"meter", "meters", "l@!"},
	{"kilogram", "kilograms", "l@!"},
	{"kelvin", "", "l@!"},
	{"ampere", "amperes", "l@!"},
	{"mole", "moles", "l@!"},
	{"candela", "candelas", "l@!"},
}

var baseAbbreviations = []rawUnit{
	{"s", "", "s@second"},
	{"metre", "metres", "l@meter"},
	{"m", "", "s@meter"},
	{"gram", "grams", "l@1/1000 kilogram"},
	{"g", "", "s@gram"},
	{"K", "", "s@kelvin"},
	{"amp", "amps", "l@ampere"},
	{"A", "", "s@ampere"},
	{"mol", "", "s@mole"},
	{"cd", "", "s@candela"},
}

var temperatureScales = []rawUnit{
	{"celsius", "", "l@!"},
	{"°C", "", "celsius"},
	{"C", "", "=°C"},
	{"rankine", "", "l@5/9 K"},
	{"°R", "", "rankine"},
	{"fahrenheit", "", "l@!"},
	{"°F", "", "fahrenheit"},
	{"F", "", "=°F"},
}

var bitsAndBytes = []rawUnit{
	{"bit", "bits", "l@!"},
	{"bps", "", "s@bits/second"},
	{"byte", "bytes", "l@8 bits"},
	{"b", "", "s@bit"},
	{"B", "", "s@byte"},
	{"octet", "octets", "l@8 bits"},
}

var standardPrefixes = []rawUnit{
	{"yotta", "", "lp@1e24"},
	{"zetta", "", "lp@1e21"},
	{"exa", "", "lp@1e18"},
	{"peta", "", "lp@1e15"},
	{"tera", "", "lp@1e12"},
	{"giga", "", "lp@1e9"},
	{"mega", "", "lp@1e6"},
	{"myria", "", "lp@1e4"},
	{"kilo", "", "lp@1e3"},
	{"hecto", "", "lp@1e2"},
	{"deca", "", "lp@1e1"},
	{"deka", "", "lp@deca"},
	{"deci", "", "lp@1e-1"},
	{"centi", "", "lp@1e-2"},
	{"milli", "", "lp@1e-3"},
	{"micro", "", "lp@1e-6"},
	{"nano", "", "lp@1e-9"},
	{"pico", "", "lp@1e-12"},
	{"femto", "", "lp@1e-15"},
	{"atto", "", "lp@1e-18"},
	{"zepto", "", "lp@1e-21"},
	{"yocto", "", "lp@1e-24"},
	{"k", "", "=1000"},
}

var nonStandardPrefixes = []rawUnit{
	{"quarter", "", "lp@1/4"},
	{"semi", "", "lp@0.5"},
	{"demi", "", "lp@0.5"},
	{"hemi", "", "lp@0.5"},
	{"half", "", "lp@0.5"},
	{"double", "", "lp@2"},
	{"triple", "", "lp@3"},
	{"treble", "", "lp@3"},
}

var binaryPrefixes = []rawUnit{
	{"kibi", "", "lp@2^10"},
	{"mebi", "", "lp@2^20"},
	{"gibi", "", "lp@2^30"},
	{"tebi", "", "lp@2^40"},
	{"pebi", "", "lp@2^50"},
	{"exbi", "", "lp@2^60"},
	{"zebi", "", "lp@2^70"},
	{"yobi", "", "lp@2^80"},
}

var constants = []rawUnit{
	{"c", "", "=299792458 m/s"},
	{"h", "", "s@=6.62607015e-34 J s"},
	{"boltzmann", "", "=1.380649e-23 J/K"},
	{"electron_charge", "", "=1.602176634e-19 coulomb"},
	{"avogadro", "", "=6.02214076e23 /mol"},
	{"N_A", "", "=avogadro"},
	{"G", "", "=6.67430e-11 N m^2/kg^2"},
	{"gravity", "", "=9.80665 m/s^2"},
}

var angles = []rawUnit{
	{"radian", "radians", "l@1"},
	{"circle", "circles", "l@2 pi radian"},
	{"degree", "degrees", "l@1/360 circle"},
	{"deg", "degs", "l@degree"},
	{"°", "", "degree"},
	{"arcdeg", "arcdegs", "degree"},
	{"arcmin", "arcmins", "l@1/60 degree"},
	{"arcminute", "arcminutes", "l@arcmin"},
	{"arcsec", "arcsecs", "l@1/60 arcmin"},
	{"arcsecond", "arcseconds", "l@arcsec"},
	{"rightangle", "rightangles", "l@90 degrees"},
	{"quadrant", "quadrants", "l@1/4 circle"},
	{"turn", "turns", "l@circle"},
	{"revolution", "revolutions", "l@circle"},
	{"rev", "revs", "l@circle"},
	{"gradian", "gradians", "l@1/100 rightangle"},
	{"gon", "gons", "l@gradian"},
	{"grad", "", "l@gradian"},
}

var solidAngles = []rawUnit{
	{"steradian", "steradians", "l@1"},
	{"sr", "sr", "s@steradian"},
	{"sphere", "spheres", "4 pi steradians"},
}

var siDerived = []rawUnit{
	{"newton", "newtons", "l@kg m/s^2"},
	{"N", "", "s@newton"},
	{"pascal", "pascals", "l@N/m^2"},
	{"Pa", "", "s@pascal"},
	{"joule", "joules", "l@N m"},
	{"J", "", "s@joule"},
	{"watt", "watts", "l@J/s"},
	{"W", "", "s@watt"},
	{"coulomb", "", "l@A s"},
	{"volt", "volts", "l@W/A"},
	{"V", "", "s@volt"},
	{"ohm", "ohms", "l@V/A"},
	{"siemens", "", "l@A/V"},
	{"farad", "", "l@coulomb/V"},
	{"F", "", "s@farad"},
	{"weber", "", "l@V s"},
	{"henry", "", "l@V s/A"},
	{"tesla", "", "l@weber/m^2"},
	{"T", "", "s@tesla"},
	{"hertz", "", "l@/s"},
	{"Hz", "", "s@hertz"},
	{"nit", "nits", "l@candela/meter^2"},
}

var timeUnits = []rawUnit{
	{"sec", "secs", "s@second"},
	{"minute", "minutes", "l@60 seconds"},
	{"min", "mins", "s@minute"},
	{"hour", "hours", "l@60 minutes"},
	{"hr", "hrs", "s@hour"},
	{"day", "days", "l@24 hours"},
	{"d", "", "s@day"},
	{"week", "weeks", "l@7 days"},
	{"wk", "", "s@week"},
	{"fortnight", "fortnights", "l@14 day"},
	{"tropical_year", "tropical_years", "365.242198781 days"},
	{"year", "years", "l@tropical_year"},
	{"yr", "", "year"},
	{"month", "months", "l@1/12 year"},
	{"mo", "", "month"},
	{"decade", "decades", "10 years"},
	{"century", "centuries", "100 years"},
	{"millennium", "millennia", "1000 years"},
	{"julian_year", "julian_years", "365.25 days"},
	{"decimal_hour", "decimal_hours", "l@1/10 day"},
	{"decimal_minute", "decimal_minutes", "l@1/100 decimal_hour"},
	{"decimal_second", "decimal_seconds", "l@1/100 decimal_minute"},
	{"beat", "beats", "l@decimal_minute"},
}

// numberWords are ordinary catalog identifiers resolved the same way
// as any other unit name ("dozen" is just a name for the number 12);
// they carry no dimension, so they only ever act as a bare multiplier.
var numberWords = []rawUnit{
	{"tithe", "", "=1/10"},
	{"one", "", "=1"},
	{"two", "", "=2"},
	{"couple", "", "=2"},
	{"three", "", "=3"},
	{"four", "", "=4"},
	{"quadruple", "", "=4"},
	{"five", "", "=5"},
	{"quintuple", "", "=5"},
	{"six", "", "=6"},
	{"seven", "", "=7"},
	{"eight", "", "=8"},
	{"nine", "", "=9"},
	{"ten", "", "=10"},
	{"eleven", "", "=11"},
	{"twelve", "", "=12"},
	{"dozen", "", "=12"},
	{"thirteen", "", "=13"},
	{"bakersdozen", "", "=13"},
	{"fourteen", "", "=14"},
	{"fifteen", "", "=15"},
	{"sixteen", "", "=16"},
	{"seventeen", "", "=17"},
	{"eighteen", "", "=18"},
	{"nineteen", "", "=19"},
	{"twenty", "", "=20"},
	{"score", "", "=20"},
	{"thirty", "", "=30"},
	{"forty", "", "=40"},
	{"fifty", "", "=50"},
	{"sixty", "", "=60"},
	{"seventy", "", "=70"},
	{"eighty", "", "=80"},
	{"ninety", "", "=90"},
	{"hundred", "", "=100"},
	{"gross", "", "=144"},
	{"greatgross", "", "=12 gross"},
	{"thousand", "", "=1000"},
	{"million", "", "=1e6"},
	{"billion", "", "=1e9"},
	{"trillion", "", "=1e12"},
	{"quadrillion", "", "=1e15"},
	{"quintillion", "", "=1e18"},
	{"sextillion", "", "=1e21"},
	{"septillion", "", "=1e24"},
	{"octillion", "", "=1e27"},
	{"nonillion", "", "=1e30"},
	{"decillion", "", "=1e33"},
	{"undecillion", "", "=1e36"},
	{"duodecillion", "", "=1e39"},
	{"tredecillion", "", "=1e42"},
	{"quattuordecillion", "", "=1e45"},
	{"quindecillion", "", "=1e48"},
	{"sexdecillion", "", "=1e51"},
	{"septendecillion", "", "=1e54"},
	{"octodecillion", "", "=1e57"},
	{"novemdecillion", "", "=1e60"},
	{"vigintillion", "", "=1e63"},
	{"unvigintillion", "", "=1e66"},
	{"duovigintillion", "", "=1e69"},
	{"trevigintillion", "", "=1e72"},
	{"quattuorvigintillion", "", "=1e75"},
	{"quinvigintillion", "", "=1e78"},
	{"sexvigintillion", "", "=1e81"},
	{"septenvigintillion", "", "=1e84"},
	{"octovigintillion", "", "=1e87"},
	{"novemvigintillion", "", "=1e90"},
	{"trigintillion", "", "=1e93"},
	{"untrigintillion", "", "=1e96"},
	{"duotrigintillion", "", "=1e99"},
	{"googol", "", "=1e100"},
	{"tretrigintillion", "", "=1e102"},
	{"quattuortrigintillion", "", "=1e105"},
	{"quintrigintillion", "", "=1e108"},
	{"sextrigintillion", "", "=1e111"},
	{"septentrigintillion", "", "=1e114"},
	{"octotrigintillion", "", "=1e117"},
	{"novemtrigintillion", "", "=1e120"},
	{"centillion", "", "=1e303"},
}

// currencies and exchangeRates are the static snapshot of the original
// fend database's exchange-rate table (fixed source data, not a live
// lookup). All named currencies convert through the anchor unit _EUR.
var currencies = []rawUnit{
	{"dollar", "dollars", "USD"},
	{"cent", "cents", "0.01 USD"},
	{"US$", "", "USD"},
	{"$", "", "USD"},
	{"euro", "euros", "EUR"},
	{"€", "", "EUR"},
	{"AU$", "", "AUD"},
	{"HK$", "", "HKD"},
	{"NZ$", "", "NZD"},
	{"_EUR", "", "!"},
	{"EUR", "", "_EUR"},
}

var exchangeRates = []rawUnit{
	{"USD", "", "1.1964 _EUR"},
	{"JPY", "", "130.33 _EUR"},
	{"BGN", "", "1.9558 _EUR"},
	{"CZK", "", "25.929 _EUR"},
	{"DKK", "", "7.4372 _EUR"},
	{"GBP", "", "0.86918 _EUR"},
	{"HUF", "", "358.61 _EUR"},
	{"PLN", "", "4.5537 _EUR"},
	{"RON", "", "4.9240 _EUR"},
	{"SEK", "", "10.1433 _EUR"},
	{"CHF", "", "1.1033 _EUR"},
	{"ISK", "", "151.70 _EUR"},
	{"NOK", "", "10.0745 _EUR"},
	{"HRK", "", "7.5703 _EUR"},
	{"RUB", "", "90.5504 _EUR"},
	{"TRY", "", "9.6792 _EUR"},
	{"AUD", "", "1.5561 _EUR"},
	{"BRL", "", "6.8189 _EUR"},
	{"CAD", "", "1.5026 _EUR"},
	{"CNY", "", "7.8146 _EUR"},
	{"HKD", "", "9.2915 _EUR"},
	{"IDR", "", "17496.57 _EUR"},
	{"ILS", "", "3.9311 _EUR"},
	{"INR", "", "89.8330 _EUR"},
	{"KRW", "", "1333.87 _EUR"},
	{"MXN", "", "24.0508 _EUR"},
	{"MYR", "", "4.9393 _EUR"},
	{"NZD", "", "1.6821 _EUR"},
	{"PHP", "", "58.031 _EUR"},
	{"SGD", "", "1.5998 _EUR"},
	{"THB", "", "37.519 _EUR"},
	{"ZAR", "", "17.2989 _EUR"},
}

var ratios = []rawUnit{
	{"‰", "", "0.001"},
	{"percent", "", "0.01"},
	{"%", "", "percent"},
	{"ppm", "", "1e-6"},
	{"ppb", "", "1e-9"},
}

var physicalUnits = []rawUnit{
	{"electron_volt", "electron_volts", "l@electron_charge V"},
	{"eV", "", "s@electron_volt"},
	{"light_year", "light_years", "c julian_year"},
	{"ly", "", "light_year"},
	{"astronomical_unit", "astronomical_units", "149597870700 m"},
	{"au", "", "astronomical_unit"},
	{"liter", "liters", "l@1000 cc"},
	{"cc", "", "cm^3"},
	{"l", "", "s@liter"},
	{"L", "", "s@liter"},
	{"calorie", "calories", "l@4.184 J"},
	{"cal", "", "s@calorie"},
	{"bar", "", "l@1e5 Pa"},
}

var imperialUnits = []rawUnit{
	{"inch", "inches", "2.54 cm"},
	{"foot", "feet", "l@12 inch"},
	{"ft", "", "foot"},
	{"yard", "yards", "l@3 ft"},
	{"yd", "", "yard"},
	{"mile", "miles", "l@5280 ft"},
	{"mi", "", "mile"},
	{"acre", "acres", "10 chain^2"},
	{"chain", "chains", "66 feet"},
}

var liquidUnits = []rawUnit{
	{"gallon", "gallons", "231 inch^3"},
	{"gal", "", "gallon"},
	{"quart", "quarts", "1/4 gallon"},
	{"pint", "pints", "1/2 quart"},
	{"qt", "", "quart"},
	{"pt", "", "pint"},
}

var avoirdupoisWeight = []rawUnit{
	{"pound", "pounds", "0.45359237 kg"},
	{"lb", "lbs", "pound"},
	{"grain", "grains", "1/7000 pound"},
	{"ounce", "ounces", "1/16 pound"},
	{"oz", "", "ounce"},
	{"short_ton", "short_tons", "2000 pounds"},
}

var troyWeight = []rawUnit{
	{"troy_pound", "troy_pounds", "5760 grains"},
	{"troy_ounce", "troy_ounces", "1/12 troy_pound"},
	{"ozt", "", "troy_ounce"},
	{"pennyweight", "pennyweights", "1/20 troy_ounce"},
	{"dwt", "", "pennyweight"},
}

var otherWeights = []rawUnit{
	{"metric_grain", "metric_grains", "50 mg"},
	{"carat", "carats", "0.2 grams"},
	{"ct", "", "carat"},
	{"jewellers_point", "jewellers_points", "1/100 carat"},
	{"tonne", "tonnes", "l@1000 kg"},
	{"t", "", "tonne"},
}

var imperialAbbreviations = []rawUnit{
	{"mph", "", "mile/hr"},
	{"kph", "", "km/hr"},
	{"fps", "", "ft/s"},
	{"rpm", "", "rev/min"},
	{"psi", "", "pound force/inch^2"},
}

var nauticalUnits = []rawUnit{
	{"fathom", "fathoms", "6 ft"},
	{"nautical_mile", "nautical_miles", "1852 m"},
	{"knot", "knots", "nautical_mile/hr"},
}

var allCatalogGroups = [][]rawUnit{
	baseUnits,
	baseAbbreviations,
	temperatureScales,
	bitsAndBytes,
	standardPrefixes,
	nonStandardPrefixes,
	binaryPrefixes,
	numberWords,
	constants,
	angles,
	solidAngles,
	siDerived,
	timeUnits,
	ratios,
	physicalUnits,
	imperialUnits,
	liquidUnits,
	avoirdupoisWeight,
	troyWeight,
	otherWeights,
	imperialAbbreviations,
	nauticalUnits,
	currencies,
	exchangeRates,
}

// shortPrefixes are single/double letter abbreviations that combine
// with a ShortPrefixAllowed unit (e.g. "k" + "m" -> "km").
var shortPrefixes = []rawUnit{
	{"Ki", "", "sp@kibi"},
	{"Mi", "", "sp@mebi"},
	{"Gi", "", "sp@gibi"},
	{"Ti", "", "sp@tebi"},
	{"Y", "", "sp@yotta"},
	{"Z", "", "sp@zetta"},
	{"E", "", "sp@exa"},
	{"P", "", "sp@peta"},
	{"T", "", "sp@tera"},
	{"G", "", "sp@giga"},
	{"M", "", "sp@mega"},
	{"k", "", "sp@kilo"},
	{"h", "", "sp@hecto"},
	{"da", "", "sp@deka"},
	{"d", "", "sp@deci"},
	{"c", "", "sp@centi"},
	{"m", "", "sp@milli"},
	{"u", "", "sp@micro"},
	{"µ", "", "sp@micro"},
	{"n", "", "sp@nano"},
	{"p", "", "sp@pico"},
	{"f", "", "sp@femto"},
	{"a", "", "sp@atto"},
	{"z", "", "sp@zepto"},
	{"y", "", "sp@yocto"},
}
