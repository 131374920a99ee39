package dateconv

// bsMonthLengths holds the number of days in each Bikram Sambat month for
// the supported year range. The calendar is observational, so the lengths
// come from the published almanac tables rather than a formula.
var bsMonthLengths = map[int][12]int{
	2040: {31, 32, 31, 32, 31, 30, 29, 30, 29, 30, 29, 31},
	2041: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2042: {30, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2043: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2044: {31, 32, 31, 32, 31, 30, 29, 30, 29, 30, 29, 31},
	2045: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2046: {30, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2047: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2048: {31, 32, 31, 32, 31, 30, 29, 30, 29, 30, 29, 31},
	2049: {31, 31, 32, 32, 31, 30, 30, 30, 29, 29, 30, 30},
	2050: {30, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2051: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2052: {31, 32, 31, 32, 31, 30, 29, 30, 29, 30, 29, 31},
	2053: {31, 31, 32, 32, 31, 30, 30, 30, 29, 29, 30, 30},
	2054: {30, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2055: {31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	2056: {31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 30},
	2057: {31, 31, 32, 32, 31, 30, 30, 30, 29, 29, 30, 30},
	2058: {30, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2059: {31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	2060: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2061: {31, 31, 32, 32, 31, 30, 30, 30, 29, 29, 30, 30},
	2062: {30, 32, 31, 32, 31, 31, 29, 30, 29, 30, 29, 31},
	2063: {31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	2064: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2065: {31, 31, 32, 32, 31, 30, 30, 30, 29, 29, 30, 30},
	2066: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2067: {31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	2068: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2069: {31, 31, 32, 32, 31, 30, 30, 30, 29, 29, 30, 30},
	2070: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2071: {31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	2072: {31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2073: {31, 31, 32, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2074: {30, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2075: {31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	2076: {31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2077: {31, 31, 32, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	2078: {30, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2079: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2080: {31, 32, 31, 32, 31, 30, 29, 30, 29, 30, 30, 30},
	2081: {31, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2082: {30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2083: {31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30},
	2084: {31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30},
	2085: {31, 32, 31, 32, 30, 31, 30, 30, 29, 30, 30, 30},
	2086: {30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2087: {31, 31, 32, 31, 31, 31, 30, 30, 29, 30, 30, 30},
	2088: {30, 31, 32, 32, 30, 31, 30, 30, 29, 30, 30, 30},
	2089: {30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
}
