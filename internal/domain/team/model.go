package team

// Code is an NHL team abbreviation as it appears in broadcast graphics
// and scoreboards, e.g. "BOS" or "TOR". Lookups are case-sensitive.
type Code string

// ID is the numeric team identifier used by the NHL stats API.
type ID int

// IDByCode maps every known abbreviation to its stats API id. The table is
// fixed at build time and must never be mutated.
var IDByCode = map[Code]ID{
	"NJD": 1,
	"NYI": 2,
	"NYR": 3,
	"PHI": 4,
	"PIT": 5,
	"BOS": 6,
	"BUF": 7,
	"MTL": 8,
	"OTT": 9,
	"TOR": 10,
	"CAR": 12,
	"FLA": 13,
	"TBL": 14,
	"WSH": 15,
	"CHI": 16,
	"DET": 17,
	"NSH": 18,
	"STL": 19,
	"CGY": 20,
	"COL": 21,
	"EDM": 22,
	"VAN": 23,
	"ANA": 24,
	"DAL": 25,
	"LAK": 26,
	"SJS": 28,
	"CBJ": 29,
	"MIN": 30,
	"WPG": 52,
	"ARI": 53,
	"VGK": 54,
	"SEA": 55,
}
