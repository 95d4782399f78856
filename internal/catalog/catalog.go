// Package catalog holds the built-in list of resident space objects used to
// seed an empty store.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/roach88/orbitr/internal/rso"
)

// entry is the compact form of one catalog object. The TLE is synthesized
// from the orbital parameters when the catalog is loaded.
type entry struct {
	name        string
	satcat      string
	designator  string
	inclination float64
	meanMotion  float64
	aliases     []string
	tags        []string
}

// Load returns a fresh copy of the catalog in its declared order.
// Callers may modify the result freely.
func Load() []rso.Record {
	records := make([]rso.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, rso.Record{
			DisplayName:             e.name,
			SatcatNumber:            e.satcat,
			InternationalDesignator: e.designator,
			TLE:                     TLE(e.satcat, e.inclination, e.meanMotion),
			Aliases:                 append([]string(nil), e.aliases...),
			Tags:                    append([]string(nil), e.tags...),
		})
	}
	return records
}

// Len returns the number of catalog objects.
func Len() int {
	return len(entries)
}

// TLE builds a placeholder two-line element set for a catalog number.
// Only the digits of satcat are used; a catalog number with no digits maps to 0.
func TLE(satcat string, inclination, meanMotion float64) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, satcat)
	num, err := strconv.Atoi(digits)
	if err != nil {
		num = 0
	}

	line1 := fmt.Sprintf("1 %05dU 24001A   24123.00000000  .00000000  00000-0  00000-0 0  9991", num)
	line2 := fmt.Sprintf("2 %05d %8.4f 123.4567 0001000 120.1234 240.5678 %11.8f    05", num, inclination, meanMotion)
	return line1 + "\n" + line2
}

var entries = []entry{
	{
		name:        "GPS III SV01 (USA-289)",
		satcat:      "43073",
		designator:  "2018-079A",
		inclination: 55.0,
		meanMotion:  2.0056,
		aliases:     []string{"GPS III-1", "Navstar 74", "PRN 04"},
		tags:        []string{"gps", "navigation", "m-code"},
	},
	{
		name:        "GPS III SV02 (USA-293)",
		satcat:      "44402",
		designator:  "2019-029A",
		inclination: 55.0,
		meanMotion:  2.0056,
		aliases:     []string{"GPS III-2", "Navstar 75", "PRN 05"},
		tags:        []string{"gps", "navigation"},
	},
	{
		name:        "GPS III SV03 (USA-304)",
		satcat:      "44873",
		designator:  "2019-079A",
		inclination: 55.0,
		meanMotion:  2.0056,
		aliases:     []string{"GPS III-3", "Navstar 76", "PRN 07"},
		tags:        []string{"gps", "navigation"},
	},
	{
		name:        "GPS III SV04 (USA-309)",
		satcat:      "46450",
		designator:  "2020-067A",
		inclination: 55.0,
		meanMotion:  2.0056,
		aliases:     []string{"GPS III-4", "Navstar 77", "PRN 13"},
		tags:        []string{"gps", "navigation"},
	},
	{
		name:        "GPS III SV05 (USA-334)",
		satcat:      "48274",
		designator:  "2021-041A",
		inclination: 55.0,
		meanMotion:  2.0056,
		aliases:     []string{"GPS III-5", "Navstar 78", "PRN 18"},
		tags:        []string{"gps", "navigation"},
	},
	{
		name:        "GPS III SV06 (USA-345)",
		satcat:      "49678",
		designator:  "2023-006A",
		inclination: 55.0,
		meanMotion:  2.0056,
		aliases:     []string{"GPS III-6", "Navstar 80", "PRN 16"},
		tags:        []string{"gps", "navigation"},
	},
	{
		name:        "GPS IIF SV-1 (USA-232)",
		satcat:      "36585",
		designator:  "2010-019A",
		inclination: 55.0,
		meanMotion:  2.0056,
		aliases:     []string{"GPS IIF-1", "Navstar 66", "PRN 25"},
		tags:        []string{"gps", "navigation"},
	},
	{
		name:        "GPS IIF SV-3 (USA-239)",
		satcat:      "38833",
		designator:  "2012-053A",
		inclination: 55.0,
		meanMotion:  2.0056,
		aliases:     []string{"GPS IIF-3", "Navstar 68", "PRN 24"},
		tags:        []string{"gps", "navigation"},
	},
	{
		name:        "GPS IIF SV-5 (USA-248)",
		satcat:      "40105",
		designator:  "2014-068A",
		inclination: 55.0,
		meanMotion:  2.0056,
		aliases:     []string{"GPS IIF-5", "Navstar 70", "PRN 30"},
		tags:        []string{"gps", "navigation"},
	},
	{
		name:        "GPS IIF SV-7 (USA-261)",
		satcat:      "40730",
		designator:  "2015-013A",
		inclination: 55.0,
		meanMotion:  2.0056,
		aliases:     []string{"GPS IIF-7", "Navstar 72", "PRN 09"},
		tags:        []string{"gps", "navigation"},
	},
	{
		name:        "GPS IIF SV-9 (USA-265)",
		satcat:      "41024",
		designator:  "2015-024A",
		inclination: 55.0,
		meanMotion:  2.0056,
		aliases:     []string{"GPS IIF-9", "Navstar 73", "PRN 01"},
		tags:        []string{"gps", "navigation"},
	},
	{
		name:        "GPS IIF SV-10 (USA-266)",
		satcat:      "41328",
		designator:  "2015-062A",
		inclination: 55.0,
		meanMotion:  2.0056,
		aliases:     []string{"GPS IIF-10", "Navstar 71", "PRN 27"},
		tags:        []string{"gps", "navigation"},
	},
	{
		name:        "NOAA-15",
		satcat:      "25338",
		designator:  "1998-030A",
		inclination: 98.7,
		meanMotion:  14.2500,
		aliases:     []string{"NOAA-K"},
		tags:        []string{"noaa", "weather", "polar-orbiting"},
	},
	{
		name:        "NOAA-18",
		satcat:      "28654",
		designator:  "2005-018A",
		inclination: 99.0,
		meanMotion:  14.1200,
		aliases:     []string{"NOAA-N"},
		tags:        []string{"noaa", "weather"},
	},
	{
		name:        "NOAA-19",
		satcat:      "33591",
		designator:  "2009-005A",
		inclination: 99.1,
		meanMotion:  14.1200,
		aliases:     []string{"NOAA-N Prime"},
		tags:        []string{"noaa", "weather"},
	},
	{
		name:        "NOAA-20 (JPSS-1)",
		satcat:      "43013",
		designator:  "2017-071A",
		inclination: 98.7,
		meanMotion:  14.2300,
		aliases:     []string{"JPSS-1", "NOAA/NASA Joint Polar Satellite System-1"},
		tags:        []string{"noaa", "weather", "jp"},
	},
	{
		name:        "NOAA-21 (JPSS-2)",
		satcat:      "54240",
		designator:  "2022-146A",
		inclination: 98.7,
		meanMotion:  14.2300,
		aliases:     []string{"JPSS-2"},
		tags:        []string{"noaa", "weather"},
	},
	{
		name:        "GOES-15",
		satcat:      "36411",
		designator:  "2010-008A",
		inclination: 0.1,
		meanMotion:  1.0027,
		aliases:     []string{"GOES-P"},
		tags:        []string{"goes", "geostationary", "weather"},
	},
	{
		name:        "GOES-16 (GOES-R)",
		satcat:      "41866",
		designator:  "2016-071A",
		inclination: 0.0,
		meanMotion:  1.0027,
		aliases:     []string{"GOES-East"},
		tags:        []string{"goes", "geostationary", "weather"},
	},
	{
		name:        "GOES-17 (GOES-S)",
		satcat:      "43226",
		designator:  "2018-022A",
		inclination: 0.0,
		meanMotion:  1.0027,
		aliases:     []string{"GOES-West"},
		tags:        []string{"goes", "geostationary", "weather"},
	},
	{
		name:        "GOES-18 (GOES-T)",
		satcat:      "49384",
		designator:  "2022-057A",
		inclination: 0.0,
		meanMotion:  1.0027,
		aliases:     []string{"GOES-West prime"},
		tags:        []string{"goes", "geostationary", "weather"},
	},
	{
		name:        "GOES-U (GOES-19)",
		satcat:      "59000",
		designator:  "2024-900A",
		inclination: 0.0,
		meanMotion:  1.0027,
		aliases:     []string{"GOES-U", "GOES-19"},
		tags:        []string{"goes", "geostationary", "weather"},
	},
	{
		name:        "WSF-M",
		satcat:      "59500",
		designator:  "2024-901A",
		inclination: 98.7,
		meanMotion:  14.2000,
		aliases:     []string{"Weather System Follow-on Microwave"},
		tags:        []string{"wsf-m", "weather", "us-space-force"},
	},
	{
		name:        "WindSat / Coriolis",
		satcat:      "27640",
		designator:  "2003-006A",
		inclination: 98.7,
		meanMotion:  14.2000,
		aliases:     []string{"Coriolis", "WindSat"},
		tags:        []string{"windsat", "weather"},
	},
	{
		name:        "International Space Station",
		satcat:      "25544",
		designator:  "1998-067A",
		inclination: 51.64,
		meanMotion:  15.495,
		aliases:     []string{"ISS", "Zarya"},
		tags:        []string{"iss", "human-spaceflight"},
	},
	{
		name:        "Hubble Space Telescope",
		satcat:      "20580",
		designator:  "1990-037B",
		inclination: 28.47,
		meanMotion:  15.091,
		aliases:     []string{"HST"},
		tags:        []string{"science", "observatory"},
	},
	{
		name:        "James Webb Space Telescope",
		satcat:      "50463",
		designator:  "2021-130A",
		inclination: 0.0,
		meanMotion:  1.0027,
		aliases:     []string{"JWST", "Webb"},
		tags:        []string{"science", "observatory", "l2"},
	},
}
