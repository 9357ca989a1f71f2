// Package domain models drought-classification forecasts for the
// sub-districts (kecamatan) of Ogan Ilir regency.
//
// # Data Source
//
// Forecasts are produced upstream by an SPI-based model and exported as one
// text file per sub-district. Each file holds a single header-less column:
// one classification level name per line, one line per day. The files carry
// no dates; the date axis is synthesized from a configured anchor date:
//
//	row 0 → anchor date
//	row i → anchor date + i days
//
// # Classification Scale
//
// Seven ordered levels, wettest to driest. The rank is used only to place a
// level on the chart's vertical axis:
//
//	1 Sangat Basah          5 Kering Sedang
//	2 Basah Ekstrem         6 Kering Parah
//	3 Basah Sedang          7 Kering Sangat Parah
//	4 Normal
//
// Level names are matched exactly (case-sensitive). A label that is not one
// of the seven keeps its text but has no ordinal, and [Catalog.Describe]
// resolves it to [UnknownLevel] instead of failing.
//
// # Dates
//
// All series dates are UTC midnights. [NormalizeDate] drops the time of day
// of any input before lookups, so a selection made at 23:59 local time still
// matches the calendar day the user picked.
package domain
