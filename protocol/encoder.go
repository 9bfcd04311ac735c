package protocol

import "github.com/openomen/omenctl/keymap"

// ReportCount is the number of reports a single paint produces.
const ReportCount = 10

// slotsPerLine is how many matrix slots one line report covers.
const slotsPerLine = 60

// Encode produces the full report sequence for one paint: the initiation
// report followed by the nine line reports in fixed order. Report sizes are
// constant regardless of the override table contents.
func Encode(overrides *Overrides) [][]byte {
	layout := keymap.Layout()
	reports := make([][]byte, 0, ReportCount)
	reports = append(reports, InitReport())

	for li, line := range lines {
		header := mustDecodeHex(line.header)
		mask := mustDecodeHex(line.body)
		report := make([]byte, 0, len(header)+len(mask))
		report = append(report, header...)
		for bi, m := range mask {
			if m == 0 {
				report = append(report, 0)
				continue
			}
			slot := (li%3)*slotsPerLine + bi
			key := layout[slot]
			color := overrides.Default()
			if key != keymap.Unused {
				color = overrides.ColorOf(key)
			}
			report = append(report, color.Channel(line.offset))
		}
		reports = append(reports, report)
	}
	return reports
}
