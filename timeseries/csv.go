package timeseries

import (
	"bufio"
	"os"
	"strconv"
)

// SaveCSV writes a time series to a CSV file with a "ds,y" header. When the
// series carries no timestamps, a 1-based integer index is written instead.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	writer.WriteString("ds,y\n")

	hasDates := len(series.Timestamps) == len(series.Values)
	for i, v := range series.Values {
		if hasDates {
			writer.WriteString(series.Timestamps[i].Format("2006-01-02"))
		} else {
			writer.WriteString(strconv.Itoa(i + 1))
		}
		writer.WriteString(",")
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString("\n")
	}

	return writer.Flush()
}
