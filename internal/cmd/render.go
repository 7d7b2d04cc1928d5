package cmd

import (
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/taigrr/colorhash"

	"github.com/dendrascience/sortdir/classify"
	"github.com/dendrascience/sortdir/sorter"
)

const ansiReset = "\x1b[0m"

// categoryPalette holds the ANSI colors folder names are hashed onto.
var categoryPalette = []string{
	"\x1b[31m", "\x1b[32m", "\x1b[33m", "\x1b[34m", "\x1b[35m", "\x1b[36m",
	"\x1b[91m", "\x1b[92m", "\x1b[93m", "\x1b[94m", "\x1b[95m", "\x1b[96m",
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// categoryColor picks a stable color for a folder name.
func categoryColor(name string) string {
	h := colorhash.HashString(name)
	if h < 0 {
		h = -h
	}
	return categoryPalette[h%len(categoryPalette)]
}

func colorLabel(name string, colorize bool) string {
	if !colorize {
		return name
	}
	return categoryColor(name) + name + ansiReset
}

// folderTable renders one row per category folder followed by a Total row.
// Every column after Folder holds a right-aligned number.
func folderTable(layout sorter.Layout, colorize bool, columns []string, cells func(classify.Category) []string, totals []string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := table.Row{"Folder"}
	configs := []table.ColumnConfig{{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft}}
	for i, title := range columns {
		header = append(header, title)
		configs = append(configs, table.ColumnConfig{Number: i + 2, Align: text.AlignRight, AlignHeader: text.AlignLeft})
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	appendRow := func(label string, values []string) {
		row := table.Row{label}
		for i := range columns {
			if i < len(values) {
				row = append(row, values[i])
			} else {
				row = append(row, "")
			}
		}
		tw.AppendRow(row)
	}
	for _, c := range classify.Categories {
		appendRow(colorLabel(layout.Name(c), colorize), cells(c))
	}
	appendRow("Total", totals)
	return tw.Render()
}

func renderSummary(summary sorter.Summary, layout sorter.Layout, colorize bool) string {
	var totalBytes int64
	for _, stats := range summary.Categories {
		totalBytes += stats.Bytes
	}
	return folderTable(layout, colorize, []string{"Files", "Size"},
		func(c classify.Category) []string {
			stats := summary.Categories[c]
			return []string{strconv.Itoa(stats.Files), humanize.Bytes(uint64(stats.Bytes))}
		},
		[]string{strconv.Itoa(summary.Files), humanize.Bytes(uint64(totalBytes))},
	)
}

func renderCounts(counts map[classify.Category]int, total int, layout sorter.Layout, colorize bool) string {
	return folderTable(layout, colorize, []string{"Files"},
		func(c classify.Category) []string { return []string{strconv.Itoa(counts[c])} },
		[]string{strconv.Itoa(total)},
	)
}
