package printer

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/coding-wepack/nexusctl/pkg/nexus"
	"github.com/coding-wepack/nexusctl/pkg/util/jsonutil"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// ValidateFormat accepts the values of the --output flag.
func ValidateFormat(format string) error {
	switch format {
	case "", FormatTable, FormatJSON:
		return nil
	default:
		return errors.Errorf("unknown output format %q, expected table or json", format)
	}
}

func PrintRepositories(w io.Writer, format string, repos []nexus.Repository) error {
	if format == FormatJSON {
		return printJSON(w, repos)
	}

	data := make([][]string, 0, len(repos))
	for _, r := range repos {
		data = append(data, []string{r.Name, r.Format, r.Type, r.URL})
	}
	render(w, []string{"Name", "Format", "Type", "URL"}, data)
	return nil
}

func PrintAssets(w io.Writer, format string, assets []nexus.Asset) error {
	if format == FormatJSON {
		return printJSON(w, assets)
	}

	data := make([][]string, 0, len(assets))
	for _, a := range assets {
		data = append(data, []string{a.ID, a.Repository, a.Path, formatSize(a.FileSize), checksum(a.Checksum)})
	}
	render(w, []string{"ID", "Repository", "Path", "Size", "Checksum"}, data)
	return nil
}

func PrintComponents(w io.Writer, format string, components []nexus.Component) error {
	if format == FormatJSON {
		return printJSON(w, components)
	}

	data := make([][]string, 0, len(components))
	for _, c := range components {
		data = append(data, []string{c.ID, c.Repository, c.Group, c.Name, c.Version, strconv.Itoa(len(c.Assets))})
	}
	render(w, []string{"ID", "Repository", "Group", "Name", "Version", "Assets"}, data)
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := jsonutil.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode output")
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func render(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetHeaderLine(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(data)
	table.Render()
}

// checksum prefers the strongest digest the server reported.
func checksum(sums map[string]string) string {
	for _, algo := range []string{"sha256", "sha1", "md5"} {
		if v, ok := sums[algo]; ok {
			return algo + ":" + v
		}
	}
	algos := make([]string, 0, len(sums))
	for algo := range sums {
		algos = append(algos, algo)
	}
	if len(algos) == 0 {
		return ""
	}
	sort.Strings(algos)
	return algos[0] + ":" + sums[algos[0]]
}

func formatSize(size int64) string {
	if size <= 0 {
		return "-"
	}
	units := []string{"B", "KiB", "MiB", "GiB", "TiB"}
	f := float64(size)
	i := 0
	for f >= 1024 && i < len(units)-1 {
		f /= 1024
		i++
	}
	if i == 0 {
		return strconv.FormatInt(size, 10) + " B"
	}
	return strings.TrimSuffix(strconv.FormatFloat(f, 'f', 1, 64), ".0") + " " + units[i]
}
