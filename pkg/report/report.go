package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
)

type Report struct {
	SucceededResult []Result `json:"succeeded,omitempty"`
	SkippedResult   []Result `json:"skipped,omitempty"`
	FailedResult    []Result `json:"failed,omitempty"`
}

type Result struct {
	Name    string  `json:"name"`
	Path    string  `json:"path"`
	Size    float64 `json:"size"`
	Time    float64 `json:"time"`
	Message string  `json:"message"`
}

func NewReport() *Report {
	return &Report{
		SucceededResult: make([]Result, 0),
		SkippedResult:   make([]Result, 0),
		FailedResult:    make([]Result, 0),
	}
}

func (r *Report) TotalCount() int {
	return len(r.SucceededResult) + len(r.SkippedResult) + len(r.FailedResult)
}

func newResult(name, path, msg string, size int64, elapsed time.Duration) Result {
	return Result{
		Name:    name,
		Path:    path,
		Size:    float64(size) / 1024 / 1024,
		Time:    elapsed.Seconds(),
		Message: msg,
	}
}

func (r *Report) AddSucceededResult(name, path, msg string, size int64, elapsed time.Duration) {
	r.SucceededResult = append(r.SucceededResult, newResult(name, path, msg, size, elapsed))
}

func (r *Report) AddSkippedResult(name, path, msg string, size int64, elapsed time.Duration) {
	r.SkippedResult = append(r.SkippedResult, newResult(name, path, msg, size, elapsed))
}

func (r *Report) AddFailedResult(name, path, msg string, size int64, elapsed time.Duration) {
	r.FailedResult = append(r.FailedResult, newResult(name, path, msg, size, elapsed))
}

// Render writes one row per result, sorted by name, with a totals footer.
func (r *Report) Render(w io.Writer) {
	totalResult := r.mergeIntoOneResult(true)
	count := len(totalResult)
	var totalSize float64 = 0
	var totalTime float64 = 0
	data := make([][]string, count)
	for i, result := range totalResult {
		data[i] = []string{
			result.Name, result.Path, fmt.Sprintf("%.3f", result.Size), fmt.Sprintf("%.3f", result.Time), result.Message,
		}
		totalSize += result.Size
		totalTime += result.Time
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Asset", "Local Path", "File Size(mb)", "Download Time(s)", "Result"})
	table.SetFooter([]string{
		"Total", strconv.Itoa(count), fmt.Sprintf("%.3f", totalSize), fmt.Sprintf("%.3f", totalTime), "",
	})
	table.SetAutoMergeCellsByColumnIndex([]int{0})
	table.SetRowLine(true)
	table.AppendBulk(data)
	table.Render()
}

func (r *Report) mergeIntoOneResult(sortByName bool) []Result {
	totalResult := make([]Result, 0, r.TotalCount())
	totalResult = append(totalResult, r.SucceededResult...)
	totalResult = append(totalResult, r.SkippedResult...)
	totalResult = append(totalResult, r.FailedResult...)

	if sortByName {
		sort.SliceStable(totalResult, func(i, j int) bool {
			return totalResult[i].Name < totalResult[j].Name
		})
	}

	return totalResult
}
