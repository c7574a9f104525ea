package pull

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"

	"github.com/coding-wepack/nexusctl/pkg/log"
	"github.com/coding-wepack/nexusctl/pkg/log/logfields"
	"github.com/coding-wepack/nexusctl/pkg/nexus"
	reportutil "github.com/coding-wepack/nexusctl/pkg/report"
	"github.com/coding-wepack/nexusctl/pkg/util/fileutil"
)

// ErrIncomplete is returned when some downloads failed and FailFast is off.
var ErrIncomplete = errors.New("some assets failed to download")

type Options struct {
	// Dir is the destination directory.
	Dir string
	// KeepPaths recreates each asset's repository path below Dir instead of
	// writing every file directly into it.
	KeepPaths bool
	// FailFast stops at the first failed asset.
	FailFast bool
	// DryRun records every asset as skipped without downloading.
	DryRun bool
	// Progress receives the progress bar, nil disables it.
	Progress io.Writer
}

// Downloader is the part of *nexus.Downloader a pull needs.
type Downloader interface {
	Download(ctx context.Context, rawURL, dir string) (string, error)
}

// Pull downloads assets one after another and reports the outcome of each.
// The report is returned even when an error is.
func Pull(ctx context.Context, d Downloader, assets []nexus.Asset, opts Options) (*reportutil.Report, error) {
	report := reportutil.NewReport()
	if len(assets) == 0 {
		log.Warn("No assets matched, nothing to pull")
		return report, nil
	}

	if exists, err := fileutil.IsFileExists(opts.Dir); err != nil {
		return report, errors.Wrapf(err, "failed to stat %s", opts.Dir)
	} else if exists && !fileutil.IsDir(opts.Dir) {
		return report, errors.Errorf("%s is not a directory", opts.Dir)
	}

	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}
	p := mpb.NewWithContext(ctx, mpb.WithWidth(80), mpb.WithOutput(progress))
	const pbName = "Pulling:"
	bar := p.Add(
		int64(len(assets)),
		mpb.NewBarFiller(mpb.BarStyle()),
		mpb.PrependDecorators(
			decor.Name(pbName, decor.WC{W: len(pbName) + 1, C: decor.DidentRight}),
			decor.OnComplete(
				decor.AverageETA(decor.ET_STYLE_GO, decor.WC{W: 4}), "Done!",
			),
		),
		mpb.AppendDecorators(
			decor.Counters(0, "%d / %d  "),
			decor.Percentage(),
		),
	)

	log.Info("Begin to pull ...", logfields.Int("assets", len(assets)), logfields.String("dir", opts.Dir))
	start := time.Now()

	var pullErr error
	for _, asset := range assets {
		if err := pullOne(ctx, d, asset, opts, report); err != nil && opts.FailFast {
			pullErr = err
			break
		}
		bar.Increment()
	}
	if pullErr != nil {
		bar.Abort(false)
	}
	p.Wait()

	log.Info("End to pull.",
		logfields.Duration("duration", time.Since(start)),
		logfields.Int("succeededCount", len(report.SucceededResult)),
		logfields.Int("skippedCount", len(report.SkippedResult)),
		logfields.Int("failedCount", len(report.FailedResult)))

	if pullErr != nil {
		return report, pullErr
	}
	if n := len(report.FailedResult); n > 0 {
		return report, errors.Wrapf(ErrIncomplete, "%d of %d", n, len(assets))
	}
	return report, nil
}

func pullOne(ctx context.Context, d Downloader, asset nexus.Asset, opts Options, report *reportutil.Report) error {
	name := assetName(asset)
	if opts.DryRun {
		report.AddSkippedResult(name, "", "Dry run", asset.FileSize, 0)
		return nil
	}

	dir, err := destDir(opts, asset)
	if err != nil {
		report.AddFailedResult(name, "", err.Error(), 0, 0)
		return errors.Wrapf(err, "failed to pull %s", name)
	}

	start := time.Now()
	file, err := d.Download(ctx, asset.DownloadURL, dir)
	elapsed := time.Since(start)
	if err != nil {
		log.Debug("Pull failed", logfields.String("asset", name), logfields.Error(err))
		report.AddFailedResult(name, "", err.Error(), 0, elapsed)
		return errors.Wrapf(err, "failed to pull %s", name)
	}

	size := asset.FileSize
	if fi, err := os.Stat(file); err == nil {
		size = fi.Size()
	}
	report.AddSucceededResult(name, file, "Succeeded", size, elapsed)
	return nil
}

func assetName(asset nexus.Asset) string {
	if asset.Path != "" {
		return asset.Path
	}
	return asset.ID
}

// destDir maps the asset path below opts.Dir. The path comes from the
// server, so it is cleaned as if rooted and may not climb out of Dir.
func destDir(opts Options, asset nexus.Asset) (string, error) {
	if !opts.KeepPaths || asset.Path == "" {
		return opts.Dir, nil
	}
	rel := strings.TrimPrefix(path.Dir(path.Clean("/"+asset.Path)), "/")
	if rel == "" {
		return opts.Dir, nil
	}
	base := filepath.Clean(opts.Dir)
	dir := filepath.Join(base, filepath.FromSlash(rel))
	if r, err := filepath.Rel(base, dir); err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", errors.Errorf("asset path %q escapes %s", asset.Path, opts.Dir)
	}
	return dir, nil
}
