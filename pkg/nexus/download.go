package nexus

import (
	"context"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/coding-wepack/nexusctl/pkg/log"
	"github.com/coding-wepack/nexusctl/pkg/log/logfields"
	"github.com/coding-wepack/nexusctl/pkg/util/fileutil"
	"github.com/coding-wepack/nexusctl/pkg/util/httputil"
	"github.com/coding-wepack/nexusctl/pkg/util/ioutils"
)

const opDownload = "download"

// Downloader materializes remote files on disk. The body is streamed to a
// temporary file first and only moved to its destination once fully read,
// so an interrupted transfer never leaves a truncated file behind.
type Downloader struct {
	client   *httputil.Client
	username string
	password string
	tempDir  string
	logger   log.Logger
}

// DownloaderOption allows overriding the defaults of NewDownloader.
type DownloaderOption func(*Downloader)

// DownloaderOptBasicAuth sends the credentials with every download.
func DownloaderOptBasicAuth(username, password string) DownloaderOption {
	return func(d *Downloader) {
		d.username = username
		d.password = password
	}
}

// DownloaderOptTempDir sets where partial downloads are staged. Defaults to
// os.TempDir().
func DownloaderOptTempDir(dir string) DownloaderOption {
	return func(d *Downloader) {
		d.tempDir = dir
	}
}

// DownloaderOptLogger replaces the logger.
func DownloaderOptLogger(logger log.Logger) DownloaderOption {
	return func(d *Downloader) {
		d.logger = logger
	}
}

func NewDownloader(client *httputil.Client, options ...DownloaderOption) *Downloader {
	if client == nil {
		client = httputil.DefaultClient
	}
	d := &Downloader{client: client}
	for _, option := range options {
		option(d)
	}
	if d.logger == nil {
		d.logger = log.Named("download")
	}
	return d
}

// FileNameFromURL returns the last path segment of rawURL, unescaped.
func FileNameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrapf(err, "invalid download url %q", rawURL)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", errors.Errorf("download url %q has no file name", rawURL)
	}
	return name, nil
}

// Download fetches rawURL into dir, named after the last segment of the URL
// path, and returns the written path. An existing file is replaced.
func (d *Downloader) Download(ctx context.Context, rawURL, dir string) (string, error) {
	name, err := FileNameFromURL(rawURL)
	if err != nil {
		return "", newDecodeError(opDownload, rawURL, err)
	}
	return d.DownloadAs(ctx, rawURL, dir, name)
}

// DownloadAs is Download with a caller supplied file name.
func (d *Downloader) DownloadAs(ctx context.Context, rawURL, dir, fileName string) (string, error) {
	if fileName == "" || fileName != filepath.Base(fileName) {
		return "", newInvalidError(opDownload, "bad file name %q", fileName)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", newIOError(opDownload, dir, err)
	}
	dest := filepath.Join(dir, fileName)

	resp, err := d.client.GetWithAuth(ctx, rawURL, d.username, d.password)
	if err != nil {
		return "", newTransportError(opDownload, rawURL, err)
	}
	defer ioutils.QuiteClose(resp.Body)

	if !httputil.IsSuccess(resp.StatusCode) {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippet))
		return "", newStatusError(opDownload, rawURL, resp.StatusCode, body)
	}

	tmp, err := os.CreateTemp(d.tempDir, "nexusctl-*.part")
	if err != nil {
		return "", newIOError(opDownload, d.tempDir, err)
	}
	tmpName := tmp.Name()

	body := &trackingReader{r: resp.Body}
	n, err := io.Copy(tmp, body)
	closeErr := tmp.Close()
	if err != nil {
		_ = os.Remove(tmpName)
		if body.err != nil {
			return "", newTransportError(opDownload, rawURL, errors.Wrap(err, "read body"))
		}
		return "", newIOError(opDownload, tmpName, err)
	}
	if closeErr != nil {
		_ = os.Remove(tmpName)
		return "", newIOError(opDownload, tmpName, closeErr)
	}

	if err = fileutil.MoveFile(tmpName, dest); err != nil {
		_ = os.Remove(tmpName)
		return "", newIOError(opDownload, dest, err)
	}

	d.logger.Debug("Downloaded",
		logfields.String("url", rawURL),
		logfields.String("file", dest),
		logfields.Int64("bytes", n))

	return dest, nil
}

// DownloadAll downloads every asset in order. The first failure stops the
// run: later assets are not attempted and files already written stay.
func (d *Downloader) DownloadAll(ctx context.Context, assets []Asset, dir string) ([]string, error) {
	files := make([]string, 0, len(assets))
	for _, asset := range assets {
		if asset.DownloadURL == "" {
			return nil, newDecodeError(opDownload, "", errors.Errorf("asset %s has no downloadUrl", asset.ID))
		}
		file, err := d.Download(ctx, asset.DownloadURL, dir)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

// trackingReader remembers read errors so a failed copy can be blamed on
// the network or on the disk.
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF {
		t.err = err
	}
	return n, err
}
