package nexus

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	c, err := NewClient("https://nexus.example.com/ ")
	require.NoError(t, err)
	assert.Equal(t, "https://nexus.example.com", c.BaseURL())
	assert.NotNil(t, c.Downloader())

	_, err = NewClient("nexus.example.com")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, KindInvalid, KindOf(err))
}

func TestListRepositories(t *testing.T) {
	f := newFakeNexus(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/service/rest/v1/repositories", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		writeJSON(w, `[{"name":"maven-public","format":"maven2","type":"group","url":"%s/repository/maven-public"}]`, "http://nexus")
	})

	repos, err := f.client(t).ListRepositories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Repository{{
		Name:   "maven-public",
		Format: "maven2",
		Type:   "group",
		URL:    "http://nexus/repository/maven-public",
	}}, repos)
}

func TestListComponents(t *testing.T) {
	f := newFakeNexus(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/service/rest/v1/components", r.URL.Path)
		assert.Equal(t, "maven-public", r.URL.Query().Get("repository"))
		writeJSON(w, `{"items":[
			{"id":"c1","repository":"maven-public","format":"maven2","group":"com.acme","name":"core","version":"1.0","assets":[]},
			{"id":"c2","repository":"maven-public","format":"maven2","group":"com.acme","name":"core","version":"1.1","assets":[]}
		],"continuationToken":null}`)
	})

	components, err := f.client(t).ListComponents(context.Background(), "maven-public")
	require.NoError(t, err)
	require.Len(t, components, 2)
	assert.Equal(t, "c1", components[0].ID)
	assert.Equal(t, "1.1", components[1].Version)
	assert.Len(t, f.requested(), 1)
}

func TestListAssetsFollowsContinuationToken(t *testing.T) {
	f := newFakeNexus(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "raw-hosted", r.URL.Query().Get("repository"))
		switch r.URL.Query().Get("continuationToken") {
		case "":
			writeJSON(w, `{"items":[{"id":"a1"},{"id":"a2"}],"continuationToken":"t1"}`)
		case "t1":
			writeJSON(w, `{"items":[],"continuationToken":"t2"}`)
		case "t2":
			writeJSON(w, `{"items":[{"id":"a3"}],"continuationToken":null}`)
		default:
			t.Errorf("unexpected request %s", r.URL)
		}
	})

	assets, err := f.client(t).ListAssets(context.Background(), "raw-hosted")
	require.NoError(t, err)
	ids := make([]string, 0, len(assets))
	for _, a := range assets {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"a1", "a2", "a3"}, ids)
	assert.Len(t, f.requested(), 3)
}

func TestListAssetsPage(t *testing.T) {
	f := newFakeNexus(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "t1", r.URL.Query().Get("continuationToken"))
		writeJSON(w, `{"items":[{"id":"a3"}],"continuationToken":"t2"}`)
	})

	page, err := f.client(t).ListAssetsPage(context.Background(), "raw-hosted", "t1")
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.True(t, page.HasMore())
	assert.Equal(t, "t2", page.ContinuationToken)
}

func TestListAssetsMaxPages(t *testing.T) {
	f := newFakeNexus(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"items":[{"id":"a"}],"continuationToken":"again"}`)
	})

	_, err := f.client(t, ClientOptMaxPages(2)).ListAssets(context.Background(), "raw-hosted")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyPages)
	assert.Equal(t, KindLimit, KindOf(err))
	assert.Len(t, f.requested(), 2)
}

func TestSearchSendsQuery(t *testing.T) {
	f := newFakeNexus(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "name", q.Get("sort"))
		assert.Equal(t, "desc", q.Get("direction"))
		assert.Equal(t, "com.acme", q.Get("maven.groupId"))
		switch r.URL.Path {
		case "/service/rest/v1/search":
			writeJSON(w, `{"items":[{"id":"c1","name":"core"}]}`)
		case "/service/rest/v1/search/assets":
			if q.Get("continuationToken") == "" {
				writeJSON(w, `{"items":[{"id":"a1"}],"continuationToken":"t1"}`)
				return
			}
			assert.Equal(t, "t1", q.Get("continuationToken"))
			writeJSON(w, `{"items":[{"id":"a2"}]}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	c := f.client(t)
	q := Query{MavenGroupID: "com.acme", SortBy: SortName, OrderBy: OrderDesc}

	components, err := c.SearchComponents(context.Background(), q)
	require.NoError(t, err)
	assert.Len(t, components, 1)

	assets, err := c.SearchAssets(context.Background(), q)
	require.NoError(t, err)
	assert.Len(t, assets, 2)
}

func TestSearchNoMatchIsEmpty(t *testing.T) {
	f := newFakeNexus(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"items":[],"continuationToken":null}`)
	})

	assets, err := f.client(t).SearchAssets(context.Background(), Query{Keyword: "nothing"})
	require.NoError(t, err)
	assert.NotNil(t, assets)
	assert.Empty(t, assets)
}

func TestDecodeFailureIsDecodeError(t *testing.T) {
	f := newFakeNexus(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"items":[{"id":1}]}`)
	})

	_, err := f.client(t).ListAssets(context.Background(), "raw-hosted")
	require.Error(t, err)
	assert.Equal(t, KindDecode, KindOf(err))
}

func TestBasicAuth(t *testing.T) {
	f := newFakeNexus(t, func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok || username != "admin" || password != "admin123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(w, `[]`)
	})

	_, err := f.client(t).ListRepositories(context.Background())
	assert.True(t, IsUnauthorized(err))

	repos, err := f.client(t, ClientOptBasicAuth("admin", "admin123")).ListRepositories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, repos)
}

func TestDelete(t *testing.T) {
	f := newFakeNexus(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		switch r.URL.Path {
		case "/service/rest/v1/assets/a1", "/service/rest/v1/components/c1":
			w.WriteHeader(http.StatusNoContent)
		case "/service/rest/v1/assets/locked":
			w.WriteHeader(http.StatusForbidden)
		default:
			http.NotFound(w, r)
		}
	})
	c := f.client(t)
	ctx := context.Background()

	require.NoError(t, c.DeleteAsset(ctx, "a1"))
	require.NoError(t, c.DeleteComponent(ctx, "c1"))

	err := c.DeleteAsset(ctx, "missing")
	assert.True(t, IsNotFound(err))
	assert.Equal(t, KindStatus, KindOf(err))

	err = c.DeleteAsset(ctx, "locked")
	assert.Equal(t, http.StatusForbidden, StatusCode(err))

	assert.ErrorIs(t, c.DeleteComponent(ctx, ""), ErrInvalidArgument)
}

func TestLegacyPathFallback(t *testing.T) {
	f := newFakeNexus(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/nexus/service/rest/v1/repositories" {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, `[{"name":"legacy"}]`)
	})

	_, err := f.client(t).ListRepositories(context.Background())
	assert.True(t, IsNotFound(err))

	repos, err := f.client(t, ClientOptLegacyPathFallback(true)).ListRepositories(context.Background())
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "legacy", repos[0].Name)
}

func TestGetAsset(t *testing.T) {
	var f *fakeNexus
	f = newFakeNexus(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/service/rest/v1/assets/a1":
			writeJSON(w, `{"id":"a1","path":"docs/readme.txt","downloadUrl":"%s/repository/raw-hosted/docs/readme.txt"}`, f.URL)
		case "/repository/raw-hosted/docs/readme.txt":
			_, _ = io.WriteString(w, "hello")
		default:
			http.NotFound(w, r)
		}
	})
	dir := t.TempDir()

	file, err := f.client(t).GetAsset(context.Background(), "a1", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "readme.txt"), file)
	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	_, err = f.client(t).GetAsset(context.Background(), "nope", dir)
	assert.True(t, IsNotFound(err))
}

func TestGetComponentStopsAtFirstFailure(t *testing.T) {
	var f *fakeNexus
	f = newFakeNexus(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/service/rest/v1/components/c1":
			writeJSON(w, `{"id":"c1","name":"core","assets":[
				{"id":"a1","downloadUrl":"%[1]s/repository/r/one.jar"},
				{"id":"a2","downloadUrl":"%[1]s/repository/r/two.jar"},
				{"id":"a3","downloadUrl":"%[1]s/repository/r/three.jar"}
			]}`, f.URL)
		case "/repository/r/one.jar":
			_, _ = io.WriteString(w, "one")
		case "/repository/r/two.jar":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			_, _ = io.WriteString(w, "unexpected")
		}
	})
	dir := t.TempDir()

	files, err := f.client(t).GetComponent(context.Background(), "c1", dir)
	require.Error(t, err)
	assert.Nil(t, files)
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))

	assert.FileExists(t, filepath.Join(dir, "one.jar"))
	assert.NoFileExists(t, filepath.Join(dir, "two.jar"))
	assert.NoFileExists(t, filepath.Join(dir, "three.jar"))
	assert.NotContains(t, f.requested(), "/repository/r/three.jar")
}

func TestGetComponent(t *testing.T) {
	var f *fakeNexus
	f = newFakeNexus(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/service/rest/v1/components/c1":
			writeJSON(w, `{"id":"c1","assets":[
				{"id":"a1","downloadUrl":"%[1]s/repository/r/core-1.0.jar"},
				{"id":"a2","downloadUrl":"%[1]s/repository/r/core-1.0.pom"}
			]}`, f.URL)
		default:
			_, _ = io.WriteString(w, filepath.Base(r.URL.Path))
		}
	})
	dir := t.TempDir()

	files, err := f.client(t).GetComponent(context.Background(), "c1", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "core-1.0.jar"),
		filepath.Join(dir, "core-1.0.pom"),
	}, files)
}

func TestSearchAndDownloadAsset(t *testing.T) {
	f := newFakeNexus(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/service/rest/v1/search/assets/download":
			q := r.URL.Query()
			switch {
			case q.Get("name") == "core" && q.Get("version") == "1.0":
				http.Redirect(w, r, "/repository/r/com/acme/core/1.0/core-1.0.jar", http.StatusFound)
			case q.Get("name") == "core":
				http.Error(w, "search returned multiple assets", http.StatusBadRequest)
			default:
				http.NotFound(w, r)
			}
		case "/repository/r/com/acme/core/1.0/core-1.0.jar":
			_, _ = io.WriteString(w, "jar")
		default:
			http.NotFound(w, r)
		}
	})
	c := f.client(t)
	dir := t.TempDir()

	file, err := c.SearchAndDownloadAsset(context.Background(), Query{Name: "core", Version: "1.0"}, "core.jar", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "core.jar"), file)

	_, err = c.SearchAndDownloadAsset(context.Background(), Query{Name: "core"}, "core.jar", dir)
	assert.True(t, IsBadRequest(err))

	_, err = c.SearchAndDownloadAsset(context.Background(), Query{Name: "other"}, "core.jar", dir)
	assert.True(t, IsNotFound(err))

	_, err = c.SearchAndDownloadAsset(context.Background(), Query{}, "core.jar", dir)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUploadComponent(t *testing.T) {
	f := newFakeNexus(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/service/rest/v1/components", r.URL.Path)
		assert.Equal(t, "raw-hosted", r.URL.Query().Get("repository"))

		mr, err := r.MultipartReader()
		if !assert.NoError(t, err) {
			return
		}
		fields := map[string]string{}
		for {
			part, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			if !assert.NoError(t, err) {
				return
			}
			b, _ := io.ReadAll(part)
			fields[partKey(part)] = string(b)
		}

		assert.Equal(t, "/docs", fields["raw.directory"])
		assert.Equal(t, "readme.txt", fields["raw.asset1.filename"])
		assert.Equal(t, "hello", fields["raw.asset1@readme.txt"])
		w.WriteHeader(http.StatusNoContent)
	})

	upload := RawUpload("/docs", UploadAsset{FileName: "readme.txt", Content: strings.NewReader("hello")})
	err := f.client(t).UploadComponent(context.Background(), "raw-hosted", upload)
	require.NoError(t, err)

	err = f.client(t).UploadComponent(context.Background(), "raw-hosted", UploadComponentRequest{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func partKey(p *multipart.Part) string {
	if p.FileName() != "" {
		return p.FormName() + "@" + p.FileName()
	}
	return p.FormName()
}
