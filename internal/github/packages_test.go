package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/require"
)

// writeJSON encodes v as JSON to the response writer. Panics on error (test only).
func writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic(err)
	}
}

// newTestClient creates a test HTTP server and a GitHub client pointed at it.
func newTestClient(t *testing.T, mux *http.ServeMux) *gh.Client {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := gh.NewClient(nil)
	base, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base
	return client
}

// containerVersion builds a package version payload carrying the given tags.
func containerVersion(tags ...string) map[string]interface{} {
	if tags == nil {
		tags = []string{}
	}
	return map[string]interface{}{
		"metadata": map[string]interface{}{
			"package_type": "container",
			"container": map[string]interface{}{
				"tags": tags,
			},
		},
	}
}

func TestListTags_OrgPackage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orgs/myorg/packages/container/my-app/versions", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "container", r.URL.Query().Get("package_type"))
		writeJSON(w, []map[string]interface{}{
			containerVersion("24.9.5", "latest"),
			containerVersion("24.9.4"),
		})
	})

	source := NewPackageTagSource(newTestClient(t, mux), "myorg", "my-app")

	tags, err := source.ListTags(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"24.9.5", "latest", "24.9.4"}, tags)
}

func TestListTags_UserFallbackOn404(t *testing.T) {
	mux := http.NewServeMux()
	// No org route registered: the org endpoint answers 404.
	mux.HandleFunc("/users/someuser/packages/container/my-app/versions", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, []map[string]interface{}{containerVersion("24.10.1")})
	})

	source := NewPackageTagSource(newTestClient(t, mux), "someuser", "my-app")

	tags, err := source.ListTags(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"24.10.1"}, tags)
}

func TestListTags_Paginated(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orgs/myorg/packages/container/my-app/versions", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			writeJSON(w, []map[string]interface{}{containerVersion("24.9.1")})
			return
		}
		w.Header().Set("Link", `</orgs/myorg/packages/container/my-app/versions?page=2>; rel="next"`)
		writeJSON(w, []map[string]interface{}{containerVersion("24.9.2")})
	})

	source := NewPackageTagSource(newTestClient(t, mux), "myorg", "my-app")

	tags, err := source.ListTags(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"24.9.2", "24.9.1"}, tags)
}

func TestListTags_SkipsVersionsWithoutContainerMetadata(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orgs/myorg/packages/container/my-app/versions", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, []map[string]interface{}{
			{},
			{"metadata": map[string]interface{}{"package_type": "container"}},
			containerVersion("24.8.3"),
		})
	})

	source := NewPackageTagSource(newTestClient(t, mux), "myorg", "my-app")

	tags, err := source.ListTags(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"24.8.3"}, tags)
}

func TestListTags_AuthFailureIsNotSwallowed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orgs/myorg/packages/container/my-app/versions", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		writeJSON(w, map[string]interface{}{"message": "Bad credentials"})
	})

	source := NewPackageTagSource(newTestClient(t, mux), "myorg", "my-app")

	_, err := source.ListTags(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "my-app")
}
