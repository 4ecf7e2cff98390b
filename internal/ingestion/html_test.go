package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPageHTML = `<html>
<head><title>Careers</title><script>var x = 1;</script></head>
<body>
<nav>Home | Jobs | About</nav>
<div class="job-description">
<h1>Retail Cashier</h1>
<p>We are seeking a reliable cashier to join our busy storefront team and
deliver excellent customer service at the register every single day.</p>
</div>
<footer>Copyright 2026</footer>
</body>
</html>`

func TestExtractJobText_PrefersJobDescriptionBlock(t *testing.T) {
	text, err := ExtractJobText(jobPageHTML)
	require.NoError(t, err)

	assert.Contains(t, text, "Retail Cashier")
	assert.Contains(t, text, "customer service at the register")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright 2026")
	assert.NotContains(t, text, "var x = 1")
}

func TestExtractJobText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>` + strings.Repeat("A long enough job description. ", 5) + `</p></body></html>`
	text, err := ExtractJobText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "A long enough job description.")
}

func TestExtractJobText_ShortContent(t *testing.T) {
	text, err := ExtractJobText("<html><body><p>tiny</p></body></html>")
	require.NoError(t, err)
	assert.Contains(t, text, "tiny")
}

func TestFetchJobText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer srv.Close()

	text, err := FetchJobText(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Retail Cashier")
}

func TestFetchJobText_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := FetchJobText(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}
