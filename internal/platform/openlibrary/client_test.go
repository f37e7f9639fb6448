package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestDocNormalization(t *testing.T) {
	doc := Doc{
		Title:            "The Hobbit",
		AuthorNames:      []string{"J. R. R. Tolkien", "Someone Else"},
		Subjects:         []string{"Fantasy fiction", "Adventure"},
		Publishers:       []string{"Allen & Unwin"},
		CoverID:          12345,
		FirstPublishYear: 1937,
	}

	assert.Equal(t, "J. R. R. Tolkien, Someone Else", doc.DisplayAuthor())
	assert.Equal(t, "Fantasy fiction", doc.Category())
	assert.Equal(t, "https://covers.openlibrary.org/b/id/12345-M.jpg", doc.CoverURL())
	assert.Equal(t, "1937", doc.PublishedDate())
	assert.Equal(t, "Allen & Unwin", doc.Publisher())
}

func TestDocNormalization_MissingFields(t *testing.T) {
	doc := Doc{Title: "Untitled"}

	assert.Equal(t, "Unknown", doc.DisplayAuthor())
	assert.Empty(t, doc.Category())
	assert.Empty(t, doc.CoverURL())
	assert.Empty(t, doc.PublishedDate())
	assert.Empty(t, doc.Publisher())
}

func TestClientSearch(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"numFound": 1, "docs": [{"title": "Dune", "author_name": ["Frank Herbert"], "cover_i": 99, "first_publish_year": 1965}]}`))
	}))
	defer server.Close()

	client := NewClient("test-agent", 100, 0)
	client.baseURL = server.URL

	res, err := client.Search(context.Background(), "dune", 5)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.NumFound)
	assert.Len(t, res.Docs, 1)
	assert.Equal(t, "Dune", res.Docs[0].Title)
	assert.Contains(t, gotPath, "q=dune")
	assert.Contains(t, gotPath, "limit=5")
}

func TestClientSearch_RetriesOn500(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"numFound": 0, "docs": []}`))
	}))
	defer server.Close()

	client := NewClient("test-agent", 100, 2)
	client.baseURL = server.URL

	res, err := client.Search(context.Background(), "anything", 1)

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, res.NumFound)
}

func TestClientSearch_GivesUpOn404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("test-agent", 100, 3)
	client.baseURL = server.URL

	_, err := client.Search(context.Background(), "anything", 1)
	assert.Error(t, err)
}

func TestNewClientClampsRate(t *testing.T) {
	for _, rps := range []int{0, -1} {
		c := NewClient("test-agent", rps, 0)
		assert.NotNil(t, c.limiter)
		assert.Equal(t, rate.Every(time.Second), c.limiter.Limit())
	}
}
