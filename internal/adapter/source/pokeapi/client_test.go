package pokeapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/dex/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(srv.URL, "https://img.test/art", 0, logger)
}

func TestListEntries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokemon", r.URL.Path)
		assert.Equal(t, "1025", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"count":2,"next":null,"previous":null,"results":[
			{"name":"bulbasaur","url":"https://pokeapi.co/api/v2/pokemon/1/"},
			{"name":"ivysaur","url":"https://pokeapi.co/api/v2/pokemon/2/"}]}`))
	})

	entries, err := client.ListEntries(context.Background(), 1025)
	require.NoError(t, err)
	assert.Equal(t, []domain.Entry{
		{ID: "1", Name: "bulbasaur", ImageURL: "https://img.test/art/1.png"},
		{ID: "2", Name: "ivysaur", ImageURL: "https://img.test/art/2.png"},
	}, entries)
}

func TestListEntriesNon2xx(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.ListEntries(context.Background(), 10)
	var fe *domain.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusServiceUnavailable, fe.StatusCode)
}

func TestListEntriesMalformed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": "nope"}`))
	})

	_, err := client.ListEntries(context.Background(), 10)
	var pe *domain.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "list entries", pe.Op)
}

func TestServerOffline(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, "", 0, nil)
	_, err := client.ListCategories(context.Background(), 50)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrServerOffline))
}

func TestGetEntry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokemon/charmander", r.URL.Path)
		w.Write([]byte(`{"id":4,"name":"charmander","height":6,"weight":85,
			"types":[{"slot":1,"type":{"name":"fire","url":"u"}}],
			"stats":[{"base_stat":39,"effort":0,"stat":{"name":"hp","url":"u"}}],
			"sprites":{"front_default":"front.png","other":{"official-artwork":{"front_default":"art.png"}}}}`))
	})

	detail, err := client.GetEntry(context.Background(), "charmander")
	require.NoError(t, err)
	assert.Equal(t, 4, detail.ID)
	assert.Equal(t, []string{"fire"}, detail.Types)
	assert.Equal(t, []domain.Stat{{Name: "hp", Base: 39}}, detail.Stats)
	assert.Equal(t, "art.png", detail.ArtworkURL)
	assert.Equal(t, "front.png", detail.SpriteURL)
}

func TestGetEntryNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := client.GetEntry(context.Background(), "missingno")
	assert.True(t, errors.Is(err, domain.ErrEntryNotFound))
}

func TestCategories(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/type":
			w.Write([]byte(`{"results":[{"name":"normal","url":"https://pokeapi.co/api/v2/type/1/"}]}`))
		case "/type/fire":
			w.Write([]byte(`{"id":10,"name":"fire","pokemon":[
				{"slot":1,"pokemon":{"name":"charmander","url":"https://pokeapi.co/api/v2/pokemon/4/"}},
				{"slot":1,"pokemon":{"name":"vulpix","url":"https://pokeapi.co/api/v2/pokemon/37/"}}]}`))
		default:
			http.NotFound(w, r)
		}
	})

	categories, err := client.ListCategories(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{Name: "normal", URL: "https://pokeapi.co/api/v2/type/1/"}}, categories)

	members, err := client.GetCategoryMembers(context.Background(), "fire")
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "4", members[0].ID)
	assert.Equal(t, "vulpix", members[1].Name)

	_, err = client.GetCategoryMembers(context.Background(), "nope")
	var fe *domain.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)
}
