package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rateCardBody = `{"message":"ok","type":"success","result":[
	{"currency_code":"USD","currency_description":"US Dollar","bpc":"84.1","bcn":85.2},
	{"currency_code":"EUR","currency_description":"Euro","b":"91"},
	{"currency_code":"XXX","currency_description":"Broken","b":"0"}
]}`

func newProvider(t *testing.T, gotCity *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotCity = r.URL.Query().Get("city_code")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, rateCardBody)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"--city", "MUM", "-q", "paris"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "MUM", opts.city)
	assert.Equal(t, "paris", opts.query)

	opts, err = parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, defaultCity, opts.city)
	assert.Empty(t, opts.query)

	_, err = parseFlags([]string{"--nope"}, io.Discard)
	assert.Error(t, err)
}

func TestRun_PrintsRateCard(t *testing.T) {
	color.NoColor = true
	var gotCity string
	srv := newProvider(t, &gotCity)

	var out bytes.Buffer
	err := run(context.Background(), options{city: "del", baseURL: srv.URL}, &out)

	require.NoError(t, err)
	assert.Equal(t, "DEL", gotCity)
	text := out.String()
	assert.Contains(t, text, "Rates for DEL")
	assert.Contains(t, text, "84.10")
	assert.Contains(t, text, "85.20")
	assert.Contains(t, text, "91.00")
	assert.NotContains(t, text, "Broken")
}

func TestRun_SearchesPicker(t *testing.T) {
	color.NoColor = true
	var gotCity string
	srv := newProvider(t, &gotCity)

	var out bytes.Buffer
	err := run(context.Background(), options{city: "DEL", query: "paris", baseURL: srv.URL}, &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "EUR  Euro")
	assert.NotContains(t, out.String(), "USD")
}

func TestRun_NoMatches(t *testing.T) {
	color.NoColor = true
	var gotCity string
	srv := newProvider(t, &gotCity)

	var out bytes.Buffer
	err := run(context.Background(), options{city: "DEL", query: "atlantis", baseURL: srv.URL}, &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "no matching currencies")
}

func TestRun_ProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := run(context.Background(), options{city: "DEL", baseURL: srv.URL}, io.Discard)
	assert.Error(t, err)
}
