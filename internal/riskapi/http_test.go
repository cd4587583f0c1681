package riskapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodVerdict = `{
	"success": true,
	"risk_score": 27.45,
	"risk_category": "Low Risk",
	"cognitive_risk": 31.2,
	"speech_analyzed": false
}`

func testClient(srv *httptest.Server) *HTTPClient {
	return NewHTTPClient(Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func TestAnalyze_FieldsAsStrings(t *testing.T) {
	var form map[string]string
	var hadAudioPart bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/analyze", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		form = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			require.Len(t, v, 1)
			form[k] = v[0]
		}
		_, _, err := r.FormFile("audio_file")
		hadAudioPart = err == nil

		w.Write([]byte(goodVerdict))
	}))
	defer srv.Close()

	v, err := testClient(srv).Analyze(context.Background(), Submission{
		WordScore:      85,
		MemoryScore:    6,
		ReactionTimeMs: 340,
	})
	require.NoError(t, err)

	assert.Equal(t, "85", form["word_score"])
	assert.Equal(t, "6", form["memory_score"])
	assert.Equal(t, "340", form["reaction_time"])
	assert.False(t, hadAudioPart, "no audio_file part should be sent without a sample")
	assert.Equal(t, 27.45, v.RiskScore)
	assert.Equal(t, "Low Risk", v.RiskCategory)
}

func TestAnalyze_AudioPart(t *testing.T) {
	var filename string
	var size int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("audio_file")
		require.NoError(t, err)
		defer f.Close()
		filename = hdr.Filename
		size = hdr.Size
		w.Write([]byte(goodVerdict))
	}))
	defer srv.Close()

	_, err := testClient(srv).Analyze(context.Background(), Submission{
		WordScore:      85,
		MemoryScore:    6,
		ReactionTimeMs: 340,
		Audio:          &AudioFile{Filename: "sample.wav", Data: []byte("RIFFdata")},
	})
	require.NoError(t, err)

	assert.Equal(t, "sample.wav", filename)
	assert.Equal(t, int64(8), size)
}

func TestAnalyze_BadRequestIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "word_score must be between 0 and 100"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := testClient(srv).Analyze(context.Background(), Submission{WordScore: 120})

	var rej *ErrRejected
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, http.StatusBadRequest, rej.Status)
	assert.Contains(t, rej.Detail, "word_score")
}

func TestAnalyze_ServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv).Analyze(context.Background(), Submission{})

	var unavail *ErrUnavailable
	require.ErrorAs(t, err, &unavail)
	assert.Equal(t, http.StatusInternalServerError, unavail.Status)
}

func TestAnalyze_ConnectionRefusedIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	_, err := testClient(srv).Analyze(context.Background(), Submission{})

	var unavail *ErrUnavailable
	require.ErrorAs(t, err, &unavail)
	assert.Zero(t, unavail.Status)
}

func TestAnalyze_MalformedVerdict(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "<html>oops</html>"},
		{"missing fields", `{"success": true}`},
		{"risk out of range", `{"success": true, "risk_score": 140, "risk_category": "High Risk", "cognitive_risk": 10, "speech_analyzed": false}`},
		{"empty category", `{"success": true, "risk_score": 40, "risk_category": "", "cognitive_risk": 10, "speech_analyzed": false}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := testClient(srv).Analyze(context.Background(), Submission{})

			var inv *ErrInvalidResponse
			require.ErrorAs(t, err, &inv)
		})
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.Write([]byte(`{"status": "healthy"}`))
	}))
	defer srv.Close()

	assert.NoError(t, testClient(srv).Health(context.Background()))
}

func TestHealth_Down(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	var unavail *ErrUnavailable
	require.ErrorAs(t, testClient(srv).Health(context.Background()), &unavail)
}
