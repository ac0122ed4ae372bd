package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/venturecast/venturecast/internal/config"
	"github.com/venturecast/venturecast/internal/types"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

func fakeMP3() []byte {
	return append([]byte("ID3"), bytes.Repeat([]byte{0x00}, 2048)...)
}

func testTTSConfig(baseURL string) config.TTSConfig {
	cfg := config.DefaultConfig().TTS
	cfg.APIKey = "test-key"
	cfg.BaseURL = baseURL
	cfg.MaxRetries = 3
	cfg.RetryDelay = time.Millisecond
	cfg.Timeout = 2 * time.Second
	return cfg
}

func TestValidMP3(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want bool
	}{
		{"id3 tag", fakeMP3(), true},
		{"frame sync", append([]byte{0xFF, 0xFB}, bytes.Repeat([]byte{0x00}, 2048)...), true},
		{"too small", []byte("ID3"), false},
		{"wrong magic", bytes.Repeat([]byte{0x42}, 2048), false},
		{"empty", nil, false},
	}
	for _, tc := range cases {
		if got := ValidMP3(tc.data); got != tc.want {
			t.Errorf("%s: ValidMP3 = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSynthesizeEmptyScript(t *testing.T) {
	c := New(testTTSConfig("http://localhost:0"), testLogger)

	_, err := c.Synthesize(context.Background(), "   \n ")

	var ttsErr *types.TTSError
	if !errors.As(err, &ttsErr) {
		t.Fatalf("want *types.TTSError, got %T: %v", err, err)
	}
	if !errors.Is(err, types.ErrEmptyScript) {
		t.Errorf("error should wrap ErrEmptyScript: %v", err)
	}
}

func TestSynthesizeSuccess(t *testing.T) {
	var gotPath, gotKey string
	var gotReq synthesizeRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write(fakeMP3())
	}))
	defer srv.Close()

	cfg := testTTSConfig(srv.URL)
	c := New(cfg, testLogger)

	audio, err := c.Synthesize(context.Background(), "Welcome to the market recap.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ValidMP3(audio) {
		t.Errorf("returned audio should pass validation")
	}
	if gotPath != "/v1/text-to-speech/"+cfg.VoiceID {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if gotReq.Text != "Welcome to the market recap." || gotReq.ModelID != cfg.ModelID {
		t.Errorf("request payload = %+v", gotReq)
	}
	if gotReq.VoiceSettings.Stability != cfg.Stability || !gotReq.VoiceSettings.UseSpeakerBoost {
		t.Errorf("voice settings = %+v", gotReq.VoiceSettings)
	}
}

func TestSynthesizeRetriesRateLimit(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}
		w.Write(fakeMP3())
	}))
	defer srv.Close()

	c := New(testTTSConfig(srv.URL), testLogger)

	audio, err := c.Synthesize(context.Background(), "script text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("server called %d times, want 3", calls)
	}
	if len(audio) == 0 {
		t.Error("no audio returned")
	}
}

func TestSynthesizeClientErrorNotRetried(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "bad voice id", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(testTTSConfig(srv.URL), testLogger)

	_, err := c.Synthesize(context.Background(), "script text")

	var ttsErr *types.TTSError
	if !errors.As(err, &ttsErr) {
		t.Fatalf("want *types.TTSError, got %T: %v", err, err)
	}
	if ttsErr.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", ttsErr.Attempts)
	}
	if calls != 1 {
		t.Errorf("client error retried: %d calls", calls)
	}
	if !strings.Contains(err.Error(), "bad voice id") {
		t.Errorf("error should carry the response snippet: %v", err)
	}
}

func TestSynthesizeExhaustsRetries(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(testTTSConfig(srv.URL), testLogger)

	_, err := c.Synthesize(context.Background(), "script text")

	var ttsErr *types.TTSError
	if !errors.As(err, &ttsErr) {
		t.Fatalf("want *types.TTSError, got %T: %v", err, err)
	}
	if ttsErr.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", ttsErr.Attempts)
	}
	if calls != 3 {
		t.Errorf("server called %d times, want 3", calls)
	}
}

func TestSynthesizeRejectsInvalidAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not audio</html>"))
	}))
	defer srv.Close()

	c := New(testTTSConfig(srv.URL), testLogger)

	_, err := c.Synthesize(context.Background(), "script text")
	if err == nil {
		t.Fatal("invalid audio should be rejected")
	}
	if !strings.Contains(err.Error(), "validation") {
		t.Errorf("error = %v", err)
	}
}
