package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/venturecast/venturecast/internal/config"
	"github.com/venturecast/venturecast/internal/types"
)

// Client converts narration scripts to MP3 audio via the ElevenLabs
// text-to-speech API. Like the script generator, this is a collaborator
// outside the aggregation core: a fallible text-in, bytes-out call with
// its own retry policy.
type Client struct {
	cfg    config.TTSConfig
	http   *http.Client
	logger *slog.Logger
}

// New creates a TTS client.
func New(cfg config.TTSConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger.With("component", "tts"),
	}
}

type synthesizeRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

// Synthesize converts a script to MP3 bytes. Rate limiting (HTTP 429),
// server errors, and transport errors are retried with exponential
// backoff (retry_delay * 2^(attempt-1)); other client errors fail
// immediately. The result is checked for MP3 framing before being
// accepted.
func (c *Client) Synthesize(ctx context.Context, script string) ([]byte, error) {
	if strings.TrimSpace(script) == "" {
		return nil, &types.TTSError{Err: types.ErrEmptyScript}
	}

	maxAttempts := c.cfg.MaxRetries
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		c.logger.Info("converting script to audio", "attempt", attempt, "max_attempts", maxAttempts)

		audio, retryable, err := c.synthesizeOnce(ctx, script)
		if err == nil {
			c.logger.Info("audio generated", "bytes", len(audio))
			return audio, nil
		}
		lastErr = err
		if !retryable {
			return nil, &types.TTSError{Attempts: attempt, Err: err}
		}

		if attempt < maxAttempts {
			delay := c.cfg.RetryDelay * (1 << (attempt - 1))
			c.logger.Warn("tts attempt failed, backing off",
				"attempt", attempt, "delay", delay, "error", err)
			select {
			case <-ctx.Done():
				return nil, &types.TTSError{Attempts: attempt, Err: ctx.Err()}
			case <-time.After(delay):
			}
		}
	}

	return nil, &types.TTSError{Attempts: maxAttempts, Err: lastErr}
}

// synthesizeOnce performs a single API call. The second return value
// reports whether the failure is worth retrying.
func (c *Client) synthesizeOnce(ctx context.Context, script string) ([]byte, bool, error) {
	payload, err := json.Marshal(synthesizeRequest{
		Text:    script,
		ModelID: c.cfg.ModelID,
		VoiceSettings: voiceSettings{
			Stability:       c.cfg.Stability,
			SimilarityBoost: c.cfg.SimilarityBoost,
			Style:           0.0,
			UseSpeakerBoost: true,
		},
	})
	if err != nil {
		return nil, false, err
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s", strings.TrimSuffix(c.cfg.BaseURL, "/"), c.cfg.VoiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retryable, fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}

	if !ValidMP3(audio) {
		return nil, true, fmt.Errorf("generated audio failed validation (%d bytes)", len(audio))
	}
	return audio, false, nil
}

// ValidMP3 performs a cheap sanity check on audio bytes: at least 1KB
// and either an ID3 tag or an MPEG frame sync at the start.
func ValidMP3(data []byte) bool {
	if len(data) < 1024 {
		return false
	}
	if bytes.HasPrefix(data, []byte("ID3")) {
		return true
	}
	return data[0] == 0xFF && data[1]&0xE0 == 0xE0
}
