package assemblyai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"capstyle/internal/types"
)

const (
	defaultBaseURL = "https://api.assemblyai.com"
	requestTimeout = 90 * time.Second
)

type Adapter struct {
	key          string
	baseURL      string
	client       *http.Client
	pollInterval time.Duration
}

func New(apiKey, baseURL string) *Adapter {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Adapter{
		key:          apiKey,
		baseURL:      baseURL,
		client:       &http.Client{Timeout: 5 * time.Minute},
		pollInterval: 3 * time.Second,
	}
}

// Transcribe uploads the audio, requests a diarized transcript and polls
// until the job settles. Speakers come back as single letters; they are
// normalized to "Speaker A" style labels.
func (a *Adapter) Transcribe(ctx context.Context, audioPath string, maxSpeakers int) (types.Transcript, error) {
	audioURL, err := a.upload(ctx, audioPath)
	if err != nil {
		return types.Transcript{}, err
	}

	id, err := a.create(ctx, audioURL, maxSpeakers)
	if err != nil {
		return types.Transcript{}, err
	}

	for {
		tr, status, err := a.poll(ctx, id)
		if err != nil {
			return types.Transcript{}, err
		}
		switch status {
		case "completed":
			for i := range tr.Utterances {
				tr.Utterances[i].Speaker = "Speaker " + tr.Utterances[i].Speaker
			}
			return tr, nil
		case "error":
			return types.Transcript{}, fmt.Errorf("transcription job %s failed", id)
		}
		select {
		case <-ctx.Done():
			return types.Transcript{}, ctx.Err()
		case <-time.After(a.pollInterval):
		}
	}
}

func (a *Adapter) upload(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	req, err := http.NewRequestWithContext(ctx, "POST", a.baseURL+"/v2/upload", f)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", a.key)
	req.Header.Set("Content-Type", "application/octet-stream")

	var out struct {
		UploadURL string `json:"upload_url"`
	}
	if err := a.do(req, &out); err != nil {
		return "", fmt.Errorf("upload audio: %w", err)
	}
	if out.UploadURL == "" {
		return "", fmt.Errorf("upload audio: empty upload_url")
	}
	return out.UploadURL, nil
}

func (a *Adapter) create(ctx context.Context, audioURL string, maxSpeakers int) (string, error) {
	payload := map[string]any{
		"audio_url":      audioURL,
		"speaker_labels": true,
	}
	if maxSpeakers > 0 {
		payload["speakers_expected"] = maxSpeakers
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal transcript request: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, "POST", a.baseURL+"/v2/transcript", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", a.key)
	req.Header.Set("Content-Type", "application/json")

	var out struct {
		ID string `json:"id"`
	}
	if err := a.do(req, &out); err != nil {
		return "", fmt.Errorf("create transcript: %w", err)
	}
	if out.ID == "" {
		return "", fmt.Errorf("create transcript: empty id")
	}
	return out.ID, nil
}

func (a *Adapter) poll(ctx context.Context, id string) (types.Transcript, string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, "GET", a.baseURL+"/v2/transcript/"+id, nil)
	if err != nil {
		return types.Transcript{}, "", err
	}
	req.Header.Set("Authorization", a.key)

	var out struct {
		Status     string            `json:"status"`
		Error      string            `json:"error"`
		Utterances []types.Utterance `json:"utterances"`
	}
	if err := a.do(req, &out); err != nil {
		return types.Transcript{}, "", fmt.Errorf("poll transcript: %w", err)
	}
	if out.Status == "error" && out.Error != "" {
		return types.Transcript{}, "", fmt.Errorf("transcription failed: %s", out.Error)
	}
	return types.Transcript{Utterances: out.Utterances}, out.Status, nil
}

func (a *Adapter) do(req *http.Request, out any) error {
	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("status %d and read body failed: %v", resp.StatusCode, readErr)
		}
		return fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(rb))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
