// Package client talks to the processing backend: series upload, run
// trigger, and artifact fetches (intensity volume, label volume, mesh).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// uploadField is the multipart form field the backend reads the series from.
const uploadField = "dicomFiles"

// TransferError is a failed backend round trip: transport failure, non-2xx
// response, or an explicit error envelope. Displayed volume and mesh state
// must be left untouched when one is reported.
type TransferError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *TransferError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: backend reported %q", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: HTTP %d", e.Op, e.StatusCode)
}

func (e *TransferError) Unwrap() error { return e.Err }

// Reply is the backend's JSON envelope on upload and process requests.
type Reply struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// File is one series file queued for upload.
type File struct {
	Name string
	Data []byte
}

// Client is the HTTP API consumer. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

// New builds a client for the given base URL, e.g. "http://localhost:5000".
func New(baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Upload submits the image series as one multipart POST.
func (c *Client) Upload(ctx context.Context, files []File) (*Reply, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := mw.CreateFormFile(uploadField, filepath.Base(f.Name))
		if err != nil {
			return nil, &TransferError{Op: "upload", Err: err}
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, &TransferError{Op: "upload", Err: err}
		}
	}
	if err := mw.Close(); err != nil {
		return nil, &TransferError{Op: "upload", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &body)
	if err != nil {
		return nil, &TransferError{Op: "upload", Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.doEnvelope("upload", req)
}

// StartProcessing triggers the full backend run. The call returns only when
// the backend has finished (or failed) the run.
func (c *Client) StartProcessing(ctx context.Context) (*Reply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/process", nil)
	if err != nil {
		return nil, &TransferError{Op: "process", Err: err}
	}
	return c.doEnvelope("process", req)
}

// FetchVolume retrieves the raw intensity volume transfer buffer.
func (c *Client) FetchVolume(ctx context.Context) ([]byte, error) {
	return c.fetch(ctx, "volume", "/api/volume")
}

// FetchMask retrieves the raw label volume transfer buffer.
func (c *Client) FetchMask(ctx context.Context) ([]byte, error) {
	return c.fetch(ctx, "mask", "/api/segmented-volume")
}

// FetchMesh retrieves the STL mesh artifact.
func (c *Client) FetchMesh(ctx context.Context) ([]byte, error) {
	return c.fetch(ctx, "mesh", "/api/model")
}

func (c *Client) fetch(ctx context.Context, op, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &TransferError{Op: op, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransferError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransferError{Op: op, StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	// Artifacts apply only after the transfer completes in full; a partial
	// read surfaces here as an error, never as truncated data downstream.
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransferError{Op: op, Err: err}
	}

	c.log.WithFields(logrus.Fields{"op": op, "bytes": len(data)}).Debug("artifact fetched")
	return data, nil
}

func (c *Client) doEnvelope(op string, req *http.Request) (*Reply, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransferError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	var reply Reply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &TransferError{Op: op, StatusCode: resp.StatusCode}
		}
		return nil, &TransferError{Op: op, Err: err}
	}

	if resp.StatusCode != http.StatusOK || reply.Status != "success" {
		return nil, &TransferError{Op: op, StatusCode: resp.StatusCode, Message: reply.Message}
	}
	return &reply, nil
}

// readErrorMessage pulls the "error" or "message" field out of a JSON error
// body, best effort.
func readErrorMessage(r io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
