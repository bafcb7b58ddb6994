package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testClient(url string) *Client {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(url, 5*time.Second, log)
}

func TestUploadSendsMultipartSeries(t *testing.T) {
	var gotNames []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/upload" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("parsing multipart form: %v", err)
		}
		for _, fh := range r.MultipartForm.File["dicomFiles"] {
			gotNames = append(gotNames, fh.Filename)
		}
		w.Write([]byte(`{"status":"success","message":"2 files"}`))
	}))
	defer srv.Close()

	files := []File{
		{Name: "/series/IM-0001.dcm", Data: []byte{1, 2, 3}},
		{Name: "/series/IM-0002.dcm", Data: []byte{4, 5}},
	}
	reply, err := testClient(srv.URL).Upload(context.Background(), files)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if reply.Status != "success" {
		t.Errorf("reply = %+v", reply)
	}
	if len(gotNames) != 2 || gotNames[0] != "IM-0001.dcm" || gotNames[1] != "IM-0002.dcm" {
		t.Errorf("uploaded names = %v, want base names in order", gotNames)
	}
}

func TestStartProcessingErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/process" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status":"error","message":"no series uploaded"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).StartProcessing(context.Background())
	var terr *TransferError
	if !errors.As(err, &terr) {
		t.Fatalf("got %v, want TransferError", err)
	}
	if terr.Op != "process" || terr.Message != "no series uploaded" {
		t.Errorf("error = %+v", terr)
	}
}

func TestStartProcessingRejectsNonSuccessStatus(t *testing.T) {
	// HTTP 200 with an error envelope is still a failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"segmentation failed"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).StartProcessing(context.Background())
	var terr *TransferError
	if !errors.As(err, &terr) {
		t.Fatalf("got %v, want TransferError", err)
	}
	if terr.Message != "segmentation failed" {
		t.Errorf("message = %q", terr.Message)
	}
}

func TestFetchVolumeReturnsRawBytes(t *testing.T) {
	payload := make([]byte, 256)
	for i := range payload {
		payload[i] = byte(i)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/volume" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write(payload)
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).FetchVolume(context.Background())
	if err != nil {
		t.Fatalf("FetchVolume: %v", err)
	}
	if len(got) != len(payload) {
		t.Fatalf("fetched %d bytes, want %d", len(got), len(payload))
	}
	for i := range payload {
		if got[i] != payload[i] {
			t.Fatalf("byte %d = %d, want %d", i, got[i], payload[i])
		}
	}
}

func TestFetchEndpointPaths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte("x"))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	ctx := context.Background()
	if _, err := c.FetchMask(ctx); err != nil {
		t.Fatalf("FetchMask: %v", err)
	}
	if _, err := c.FetchMesh(ctx); err != nil {
		t.Fatalf("FetchMesh: %v", err)
	}

	want := []string{"/api/segmented-volume", "/api/model"}
	if len(paths) != 2 || paths[0] != want[0] || paths[1] != want[1] {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestFetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"volume not generated yet"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchVolume(context.Background())
	var terr *TransferError
	if !errors.As(err, &terr) {
		t.Fatalf("got %v, want TransferError", err)
	}
	if terr.StatusCode != http.StatusNotFound || terr.Message != "volume not generated yet" {
		t.Errorf("error = %+v", terr)
	}
}

func TestTransferErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransferError{Op: "volume", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("TransferError should unwrap to its cause")
	}
	if err.Error() == "" {
		t.Error("empty error string")
	}
}
