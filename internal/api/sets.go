package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"quizdeck/internal/question"
)

// ListSets fetches all question sets owned by the current user.
func (c *Client) ListSets(ctx context.Context) ([]question.Set, error) {
	var sets []question.Set
	if err := c.getJSON(ctx, "/api/question-sets", &sets); err != nil {
		return nil, err
	}
	return sets, nil
}

// DeleteSet removes a question set and all of its questions.
func (c *Client) DeleteSet(ctx context.Context, id int) error {
	path := fmt.Sprintf("/api/question-sets/%d", id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, nil)
}

// RenameSet changes a question set's display name.
func (c *Client) RenameSet(ctx context.Context, id int, name string) error {
	path := fmt.Sprintf("/api/question-sets/%d/name", id)
	payload := struct {
		Name string `json:"name"`
	}{Name: name}
	return c.sendJSON(ctx, http.MethodPut, path, payload, nil)
}

// UploadRequest describes a file submitted for question generation.
// Reader takes precedence over Path; Filename names the multipart part.
type UploadRequest struct {
	Path         string
	Reader       io.Reader
	Filename     string
	SetName      string
	NumQuestions int
}

// UploadResponse is the union returned by the upload endpoint: either a
// session to poll or an immediate structured-import result.
type UploadResponse struct {
	SessionID string
	Imported  int
	Message   string
	Immediate bool
}

// UploadFile submits a lecture file for generation or a structured JSON
// import. The backend decides which based on the file type.
func (c *Client) UploadFile(ctx context.Context, req UploadRequest) (UploadResponse, error) {
	reader := req.Reader
	filename := req.Filename
	if reader == nil {
		if req.Path == "" {
			return UploadResponse{}, errors.New("upload: no file provided")
		}
		file, err := os.Open(req.Path)
		if err != nil {
			return UploadResponse{}, err
		}
		defer file.Close()
		reader = file
		if filename == "" {
			filename = filepath.Base(req.Path)
		}
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return UploadResponse{}, err
	}
	if _, err := io.Copy(part, reader); err != nil {
		return UploadResponse{}, fmt.Errorf("upload: read file: %w", err)
	}
	if err := form.WriteField("set_name", req.SetName); err != nil {
		return UploadResponse{}, err
	}
	if req.NumQuestions > 0 {
		if err := form.WriteField("num_questions", strconv.Itoa(req.NumQuestions)); err != nil {
			return UploadResponse{}, err
		}
	}
	if err := form.Close(); err != nil {
		return UploadResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-file", &buf)
	if err != nil {
		return UploadResponse{}, err
	}
	httpReq.Header.Set("Content-Type", form.FormDataContentType())

	var payload struct {
		SessionID         string `json:"session_id"`
		QuestionsImported *int   `json:"questions_imported"`
		Message           string `json:"message"`
	}
	if err := c.doJSON(httpReq, &payload); err != nil {
		return UploadResponse{}, err
	}
	if payload.QuestionsImported != nil {
		return UploadResponse{
			Imported:  *payload.QuestionsImported,
			Message:   payload.Message,
			Immediate: true,
		}, nil
	}
	if payload.SessionID == "" {
		return UploadResponse{}, errors.New("upload: no session id in response")
	}
	return UploadResponse{SessionID: payload.SessionID, Message: payload.Message}, nil
}

// Progress is one snapshot of a generation job's state.
type Progress struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Percent float64 `json:"percent"`
}

// Upload progress terminal statuses.
const (
	StatusComplete = "complete"
	StatusError    = "error"
)

// UploadProgress polls the state of an upload session.
func (c *Client) UploadProgress(ctx context.Context, sessionID string) (Progress, error) {
	var progress Progress
	if err := c.getJSON(ctx, "/api/upload-progress/"+sessionID, &progress); err != nil {
		return Progress{}, err
	}
	return progress, nil
}
