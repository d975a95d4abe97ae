package httpadapter

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"

	"creative-hub/internal/core/port"
)

const multipartMemory = 32 << 20

type presignRequest struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
	CreativeID  string `json:"creativeId"`
}

// handleUpload streams a multipart "file" field to object storage. An
// optional "creative_id" field must reference an existing creative.
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if h.svc.Uploader == nil {
		h.writeError(w, "upload", fmt.Errorf("uploads: %w", port.ErrStorageDisabled))
		return
	}
	if h.svc.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.svc.MaxUploadBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "file too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	creativeID := r.FormValue("creative_id")
	if creativeID != "" {
		if _, err = h.svc.Creatives.Get(creativeID); err != nil {
			h.writeError(w, "upload", err)
			return
		}
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	obj, err := h.svc.Uploader.Upload(r.Context(), objectKey(creativeID, header.Filename), contentType, file)
	if err != nil {
		h.writeError(w, "upload", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, obj)
}

// handlePresign returns a presigned PUT URL for a direct client upload.
func (h *Handler) handlePresign(w http.ResponseWriter, r *http.Request) {
	if h.svc.Uploader == nil {
		h.writeError(w, "presign", fmt.Errorf("uploads: %w", port.ErrStorageDisabled))
		return
	}
	var req presignRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.CreativeID != "" {
		if _, err := h.svc.Creatives.Get(req.CreativeID); err != nil {
			h.writeError(w, "presign", err)
			return
		}
	}
	res, err := h.svc.Uploader.PresignPut(r.Context(), objectKey(req.CreativeID, req.Filename), req.ContentType, h.svc.PresignTTL)
	if err != nil {
		h.writeError(w, "presign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// objectKey builds creatives/<creative id or "unassigned">/<uuid>-<file>.
// Both caller-supplied parts are reduced to a single escaped segment so a
// key can never leave its creative's prefix.
func objectKey(creativeID, filename string) string {
	dir := "unassigned"
	if creativeID != "" {
		dir = keySegment(creativeID)
	}
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	if name == "." || name == "/" || name == ".." {
		name = "file"
	}
	return "creatives/" + dir + "/" + uuid.NewString() + "-" + name
}

func keySegment(s string) string {
	seg := url.PathEscape(s)
	if seg == "." || seg == ".." {
		seg = strings.ReplaceAll(seg, ".", "%2E")
	}
	return seg
}
