package httpapi

import (
	"errors"
	"net/http"

	"github.com/valyala/bytebufferpool"

	"github.com/pquint/onice/internal/usecase"
)

// Slack for multipart boundaries and headers on top of the file ceiling.
const multipartOverheadBytes = 512 << 10

const uploadFormHTML = `<!doctype html>
<html>
<head><title>Who's on the ice?</title></head>
<body>
<h1>Upload a scoreboard photo</h1>
<form action="/upload" method="post" enctype="multipart/form-data">
<input type="file" name="file">
<button type="submit">Upload</button>
</form>
</body>
</html>
`

type uploadRequest struct {
	Filename string `validate:"required"`
	Size     int64  `validate:"gt=0"`
}

func (h *Handler) UploadForm(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.UploadForm")
	defer span.End()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(uploadFormHTML))
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Upload")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverheadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.logger.WarnContext(ctx, "upload rejected, request body too large", "limit", maxErr.Limit)
			http.Error(w, "File too large.", http.StatusBadRequest)
			return
		}
		h.logger.WarnContext(ctx, "upload rejected, no file field", "error", err)
		http.Error(w, "No file uploaded.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		h.logger.WarnContext(ctx, "upload rejected, file too large",
			"filename", header.Filename, "size", header.Size, "limit", h.maxUploadBytes)
		http.Error(w, "File too large.", http.StatusBadRequest)
		return
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(file); err != nil {
		h.logger.ErrorContext(ctx, "upload read failed", "filename", header.Filename, "error", err)
		writeInternalError(ctx, w)
		return
	}

	req := uploadRequest{Filename: header.Filename, Size: int64(buf.Len())}
	if err := h.validator.Struct(req); err != nil {
		h.logger.WarnContext(ctx, "upload rejected, invalid request", "filename", header.Filename, "error", err)
		http.Error(w, "No file uploaded.", http.StatusBadRequest)
		return
	}

	// The pooled buffer goes back on return; the pipeline gets its own copy.
	data := make([]byte, buf.Len())
	copy(data, buf.B)

	res, err := h.scanService.ScanImage(ctx, usecase.ScanInput{Filename: req.Filename, Data: data})
	if err != nil {
		h.logger.ErrorContext(ctx, "scan pipeline failed", "filename", req.Filename, "error", err)
		writeError(ctx, w, err)
		return
	}

	if !res.TeamMatched {
		writeJSON(ctx, w, http.StatusOK, struct{}{})
		return
	}

	writeJSON(ctx, w, http.StatusOK, res.Boxscore)
}
