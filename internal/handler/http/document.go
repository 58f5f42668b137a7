package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/garudasec/billing-backend-go/internal/domain/document"
	"github.com/garudasec/billing-backend-go/internal/handler/http/response"
	"github.com/garudasec/billing-backend-go/internal/service/file"
)

const maxUploadMemory = 10 << 20

type DocumentHandler interface {
	UploadDocument(w http.ResponseWriter, r *http.Request)
	ListDocuments(w http.ResponseWriter, r *http.Request)
	DownloadDocument(w http.ResponseWriter, r *http.Request)
	DeleteDocument(w http.ResponseWriter, r *http.Request)
}

type DocumentHandlerImpl struct {
	fileService file.FileService
}

func NewDocumentHandler(fileService file.FileService) DocumentHandler {
	return &DocumentHandlerImpl{fileService: fileService}
}

// UploadDocument implements DocumentHandler.
func (h *DocumentHandlerImpl) UploadDocument(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		slog.Error("UploadDocument parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "file field is required", nil)
		return
	}
	defer f.Close()

	docType := document.DocumentType(r.FormValue("type"))
	if !docType.Valid() {
		response.HandleError(w, document.ErrUnsupportedType)
		return
	}

	var uploadedBy string
	if _, claims, err := jwtauth.FromContext(r.Context()); err == nil {
		uploadedBy, _ = claims["user_id"].(string)
	}

	doc, err := h.fileService.UploadDocument(
		r.Context(),
		employeeID,
		docType,
		header.Filename,
		header.Size,
		header.Header.Get("Content-Type"),
		f,
		uploadedBy,
	)
	if err != nil {
		slog.Error("UploadDocument service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document uploaded successfully", doc)
}

// ListDocuments implements DocumentHandler.
func (h *DocumentHandlerImpl) ListDocuments(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	docs, err := h.fileService.ListDocuments(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, docs)
}

// DownloadDocument implements DocumentHandler.
func (h *DocumentHandlerImpl) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, rc, err := h.fileService.DownloadDocument(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", doc.MimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	if _, err := io.Copy(w, rc); err != nil {
		slog.Error("DownloadDocument stream error", "error", err, "document_id", id)
	}
}

// DeleteDocument implements DocumentHandler.
func (h *DocumentHandlerImpl) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.fileService.DeleteDocument(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document deleted successfully", nil)
}
