package handlers

import (
	"net/http"
	"time"

	request "orcafacil/internal/adapter/http/dto/request"
	response "orcafacil/internal/adapter/http/dto/response"
	"orcafacil/internal/usecase/interfaces"
	"orcafacil/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	uploadURLTTL   = 10 * time.Minute
	downloadURLTTL = 15 * time.Minute
)

var errInvalidUploadPayload = pkg.NewDomainErrorSimple("INVALID_UPLOAD_INPUT", "Invalid upload request", http.StatusBadRequest)

// FileHandler exposes direct blob access for client-managed attachments.
// Stored PDFs keep going through the budget endpoints; this surface covers
// ad-hoc files such as logos referenced by budget templates.
type FileHandler struct {
	blobs interfaces.IBlobStore
}

func NewFileHandler(blobs interfaces.IBlobStore) *FileHandler {
	return &FileHandler{blobs: blobs}
}

// UploadURL mints a fresh file id and a presigned PUT URL for it. The id is
// returned bare so it can be passed back to the id-keyed routes unchanged;
// the store key namespacing stays on this side.
func (h *FileHandler) UploadURL(c *gin.Context) {
	var payload request.UploadURLRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUploadPayload.HTTPStatus, errInvalidUploadPayload.ToHTTPError())
		return
	}

	fileID := uuid.New().String()
	url, err := h.blobs.PresignUpload(c.Request.Context(), "files/"+fileID, payload.ContentType, uploadURLTTL)
	if err != nil {
		appErr := pkg.NewDomainError("UPLOAD_URL_FAILED", "Could not create upload URL", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.UploadURLResponse{FileID: fileID, UploadURL: url})
}

// FileURL returns a short-lived GET URL for a stored file.
func (h *FileHandler) FileURL(c *gin.Context) {
	url, err := h.blobs.PresignDownload(c.Request.Context(), fileKey(c), downloadURLTTL)
	if err != nil {
		appErr := pkg.NewDomainError("FILE_URL_FAILED", "Could not create download URL", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FileURLResponse{URL: url})
}

// DeleteFile removes a stored file. Deleting a missing file succeeds.
func (h *FileHandler) DeleteFile(c *gin.Context) {
	if err := h.blobs.Delete(c.Request.Context(), fileKey(c)); err != nil {
		appErr := pkg.NewDomainError("FILE_DELETE_FAILED", "Could not delete file", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// File ids are bare uuids minted by UploadURL; the store key carries the
// namespace prefix.
func fileKey(c *gin.Context) string {
	return "files/" + c.Param("id")
}
