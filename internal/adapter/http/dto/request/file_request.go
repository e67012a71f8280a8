package request

type UploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}
