package response

type UploadURLResponse struct {
	FileID    string `json:"fileId"`
	UploadURL string `json:"uploadUrl"`
}

type FileURLResponse struct {
	URL string `json:"url"`
}
