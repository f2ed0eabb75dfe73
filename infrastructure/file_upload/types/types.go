package types

// FileUploaderType signs object-storage URLs for member photo blobs.
// A photoRef that is not an inline payload or an absolute URL is treated
// as a blob name inside the configured container.
type FileUploaderType interface {
	GenerateDownloadURL(fileName string) (*string, error)
	GenerateUploadURL(fileName string) (*string, error)
	CheckFileExists(file_name string) (bool, error)
	DeleteFile(file_name string) error
}

type SignedURLPermission struct {
	Read   bool `json:"read"`
	Write  bool `json:"write"`
	Delete bool `json:"delete"`
}
