package fileupload

import (
	"os"

	"idguard.io/infrastructure/file_upload/azure"
	"idguard.io/infrastructure/file_upload/cloudflare"
	"idguard.io/infrastructure/file_upload/types"
)

var FileUploader types.FileUploaderType

func InitialiseFileUploader() {
	switch os.Getenv("BLOB_PROVIDER") {
	case "r2":
		FileUploader = &cloudflare.R2SignedURLService{
			AccountID:       os.Getenv("R2_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
			Region:          "auto",
		}
	default:
		FileUploader = &azure.AzureBlobSignedURLService{
			AccountName:   os.Getenv("AZURE_STORAGE_ACCOUNT_NAME"),
			AccountKey:    os.Getenv("AZURE_STORAGE_ACCOUNT_KEY"),
			ContainerName: os.Getenv("AZURE_CONTAINER_NAME"),
		}
	}
}
