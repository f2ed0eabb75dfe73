package cloudflare

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"idguard.io/application/utils"
	"idguard.io/infrastructure/logger"
)

type R2SignedURLService struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

func (c *R2SignedURLService) GenerateUploadURL(fileName string) (*string, error) {
	return utils.GetStringPointer(c.presign("PUT", fileName)), nil
}

func (c *R2SignedURLService) GenerateDownloadURL(fileName string) (*string, error) {
	return utils.GetStringPointer(c.presign("GET", fileName)), nil
}

func (c *R2SignedURLService) DeleteFile(fileName string) error {
	req, err := http.NewRequest("DELETE", c.presign("DELETE", fileName), nil)
	if err != nil {
		return err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		logger.Error("error deleting r2 object", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("r2 delete failed with status %d", res.StatusCode)
	}
	return nil
}

func (c *R2SignedURLService) CheckFileExists(fileName string) (bool, error) {
	req, err := http.NewRequest("HEAD", c.presign("HEAD", fileName), nil)
	if err != nil {
		return false, err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		logger.Error("error checking r2 object", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return false, err
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if res.StatusCode >= 300 {
		return false, fmt.Errorf("r2 head failed with status %d", res.StatusCode)
	}
	return true, nil
}

// presign builds an S3 query-string-auth URL for a single R2 object. R2 only
// honours the "s3" service scope and unsigned payloads.
func (c *R2SignedURLService) presign(httpMethod string, fileName string) string {
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", c.AccountID)
	timestamp := time.Now().UTC()
	dateStamp := timestamp.Format("20060102")
	amzDateTime := timestamp.Format("20060102T150405Z")

	canonicalURI := fmt.Sprintf("/%s/%s", os.Getenv("R2_BUCKET"), fileName)

	query := url.Values{}
	query.Set("X-Amz-Algorithm", "AWS4-HMAC-SHA256")
	query.Set("X-Amz-Credential", fmt.Sprintf("%s/%s/%s/s3/aws4_request",
		c.AccessKeyID, dateStamp, c.Region))
	query.Set("X-Amz-Date", amzDateTime)
	query.Set("X-Amz-Expires", "300")
	query.Set("X-Amz-SignedHeaders", "host")

	host := fmt.Sprintf("%s.r2.cloudflarestorage.com", c.AccountID)
	canonicalHeaders := fmt.Sprintf("host:%s\n", host)

	canonicalRequest := strings.Join([]string{
		httpMethod,
		canonicalURI,
		query.Encode(),
		canonicalHeaders,
		"host",
		"UNSIGNED-PAYLOAD",
	}, "\n")

	hashedRequest := sha256.Sum256([]byte(canonicalRequest))
	stringToSign := strings.Join([]string{
		"AWS4-HMAC-SHA256",
		amzDateTime,
		fmt.Sprintf("%s/%s/s3/aws4_request", dateStamp, c.Region),
		hex.EncodeToString(hashedRequest[:]),
	}, "\n")

	dateKey := hmacSHA256([]byte("AWS4"+c.SecretAccessKey), []byte(dateStamp))
	dateRegionKey := hmacSHA256(dateKey, []byte(c.Region))
	dateRegionServiceKey := hmacSHA256(dateRegionKey, []byte("s3"))
	signingKey := hmacSHA256(dateRegionServiceKey, []byte("aws4_request"))
	signature := hex.EncodeToString(hmacSHA256(signingKey, []byte(stringToSign)))

	query.Set("X-Amz-Signature", signature)

	return fmt.Sprintf("%s%s?%s", endpoint, canonicalURI, query.Encode())
}

func hmacSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}
