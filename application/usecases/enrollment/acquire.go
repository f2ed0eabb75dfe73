package enrollment_usecases

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"idguard.io/application/utils"
	fileupload "idguard.io/infrastructure/file_upload"
)

const maxImageBytes = 50 * 1024 * 1024

var imageClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
	},
}

// resolveMemberImage turns a member's photo reference into image bytes.
// Inline data URLs decode directly, http(s) references download as-is and
// anything else is treated as a blob name that needs a signed download
// URL first.
func resolveMemberImage(ctx context.Context, photoRef string) ([]byte, error) {
	if strings.TrimSpace(photoRef) == "" {
		return nil, errors.New("member has no photo reference")
	}
	if strings.HasPrefix(photoRef, "data:image") {
		return utils.DecodeBase64Image(photoRef)
	}
	if strings.HasPrefix(photoRef, "http://") || strings.HasPrefix(photoRef, "https://") {
		return FetchRemoteImage(ctx, photoRef)
	}

	signedURL, err := fileupload.FileUploader.GenerateDownloadURL(photoRef)
	if err != nil {
		return nil, fmt.Errorf("failed to sign download url for %s: %w", photoRef, err)
	}
	if signedURL == nil {
		return nil, fmt.Errorf("no download url generated for %s", photoRef)
	}
	return FetchRemoteImage(ctx, *signedURL)
}

// FetchRemoteImage pulls an image with the guard rails the platform uses
// for remote media: bounded time, an image content type and a hard size
// cap. Shared by enrollment photo acquisition and remote frame payloads.
func FetchRemoteImage(ctx context.Context, url string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create image request: %w", err)
	}
	request.Header.Set("User-Agent", "IDGuard-Enrollment/1.0")
	request.Header.Set("Accept", "image/*")

	response, err := imageClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download returned status %d", response.StatusCode)
	}
	contentType := response.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "image/") &&
		!strings.HasPrefix(contentType, "application/octet-stream") {
		return nil, fmt.Errorf("unexpected content type for image: %s", contentType)
	}
	if response.ContentLength > maxImageBytes {
		return nil, fmt.Errorf("image exceeds the %dMB limit", maxImageBytes/(1024*1024))
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}
	if len(body) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds the %dMB limit", maxImageBytes/(1024*1024))
	}
	if len(body) == 0 {
		return nil, errors.New("image download returned an empty body")
	}
	return body, nil
}
