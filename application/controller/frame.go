package controller

import (
	"context"
	"strings"

	enrollment_usecases "idguard.io/application/usecases/enrollment"
	"idguard.io/application/utils"
)

// resolveFramePayload turns a validated frame payload into raw image
// bytes. Capture clients send either an inline base64/data-URL frame or
// an https URL pointing at one.
func resolveFramePayload(payload string) ([]byte, error) {
	if strings.HasPrefix(payload, "https://") {
		return enrollment_usecases.FetchRemoteImage(context.Background(), payload)
	}
	return utils.DecodeBase64Image(payload)
}
