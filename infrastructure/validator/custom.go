package validator

import (
	"encoding/base64"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validateFrameImage accepts the image payload shapes the capture clients
// send: a data URL, a bare base64 string or an https image URL.
func validateFrameImage(fl validator.FieldLevel) bool {
	payload := fl.Field().String()
	if payload == "" {
		return false
	}

	if strings.HasPrefix(payload, "https://") {
		return len(payload) <= 2048
	}

	if strings.HasPrefix(payload, "data:image") {
		parts := strings.SplitN(payload, ",", 2)
		if len(parts) != 2 {
			return false
		}
		payload = parts[1]
	}

	if len(payload) < 100 {
		return false
	}

	_, err := base64.StdEncoding.DecodeString(payload[:100])
	return err == nil
}
