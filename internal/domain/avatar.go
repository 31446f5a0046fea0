package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

var avatarMIMETypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/jpg":  {},
	"image/webp": {},
	"image/gif":  {},
}

// AvatarReference is a user supplied likeness. It lives for one request only.
type AvatarReference struct {
	DataURL     string
	MIME        string
	Data        []byte
	Description string
}

// ParseAvatarDataURL validates a base64 image data URL of the form
// data:image/<type>;base64,<payload>.
func ParseAvatarDataURL(raw, description string) (*AvatarReference, error) {
	raw = strings.TrimSpace(raw)
	rest, ok := strings.CutPrefix(raw, "data:")
	if !ok {
		return nil, fmt.Errorf("%w: avatar must be a data url", ErrInvalidAvatar)
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("%w: avatar data url has no payload", ErrInvalidAvatar)
	}
	mime, ok := strings.CutSuffix(strings.ToLower(header), ";base64")
	if !ok {
		return nil, fmt.Errorf("%w: avatar data url must be base64 encoded", ErrInvalidAvatar)
	}
	if _, ok := avatarMIMETypes[mime]; !ok {
		return nil, fmt.Errorf("%w: unsupported avatar type %q", ErrInvalidAvatar, mime)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: avatar payload: %v", ErrInvalidAvatar, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: avatar payload is empty", ErrInvalidAvatar)
	}
	return &AvatarReference{
		DataURL:     raw,
		MIME:        mime,
		Data:        data,
		Description: strings.TrimSpace(description),
	}, nil
}

// EncodeAvatarDataURL builds a data URL from raw bytes.
func EncodeAvatarDataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
