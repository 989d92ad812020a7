package book

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"
)

var ErrInvalidCursor = errors.New("invalid cursor")

// listCursor marks the last row of a page in (created_at, id) order.
type listCursor struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

func encodeCursor(c listCursor) string {
	if c.ID == "" {
		return ""
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// decodeCursor returns the zero cursor for "".
func decodeCursor(s string) (listCursor, error) {
	if s == "" {
		return listCursor{}, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return listCursor{}, ErrInvalidCursor
	}
	var c listCursor
	if err := json.Unmarshal(raw, &c); err != nil || c.ID == "" {
		return listCursor{}, ErrInvalidCursor
	}
	return c, nil
}
