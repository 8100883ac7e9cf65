package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindJSON decodes the body into dst and checks that every required key is
// present and not null. Empty strings and empty collections are accepted.
func bindJSON(c *gin.Context, dst any, required ...string) error {
	if err := c.ShouldBindBodyWith(dst, binding.JSON); err != nil {
		return err
	}
	if len(required) == 0 {
		return nil
	}
	var keys map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&keys, binding.JSON); err != nil {
		return err
	}
	for _, k := range required {
		raw, ok := keys[k]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return fmt.Errorf("missing required field %q", k)
		}
	}
	return nil
}
