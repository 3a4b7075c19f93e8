package http

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"videotube/internal/entity"
	"videotube/pkg/apperror"
	"videotube/pkg/logger"
	"videotube/pkg/middleware"
	"videotube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Uploads stores multipart files in a temporary directory until the media
// store picks them up.
type Uploads struct {
	Dir string
}

// Save writes the file sent under field to the temporary directory and
// returns its path. A missing field yields an empty path.
func (u Uploads) Save(c *gin.Context, field string) (string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", apperror.BadRequest("Invalid multipart form")
	}

	dir := u.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, uuid.New().String()+strings.ToLower(filepath.Ext(header.Filename)))
	if err := c.SaveUploadedFile(header, path); err != nil {
		return "", apperror.Internal("Failed to store uploaded file", err)
	}
	return path, nil
}

// SaveAll saves every field in order. On failure the files saved so far are
// removed.
func (u Uploads) SaveAll(c *gin.Context, fields ...string) ([]string, error) {
	paths := make([]string, 0, len(fields))
	for _, field := range fields {
		path, err := u.Save(c, field)
		if err != nil {
			removeUploads(paths...)
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func removeUploads(paths ...string) {
	for _, p := range paths {
		if p != "" {
			_ = os.Remove(p)
		}
	}
}

// ValidIDParams rejects requests whose id path parameters (videoId, tweetId
// and the like) are not UUIDs.
func ValidIDParams() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, param := range c.Params {
			resource, isID := strings.CutSuffix(param.Key, "Id")
			if !isID || resource == "" {
				continue
			}
			if _, err := uuid.Parse(param.Value); err != nil {
				response.AbortWithError(c, apperror.BadRequest("Invalid "+resource+" id"))
				return
			}
		}
		c.Next()
	}
}

// optionalID returns the named query parameter, which must be a UUID when set.
func optionalID(c *gin.Context, name, resource string) (string, error) {
	value := c.Query(name)
	if value == "" {
		return "", nil
	}
	if _, err := uuid.Parse(value); err != nil {
		return "", apperror.BadRequest("Invalid " + resource + " id")
	}
	return value, nil
}

func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

// fail writes the error envelope. Internal failures are logged with their cause
// since the client only sees the public message.
func fail(c *gin.Context, log *logger.Logger, err error) {
	if apperror.KindOf(err) == apperror.KindInternal {
		log.Error("%s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	response.AbortWithError(c, err)
}

// bind decodes the request body into req. An empty body is not an error so
// that use cases can run their existence checks before payload validation.
func bind(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperror.BadRequest(validationMessage(err))
	}
	return nil
}

type Pager struct {
	MaxLimit int
}

func (p Pager) Page(c *gin.Context) entity.PageRequest {
	return entity.ParsePageRequest(c.Query("page"), c.Query("limit"), p.MaxLimit)
}

// firstNonEmpty picks the first non-empty value, for payloads that accept an
// alternate field name.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
