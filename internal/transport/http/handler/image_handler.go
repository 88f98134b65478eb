package handler

import (
	"io"
	"mime/multipart"
	"path"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/anhthuvo/mobileAppBE/internal/core/blob"
	resp "github.com/anhthuvo/mobileAppBE/internal/transport/http/response"
	"github.com/anhthuvo/mobileAppBE/pkg/utils"
)

// accepted upload content types and their stored extension
var mimeExt = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpeg",
	"image/jpg":  "jpg",
}

type ImageHandler struct {
	store blob.Store // nil when no blob backend is configured
	log   *zap.Logger
}

func NewImageHandler(store blob.Store, log *zap.Logger) *ImageHandler {
	return &ImageHandler{store: store, log: log}
}

// Upload accepts one or more files under the multipart field "images",
// stores each under a fresh generated name, and returns those names.
func (h *ImageHandler) Upload(c *gin.Context) {
	if h.store == nil {
		writeErr(c, resp.CodeServerError, "image storage is not available")
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		writeErr(c, resp.CodeBadRequest, "invalid multipart form")
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		writeErr(c, resp.CodeBadRequest, "no files uploaded")
		return
	}

	names := make([]string, 0, len(files))
	for _, fh := range files {
		ct := fh.Header.Get("Content-Type")
		ext, ok := mimeExt[ct]
		if !ok {
			writeErr(c, resp.CodeValidation, "unsupported image type "+ct)
			return
		}
		data, err := readFile(fh)
		if err != nil {
			writeErr(c, resp.CodeBadRequest, "could not read uploaded file")
			return
		}
		name := utils.NewID() + "." + ext
		if _, err := h.store.Put(c.Request.Context(), name, data, ct); err != nil {
			h.log.Error("store image", zap.Error(err), zap.String("name", name))
			writeErr(c, resp.CodeServerError, "image upload failed, please try again")
			return
		}
		names = append(names, name)
	}
	c.JSON(201, resp.OK(gin.H{"images": names}))
}

// Download streams the blob bytes back with the stored content type.
func (h *ImageHandler) Download(c *gin.Context) {
	if h.store == nil {
		writeErr(c, resp.CodeServerError, "image storage is not available")
		return
	}
	// Param is a bare object name; strip any path components.
	name := path.Base(c.Param("name"))

	data, info, err := h.store.Get(c.Request.Context(), name)
	if err != nil {
		if err == blob.ErrNotFound {
			writeErr(c, resp.CodeNotFound, "image does not exist")
			return
		}
		h.log.Error("fetch image", zap.Error(err), zap.String("name", name))
		writeErr(c, resp.CodeServerError, "image download failed, please try again")
		return
	}
	c.Data(200, info.ContentType, data)
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
