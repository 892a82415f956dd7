package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/dancestudio/internal/service"
	"github.com/dancestudio/internal/storage"
	"github.com/gin-gonic/gin"
)

const (
	msgUploadMissing  = "No file was submitted."
	msgUploadNotImage = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
	msgUploadTooLarge = "The submitted file is too large."
)

// UploadImage stores the multipart "image" field and returns its public URL
// and pixel size.
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondFieldErrors(c, service.FieldErrors{"image": {msgUploadMissing}})
		return
	}

	saved, err := a.images.SaveUpload(file)
	switch {
	case errors.Is(err, storage.ErrNotImage):
		respondFieldErrors(c, service.FieldErrors{"image": {msgUploadNotImage}})
		return
	case errors.Is(err, storage.ErrTooLarge):
		respondFieldErrors(c, service.FieldErrors{"image": {msgUploadTooLarge}})
		return
	case err != nil:
		log.Printf("[ERR] id=%s upload %s: %v", requestID(c), file.Filename, err)
		respondError(c, http.StatusInternalServerError, msgServerError)
		return
	}

	c.JSON(http.StatusCreated, saved)
}
