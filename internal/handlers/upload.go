package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonsuite/salon-api/internal/services"
	"github.com/salonsuite/salon-api/internal/utils"
)

// UploadHandler handles the image upload route
type UploadHandler struct {
	Media *services.MediaStore
}

// Upload handles POST /upload
// @Summary Upload a product image
// @Description Stream the multipart "product" file to the media host and return its URL
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param product formData file true "image file"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("product")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "No file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Unreadable file")
	}
	defer file.Close()

	url, err := h.Media.Upload(c.Context(), file)
	if err != nil {
		// propagate the media host's detail, no retry
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Image upload failed",
			"error":   err.Error(),
		})
	}

	return utils.Success(c, fiber.Map{"image_url": url})
}
