// products.go
//
// Storefront catalog handlers.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/salonsuite/salon-api/internal/services"
	"github.com/salonsuite/salon-api/internal/types"
	"github.com/salonsuite/salon-api/internal/utils"
)

// ProductHandler handles catalog routes
type ProductHandler struct {
	DB *gorm.DB
}

// AddProduct handles POST /addproduct
// @Summary Add a catalog product
// @Description Create a product with a sequential id
// @Tags Catalog
// @Accept json
// @Produce json
// @Param body body object true "name, image, description"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /addproduct [post]
func (h *ProductHandler) AddProduct(c *fiber.Ctx) error {
	var body struct {
		Name        string `json:"name"`
		Image       string `json:"image"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&body); err != nil || body.Name == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid input")
	}

	product, err := services.AddProduct(h.DB, body.Name, body.Image, body.Description)
	if err != nil {
		return utils.ServerError(c, err)
	}

	return utils.Success(c, fiber.Map{"name": product.Name})
}

// RemoveProduct handles POST /removeproduct
// @Summary Remove a catalog product
// @Description Delete a product by id; a miss is still a success
// @Tags Catalog
// @Accept json
// @Produce json
// @Param body body object true "id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /removeproduct [post]
func (h *ProductHandler) RemoveProduct(c *fiber.Ctx) error {
	var body struct {
		ID   types.FlexID `json:"id"`
		Name string       `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := services.RemoveProduct(h.DB, body.ID.Uint64()); err != nil {
		return utils.ServerError(c, err)
	}

	// name is echoed from the request, whether or not anything matched
	return utils.Success(c, fiber.Map{"name": body.Name})
}

// AllProducts handles GET /allproducts
// @Summary List the catalog
// @Description Return every product as a bare JSON array
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /allproducts [get]
func (h *ProductHandler) AllProducts(c *fiber.Ctx) error {
	products, err := services.ListProducts(h.DB)
	if err != nil {
		return utils.ServerError(c, err)
	}

	// bare array, no envelope: the storefront consumes it directly
	return c.Status(fiber.StatusOK).JSON(products)
}
