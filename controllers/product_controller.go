package controllers

import (
	"shopkart/models"
	"shopkart/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// GetProducts godoc
// @Summary List products
// @Description Get the full product catalog
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} models.ErrorResponse
// @Router /api/products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	products, err := ctrl.catalog.ListProducts()
	if err != nil {
		c.JSON(500, models.ErrorResponse{Error: "Unable to read products"})
		return
	}
	c.JSON(200, products)
}
