package controllers

import (
	"net/http"

	"storefront-backend/models"
	"storefront-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductController struct {
	DB *gorm.DB
}

// ProductRequest represents a product create/update request
type ProductRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=200" example:"Canvas High Top"`
	Slug        string  `json:"slug" example:"canvas-high-top"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0" example:"59.99"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock" binding:"gte=0"`
	CategoryID  uint    `json:"category_id" binding:"required"`
}

// ProductsListResponse represents a paginated product listing
type ProductsListResponse struct {
	Products   []models.ProductResponse     `json:"products"`
	Pagination utilities.PaginationResponse `json:"pagination"`
}

// NewProductController creates a new product controller
func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// GetProducts godoc
// @Summary Get all products
// @Description Get list of all products with optional search by name and category filter.
// @Tags products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Search by name (partial match)"
// @Param category query int false "Filter by category ID"
// @Success 200 {object} utilities.Response{data=ProductsListResponse}
// @Router /products [get]
func (pc *ProductController) GetProducts(c *gin.Context) {
	page, limit, offset := utilities.ParsePagination(c)
	search := c.Query("search")
	category := c.Query("category")

	var products []models.Product
	var total int64

	query := pc.DB.Model(&models.Product{})

	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if category != "" {
		query = query.Where("category_id = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to count products", "internal error")
		return
	}

	if err := query.Order("id ASC").Preload("Category").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve products", "internal error")
		return
	}

	productResponses := make([]models.ProductResponse, len(products))
	for i, product := range products {
		productResponses[i] = product.ToProductResponse()
	}

	response := ProductsListResponse{
		Products: productResponses,
		Pagination: utilities.PaginationResponse{
			Page:  page,
			Limit: limit,
			Total: int(total),
		},
	}

	utilities.SuccessResponse(c, http.StatusOK, "Products retrieved successfully", response)
}

// GetProduct godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} utilities.Response{data=models.ProductResponse}
// @Failure 404 {object} utilities.Response
// @Router /products/{id} [get]
func (pc *ProductController) GetProduct(c *gin.Context) {
	productID := c.Param("id")

	var product models.Product
	if err := pc.DB.Preload("Category").First(&product, productID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Product not found", "no product with that id")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product.ToProductResponse())
}

// CreateProduct godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductRequest true "Product request"
// @Success 201 {object} utilities.Response{data=models.ProductResponse}
// @Failure 400 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /admin/products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	if err := pc.DB.First(&models.Category{}, req.CategoryID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Category not found", "no category with that id")
		return
	}

	product := models.Product{
		Name:        req.Name,
		Slug:        slugify(req.Slug, req.Name),
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	}

	if err := pc.DB.Create(&product).Error; err != nil {
		if utilities.IsUniqueViolation(err) {
			utilities.ErrorResponse(c, http.StatusBadRequest, "Product already exists", "product slug already taken")
			return
		}
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to create product", "internal error")
		return
	}

	pc.DB.Preload("Category").First(&product, product.ID)

	utilities.SuccessResponse(c, http.StatusCreated, "Product created successfully", product.ToProductResponse())
}

// UpdateProduct godoc
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body ProductRequest true "Product request"
// @Success 200 {object} utilities.Response{data=models.ProductResponse}
// @Failure 400 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /admin/products/{id} [put]
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	var product models.Product
	if err := pc.DB.First(&product, productID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Product not found", "no product with that id")
		return
	}

	if err := pc.DB.First(&models.Category{}, req.CategoryID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Category not found", "no category with that id")
		return
	}

	product.Name = req.Name
	product.Slug = slugify(req.Slug, req.Name)
	product.Description = req.Description
	product.Price = req.Price
	product.Image = req.Image
	product.Stock = req.Stock
	product.CategoryID = req.CategoryID

	if err := pc.DB.Save(&product).Error; err != nil {
		if utilities.IsUniqueViolation(err) {
			utilities.ErrorResponse(c, http.StatusBadRequest, "Product already exists", "product slug already taken")
			return
		}
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to update product", "internal error")
		return
	}

	pc.DB.Preload("Category").First(&product, product.ID)

	utilities.SuccessResponse(c, http.StatusOK, "Product updated successfully", product.ToProductResponse())
}

// RemoveProduct godoc
// @Summary Delete product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /admin/products/{id} [delete]
func (pc *ProductController) RemoveProduct(c *gin.Context) {
	productID := c.Param("id")

	var product models.Product
	if err := pc.DB.First(&product, productID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Product not found", "no product with that id")
		return
	}

	if err := pc.DB.Delete(&product).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete product", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}
