package controllers

import (
	"net/http"
	"strings"

	"storefront-backend/models"
	"storefront-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct {
	DB *gorm.DB
}

// CategoryRequest represents a category create/update request
type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100" example:"Sneakers"`
	Slug string `json:"slug" example:"sneakers"`
}

// NewCategoryController creates a new category controller
func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// GetCategories godoc
// @Summary Get all categories
// @Tags categories
// @Produce json
// @Success 200 {object} utilities.Response{data=[]models.Category}
// @Router /categories [get]
func (cc *CategoryController) GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := cc.DB.Order("name ASC").Find(&categories).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve categories", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// GetCategory godoc
// @Summary Get category by ID
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} utilities.Response{data=models.Category}
// @Failure 404 {object} utilities.Response
// @Router /categories/{id} [get]
func (cc *CategoryController) GetCategory(c *gin.Context) {
	categoryID := c.Param("id")

	var category models.Category
	if err := cc.DB.First(&category, categoryID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Category not found", "no category with that id")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Category retrieved successfully", category)
}

// CreateCategory godoc
// @Summary Create a new category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category request"
// @Success 201 {object} utilities.Response{data=models.Category}
// @Failure 400 {object} utilities.Response
// @Router /admin/categories [post]
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	category := models.Category{
		Name: req.Name,
		Slug: slugify(req.Slug, req.Name),
	}

	if err := cc.DB.Create(&category).Error; err != nil {
		if utilities.IsUniqueViolation(err) {
			utilities.ErrorResponse(c, http.StatusBadRequest, "Category already exists", "category name or slug already taken")
			return
		}
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to create category", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusCreated, "Category created successfully", category)
}

// UpdateCategory godoc
// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body CategoryRequest true "Category request"
// @Success 200 {object} utilities.Response{data=models.Category}
// @Failure 400 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /admin/categories/{id} [put]
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	categoryID := c.Param("id")

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	var category models.Category
	if err := cc.DB.First(&category, categoryID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Category not found", "no category with that id")
		return
	}

	category.Name = req.Name
	category.Slug = slugify(req.Slug, req.Name)

	if err := cc.DB.Save(&category).Error; err != nil {
		if utilities.IsUniqueViolation(err) {
			utilities.ErrorResponse(c, http.StatusBadRequest, "Category already exists", "category name or slug already taken")
			return
		}
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to update category", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory godoc
// @Summary Delete category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /admin/categories/{id} [delete]
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	categoryID := c.Param("id")

	var category models.Category
	if err := cc.DB.First(&category, categoryID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Category not found", "no category with that id")
		return
	}

	if err := cc.DB.Delete(&category).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete category", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Category deleted successfully", nil)
}

// slugify falls back to a lowercased, hyphenated name when no slug is given
func slugify(slug, name string) string {
	if slug != "" {
		return slug
	}
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
