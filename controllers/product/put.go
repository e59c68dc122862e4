package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductUpdateInput struct {
	Name             *string          `json:"name"`
	Price            *float64         `json:"price"`
	SpecialPrice     *float64         `json:"special_price"`
	ShortDescription *string          `json:"short_description"`
	Discount         *string          `json:"discount"`
	Description      *string          `json:"description"`
	Images           []string         `json:"images"`
	PlanType         *models.PlanType `json:"plan_type"`
	MaxMembers       *int             `json:"max_members"`
	CategoryID       *uint            `json:"category_id"`
}

// UpdateProduct updates an existing product by ID; only provided fields
// change.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.SpecialPrice != nil {
			product.SpecialPrice = *input.SpecialPrice
		}
		if input.ShortDescription != nil {
			product.ShortDescription = *input.ShortDescription
		}
		if input.Discount != nil {
			product.Discount = *input.Discount
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Images != nil {
			product.Images = input.Images
		}
		if input.PlanType != nil {
			if !input.PlanType.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "plan_type must be single, couple or family"})
				return
			}
			product.PlanType = *input.PlanType
			if input.MaxMembers == nil {
				_, product.MaxMembers = product.PlanType.MemberRange()
			}
		}
		if input.MaxMembers != nil {
			if *input.MaxMembers < 1 || *input.MaxMembers > 4 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "max_members must be between 1 and 4"})
				return
			}
			product.MaxMembers = *input.MaxMembers
		}
		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			product.CategoryID = category.ID
		}
		if product.SpecialPrice > product.Price {
			c.JSON(http.StatusBadRequest, gin.H{"error": "special_price cannot exceed price"})
			return
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Product updated successfully.",
			"data":    product,
		})
	}
}
