package productcontroller

import (
	"errors"
	"net/http"

	"github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name             string          `json:"name" binding:"required,min=1,max=200"`
	Price            float64         `json:"price" binding:"required,gt=0"`
	SpecialPrice     float64         `json:"special_price" binding:"required,gt=0"`
	ShortDescription string          `json:"short_description" binding:"required,max=500"`
	Discount         string          `json:"discount" binding:"max=50"`
	Description      string          `json:"description" binding:"max=2000"`
	Images           []string        `json:"images" binding:"required,min=1"`
	PlanType         models.PlanType `json:"plan_type" binding:"required"`
	MaxMembers       int             `json:"max_members" binding:"omitempty,min=1,max=4"`
	CategoryID       uint            `json:"category_id" binding:"required"`
}

// CreateProduct creates a genetic-test product. Images are S3 URLs
// managed by the upload service.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !input.PlanType.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "plan_type must be single, couple or family"})
			return
		}
		if input.SpecialPrice > input.Price {
			c.JSON(http.StatusBadRequest, gin.H{"error": "special_price cannot exceed price"})
			return
		}
		if input.MaxMembers == 0 {
			_, input.MaxMembers = input.PlanType.MemberRange()
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate category"})
			}
			return
		}

		product := models.Product{
			Name:             input.Name,
			Price:            input.Price,
			SpecialPrice:     input.SpecialPrice,
			ShortDescription: input.ShortDescription,
			Discount:         input.Discount,
			Description:      input.Description,
			Images:           input.Images,
			PlanType:         input.PlanType,
			MaxMembers:       input.MaxMembers,
			CategoryID:       category.ID,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"status":  "success",
			"message": "Product created successfully.",
			"data":    product,
		})
	}
}
