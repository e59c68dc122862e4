package bannerControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BannerInput struct {
	Title        string `json:"title" binding:"max=200"`
	ImageURL     string `json:"image_url" binding:"required,max=500"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

// CreateBanner stores a banner record; the image itself lives in S3.
func CreateBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BannerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image_url is required"})
			return
		}

		banner := models.Banner{
			Title:        input.Title,
			ImageURL:     input.ImageURL,
			IsActive:     true,
			DisplayOrder: input.DisplayOrder,
		}
		if input.IsActive != nil {
			banner.IsActive = *input.IsActive
		}
		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB save failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "Banner created", "data": banner})
	}
}

// GetBanners lists banners; public callers only see active ones.
func GetBanners(db *gorm.DB, includeInactive bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("display_order asc, id asc")
		if !includeInactive {
			query = query.Where("is_active = ?", true)
		}

		var banners []models.Banner
		if err := query.Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get banners"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": banners})
	}
}

// UpdateBanner changes title/image/active/order.
func UpdateBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid banner ID"})
			return
		}

		var banner models.Banner
		if err := db.First(&banner, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			}
			return
		}

		var input BannerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image_url is required"})
			return
		}

		banner.Title = input.Title
		banner.ImageURL = input.ImageURL
		banner.DisplayOrder = input.DisplayOrder
		if input.IsActive != nil {
			banner.IsActive = *input.IsActive
		}
		if err := db.Save(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update banner"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Banner updated", "data": banner})
	}
}

func DeleteBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid banner ID"})
			return
		}

		result := db.Delete(&models.Banner{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete from database"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Banner deleted"})
	}
}
