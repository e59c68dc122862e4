package memberControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MemberInput struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Relation string `json:"relation" binding:"required,min=1,max=50"`
}

func currentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	userID, ok := val.(uint)
	if !ok || userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// POST /members
func CreateMember(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input MemberInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		member := models.Member{UserID: userID, Name: input.Name, Relation: input.Relation}
		if err := db.Create(&member).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"status":  "success",
			"message": "Member added successfully.",
			"data":    member,
		})
	}
}

// GET /members
func GetMembers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var members []models.Member
		if err := db.Where("user_id = ?", userID).Order("id asc").Find(&members).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Members fetched successfully.",
			"data":    members,
		})
	}
}

// PUT /members/:id
func UpdateMember(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
			return
		}

		var member models.Member
		if err := db.Where("id = ? AND user_id = ?", id, userID).First(&member).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch member"})
			}
			return
		}

		var input MemberInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		member.Name = input.Name
		member.Relation = input.Relation
		if err := db.Save(&member).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Member updated successfully.",
			"data":    member,
		})
	}
}

// DELETE /members/:id
//
// A member with live cart rows cannot be removed; the purchase must be
// taken out of the cart first.
func DeleteMember(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
			return
		}

		var inCart int64
		if err := db.Model(&models.CartItem{}).
			Where("member_id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
			Count(&inCart).Error; err == nil && inCart > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Member has tests in the cart and cannot be removed"})
			return
		}

		result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Member{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Member deleted successfully."})
	}
}
