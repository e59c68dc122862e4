package auditControllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Record writes an audit entry and pushes it to any connected admin
// dashboards. Best-effort: a failed write is logged and never aborts
// the operation being audited.
func Record(db *gorm.DB, entry models.AuditLog) {
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("⚠️ Audit log write failed (%s %s): %v", entry.Action, entry.EntityType, err)
		return
	}
	broadcastAuditEvent(entry)
}

// GET /admin/audit/user/:user_id
func GetAuditLogsByUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
			return
		}

		var logs []models.AuditLog
		if err := db.Where("user_id = ?", uint(userID)).
			Order("created_at desc").Limit(auditQueryLimit(c)).
			Find(&logs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch audit logs"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": logs})
	}
}

// GET /admin/audit/cart/:cart_id
func GetAuditLogsByCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := strconv.ParseUint(c.Param("cart_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart_id"})
			return
		}

		var logs []models.AuditLog
		if err := db.Where("cart_id = ?", uint(cartID)).
			Order("created_at desc").Limit(auditQueryLimit(c)).
			Find(&logs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch audit logs"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": logs})
	}
}

func auditQueryLimit(c *gin.Context) int {
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 1000 {
			return v
		}
	}
	return 100
}

// StartRetentionSweeper deletes audit rows older than the retention
// window, once daily at the given hour.
func StartRetentionSweeper(db *gorm.DB, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next audit log sweep scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		cutoff := time.Now().Add(-retention)
		result := db.Where("created_at < ?", cutoff).Delete(&models.AuditLog{})
		if result.Error != nil {
			log.Printf("❌ Audit log sweep failed: %v", result.Error)
		} else {
			log.Printf("🗑️ Removed %d audit log(s) older than %s", result.RowsAffected, cutoff.Format("2006-01-02"))
		}
	}
}
