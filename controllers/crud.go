package controllers

import (
	"errors"

	"github.com/eventplanner/event-orders-api/services"
	"github.com/eventplanner/event-orders-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// findByKey loads the record with primary key key, answering 404 with
// "<entity> not found" when it does not exist.
func findByKey[T any](c *gin.Context, db *gorm.DB, key interface{}, entity string) (*T, bool) {
	var record T
	err := db.WithContext(c.Request.Context()).Where("id = ?", key).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, services.NotFound(entity))
		} else {
			respondError(c, err)
		}
		return nil, false
	}
	return &record, true
}

// findByID is findByKey for integer keyed tables. An id that is not a
// positive integer can never match and is reported as not found.
func findByID[T any](c *gin.Context, db *gorm.DB, raw string, entity string) (*T, bool) {
	id, ok := utils.ParseID(raw)
	if !ok {
		respondError(c, services.NotFound(entity))
		return nil, false
	}
	return findByKey[T](c, db, id, entity)
}
