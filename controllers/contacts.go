package controllers

import (
	"fmt"
	"net/http"
	"strings"

	dbpkg "ministrysms/db"
	"ministrysms/models"
	"ministrysms/tools"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"go.uber.org/zap"
)

// GET /smsapp/get_pastors?category=
// Returns the contact list, optionally filtered by category name
// (case-insensitive).
func GetPastors(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	query := db.Preload("Category")
	if categoryParam := strings.TrimSpace(c.Query("category")); categoryParam != "" {
		query = query.
			Joins("JOIN categories ON categories.id = contacts.category_id").
			Where("LOWER(categories.name) = LOWER(?)", categoryParam)
	}

	var contacts []models.Contact
	if err := query.Find(&contacts).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	type row struct {
		ID        int64  `json:"id"`
		Name      string `json:"name"`
		Phone     string `json:"phone"`
		Region    string `json:"region"`
		Subregion string `json:"subregion"`
		Category  string `json:"category"`
	}
	data := make([]row, 0, len(contacts))
	for _, ct := range contacts {
		data = append(data, row{
			ID:        ct.ID,
			Name:      ct.Name,
			Phone:     ct.Phone,
			Region:    ct.Region,
			Subregion: ct.Subregion,
			Category:  ct.Category.Name,
		})
	}

	RespondSuccess(c, gin.H{"pastors": data})
}

// POST /smsapp/upload (admin, multipart field "excel_file")
// Imports contacts from an xlsx sheet. Rows that fail after a successful
// parse are skipped, not fatal: partial success beats atomicity here.
func UploadContacts(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	fileHeader, err := c.FormFile("excel_file")
	if err != nil {
		RespondError(c, "Invalid file. Please upload a valid Excel (.xlsx) file.", http.StatusBadRequest)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, "Invalid file. Please upload a valid Excel (.xlsx) file.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := tools.ParseContactRows(file)
	if err != nil {
		RespondError(c, "Error processing file: "+err.Error(), http.StatusBadRequest)
		return
	}

	added := 0
	for _, row := range rows {
		category, err := getOrCreateCategory(db, row.Category)
		if err != nil {
			tools.Log().Warn("import: category row skipped",
				zap.String("category", row.Category),
				zap.Error(err),
			)
			continue
		}

		contact := models.Contact{
			CategoryID: category.ID,
			Name:       row.Name,
			Phone:      row.Phone,
			Region:     row.Region,
			Subregion:  row.Subregion,
		}
		if err := db.Create(&contact).Error; err != nil {
			tools.Log().Warn("import: contact row skipped",
				zap.String("name", row.Name),
				zap.Error(err),
			)
			continue
		}
		added++
	}

	tools.Log().Info("contacts imported",
		zap.Int("added", added),
		zap.String("file", fileHeader.Filename),
	)

	RespondSuccess(c, gin.H{
		"message":  fmt.Sprintf("%d contacts uploaded successfully!", added),
		"imported": added,
	})
}

func getOrCreateCategory(db *gorm.DB, name string) (models.Category, error) {
	var category models.Category
	err := db.Where("name = ?", name).First(&category).Error
	if err == nil {
		return category, nil
	}
	if !gorm.IsRecordNotFoundError(err) {
		return models.Category{}, err
	}
	category = models.Category{Name: name}
	if err := db.Create(&category).Error; err != nil {
		return models.Category{}, err
	}
	return category, nil
}
