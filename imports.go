package main

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fabrikaops/nonconf_backend/config"
	"github.com/fabrikaops/nonconf_backend/models"
	"github.com/fabrikaops/nonconf_backend/utils"
)

const maxUploadSizeBytes int64 = 10 * 1024 * 1024

func openUpload(c *gin.Context) (multipart.File, *multipart.FileHeader, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return nil, nil, false
	}
	if header.Size > maxUploadSizeBytes {
		file.Close()
		c.JSON(http.StatusBadRequest, gin.H{"error": "file size exceeds 10MB limit"})
		return nil, nil, false
	}
	if !models.IsImportableFile(header.Filename) {
		file.Close()
		c.JSON(http.StatusBadRequest, gin.H{"error": "only .xlsx, .xls and .xlsm files are allowed"})
		return nil, nil, false
	}
	return file, header, true
}

// importColumnsHandler parses an uploaded spreadsheet and returns its header
// columns, so the UI can let the user map them onto record fields before
// committing an import.
func importColumnsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()

		file, header, ok := openUpload(c)
		if !ok {
			return
		}
		defer file.Close()

		wb, err := models.OpenWorkbook(file)
		if err != nil {
			config.LogError(logger, "imports.go", "importColumnsHandler", "OpenWorkbook", header.Filename, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": utils.ErrInvalidWorkbook.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": gin.H{
			"columns": wb.Columns(),
			"rows":    wb.RowCount(),
		}})
	}
}

// importHandler runs the full ingestion pipeline: multipart file plus a
// "mapping" form field holding the field→column JSON. Rows without a
// description are dropped silently; callers see that in the skipped count.
func importHandler(store *models.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()

		file, header, ok := openUpload(c)
		if !ok {
			return
		}
		defer file.Close()

		var mapping models.FieldMapping
		if err := json.Unmarshal([]byte(c.PostForm("mapping")), &mapping); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mapping must be a JSON object of field to column"})
			return
		}
		if !mapping.Ready() {
			c.JSON(http.StatusBadRequest, gin.H{"error": utils.ErrDescriptionNotMapped.Error()})
			return
		}

		result, err := models.ImportWorkbook(store, file, mapping, time.Now())
		if err != nil {
			config.LogError(logger, "imports.go", "importHandler", "ImportWorkbook", header.Filename, err)
			if errors.Is(err, utils.ErrInvalidWorkbook) || errors.Is(err, utils.ErrDescriptionNotMapped) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "import failed"})
			return
		}

		cid, _ := utils.GetCorrelationIdFromContext(c.Request.Context())
		logger.WithFields(logrus.Fields{
			"correlation_id": cid,
			"file":           header.Filename,
			"total":          result.Total,
			"imported":       result.Imported,
			"skipped":        result.Skipped,
		}).Info("[import.complete]")

		c.JSON(http.StatusOK, gin.H{"data": result})
	}
}
