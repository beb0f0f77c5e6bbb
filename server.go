package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fabrikaops/nonconf_backend/config"
	"github.com/fabrikaops/nonconf_backend/models"
	"github.com/fabrikaops/nonconf_backend/models/reports"
	"github.com/fabrikaops/nonconf_backend/utils"
)

type createNonConformityRequest struct {
	Description string `json:"description" binding:"required"`
	Source      string `json:"source"`
	Severity    string `json:"severity"`
	Status      string `json:"status"`
	Day         int    `json:"day"`
}

type editNonConformityRequest struct {
	Description *string      `json:"description"`
	Source      *string      `json:"source"`
	Severity    *string      `json:"severity"`
	Status      *string      `json:"status"`
	Day         *int         `json:"day"`
	ClosedDate  *string      `json:"closedDate"`
	ActionTitle *string      `json:"actionTitle"`
	TeamLeader  *string      `json:"teamLeader"`
	Team        *string      `json:"team"`
	Category    *string      `json:"category"`
	TargetDate  *string      `json:"targetDate"`
	PCDA        *models.PCDA `json:"pcda"`
}

type nonConformityResponse struct {
	models.NonConformity
	Timeliness models.TimelinessResult `json:"timeliness"`
}

func toResponse(record models.NonConformity, now time.Time) nonConformityResponse {
	return nonConformityResponse{
		NonConformity: record,
		Timeliness:    record.Timeliness(now),
	}
}

func listNonConformitiesHandler(store *models.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		snapshot := store.Snapshot()
		out := make([]nonConformityResponse, 0, len(snapshot))
		for _, record := range snapshot {
			out = append(out, toResponse(record, now))
		}
		c.JSON(http.StatusOK, gin.H{"data": out})
	}
}

func createNonConformityHandler(store *models.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createNonConformityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) {
				c.JSON(http.StatusBadRequest, gin.H{"error": utils.ProcessValidationErrors(err)})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		if strings.TrimSpace(req.Description) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
			return
		}

		now := time.Now()
		record := models.NewNonConformity(
			strings.TrimSpace(req.Description), req.Source, req.Severity, req.Status, req.Day, now,
		)
		store.Add(record)

		config.GetLogger().WithFields(logrus.Fields{
			"id":     record.ID,
			"source": record.Source,
		}).Info("[nonconformity.create]")

		c.JSON(http.StatusCreated, gin.H{"data": toResponse(record, now)})
	}
}

func editNonConformityHandler(store *models.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req editNonConformityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		patch := models.Patch{
			Description: req.Description,
			Day:         req.Day,
			ClosedDate:  req.ClosedDate,
			ActionTitle: req.ActionTitle,
			TeamLeader:  req.TeamLeader,
			Team:        req.Team,
			Category:    req.Category,
			TargetDate:  req.TargetDate,
			PCDA:        req.PCDA,
		}
		if req.Source != nil {
			source := models.Source(*req.Source)
			if !source.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid source"})
				return
			}
			patch.Source = &source
		}
		if req.Severity != nil {
			severity := models.Severity(*req.Severity)
			if !severity.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid severity"})
				return
			}
			patch.Severity = &severity
		}
		if req.Status != nil {
			status := models.Status(*req.Status)
			if !status.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
				return
			}
			patch.Status = &status
		}

		now := time.Now()
		record, err := store.ApplyEdit(id, patch, now)
		if err != nil {
			if errors.Is(err, utils.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": toResponse(record, now)})
	}
}

func registerReportRoutes(r *gin.Engine, store *models.Store) {
	r.GET("/api/reports/status-distribution", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": reports.GetStatusDistribution(store.Snapshot())})
	})
	r.GET("/api/reports/open-task-timeliness", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": reports.GetOpenTaskTimeliness(store.Snapshot(), time.Now())})
	})
	r.GET("/api/reports/category-distribution", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": reports.GetCategoryDistribution(store.Snapshot())})
	})
	r.GET("/api/reports/weekly-distribution", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": reports.GetWeeklyDistribution(store.Snapshot())})
	})
	r.GET("/api/reports/closed-task-timeliness", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": reports.GetClosedTaskTimeliness(store.Snapshot())})
	})
	r.GET("/api/reports/resolution-by-department", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": reports.GetResolutionByDepartment(store.Snapshot())})
	})
	r.GET("/api/reports/resolution-by-leader", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": reports.GetResolutionByTeamLeader(store.Snapshot())})
	})
}

func main() {
	config.LoadEnv()
	port := config.GetPort()
	logger := config.GetLogger()

	// Cloud Run sends SIGTERM on revision shutdown; handle it for graceful drain.
	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Correlation IDs: generate once per request and attach to context.
	r.Use(func(c *gin.Context) {
		cid := c.GetHeader("x-correlation-id")
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Request = c.Request.WithContext(utils.SetCorrelationIdInContext(c.Request.Context(), cid))
		c.Writer.Header().Set("x-correlation-id", cid)
		c.Next()
	})
	r.Use(customErrorLogger(logger))
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	// Production-safe CORS:
	// - In production, require explicit allowlist via CORS_ALLOWED_ORIGINS (comma-separated).
	// - In non-production, allow all (developer convenience).
	allowedOrigins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if config.IsProduction() {
		corsConfig.AllowOrigins = splitAndTrim(allowedOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("Origin", "Content-Type", "Authorization")
	corsConfig.AddExposeHeaders("Content-Length")
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	store := models.NewStore()

	r.POST("/api/imports/columns", importColumnsHandler())
	r.POST("/api/imports", importHandler(store))
	r.GET("/api/nonconformities", listNonConformitiesHandler(store))
	r.POST("/api/nonconformities", createNonConformityHandler(store))
	r.PUT("/api/nonconformities/:id", editNonConformityHandler(store))
	registerReportRoutes(r, store)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		// ListenAndServe returns http.ErrServerClosed on graceful shutdown.
		serverErrCh <- srv.ListenAndServe()
	}()

	logger.WithFields(logrus.Fields{"port": port}).Info("nonconformity backend listening")

	select {
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithFields(logrus.Fields{"field": "http"}).Error("server failed: " + err.Error())
		}
	case <-sigCtx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithFields(logrus.Fields{"field": "http"}).Error("graceful shutdown failed: " + err.Error())
	}
}

// customErrorLogger is a custom Gin middleware that logs only errors
func customErrorLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only log when there are errors
		if len(c.Errors) > 0 {
			logger.Error(c.Errors.String())
		}
	}
}

func splitAndTrim(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
