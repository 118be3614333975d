// Package handlers is the read-only HTTP viewer over the relational
// store. It consumes the bridge's exported sequence and never writes;
// mutations go through the CLI commands.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"apptrack/aggregate"
	"apptrack/models"
	"apptrack/store"
)

type Handler struct {
	db  *gorm.DB
	log *zap.SugaredLogger
	now func() time.Time
}

func New(db *gorm.DB, log *zap.SugaredLogger) *Handler {
	return &Handler{db: db, log: log, now: time.Now}
}

// Register wires the API routes.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/records", h.GetRecords)
		api.GET("/stats", h.GetStats)
	}
}

type recordView struct {
	Company  string `json:"company"`
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
}

// GetRecords returns the stored (aggregated) records, optionally
// filtered to an exact company name via ?company=.
func (h *Handler) GetRecords(c *gin.Context) {
	records, err := h.export(c)
	if err != nil {
		return
	}

	company := c.Query("company")
	views := make([]recordView, 0, len(records))
	for _, r := range records {
		if company != "" && r.Company != company {
			continue
		}
		views = append(views, recordView{Company: r.Company, Date: r.FormatDate(), Quantity: r.Quantity})
	}
	c.JSON(http.StatusOK, views)
}

// GetStats summarizes the stored records: distinct companies, total
// recorded quantity, quantity recorded today, and the most recent date.
func (h *Handler) GetStats(c *gin.Context) {
	records, err := h.export(c)
	if err != nil {
		return
	}

	today := models.Today(h.now())
	todayQuantity := 0
	var latest time.Time
	for _, r := range records {
		if r.Date.Equal(today) {
			todayQuantity += r.Quantity
		}
		if r.Date.After(latest) {
			latest = r.Date
		}
	}

	stats := gin.H{
		"companies":    len(records),
		"applications": aggregate.TotalQuantity(records),
		"today":        todayQuantity,
	}
	if !latest.IsZero() {
		stats["latest"] = latest.Format(models.DateFormat)
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) export(c *gin.Context) ([]models.Record, error) {
	records, err := store.Export(h.db)
	if err == nil {
		return records, nil
	}

	var mismatch *store.SchemaMismatchError
	if errors.As(err, &mismatch) {
		c.JSON(http.StatusConflict, gin.H{"error": mismatch.Error()})
		return nil, err
	}
	h.log.Errorw("export failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "store read failed"})
	return nil, err
}
