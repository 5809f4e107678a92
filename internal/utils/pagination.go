// internal/utils/pagination.go
package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Listings use a fixed small page size.
const PageSize = 10

type PageParams struct {
	Page     int
	PageSize int
}

// PageEnvelope is the listing response shape: a total count plus absolute
// URLs for the adjacent pages.
type PageEnvelope struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

func GetPageParams(c *gin.Context) PageParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	return PageParams{
		Page:     page,
		PageSize: PageSize,
	}
}

// ValidPage reports whether the requested page exists for the given total.
// The first page is always valid so an empty listing still renders.
func ValidPage(count int64, params PageParams) bool {
	if params.Page == 1 {
		return true
	}
	lastPage := int((count + int64(params.PageSize) - 1) / int64(params.PageSize))
	return params.Page <= lastPage
}

func ApplyPagination(db *gorm.DB, params PageParams) *gorm.DB {
	offset := (params.Page - 1) * params.PageSize
	return db.Offset(offset).Limit(params.PageSize)
}

// ApplyOrdering orders the query by the requested column, "-" prefix for
// descending. Unknown columns fall back to the default ordering.
func ApplyOrdering(db *gorm.DB, ordering string, allowedFields []string, defaultOrder string) *gorm.DB {
	field := strings.TrimPrefix(ordering, "-")
	direction := "asc"
	if strings.HasPrefix(ordering, "-") {
		direction = "desc"
	}

	for _, allowed := range allowedFields {
		if allowed == field {
			return db.Order(field + " " + direction)
		}
	}

	return db.Order(defaultOrder)
}

func NewPageEnvelope(c *gin.Context, count int64, params PageParams, results interface{}) PageEnvelope {
	envelope := PageEnvelope{
		Count:   count,
		Results: results,
	}

	lastPage := int((count + int64(params.PageSize) - 1) / int64(params.PageSize))
	if params.Page < lastPage {
		next := pageURL(c, params.Page+1)
		envelope.Next = &next
	}
	if params.Page > 1 && params.Page <= lastPage {
		previous := pageURL(c, params.Page-1)
		envelope.Previous = &previous
	}

	return envelope
}

func pageURL(c *gin.Context, page int) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}

	query := c.Request.URL.Query()
	if page <= 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(page))
	}

	url := fmt.Sprintf("%s://%s%s", scheme, c.Request.Host, c.Request.URL.Path)
	if encoded := query.Encode(); encoded != "" {
		url += "?" + encoded
	}
	return url
}
