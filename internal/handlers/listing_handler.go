package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/elpresidentey/diasporan-backend/internal/database"
	"github.com/elpresidentey/diasporan-backend/internal/mockdata"
	"github.com/elpresidentey/diasporan-backend/internal/models"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ListingHandler serves the public list endpoints, proxying filtered queries
// to the store. With no database configured every endpoint serves the static
// mock listings instead.
type ListingHandler struct {
	accommodations *database.AccommodationRepository
	events         *database.EventRepository
	transport      *database.TransportRepository
	flights        *database.FlightRepository
	mockMode       bool
	logger         *logrus.Logger
}

// NewListingHandler creates a ListingHandler backed by the store
func NewListingHandler(
	accommodations *database.AccommodationRepository,
	events *database.EventRepository,
	transport *database.TransportRepository,
	flights *database.FlightRepository,
	logger *logrus.Logger,
) *ListingHandler {
	return &ListingHandler{
		accommodations: accommodations,
		events:         events,
		transport:      transport,
		flights:        flights,
		logger:         logger,
	}
}

// NewMockListingHandler creates a ListingHandler that serves static mock data
func NewMockListingHandler(logger *logrus.Logger) *ListingHandler {
	return &ListingHandler{mockMode: true, logger: logger}
}

// ListAccommodations handles GET /api/v1/accommodations
func (h *ListingHandler) ListAccommodations(c *gin.Context) {
	limit, offset := parsePagination(c)

	if h.mockMode {
		c.JSON(http.StatusOK, gin.H{"accommodations": paginateAccommodations(mockdata.Accommodations(), limit, offset)})
		return
	}

	filter := models.AccommodationFilter{
		Location: c.Query("location"),
		MinPrice: parseFloatQuery(c, "min_price"),
		MaxPrice: parseFloatQuery(c, "max_price"),
		Guests:   parseIntQuery(c, "guests"),
		Limit:    limit,
		Offset:   offset,
	}

	accommodations, err := h.accommodations.List(filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list accommodations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "INTERNAL_ERROR", "message": "failed to list accommodations"}})
		return
	}
	if accommodations == nil {
		accommodations = []models.Accommodation{}
	}

	c.JSON(http.StatusOK, gin.H{"accommodations": accommodations})
}

// ListEvents handles GET /api/v1/events
func (h *ListingHandler) ListEvents(c *gin.Context) {
	limit, offset := parsePagination(c)

	if h.mockMode {
		c.JSON(http.StatusOK, gin.H{"events": paginateEvents(mockdata.Events(), limit, offset)})
		return
	}

	filter := models.EventFilter{
		Location: c.Query("location"),
		Category: c.Query("category"),
		MinPrice: parseFloatQuery(c, "min_price"),
		MaxPrice: parseFloatQuery(c, "max_price"),
		Limit:    limit,
		Offset:   offset,
	}

	events, err := h.events.List(filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list events")
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "INTERNAL_ERROR", "message": "failed to list events"}})
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// ListTransport handles GET /api/v1/transport
func (h *ListingHandler) ListTransport(c *gin.Context) {
	limit, offset := parsePagination(c)

	if h.mockMode {
		c.JSON(http.StatusOK, gin.H{"transport_options": paginateTransport(mockdata.TransportOptions(), limit, offset)})
		return
	}

	filter := models.TransportFilter{
		Origin:        c.Query("origin"),
		Destination:   c.Query("destination"),
		TransportType: c.Query("type"),
		Limit:         limit,
		Offset:        offset,
	}

	options, err := h.transport.List(filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list transport options")
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "INTERNAL_ERROR", "message": "failed to list transport options"}})
		return
	}
	if options == nil {
		options = []models.TransportOption{}
	}

	c.JSON(http.StatusOK, gin.H{"transport_options": options})
}

// ListFlights handles GET /api/v1/flights
func (h *ListingHandler) ListFlights(c *gin.Context) {
	limit, offset := parsePagination(c)

	if h.mockMode {
		c.JSON(http.StatusOK, gin.H{"flights": paginateFlights(mockdata.Flights(), limit, offset)})
		return
	}

	filter := models.FlightFilter{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		Airline:     c.Query("airline"),
		Limit:       limit,
		Offset:      offset,
	}

	flights, err := h.flights.List(filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list flights")
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "INTERNAL_ERROR", "message": "failed to list flights"}})
		return
	}
	if flights == nil {
		flights = []models.Flight{}
	}

	c.JSON(http.StatusOK, gin.H{"flights": flights})
}

func parsePagination(c *gin.Context) (limit, offset int) {
	limit = defaultListLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		offset = v
	}

	return limit, offset
}

func parseFloatQuery(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntQuery(c *gin.Context, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func paginateAccommodations(items []models.Accommodation, limit, offset int) []models.Accommodation {
	lo, hi := pageBounds(len(items), limit, offset)
	return items[lo:hi]
}

func paginateEvents(items []models.Event, limit, offset int) []models.Event {
	lo, hi := pageBounds(len(items), limit, offset)
	return items[lo:hi]
}

func paginateTransport(items []models.TransportOption, limit, offset int) []models.TransportOption {
	lo, hi := pageBounds(len(items), limit, offset)
	return items[lo:hi]
}

func paginateFlights(items []models.Flight, limit, offset int) []models.Flight {
	lo, hi := pageBounds(len(items), limit, offset)
	return items[lo:hi]
}

func pageBounds(total, limit, offset int) (int, int) {
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return offset, end
}
