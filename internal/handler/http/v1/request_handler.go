package v1

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/blood_connect/internal/models"
	"github.com/shenikar/blood_connect/internal/service"
)

// @Summary Create a blood request
// @Description Create a new blood request. Allowed for hospital, requester, patient and admin roles.
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBloodRequestRequest true "Blood request"
// @Success 201 {object} BloodRequestResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Role is not allowed to create requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests [post]
func (h *Handler) createRequest(c *gin.Context) {
	var input CreateBloodRequestRequest
	log := h.logger.WithField("method", "createRequest")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToBloodRequestModel(input)
	if err := h.requestService.CreateRequest(c.Request.Context(), actorFrom(c), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToBloodRequestResponse(model))
}

// @Summary Get a list of blood requests
// @Description Get a paginated list of all blood requests, newest first
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} BloodRequestResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests [get]
func (h *Handler) listRequests(c *gin.Context) {
	log := h.logger.WithField("method", "listRequests")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	requests, err := h.requestService.ListRequests(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToBloodRequestResponses(requests))
}

// @Summary List my blood requests
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} BloodRequestResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests/mine [get]
func (h *Handler) listMyRequests(c *gin.Context) {
	log := h.logger.WithField("method", "listMyRequests")

	requests, err := h.requestService.ListMyRequests(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToBloodRequestResponses(requests))
}

// @Summary Find blood requests nearby
// @Description Requests whose location lies within radius_km (inclusive) of the point, in creation order
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_km query number false "Search radius in kilometres" default(10)
// @Param pending_only query bool false "Only pending requests" default(false)
// @Success 200 {array} BloodRequestResponse
// @Failure 400 {object} map[string]string "Invalid coordinates or radius"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests/nearby [get]
func (h *Handler) findNearby(c *gin.Context) {
	log := h.logger.WithField("method", "findNearby")

	query, err := parseNearbyQuery(c)
	if err != nil {
		log.WithError(err).Warn("Invalid nearby query")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requests, err := h.requestService.FindNearby(c.Request.Context(), actorFrom(c), query)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToBloodRequestResponses(requests))
}

// @Summary Get blood request by ID
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} BloodRequestResponse
// @Failure 400 {object} map[string]string "Invalid request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests/{id} [get]
func (h *Handler) getRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}
	log := h.logger.WithField("method", "getRequest").WithField("id", id)

	request, err := h.requestService.GetRequest(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToBloodRequestResponse(request))
}

// @Summary Update blood request status
// @Description Change the status of a request. Only the requester or an admin may do this.
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} BloodRequestResponse
// @Failure 400 {object} map[string]string "Invalid request ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the owner of the request"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 422 {object} map[string]string "Status transition not allowed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests/{id}/status [patch]
func (h *Handler) updateRequestStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}
	log := h.logger.WithField("method", "updateRequestStatus").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	updated, err := h.requestService.UpdateStatus(c.Request.Context(), actorFrom(c), id, models.RequestStatus(input.Status))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToBloodRequestResponse(updated))
}

// @Summary Dashboard
// @Description Profile, up to three requests relevant to the user's role and per-status counts
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboard")

	dashboard, err := h.requestService.GetDashboard(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DashboardToResponse(dashboard))
}

// @Summary Get request statistics
// @Description Per-status counts and number of distinct users who searched nearby within the stats window. Admin only.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.requestService.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StatsToResponse(stats))
}

type queryError string

func (e queryError) Error() string { return string(e) }

func parseNearbyQuery(c *gin.Context) (service.NearbyQuery, error) {
	var q service.NearbyQuery

	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return q, queryError("lat must be a number between -90 and 90")
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil || lng < -180 || lng > 180 {
		return q, queryError("lng must be a number between -180 and 180")
	}
	q.Latitude, q.Longitude = lat, lng

	if raw := c.Query("radius_km"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil || radius < 0 || math.IsInf(radius, 0) || math.IsNaN(radius) {
			return q, queryError("radius_km must be a non-negative number")
		}
		q.RadiusKm = &radius
	}

	if raw := c.Query("pending_only"); raw != "" {
		pendingOnly, err := strconv.ParseBool(raw)
		if err != nil {
			return q, queryError("pending_only must be a boolean")
		}
		q.PendingOnly = pendingOnly
	}
	return q, nil
}
