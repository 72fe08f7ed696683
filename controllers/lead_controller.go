package controller

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"quickfix/crm"
	"quickfix/models"
	"quickfix/store"
	"quickfix/utils"
)

type LeadController struct {
	Store  store.LeadStore
	Feed   *LeadFeed
	Logger *log.Logger
}

func NewLeadController(st store.LeadStore, feed *LeadFeed, logger *log.Logger) *LeadController {
	return &LeadController{
		Store:  st,
		Feed:   feed,
		Logger: logger,
	}
}

// Analytics summarizes the lead pipeline for the dashboard cards.
type Analytics struct {
	TotalLeads     int    `json:"totalLeads"`
	NewLeads       int    `json:"newLeads"`
	ContactedLeads int    `json:"contactedLeads"`
	QualifiedLeads int    `json:"qualifiedLeads"`
	WonLeads       int    `json:"wonLeads"`
	LostLeads      int    `json:"lostLeads"`
	ConversionRate string `json:"conversionRate"`
	TotalValue     int    `json:"totalValue"`
	AvgLeadScore   string `json:"avgLeadScore"`
}

func buildAnalytics(leads []models.Lead) Analytics {
	a := Analytics{TotalLeads: len(leads), ConversionRate: "0%", AvgLeadScore: "0"}

	scoreSum := 0
	for _, lead := range leads {
		switch lead.Status {
		case models.StatusNew:
			a.NewLeads++
		case models.StatusContacted:
			a.ContactedLeads++
		case models.StatusQualified:
			a.QualifiedLeads++
		case models.StatusClosedWon:
			a.WonLeads++
		case models.StatusClosedLost:
			a.LostLeads++
		}
		a.TotalValue += lead.EstimatedValue
		scoreSum += lead.LeadScore
	}

	if len(leads) > 0 {
		a.ConversionRate = fmt.Sprintf("%.1f%%", float64(a.WonLeads)/float64(len(leads))*100)
		a.AvgLeadScore = fmt.Sprintf("%.1f", float64(scoreSum)/float64(len(leads)))
	}
	return a
}

// GetLeads lists leads for the dashboard with optional status filter and
// limit, plus pipeline analytics and service/source breakdowns computed over
// the full store.
func (lc *LeadController) GetLeads(c *fiber.Ctx) error {
	status := c.Query("status")
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid limit", err)
	}

	all, err := lc.Store.List(store.ListFilter{})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch leads", err)
	}

	leads, err := lc.Store.List(store.ListFilter{Status: status, Limit: limit})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch leads", err)
	}

	serviceBreakdown := make(map[string]int)
	leadSources := make(map[string]int)
	for _, lead := range all {
		service := lead.Service
		if service == "" {
			service = "other"
		}
		serviceBreakdown[service]++

		source := lead.Source
		if source == "" {
			source = "unknown"
		}
		leadSources[source]++
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"meta": fiber.Map{
			"total":   len(leads),
			"limit":   limit,
			"hasMore": len(leads) < len(all),
			"filters": fiber.Map{"status": status, "limit": limit},
		},
		"analytics":        buildAnalytics(all),
		"serviceBreakdown": serviceBreakdown,
		"leadSources":      leadSources,
		"leads":            leads,
	})
}

// CreateLead accepts a lead submitted through the authenticated API (partner
// integrations, test scripts). It runs the same normalize-and-score pipeline
// as the public form, tagged with source "api".
func (lc *LeadController) CreateLead(c *fiber.Ctx) error {
	var raw map[string]interface{}
	if err := c.BodyParser(&raw); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	lead := crm.ProcessLead(raw, "api")

	input := struct {
		Name  string `validate:"required,max=200"`
		Email string `validate:"required,email"`
	}{lead.Name, lead.Email}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if v, ok := raw["estimatedValue"].(float64); ok {
		lead.EstimatedValue = int(v)
	}

	if err := lc.Store.Save(&lead); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create lead", err)
	}

	lc.Feed.Broadcast(&lead)
	lc.Logger.Printf("lead %d created via api: score=%d", lead.ID, lead.LeadScore)

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Lead created successfully",
		"lead":      lead,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetLead returns a single lead by ID
func (lc *LeadController) GetLead(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid lead ID", err)
	}

	lead, err := lc.Store.Get(uint(id))
	if err != nil {
		if err == store.ErrNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Lead not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch lead", err)
	}

	return c.JSON(utils.SuccessResponse(lead))
}

// UpdateLeadStatus moves a lead along the pipeline. Only the status changes;
// everything else about a lead is fixed at intake.
func (lc *LeadController) UpdateLeadStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid lead ID", err)
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if !models.IsValidStatus(input.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Status must be one of: new, contacted, qualified, proposal, negotiation, closed-won, closed-lost", nil)
	}

	lead, err := lc.Store.UpdateStatus(uint(id), input.Status)
	if err != nil {
		if err == store.ErrNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Lead not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update lead", err)
	}

	lc.Logger.Printf("lead %d status -> %s", lead.ID, lead.Status)
	return c.JSON(utils.SuccessResponse(lead))
}

// DeleteLead removes a lead
func (lc *LeadController) DeleteLead(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid lead ID", err)
	}

	if err := lc.Store.Delete(uint(id)); err != nil {
		if err == store.ErrNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Lead not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete lead", err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{"deleted": id}))
}
