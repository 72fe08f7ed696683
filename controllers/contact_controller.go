package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"quickfix/config"
	"quickfix/crm"
	"quickfix/store"
	"quickfix/utils"
)

type ContactController struct {
	Store  store.LeadStore
	CRM    *config.CRMConfig
	Feed   *LeadFeed
	Logger *log.Logger
}

func NewContactController(st store.LeadStore, crmCfg *config.CRMConfig, feed *LeadFeed, logger *log.Logger) *ContactController {
	return &ContactController{
		Store:  st,
		CRM:    crmCfg,
		Feed:   feed,
		Logger: logger,
	}
}

// SubmitContact handles contact form and booking submissions from the
// website. The pipeline is normalize, score, persist, notify, dispatch to
// the CRM; email and CRM failures are logged but never fail the request, the
// visitor already did their part.
func (cc *ContactController) SubmitContact(c *fiber.Ctx) error {
	var raw map[string]interface{}
	if err := c.BodyParser(&raw); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	lead := crm.ProcessLead(raw, "website")

	if lead.Name == "" || lead.Email == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Name and email are required", nil)
	}
	if err := utils.ValidateEmailAddress(lead.Email); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Please provide a valid email address", nil)
	}

	if err := cc.Store.Save(&lead); err != nil {
		utils.LogError("lead_save", err, map[string]interface{}{
			"email": lead.Email,
		})
		return utils.ErrorResponse(c, fiber.StatusInternalServerError,
			"An error occurred while processing your request. Please try again or call us directly.", nil)
	}

	if err := utils.NotifyLeadCreated(&lead); err != nil {
		utils.LogError("lead_notification", err, map[string]interface{}{
			"lead_id": lead.ID,
		})
	}

	crmDelivered := false
	if cc.CRM != nil {
		crmDelivered = crm.SendToCRM(&lead, cc.CRM)
	}

	cc.Feed.Broadcast(&lead)

	cc.Logger.Printf("lead %d accepted: type=%s score=%d crm_delivered=%t",
		lead.ID, lead.Type, lead.LeadScore, crmDelivered)

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Your message has been sent successfully!",
		"leadScore":    lead.LeadScore,
		"crmDelivered": crmDelivered,
	})
}

// ContactInfo describes the contact endpoint for API consumers.
func (cc *ContactController) ContactInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Contact API is working",
		"endpoints": fiber.Map{
			"POST": "Submit contact form or booking request",
		},
	})
}
