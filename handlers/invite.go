package handlers

import (
	"net/http"

	"shaqyrtu-backend/database"
	"shaqyrtu-backend/models"
	"shaqyrtu-backend/services"
	"shaqyrtu-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Per-category starter text applied when a new invite leaves the
// description empty. Categories mirror the template directories.
var categoryPresets = map[string]string{
	"wedding":    "Сіздерді ұлымыз бен келініміздің үйлену тойына арналған салтанатты ақ дастарханымыздың қадірлі қонағы болуға шақырамыз!",
	"uzatu":      "Сіздерді қызымыздың ұзату тойына арналған салтанатты ақ дастарханымыздың қадірлі қонағы болуға шақырамыз!",
	"sundet":     "Сіздерді ұлымыздың сүндет тойына арналған ақ дастарханымыздың қадірлі қонағы болуға шақырамыз!",
	"tusaukeser": "Сіздерді бөбегіміздің тұсаукесер тойына арналған ақ дастарханымыздың қадірлі қонағы болуға шақырамыз!",
	"merei":      "Сіздерді мерейтой иесінің құрметіне берілетін салтанатты кешіміздің қадірлі қонағы болуға шақырамыз!",
	"besik":      "Сіздерді бөбегіміздің бесік тойына арналған ақ дастарханымыздың қадірлі қонағы болуға шақырамыз!",
}

// POST /api/v1/invites
func CreateInvite(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	var req models.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	template := req.Template
	if template == "" {
		template = pageRenderer.Registry.CategoryDefault(req.Category)
	}

	description := req.Description
	if description == "" {
		if preset, ok := categoryPresets[req.Category]; ok {
			description = preset
		}
	}

	invite := models.Invite{
		OwnerID:         userID,
		Slug:            utils.GenerateSlug(req.Title),
		Title:           req.Title,
		Description:     description,
		Topic1:          req.Topic1,
		Topic2:          req.Topic2,
		ToiOwners:       req.ToiOwners,
		LocationName:    req.LocationName,
		LocationURL:     req.LocationURL,
		EventDate:       req.EventDate,
		PreviewPhotoURL: req.PreviewPhotoURL,
		Gallery:         req.Gallery,
		MusicURL:        req.MusicURL,
		MusicTitle:      req.MusicTitle,
		Template:        pageRenderer.Registry.Resolve(template).ID,
		MaxGuests:       req.MaxGuests,
	}

	if err := database.DB.Create(&invite).Error; err != nil {
		utils.InternalError(c, "Failed to create invite")
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Invite created", invite.ToResponse(0))
}

// GET /api/v1/invites/my
func GetMyInvites(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	var invites []models.Invite
	database.DB.Where("owner_id = ?", userID).Order("created_at DESC").Find(&invites)

	responses := make([]models.InviteResponse, 0, len(invites))
	for _, inv := range invites {
		var count int64
		database.DB.Model(&models.GuestResponse{}).Where("invite_id = ?", inv.ID).Count(&count)
		responses = append(responses, inv.ToResponse(count))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// GET /api/v1/invites/:id
func GetInvite(c *gin.Context) {
	invite, ok := ownedInvite(c)
	if !ok {
		return
	}

	var count int64
	database.DB.Model(&models.GuestResponse{}).Where("invite_id = ?", invite.ID).Count(&count)
	utils.SuccessResponse(c, http.StatusOK, "", invite.ToResponse(count))
}

// PUT /api/v1/invites/:id
func UpdateInvite(c *gin.Context) {
	invite, ok := ownedInvite(c)
	if !ok {
		return
	}

	var req models.UpdateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if req.Title != nil {
		invite.Title = *req.Title
	}
	if req.Description != nil {
		invite.Description = *req.Description
	}
	if req.Template != nil {
		invite.Template = pageRenderer.Registry.Resolve(*req.Template).ID
	}
	if req.Topic1 != nil {
		invite.Topic1 = *req.Topic1
	}
	if req.Topic2 != nil {
		invite.Topic2 = *req.Topic2
	}
	if req.ToiOwners != nil {
		invite.ToiOwners = *req.ToiOwners
	}
	if req.LocationName != nil {
		invite.LocationName = *req.LocationName
	}
	if req.LocationURL != nil {
		invite.LocationURL = *req.LocationURL
	}
	if req.EventDate != nil {
		invite.EventDate = req.EventDate
	}
	if req.PreviewPhotoURL != nil {
		invite.PreviewPhotoURL = *req.PreviewPhotoURL
	}
	if req.Gallery != nil {
		invite.Gallery = *req.Gallery
	}
	if req.MusicURL != nil {
		invite.MusicURL = *req.MusicURL
	}
	if req.MusicTitle != nil {
		invite.MusicTitle = *req.MusicTitle
	}
	if req.MaxGuests != nil {
		invite.MaxGuests = *req.MaxGuests
	}

	if err := database.DB.Save(&invite).Error; err != nil {
		utils.InternalError(c, "Failed to update invite")
		return
	}

	// Guests must see the new content on the next request
	services.InvalidateDocuments(c.Request.Context(), invite.Slug)

	var count int64
	database.DB.Model(&models.GuestResponse{}).Where("invite_id = ?", invite.ID).Count(&count)
	utils.SuccessResponse(c, http.StatusOK, "Invite updated", invite.ToResponse(count))
}

// DELETE /api/v1/invites/:id
func DeleteInvite(c *gin.Context) {
	invite, ok := ownedInvite(c)
	if !ok {
		return
	}

	database.DB.Where("invite_id = ?", invite.ID).Delete(&models.GuestResponse{})
	if err := database.DB.Delete(&invite).Error; err != nil {
		utils.InternalError(c, "Failed to delete invite")
		return
	}

	services.InvalidateDocuments(c.Request.Context(), invite.Slug)
	utils.SuccessResponse(c, http.StatusOK, "Invite deleted", nil)
}

// GET /api/v1/invites/:id/responses
func GetResponses(c *gin.Context) {
	invite, ok := ownedInvite(c)
	if !ok {
		return
	}

	var responses []models.GuestResponse
	database.DB.Where("invite_id = ?", invite.ID).Order("created_at DESC").Find(&responses)
	if responses == nil {
		responses = []models.GuestResponse{}
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// GET /api/v1/invites/:id/stats
func GetStats(c *gin.Context) {
	invite, ok := ownedInvite(c)
	if !ok {
		return
	}

	stats := models.InviteStats{InviteID: invite.ID}
	database.DB.Model(&models.GuestResponse{}).
		Where("invite_id = ? AND attending = ?", invite.ID, true).Count(&stats.AttendingCount)
	database.DB.Model(&models.GuestResponse{}).
		Where("invite_id = ? AND attending = ?", invite.ID, false).Count(&stats.DeclinedCount)
	database.DB.Model(&models.GuestResponse{}).Select("COALESCE(SUM(guests_count), 0)").
		Where("invite_id = ? AND attending = ?", invite.ID, true).Scan(&stats.TotalGuests)
	database.DB.Where("invite_id = ?", invite.ID).
		Order("created_at DESC").Limit(10).Find(&stats.RecentResponses)
	if stats.RecentResponses == nil {
		stats.RecentResponses = []models.GuestResponse{}
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}

// POST /api/v1/invites/:id/respond (public — the RSVP form posts here)
func Respond(c *gin.Context) {
	inviteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid invite ID")
		return
	}

	var req models.RespondInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if req.GuestsCount < 1 {
		req.GuestsCount = 1
	}

	var invite models.Invite
	if err := database.DB.First(&invite, "id = ?", inviteID).Error; err != nil {
		utils.NotFound(c, "Invite not found")
		return
	}

	// The form clamps client-side, but the capacity check lives here.
	// MaxGuests of zero means unlimited.
	if req.Attending && invite.MaxGuests > 0 {
		var attending int64
		database.DB.Model(&models.GuestResponse{}).Select("COALESCE(SUM(guests_count), 0)").
			Where("invite_id = ? AND attending = ?", invite.ID, true).Scan(&attending)
		if attending+int64(req.GuestsCount) > int64(invite.MaxGuests) {
			utils.Conflict(c, "No seats left")
			return
		}
	}

	response := models.GuestResponse{
		InviteID:    invite.ID,
		GuestName:   req.GuestName,
		Phone:       normalizePhone(req.Phone),
		GuestsCount: req.GuestsCount,
		Attending:   req.Attending,
		Note:        req.Note,
	}

	if err := database.DB.Create(&response).Error; err != nil {
		utils.InternalError(c, "Failed to save response")
		return
	}

	// Notify the owner in the background
	go func() {
		var owner models.User
		if err := database.DB.First(&owner, "id = ?", invite.OwnerID).Error; err != nil {
			return
		}
		services.GetNotificationService().NotifyGuestResponse(owner, invite, response)
	}()

	utils.SuccessResponse(c, http.StatusCreated, "Response recorded", response)
}

// ownedInvite loads the :id invite and enforces ownership.
func ownedInvite(c *gin.Context) (models.Invite, bool) {
	userID := utils.GetCurrentUserID(c)

	inviteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid invite ID")
		return models.Invite{}, false
	}

	var invite models.Invite
	if err := database.DB.First(&invite, "id = ?", inviteID).Error; err != nil {
		utils.NotFound(c, "Invite not found")
		return models.Invite{}, false
	}
	if invite.OwnerID != userID {
		utils.Forbidden(c, "Not your invite")
		return models.Invite{}, false
	}
	return invite, true
}
