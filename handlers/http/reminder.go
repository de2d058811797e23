package httpHandler

import (
	"errors"
	"net/http"
	"time"

	"finance-server/usecases"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	useCase *usecases.ReminderUseCase
}

func NewReminderHandler(useCase *usecases.ReminderUseCase) *ReminderHandler {
	return &ReminderHandler{useCase: useCase}
}

type reminderRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DueDate      time.Time `json:"dueDate"`
	Priority     string    `json:"priority"`
	NotifyBefore *int      `json:"notifyBefore"`
	Completed    bool      `json:"completed"`
}

// Create handles POST /api/reminder
func (h *ReminderHandler) Create(c *gin.Context) {
	var req reminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	reminder, err := h.useCase.Create(CurrentUser(c).ID, usecases.ReminderInput{
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		Priority:     req.Priority,
		NotifyBefore: req.NotifyBefore,
		Completed:    req.Completed,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reminder)
}

// List handles GET /api/reminder
func (h *ReminderHandler) List(c *gin.Context) {
	reminders, err := h.useCase.List(CurrentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}

// Get handles GET /api/reminder/:id
func (h *ReminderHandler) Get(c *gin.Context) {
	reminder, err := h.useCase.Get(c.Param("id"), CurrentUser(c).ID)
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			respondNotFound(c, "Reminder not found")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminder)
}

type reminderPatchRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	DueDate      *time.Time `json:"dueDate"`
	Priority     *string    `json:"priority"`
	NotifyBefore *int       `json:"notifyBefore"`
	Completed    *bool      `json:"completed"`
}

// Update handles PUT /api/reminder/:id
func (h *ReminderHandler) Update(c *gin.Context) {
	var req reminderPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	reminder, err := h.useCase.Update(c.Param("id"), CurrentUser(c).ID, usecases.ReminderPatch{
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		Priority:     req.Priority,
		NotifyBefore: req.NotifyBefore,
		Completed:    req.Completed,
	})
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			respondNotFound(c, "Reminder not found")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminder)
}

type completeRequest struct {
	Completed *bool `json:"completed"`
}

// SetCompleted handles PATCH /api/reminder/:id/complete
func (h *ReminderHandler) SetCompleted(c *gin.Context) {
	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Completed == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Completed status is required"})
		return
	}

	reminder, err := h.useCase.SetCompleted(c.Param("id"), CurrentUser(c).ID, *req.Completed)
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			respondNotFound(c, "Reminder not found")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminder)
}

// Delete handles DELETE /api/reminder/:id
func (h *ReminderHandler) Delete(c *gin.Context) {
	err := h.useCase.Delete(c.Param("id"), CurrentUser(c).ID)
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			respondNotFound(c, "Reminder not found")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}
