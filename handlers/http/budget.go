package httpHandler

import (
	"errors"
	"net/http"
	"time"

	"finance-server/usecases"

	"github.com/gin-gonic/gin"
)

type BudgetHandler struct {
	useCase *usecases.BudgetUseCase
}

func NewBudgetHandler(useCase *usecases.BudgetUseCase) *BudgetHandler {
	return &BudgetHandler{useCase: useCase}
}

// budgetRequest deliberately has no total field; the server always
// computes it from the items.
type budgetRequest struct {
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	StartDate   time.Time                  `json:"startDate"`
	EndDate     time.Time                  `json:"endDate"`
	Status      string                     `json:"status"`
	Items       []usecases.BudgetItemInput `json:"items"`
}

func (r budgetRequest) toInput() usecases.BudgetInput {
	return usecases.BudgetInput{
		Title:       r.Title,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Status:      r.Status,
		Items:       r.Items,
	}
}

// Create handles POST /api/budget
func (h *BudgetHandler) Create(c *gin.Context) {
	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	budget, err := h.useCase.Create(CurrentUser(c).ID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, budget)
}

// List handles GET /api/budget
func (h *BudgetHandler) List(c *gin.Context) {
	budgets, err := h.useCase.List(CurrentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, budgets)
}

// Get handles GET /api/budget/:id
func (h *BudgetHandler) Get(c *gin.Context) {
	budget, err := h.useCase.Get(c.Param("id"), CurrentUser(c).ID)
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			respondNotFound(c, "Budget not found")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}

// Update handles PUT /api/budget/:id
func (h *BudgetHandler) Update(c *gin.Context) {
	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	budget, err := h.useCase.Update(c.Param("id"), CurrentUser(c).ID, req.toInput())
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			respondNotFound(c, "Budget not found")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}

type budgetStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/budget/:id/status
func (h *BudgetHandler) UpdateStatus(c *gin.Context) {
	var req budgetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	budget, err := h.useCase.UpdateStatus(c.Param("id"), CurrentUser(c).ID, req.Status)
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			respondNotFound(c, "Budget not found")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}

// UpdateItem handles PATCH /api/budget/:id/item/:itemId
func (h *BudgetHandler) UpdateItem(c *gin.Context) {
	var patch usecases.BudgetItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	budget, err := h.useCase.UpdateItem(c.Param("id"), c.Param("itemId"), CurrentUser(c).ID, patch)
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			respondNotFound(c, "Budget item not found")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}

// Delete handles DELETE /api/budget/:id
func (h *BudgetHandler) Delete(c *gin.Context) {
	err := h.useCase.Delete(c.Param("id"), CurrentUser(c).ID)
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			respondNotFound(c, "Budget not found")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}
