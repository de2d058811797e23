package httpHandler

import (
	"errors"
	"net/http"
	"time"

	"finance-server/usecases"

	"github.com/gin-gonic/gin"
)

const dayFormat = "2006-01-02"

type ExpenseHandler struct {
	useCase *usecases.ExpenseUseCase
}

func NewExpenseHandler(useCase *usecases.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{useCase: useCase}
}

type expenseRequest struct {
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Date        *time.Time `json:"date"`
}

// Create handles POST /api/expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	expense, err := h.useCase.Create(CurrentUser(c).ID, usecases.ExpenseInput{
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// List handles GET /api/expense
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.useCase.List(CurrentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// ListByDate handles GET /api/expense/date/:date (YYYY-MM-DD)
func (h *ExpenseHandler) ListByDate(c *gin.Context) {
	day, err := time.Parse(dayFormat, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	expenses, err := h.useCase.ListByDay(CurrentUser(c).ID, day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// ListByRange handles GET /api/expense/range/:start/:end
func (h *ExpenseHandler) ListByRange(c *gin.Context) {
	start, err := time.Parse(dayFormat, c.Param("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid start date, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(dayFormat, c.Param("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid end date, expected YYYY-MM-DD"})
		return
	}

	expenses, err := h.useCase.ListByRange(CurrentUser(c).ID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// Delete handles DELETE /api/expense/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	err := h.useCase.Delete(c.Param("id"), CurrentUser(c).ID)
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			respondNotFound(c, "Expense not found")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
