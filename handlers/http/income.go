package httpHandler

import (
	"errors"
	"net/http"
	"time"

	"finance-server/usecases"

	"github.com/gin-gonic/gin"
)

type IncomeHandler struct {
	useCase *usecases.IncomeUseCase
}

func NewIncomeHandler(useCase *usecases.IncomeUseCase) *IncomeHandler {
	return &IncomeHandler{useCase: useCase}
}

type incomeRequest struct {
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Date        *time.Time `json:"date"`
}

// Create handles POST /api/income
func (h *IncomeHandler) Create(c *gin.Context) {
	var req incomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	income, err := h.useCase.Create(CurrentUser(c).ID, usecases.IncomeInput{
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, income)
}

// List handles GET /api/income
func (h *IncomeHandler) List(c *gin.Context) {
	incomes, err := h.useCase.List(CurrentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, incomes)
}

// ListByDate handles GET /api/income/date/:date (YYYY-MM-DD)
func (h *IncomeHandler) ListByDate(c *gin.Context) {
	day, err := time.Parse(dayFormat, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	incomes, err := h.useCase.ListByDay(CurrentUser(c).ID, day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, incomes)
}

// ListByRange handles GET /api/income/range/:start/:end
func (h *IncomeHandler) ListByRange(c *gin.Context) {
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

	incomes, err := h.useCase.ListByRange(CurrentUser(c).ID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, incomes)
}

// Delete handles DELETE /api/income/:id
func (h *IncomeHandler) Delete(c *gin.Context) {
	err := h.useCase.Delete(c.Param("id"), CurrentUser(c).ID)
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			respondNotFound(c, "Income not found")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Income deleted successfully"})
}
