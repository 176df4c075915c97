package holiday

type CreateHolidayRequest struct {
	Date      string `json:"date" binding:"required"`
	Name      string `json:"name" binding:"required,max=120"`
	IsBlocked bool   `json:"is_blocked"`
}

type HolidayResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Name      string `json:"name"`
	IsBlocked bool   `json:"is_blocked"`
	IsActive  bool   `json:"is_active"`
}

// cachedHoliday is the redis representation of one year's holidays.
type cachedHoliday struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Name      string `json:"name"`
	IsBlocked bool   `json:"is_blocked"`
}
