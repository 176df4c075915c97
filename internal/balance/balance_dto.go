package balance

type BalanceResponse struct {
	LeaveTypeID    string `json:"leave_type_id"`
	Year           int    `json:"year"`
	Entitled       string `json:"entitled"`
	CarriedForward string `json:"carried_forward"`
	Used           string `json:"used"`
	Pending        string `json:"pending"`
	Available      string `json:"available"`
}

func mapToResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		LeaveTypeID:    b.LeaveTypeID.String(),
		Year:           b.Year,
		Entitled:       b.Entitled.StringFixed(2),
		CarriedForward: b.CarriedForward.StringFixed(2),
		Used:           b.Used.StringFixed(2),
		Pending:        b.Pending.StringFixed(2),
		Available:      b.Available.StringFixed(2),
	}
}
