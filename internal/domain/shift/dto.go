package shift

type ShiftResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsActive  bool   `json:"is_active"`
}

func ToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:        s.ID,
		Name:      s.Name,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		IsActive:  s.IsActive,
	}
}

func ToResponses(shifts []Shift) []ShiftResponse {
	result := make([]ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		result = append(result, ToResponse(s))
	}
	return result
}
