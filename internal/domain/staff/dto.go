package staff

type StaffResponse struct {
	ID             string          `json:"id"`
	FullName       string          `json:"full_name"`
	Position       string          `json:"position"`
	SalarySettings *SalarySettings `json:"salary_settings,omitempty"`
	IsActive       bool            `json:"is_active"`
}

func ToResponse(s Staff) StaffResponse {
	return StaffResponse{
		ID:             s.ID,
		FullName:       s.FullName,
		Position:       s.Position,
		SalarySettings: s.SalarySettings,
		IsActive:       s.IsActive,
	}
}

func ToResponses(members []Staff) []StaffResponse {
	result := make([]StaffResponse, 0, len(members))
	for _, s := range members {
		result = append(result, ToResponse(s))
	}
	return result
}
