package models

// ScheduleEvent is a free-form calendar entry owned by a single team.
type ScheduleEvent struct {
	ID          string `json:"id"`
	TeamID      string `json:"team_id"`
	Date        string `json:"date"` // YYYY-MM-DD
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
}

// DTOs

type CreateScheduleEventRequest struct {
	TeamID      string `json:"team_id" binding:"required"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time"`
	Description string `json:"description" binding:"required"`
}

type UpdateScheduleEventRequest struct {
	Date        *string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	Description *string `json:"description,omitempty"`
}
