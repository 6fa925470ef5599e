package domain

type CreateReportRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Categories  []string `json:"categories" validate:"required,min=1,dive,required"`
	Lat         float64  `json:"lat" validate:"lat"`
	Lng         float64  `json:"lng" validate:"lng"`
}

type UpdateReportRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Categories  []string `json:"categories" validate:"omitempty,min=1,dive,required"`
}

type ChangeStatusRequest struct {
	NewStatus        ReportStatus `json:"new_status" validate:"required"`
	RejectionMessage string       `json:"rejection_message"`
}

// NearbyQuery is the proximity-search input. Page is 1-based; Size is clamped
// in the engine, not here.
type NearbyQuery struct {
	Lat      float64  `json:"lat" validate:"lat"`
	Lng      float64  `json:"lng" validate:"lng"`
	RadiusKM float64  `json:"radius_km" validate:"omitempty,min=0"`
	Category []string `json:"categories"`
	Page     int      `json:"page" validate:"omitempty,min=1"`
	Size     int      `json:"size" validate:"omitempty,min=1"`
}

type NearbyPage struct {
	Items         []NearbyReport `json:"items"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int64          `json:"total_elements"`
	TotalPages    int            `json:"total_pages"`
}
