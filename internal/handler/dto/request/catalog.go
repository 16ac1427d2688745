package request

type CreateHall struct {
	Name            string `json:"name" binding:"required"`
	SportType       string `json:"sport_type" binding:"required"`
	HourlyRateCents int64  `json:"hourly_rate_cents" binding:"required,gt=0"`
	Capacity        int    `json:"capacity" binding:"required,gt=0"`
}

type CreateService struct {
	Name            string `json:"name" binding:"required"`
	HourlyRateCents int64  `json:"hourly_rate_cents" binding:"gte=0"`
	Optional        bool   `json:"optional"`
}
