package dto

type CreateBookingRequest struct {
	ServiceID   string `json:"serviceId" validate:"required,uuid4"`
	UserEmail   string `json:"userEmail" validate:"required,email"`
	UserName    string `json:"userName" validate:"required"`
	UserPhone   string `json:"userPhone" validate:"omitempty,max=20"`
	BookingDate string `json:"bookingDate" validate:"required,datetime=2006-01-02"`
	BookingTime string `json:"bookingTime" validate:"required,hhmm"`
	Notes       string `json:"notes" validate:"omitempty,max=2000"`
}

type CreateServiceRequest struct {
	Title            string   `json:"title" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	ShortDescription *string  `json:"shortDescription"`
	FullDescription  *string  `json:"fullDescription"`
	Category         string   `json:"category" validate:"required"`
	IconName         *string  `json:"iconName"`
	Duration         int      `json:"duration" validate:"required,min=15"`
	Price            *float64 `json:"price" validate:"omitempty,gte=0"`
	Active           *bool    `json:"active"`
}

// UpdateServiceRequest carries only the fields present in the PATCH body;
// nil means "leave unchanged".
type UpdateServiceRequest struct {
	Title            *string  `json:"title" validate:"omitempty,min=1"`
	Description      *string  `json:"description" validate:"omitempty,min=1"`
	ShortDescription *string  `json:"shortDescription"`
	FullDescription  *string  `json:"fullDescription"`
	Category         *string  `json:"category" validate:"omitempty,min=1"`
	IconName         *string  `json:"iconName"`
	Duration         *int     `json:"duration" validate:"omitempty,min=15"`
	Price            *float64 `json:"price" validate:"omitempty,gte=0"`
	Active           *bool    `json:"active"`
}

type CreateContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Message string `json:"message" validate:"required"`
}
