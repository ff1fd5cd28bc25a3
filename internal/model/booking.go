package model

// Booking represents a hotel reservation owned by a single user.
// BookingName is a caller-supplied display label, independent of the hotel
// name (stored in the user_name column).
type Booking struct {
	ID            int64   `json:"id"`
	UserID        int     `json:"user_id"`
	BookingName   string  `json:"booking_name"`
	HotelName     string  `json:"hotel_name"`
	City          string  `json:"city"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Price         float64 `json:"price"`
	HotelImageURL *string `json:"hotel_image_url,omitempty"`
}

// CreateBookingRequest is used for creating a new booking.
// BookingName is validated in the handler so the error message is specific.
type CreateBookingRequest struct {
	BookingName   string  `json:"booking_name"`
	HotelName     string  `json:"hotel_name" binding:"required"`
	City          string  `json:"city" binding:"required"`
	CheckIn       string  `json:"check_in" binding:"required"`
	CheckOut      string  `json:"check_out" binding:"required"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	HotelImageURL *string `json:"hotel_image_url"`
}
